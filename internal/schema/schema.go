// Package schema discovers the semantic layout of an unknown statement
// grid: which row is the header and which columns hold which roles.
package schema

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/money"
	"github.com/extrato-dev/extrato/internal/textnorm"
)

// Role is a canonical column meaning.
type Role string

const (
	RoleDate          Role = "date"
	RoleValue         Role = "value"
	RoleBalance       Role = "balance"
	RoleSide          Role = "side"
	RoleSecondaryDate Role = "secondary_date"
)

// Synonyms maps each role to the normalized header substrings that
// identify it. Plain data; institution profiles supply their own lists.
type Synonyms map[Role][]string

// HeaderMap resolves each discovered role to its physical column indexes,
// in column order.
type HeaderMap map[Role][]int

// candidate is one column that matched a role, with match strength.
type candidate struct {
	col   int
	exact bool
}

// Detection is the result of locating the header row.
type Detection struct {
	HeaderRow  int
	candidates map[Role][]candidate
}

// previewRows caps the raw rows attached to a NotFoundError.
const previewRows = 5

// NotFoundError reports that no grid row satisfied every required role.
// Preview carries the leading raw rows so the caller can show them.
type NotFoundError struct {
	Preview model.Grid
}

func (e *NotFoundError) Error() string {
	return "no header row matches the required roles"
}

// Detect scans grid rows top-to-bottom and returns the first row on which
// every required role is matched by at least one cell.
func Detect(grid model.Grid, syn Synonyms, required []Role) (*Detection, error) {
	for idx, row := range grid {
		cands := matchRow(row, syn)
		if hasAll(cands, required) {
			return &Detection{HeaderRow: idx, candidates: cands}, nil
		}
	}

	n := min(len(grid), previewRows)
	return nil, &NotFoundError{Preview: grid[:n]}
}

// Header returns the full role-to-columns mapping for introspection.
func (d *Detection) Header() HeaderMap {
	out := make(HeaderMap, len(d.candidates))
	for role, cands := range d.candidates {
		cols := make([]int, len(cands))
		for i, c := range cands {
			cols[i] = c.col
		}
		out[role] = cols
	}
	return out
}

// Column resolves role to a single column, or -1 when unmatched.
//
// Precedence: exact synonym matches beat substring matches; within the
// surviving pool the first column wins unless preferSecond is set, which
// picks the second occurrence (sources that carry a document-number
// column list it before the real value column).
func (d *Detection) Column(role Role, preferSecond bool) int {
	cands := d.candidates[role]
	if len(cands) == 0 {
		return -1
	}

	pool := cands
	var exact []candidate
	for _, c := range cands {
		if c.exact {
			exact = append(exact, c)
		}
	}
	if len(exact) > 0 {
		pool = exact
	}

	if preferSecond && len(pool) > 1 {
		return pool[1].col
	}
	return pool[0].col
}

func matchRow(row []string, syn Synonyms) map[Role][]candidate {
	out := make(map[Role][]candidate)
	for col, cell := range row {
		normed := textnorm.Normalize(cell)
		if normed == "" {
			continue
		}
		for role, words := range syn {
			// Every synonym gets a chance at an exact match before a
			// substring hit is accepted.
			exact, substr := false, false
			for _, w := range words {
				if normed == w {
					exact = true
					break
				}
				if strings.Contains(normed, w) {
					substr = true
				}
			}
			switch {
			case exact:
				out[role] = append(out[role], candidate{col: col, exact: true})
			case substr:
				out[role] = append(out[role], candidate{col: col})
			}
		}
	}
	return out
}

func hasAll(cands map[Role][]candidate, required []Role) bool {
	for _, role := range required {
		if len(cands[role]) == 0 {
			return false
		}
	}
	return true
}

// openingMarkers identify a statement's opening-balance row, compared
// against whitespace-flattened cell text.
var openingMarkers = []string{"saldoanterior", "saldoinicial"}

// FindOpeningBalance scans the whole grid, independent of where the header
// row sits, for a row carrying an opening-balance marker. It returns the
// first parsable amount on that row and the row's index, or (invalid, -1).
func FindOpeningBalance(grid model.Grid) (decimal.NullDecimal, int) {
	for idx, row := range grid {
		if !hasOpeningMarker(row) {
			continue
		}
		for _, cell := range row {
			if v := money.ParseAmount(cell); v.Valid {
				return v, idx
			}
		}
	}
	return decimal.NullDecimal{}, -1
}

func hasOpeningMarker(row []string) bool {
	for _, cell := range row {
		flat := textnorm.Flatten(cell)
		for _, m := range openingMarkers {
			if strings.Contains(flat, m) {
				return true
			}
		}
	}
	return false
}

// MissingRoles lists the required roles det could not resolve, formatted
// for error reporting.
func MissingRoles(det *Detection, required []Role) string {
	var missing []string
	for _, role := range required {
		if det.Column(role, false) < 0 {
			missing = append(missing, string(role))
		}
	}
	return strings.Join(missing, ", ")
}
