// Package ledger turns a detected grid into canonical rows and derives
// the running balance and presentation metadata downstream writers need.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/dates"
	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/money"
	"github.com/extrato-dev/extrato/internal/profile"
	"github.com/extrato-dev/extrato/internal/schema"
)

// Build projects the columns resolved by det into typed rows.
//
// Blank rows and the opening-balance marker row (openingRow, -1 when
// absent) are dropped. Unparseable date/value cells become absent fields,
// never zeros. When opening is valid a synthetic opening-balance row is
// inserted at index 0. Trailing footer rows are trimmed per the profile.
func Build(grid model.Grid, det *schema.Detection, p profile.Profile, opening decimal.NullDecimal, openingRow int) (model.Ledger, error) {
	dateCol := det.Column(schema.RoleDate, false)
	valueCol := det.Column(schema.RoleValue, p.ValuePrefersSecond)
	balanceCol := det.Column(schema.RoleBalance, false)
	sideCol := det.Column(schema.RoleSide, false)

	if dateCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("missing expected columns: %s", schema.MissingRoles(det, p.RequiredRoles))
	}

	var rows model.Ledger
	for i := det.HeaderRow + 1; i < len(grid); i++ {
		if i == openingRow || grid.RowIsBlank(i) {
			continue
		}

		raw := grid.Cell(i, dateCol)
		row := model.LedgerRow{
			RawDate: raw,
			Value:   money.ParseAmount(grid.Cell(i, valueCol)),
		}
		if t, ok := dates.Parse(raw); ok {
			row.Date = t
		}
		if balanceCol >= 0 {
			row.Balance = money.ParseAmount(grid.Cell(i, balanceCol))
		}
		if sideCol >= 0 {
			row.RawSide = grid.Cell(i, sideCol)
		}
		rows = append(rows, row)
	}

	if p.TrimTrailingRows > 0 && len(rows) > p.TrimTrailingRows {
		rows = rows[:len(rows)-p.TrimTrailingRows]
	}

	if opening.Valid {
		rows = append(model.Ledger{{
			Value:          opening,
			Balance:        opening,
			OpeningBalance: true,
		}}, rows...)
	}
	return rows, nil
}
