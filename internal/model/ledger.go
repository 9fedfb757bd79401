package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side classifies a transaction as credit or debit.
type Side string

const (
	SideCredit Side = "credit"
	SideDebit  Side = "debit"
)

// LedgerRow is one canonical statement line.
type LedgerRow struct {
	Date    time.Time // zero for the synthetic opening-balance row
	RawDate string    // source cell text, kept for diagnostics
	RawSide string    // source side-column flag ("C", "D", ...), if any

	Value   decimal.NullDecimal // absent when the source cell was unparseable
	Balance decimal.NullDecimal // copied from source or reconstructed

	Side           Side // "" when not derivable
	OpeningBalance bool // true only for the synthetic first row
	Emphasize      bool // last row of its day (or month-end override row)
}

// HasDate reports whether the row carries a parsed calendar date.
func (r LedgerRow) HasDate() bool { return !r.Date.IsZero() }

// Ledger is an ordered sequence of canonical rows. Rows stay in source
// order except that an opening-balance row, if found, sits at index 0.
type Ledger []LedgerRow
