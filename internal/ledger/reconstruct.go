package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
)

// Reconstruct returns a copy of l with Balance and Emphasize populated.
//
// Non-opening rows are grouped by date and their values summed (absent
// values contribute zero). The running total starts at the opening
// balance, or zero without one, and every row of a date gets that date's
// post-sum total as its balance. Two named passes follow: the last row of
// each day is emphasized, and the last row of each month has its balance
// overridden with the statement's own terminal-balance figure, which is
// authoritative over the reconstructed total.
func Reconstruct(l model.Ledger) model.Ledger {
	out := append(model.Ledger(nil), l...)

	// Source balance cells, before reconstruction overwrites them.
	source := make([]decimal.NullDecimal, len(l))
	for i, r := range l {
		source[i] = r.Balance
	}

	opening := decimal.Zero
	for i := range out {
		if !out[i].OpeningBalance {
			continue
		}
		if out[i].Value.Valid {
			opening = out[i].Value.Decimal
		}
		out[i].Balance = decimal.NullDecimal{Decimal: opening, Valid: true}
	}

	sums := make(map[time.Time]decimal.Decimal)
	var days []time.Time
	for _, r := range out {
		if r.OpeningBalance || !r.HasDate() {
			continue
		}
		if _, seen := sums[r.Date]; !seen {
			days = append(days, r.Date)
		}
		contribution := decimal.Zero
		if r.Value.Valid {
			contribution = r.Value.Decimal
		}
		sums[r.Date] = sums[r.Date].Add(contribution)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	running := opening
	balances := make(map[time.Time]decimal.Decimal, len(days))
	for _, day := range days {
		running = running.Add(sums[day])
		balances[day] = running
	}

	for i := range out {
		if out[i].OpeningBalance || !out[i].HasDate() {
			continue
		}
		out[i].Balance = decimal.NullDecimal{Decimal: balances[out[i].Date], Valid: true}
	}

	markDayEnds(out)
	overrideMonthEnds(out, source)
	return out
}

// markDayEnds emphasizes the chronologically last row of every date,
// single-row dates included.
func markDayEnds(l model.Ledger) {
	last := make(map[time.Time]int)
	for i, r := range l {
		if r.OpeningBalance || !r.HasDate() {
			continue
		}
		last[r.Date] = i
	}
	for _, i := range last {
		l[i].Emphasize = true
	}
}

// overrideMonthEnds replaces the computed balance of each month's last
// row with the balance figure the statement itself carried on that row,
// guarding against drift over long statements. Rows without a parsable
// source balance keep the computed total.
func overrideMonthEnds(l model.Ledger, source []decimal.NullDecimal) {
	type month struct {
		year int
		mon  time.Month
	}
	last := make(map[month]int)
	maxDate := make(map[month]time.Time)
	for i, r := range l {
		if r.OpeningBalance || !r.HasDate() {
			continue
		}
		key := month{r.Date.Year(), r.Date.Month()}
		if r.Date.Before(maxDate[key]) {
			continue
		}
		maxDate[key] = r.Date
		last[key] = i
	}
	for _, i := range last {
		if source[i].Valid {
			l[i].Balance = source[i]
		}
	}
}
