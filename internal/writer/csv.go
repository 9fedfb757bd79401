// Package writer renders a canonical ledger to a physical output file,
// applying the presentation metadata the engine attaches to each row.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/extrato-dev/extrato/internal/dates"
	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/money"
)

// Layout names the output columns. An empty BalanceHeader drops the
// balance column entirely.
type Layout struct {
	DateHeader    string
	ValueHeader   string
	BalanceHeader string
}

func (l Layout) header() []string {
	h := []string{l.DateHeader, l.ValueHeader}
	if l.BalanceHeader != "" {
		h = append(h, l.BalanceHeader)
	}
	return h
}

// WriteCSV writes the ledger as CSV, amounts in BRL notation.
func WriteCSV(w io.Writer, ledger model.Ledger, layout Layout) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(layout.header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range ledger {
		rec := []string{dates.Render(row.Date), money.FormatBRL(row.Value)}
		if layout.BalanceHeader != "" {
			rec = append(rec, money.FormatBRL(row.Balance))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteCSVFile writes the ledger to a CSV file at path.
func WriteCSVFile(path string, ledger model.Ledger, layout Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, ledger, layout); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
