package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/extrato-dev/extrato/internal/dates"
	"github.com/extrato-dev/extrato/internal/model"
)

const sheetTitle = "Dados Extraídos"

// brlNumFmt matches the locale formatting of the source statements.
const brlNumFmt = "#.##0,00_-"

// WriteXLSX writes the ledger to an xlsx file at path.
//
// Amount cells get the BRL number format; emphasized rows get a bold
// value cell; debit rows get a light red fill on the value cell.
func WriteXLSX(path string, ledger model.Ledger, layout Layout) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetTitle); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	numFmt := brlNumFmt
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}
	boldAmountStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return fmt.Errorf("creating bold amount style: %w", err)
	}
	debitStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating debit style: %w", err)
	}

	for col, title := range layout.header() {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetTitle, cell, title); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		if err := f.SetCellStyle(sheetTitle, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling header: %w", err)
		}
	}

	for i, row := range ledger {
		excelRow := i + 2

		dateCell, _ := excelize.CoordinatesToCellName(1, excelRow)
		if err := f.SetCellValue(sheetTitle, dateCell, dates.Render(row.Date)); err != nil {
			return fmt.Errorf("writing row %d: %w", excelRow, err)
		}

		valueCell, _ := excelize.CoordinatesToCellName(2, excelRow)
		if row.Value.Valid {
			if err := f.SetCellValue(sheetTitle, valueCell, row.Value.Decimal.InexactFloat64()); err != nil {
				return fmt.Errorf("writing row %d: %w", excelRow, err)
			}
		}
		style := amountStyle
		switch {
		case row.Emphasize:
			style = boldAmountStyle
		case row.Side == model.SideDebit:
			style = debitStyle
		}
		if err := f.SetCellStyle(sheetTitle, valueCell, valueCell, style); err != nil {
			return fmt.Errorf("styling row %d: %w", excelRow, err)
		}

		if layout.BalanceHeader == "" {
			continue
		}
		balanceCell, _ := excelize.CoordinatesToCellName(3, excelRow)
		if row.Balance.Valid {
			if err := f.SetCellValue(sheetTitle, balanceCell, row.Balance.Decimal.InexactFloat64()); err != nil {
				return fmt.Errorf("writing row %d: %w", excelRow, err)
			}
		}
		if err := f.SetCellStyle(sheetTitle, balanceCell, balanceCell, amountStyle); err != nil {
			return fmt.Errorf("styling row %d: %w", excelRow, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
