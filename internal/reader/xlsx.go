package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXOpener reads .xlsx workbooks, one sheet per grid.
type XLSXOpener struct{}

// Extensions returns the extensions this opener claims.
func (o *XLSXOpener) Extensions() []string { return []string{".xlsx"} }

// Open enumerates every sheet of the workbook.
func (o *XLSXOpener) Open(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening xlsx %s: %w", path, err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Grid: rows})
	}
	return sheets, nil
}
