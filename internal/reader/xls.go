package reader

import (
	"fmt"
	"os"

	"github.com/extrame/xls"

	"github.com/extrato-dev/extrato/internal/model"
)

// XLSOpener reads legacy .xls workbooks. Some banks export "xls" files
// that are really HTML tables; those fall back to the HTML path.
type XLSOpener struct{}

// Extensions returns the extensions this opener claims.
func (o *XLSOpener) Extensions() []string { return []string{".xls"} }

// Open enumerates every sheet of the workbook.
func (o *XLSOpener) Open(path string) ([]Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening xls %s: %w", path, err)
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return openHTMLTables(path)
	}

	var sheets []Sheet
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}

		var grid model.Grid
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				grid = append(grid, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			grid = append(grid, cells)
		}
		sheets = append(sheets, Sheet{Name: sheet.Name, Grid: grid})
	}

	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in xls %s", path)
	}
	return sheets, nil
}
