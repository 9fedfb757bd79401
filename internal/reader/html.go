package reader

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/extrato-dev/extrato/internal/model"
)

// openHTMLTables parses an HTML document and returns each top-level
// <table> as a sheet.
func openHTMLTables(path string) ([]Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s as HTML: %w", path, err)
	}

	var grids []model.Grid
	collectTables(doc, &grids)
	if len(grids) == 0 {
		return nil, fmt.Errorf("no tables found in %s", path)
	}

	sheets := make([]Sheet, len(grids))
	for i, g := range grids {
		sheets[i] = Sheet{Name: fmt.Sprintf("Tabela_%d", i+1), Grid: g}
	}
	return sheets, nil
}

func collectTables(n *html.Node, grids *[]model.Grid) {
	if n.Type == html.ElementNode && n.Data == "table" {
		*grids = append(*grids, tableGrid(n))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTables(c, grids)
	}
}

func tableGrid(table *html.Node) model.Grid {
	var grid model.Grid
	var walkRows func(*html.Node)
	walkRows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			grid = append(grid, rowCells(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkRows(c)
		}
	}
	walkRows(table)
	return grid
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, nodeText(c))
		}
	}
	return cells
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
