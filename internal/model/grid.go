package model

import "strings"

// Grid is the raw cell content of one sheet or file section, row-major.
// Rows may be ragged. The engine never mutates a grid it was given.
type Grid [][]string

// Cell returns the cell at (row, col), or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// RowIsBlank reports whether every cell of row is empty after trimming.
func (g Grid) RowIsBlank(row int) bool {
	if row < 0 || row >= len(g) {
		return true
	}
	for _, c := range g[row] {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
