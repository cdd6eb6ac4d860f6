// Package extract turns a scanned timesheet image into table cells via an
// OCR provider: AWS Textract for the cloud path, Tesseract for local use.
package extract

import (
	"errors"
	"sort"
)

// ErrNoTable is returned when the OCR response contains no table structure.
var ErrNoTable = errors.New("no table detected")

// Cell is one recognized table cell. Row and Col are 1-based, matching
// Textract's indices; Col 1 is the identity column.
type Cell struct {
	Row  int
	Col  int
	Text string
}

// Row groups one table row's cells by column index.
type Row struct {
	Index int
	Cells map[int]string
}

// Cell returns the text at a column, or "" when the column is absent.
func (r Row) Cell(col int) string {
	return r.Cells[col]
}

// OrderedCols returns the row's column indices in ascending order.
func (r Row) OrderedCols() []int {
	cols := make([]int, 0, len(r.Cells))
	for c := range r.Cells {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}

// GroupRows organizes cells into rows sorted by row index.
func GroupRows(cells []Cell) []Row {
	byRow := make(map[int]map[int]string)
	for _, c := range cells {
		if byRow[c.Row] == nil {
			byRow[c.Row] = make(map[int]string)
		}
		byRow[c.Row][c.Col] = c.Text
	}
	idx := make([]int, 0, len(byRow))
	for r := range byRow {
		idx = append(idx, r)
	}
	sort.Ints(idx)
	rows := make([]Row, 0, len(idx))
	for _, r := range idx {
		rows = append(rows, Row{Index: r, Cells: byRow[r]})
	}
	return rows
}
