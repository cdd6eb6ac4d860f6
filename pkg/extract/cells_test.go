package extract

import (
	"reflect"
	"testing"
)

func TestGroupRowsSortsAndGroups(t *testing.T) {
	cells := []Cell{
		{Row: 2, Col: 2, Text: "9:00"},
		{Row: 1, Col: 1, Text: "name"},
		{Row: 2, Col: 1, Text: "katie"},
		{Row: 1, Col: 2, Text: "monday"},
	}
	rows := GroupRows(cells)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows got %d", len(rows))
	}
	if rows[0].Index != 1 || rows[1].Index != 2 {
		t.Fatalf("rows out of order: %v %v", rows[0].Index, rows[1].Index)
	}
	if rows[1].Cell(1) != "katie" || rows[1].Cell(2) != "9:00" {
		t.Fatalf("unexpected row 2 cells: %v", rows[1].Cells)
	}
	if got := rows[1].OrderedCols(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("ordered cols: %v", got)
	}
}

func TestRowCellMissingColumn(t *testing.T) {
	r := Row{Index: 1, Cells: map[int]string{1: "katie"}}
	if r.Cell(3) != "" {
		t.Fatalf("expected empty for missing column")
	}
}

func TestSplitLineCellsWideGaps(t *testing.T) {
	got := splitLineCells("katie   IN 9:00   OUT 5:00")
	want := []string{"katie", "IN 9:00", "OUT 5:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestSplitLineCellsFallsBackToFields(t *testing.T) {
	got := splitLineCells("katie 9:00 5:00")
	want := []string{"katie", "9:00", "5:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestSplitLineCellsBlank(t *testing.T) {
	if got := splitLineCells("   "); got != nil {
		t.Fatalf("expected nil got %v", got)
	}
}

func TestCellsFromText(t *testing.T) {
	text := "katie   9:00   5:00\n\nsam\t10:00\t2:30\n"
	cells := cellsFromText(text)
	if len(cells) != 6 {
		t.Fatalf("expected 6 cells got %d: %v", len(cells), cells)
	}
	if cells[0] != (Cell{Row: 1, Col: 1, Text: "katie"}) {
		t.Fatalf("unexpected first cell %+v", cells[0])
	}
	if cells[3] != (Cell{Row: 2, Col: 1, Text: "sam"}) {
		t.Fatalf("blank lines should not advance rows: %+v", cells[3])
	}
}
