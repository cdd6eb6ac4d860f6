package extract

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractProvider runs a local Tesseract pass when no cloud service is
// available. Tesseract has no table model, so the grid is approximated:
// each text line is a row, runs of two or more spaces (or tabs) split
// columns, and the first column is the name. Degraded but offline.
type TesseractProvider struct {
	path string
}

// NewTesseract extracts from a local image file.
func NewTesseract(path string) *TesseractProvider {
	return &TesseractProvider{path: path}
}

// ExtractCells preprocesses the image and OCRs it line by line.
func (p *TesseractProvider) ExtractCells(_ context.Context) ([]Cell, error) {
	tmp, err := preprocessForOCR(p.path)
	if err != nil {
		return nil, fmt.Errorf("preprocess %s: %w", p.path, err)
	}
	if tmp != p.path {
		defer os.Remove(tmp)
	}

	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	_ = client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK)
	client.SetImage(tmp)
	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w", err)
	}

	cells := cellsFromText(text)
	if len(cells) == 0 {
		return nil, ErrNoTable
	}
	return cells, nil
}

var columnSplitRE = regexp.MustCompile(`\t+|\s{2,}`)

// cellsFromText converts raw line-oriented OCR text into table cells.
func cellsFromText(text string) []Cell {
	var cells []Cell
	row := 0
	for _, line := range strings.Split(text, "\n") {
		fields := splitLineCells(line)
		if len(fields) == 0 {
			continue
		}
		row++
		for col, f := range fields {
			cells = append(cells, Cell{Row: row, Col: col + 1, Text: f})
		}
	}
	return cells
}

// splitLineCells splits an OCR line into column cells. Wide gaps mark
// column boundaries; a line with no wide gaps falls back to single-space
// fields so a cramped scan still yields a name plus time fragments.
func splitLineCells(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	parts := columnSplitRE.Split(line, -1)
	if len(parts) == 1 {
		parts = strings.Fields(line)
	}
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
