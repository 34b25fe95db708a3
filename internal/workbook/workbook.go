// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workbook is the spreadsheet boundary: it opens the Kelly-list
// workbook through excelize and maps named columns onto SourceRow values.
// Column-name drift in the source file is isolated here.
package workbook

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vpontis/mochify/pkg/types"
)

// Column headers of the Kelly CEFR sheet. The grammar header wraps across
// two lines in the source file; normalizeHeader folds the line break away.
const (
	colWord     = "Swedish items for translation"
	colClass    = "Word classes"
	colGrammar  = "Gram-mar"
	colCEFR     = "CEFR levels"
	colExamples = "Examples"
)

// RowError reports a row missing a required field. The run aborts on the
// first one; downstream consumers assume every record is complete.
type RowError struct {
	Sheet  string
	Row    int // 1-based spreadsheet row number
	Column string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sheet %q row %d: missing %q", e.Sheet, e.Row, e.Column)
}

// Workbook wraps an open spreadsheet file.
type Workbook struct {
	f   *excelize.File
	cfg types.WorkbookConfig
}

// Open opens the workbook named by cfg. A missing or unreadable file is
// fatal to the run. An empty Sheet falls back to the Kelly CEFR sheet.
func Open(cfg types.WorkbookConfig) (*Workbook, error) {
	if cfg.Sheet == "" {
		cfg.Sheet = types.DefaultSheet
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, fmt.Errorf("workbook not found: %s", cfg.Path)
	}
	f, err := excelize.OpenFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", cfg.Path, err)
	}
	return &Workbook{f: f, cfg: cfg}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// schema holds the column index of each mapped field, -1 when the column
// is absent. Grammar and Examples are optional; the rest are required.
type schema struct {
	word     int
	class    int
	grammar  int
	cefr     int
	examples int
}

// normalizeHeader trims surrounding whitespace and folds wrapped header
// lines ("Gram-\nmar" reads back as "Gram-mar").
func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\n", "")
	h = strings.ReplaceAll(h, "\r", "")
	return strings.TrimSpace(h)
}

// mapSchema locates the mapped columns in the header row.
func mapSchema(sheet string, header []string) (schema, error) {
	s := schema{word: -1, class: -1, grammar: -1, cefr: -1, examples: -1}
	for i, h := range header {
		switch normalizeHeader(h) {
		case colWord:
			s.word = i
		case colClass:
			s.class = i
		case colGrammar:
			s.grammar = i
		case colCEFR:
			s.cefr = i
		case colExamples:
			s.examples = i
		}
	}
	for _, req := range []struct {
		name string
		idx  int
	}{
		{colWord, s.word},
		{colClass, s.class},
		{colCEFR, s.cefr},
	} {
		if req.idx < 0 {
			return s, fmt.Errorf("sheet %q: required column %q not found", sheet, req.name)
		}
	}
	return s, nil
}

// cell returns the trimmed value at idx, or "" when the row is short or
// the column is unmapped.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// empty reports whether the row has no content in any cell.
func empty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Rows reads the configured sheet and maps every data row to a SourceRow.
// The whole sheet is read before any filtering begins; row order is
// preserved. A non-empty row missing a required field aborts the read.
func (w *Workbook) Rows() ([]types.SourceRow, error) {
	sheet := w.cfg.Sheet
	raw, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	s, err := mapSchema(sheet, raw[0])
	if err != nil {
		return nil, err
	}

	rows := make([]types.SourceRow, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		if empty(raw[i]) {
			continue
		}
		sr := types.SourceRow{
			Word:     cell(raw[i], s.word),
			Class:    types.WordClass(cell(raw[i], s.class)),
			Grammar:  cell(raw[i], s.grammar),
			CEFR:     cell(raw[i], s.cefr),
			Examples: cell(raw[i], s.examples),
		}
		switch {
		case sr.Word == "":
			return nil, &RowError{Sheet: sheet, Row: i + 1, Column: colWord}
		case sr.Class == "":
			return nil, &RowError{Sheet: sheet, Row: i + 1, Column: colClass}
		case sr.CEFR == "":
			return nil, &RowError{Sheet: sheet, Row: i + 1, Column: colCEFR}
		}
		rows = append(rows, sr)
	}
	return rows, nil
}
