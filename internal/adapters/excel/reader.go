// Package excel contains the excelize-backed adapters: the reference dataset
// reader and the Route Card / COC document renderers.
package excel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/rcgen/internal/ports/secondary"
)

// Reader implements secondary.DatasetReader over xlsx workbooks. Every call
// opens the dataset fresh; there is no session or cache state, so edits to
// the ledgers are picked up on the next lookup.
type Reader struct{}

// NewReader creates a new dataset reader.
func NewReader() *Reader {
	return &Reader{}
}

// LookupRow returns the first row whose key cell equals keyValue.
func (r *Reader) LookupRow(ctx context.Context, src secondary.DatasetSource, keyValue string) (secondary.Row, error) {
	header, rows, err := r.load(src)
	if err != nil {
		return nil, err
	}

	keyIdx, err := columnIndex(header, src.KeyColumn, src.Path)
	if err != nil {
		return nil, err
	}

	for _, cells := range rows {
		if cellAt(cells, keyIdx) == keyValue {
			return rowFromCells(header, cells), nil
		}
	}
	return nil, fmt.Errorf("%w: key %q not found in column %q of %q",
		secondary.ErrRowNotFound, keyValue, src.KeyColumn, src.Path)
}

// ListKeys returns the distinct non-empty key-column values in file order.
func (r *Reader) ListKeys(ctx context.Context, src secondary.DatasetSource) ([]string, error) {
	header, rows, err := r.load(src)
	if err != nil {
		return nil, err
	}

	keyIdx, err := columnIndex(header, src.KeyColumn, src.Path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var keys []string
	for _, cells := range rows {
		key := cellAt(cells, keyIdx)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys, nil
}

// load opens the workbook and returns the normalized header plus the data
// rows below it.
func (r *Reader) load(src secondary.DatasetSource) ([]string, [][]string, error) {
	if _, err := os.Stat(src.Path); err != nil {
		return nil, nil, fmt.Errorf("%w: %q", secondary.ErrDatasetNotFound, src.Path)
	}

	f, err := excelize.OpenFile(src.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening %q: %v", secondary.ErrParse, src.Path, err)
	}
	defer f.Close()

	sheet := src.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, fmt.Errorf("%w: %q has no sheets", secondary.ErrParse, src.Path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading sheet %q of %q: %v", secondary.ErrParse, sheet, src.Path, err)
	}

	if len(rows) <= src.SkipRows {
		return nil, nil, fmt.Errorf("%w: sheet %q of %q has no header row", secondary.ErrParse, sheet, src.Path)
	}
	rows = rows[src.SkipRows:]

	header := make([]string, len(rows[0]))
	for i, label := range rows[0] {
		header[i] = strings.TrimSpace(label)
	}
	return header, rows[1:], nil
}

func columnIndex(header []string, column, path string) (int, error) {
	for i, label := range header {
		if label == column {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column %q not found in %q", secondary.ErrSchema, column, path)
}

// cellAt reads a cell by index, trimmed; short rows read as empty cells.
func cellAt(cells []string, idx int) string {
	if idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

func rowFromCells(header, cells []string) secondary.Row {
	row := make(secondary.Row, len(header))
	for i, label := range header {
		if label == "" {
			continue
		}
		if i < len(cells) {
			row[label] = cells[i]
		} else {
			row[label] = ""
		}
	}
	return row
}

var _ secondary.DatasetReader = (*Reader)(nil)
