package excel

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/rcgen/internal/config"
	"github.com/example/rcgen/internal/ports/secondary"
)

// Renderer implements secondary.DocumentRenderer. Both documents are built
// fully in memory and written with a single SaveAs, so a construction fault
// leaves no partial file behind. Re-running silently replaces an existing
// file of the same derived name.
type Renderer struct {
	company config.CompanyProfile
	now     func() time.Time
}

// NewRenderer creates a document renderer for the given company profile.
func NewRenderer(company config.CompanyProfile) *Renderer {
	return &Renderer{company: company, now: time.Now}
}

// A4 portrait, fit to a single page wide: a shop-floor printability
// constraint shared by both documents.
func setupPage(f *excelize.File, sheet string) error {
	paperA4 := 9
	orientation := "portrait"
	fitToWidth, fitToHeight := 1, 0
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &paperA4,
		Orientation: &orientation,
		FitToWidth:  &fitToWidth,
		FitToHeight: &fitToHeight,
	}); err != nil {
		return err
	}
	margin := 0.5
	return f.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
		Left:   &margin,
		Right:  &margin,
		Top:    &margin,
		Bottom: &margin,
	})
}

// sheetWriter accumulates the first error of a sequence of cell writes so
// layout code reads as layout, not error plumbing.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil && w.err == nil {
		w.err = err
	}
	return name
}

// set writes one styled cell. Columns and rows are 1-based.
func (w *sheetWriter) set(col, row int, value interface{}, style int) {
	if w.err != nil {
		return
	}
	cell := w.cellName(col, row)
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellStyle(w.sheet, cell, cell, style); err != nil {
		w.err = err
	}
}

// merge merges the region and writes one styled value across it.
func (w *sheetWriter) merge(startCol, startRow, endCol, endRow int, value interface{}, style int) {
	if w.err != nil {
		return
	}
	start := w.cellName(startCol, startRow)
	end := w.cellName(endCol, endRow)
	if err := w.f.MergeCell(w.sheet, start, end); err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellValue(w.sheet, start, value); err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellStyle(w.sheet, start, end, style); err != nil {
		w.err = err
	}
}

func (w *sheetWriter) colWidth(startCol, endCol string, width float64) {
	if w.err != nil {
		return
	}
	if err := w.f.SetColWidth(w.sheet, startCol, endCol, width); err != nil {
		w.err = err
	}
}

func (w *sheetWriter) rowHeight(row int, height float64) {
	if w.err != nil {
		return
	}
	if err := w.f.SetRowHeight(w.sheet, row, height); err != nil {
		w.err = err
	}
}

// newStyle registers a style, folding failures into the writer error.
func (w *sheetWriter) newStyle(style *excelize.Style) int {
	id, err := w.f.NewStyle(style)
	if err != nil && w.err == nil {
		w.err = err
	}
	return id
}

func borders(style int) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: style},
		{Type: "right", Color: "000000", Style: style},
		{Type: "top", Color: "000000", Style: style},
		{Type: "bottom", Color: "000000", Style: style},
	}
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

// displayQuantity renders a quantity cell the way the ledger's consumers
// expect: integral numeric values lose their decimal tail, anything else
// passes through, absent values read "N/A".
func displayQuantity(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return "N/A"
	}
	if v, err := strconv.ParseFloat(q, 64); err == nil && v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return q
}

// orNA substitutes the placeholder for empty order attributes.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "NECUNOSCUT"
	}
	return s
}

var _ secondary.DocumentRenderer = (*Renderer)(nil)
