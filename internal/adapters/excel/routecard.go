package excel

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/example/rcgen/internal/core/identity"
	"github.com/example/rcgen/internal/models"
	"github.com/example/rcgen/internal/ports/secondary"
)

// MaxOperationRows is the fixed size of the printed operations table.
// Extracted operations beyond this count are silently truncated; the single
// A4 page is a shop-floor constraint, so lifting the limit is a product
// decision, not a rendering fix.
const MaxOperationRows = 12

const routeCardSheet = "Route Card"

// RenderRouteCard writes the shop-floor routing document for an order.
func (r *Renderer) RenderRouteCard(ctx context.Context, order *models.OrderRecord, routing *models.RoutingRecord, ops []models.Operation, folder string) (msg string, err error) {
	defer func() {
		if p := recover(); p != nil {
			msg, err = "", fmt.Errorf("%w: route card construction: %v", secondary.ErrRender, p)
		}
	}()

	fileName := fmt.Sprintf("Route_Card_%s_%s_P%s.xlsx",
		identity.Sanitize(orUnknown(order.InternalOrder)),
		identity.Sanitize(orUnknown(order.Part)),
		identity.Sanitize(orNA(order.Position)))
	outPath := filepath.Join(folder, fileName)

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(routeCardSheet); err != nil {
		return "", fmt.Errorf("%w: %v", secondary.ErrRender, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("%w: %v", secondary.ErrRender, err)
	}
	if err := setupPage(f, routeCardSheet); err != nil {
		return "", fmt.Errorf("%w: %v", secondary.ErrRender, err)
	}
	// Repeat the two-row table header on every printed page.
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: "'" + routeCardSheet + "'!$10:$11",
		Scope:    routeCardSheet,
	}); err != nil {
		return "", fmt.Errorf("%w: %v", secondary.ErrRender, err)
	}

	w := &sheetWriter{f: f, sheet: routeCardSheet}

	fmtHeader := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      fill("E0E0E0"),
		Border:    borders(2),
	})
	fmtSubheader := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      fill("F0F0F0"),
		Border:    borders(1),
	})
	fmtLabel := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    borders(1),
	})
	fmtData := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    borders(1),
	})
	fmtInputHighlight := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      fill("FFFFE0"),
		Border:    borders(2),
	})
	fmtTableHeader := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Fill:      fill("BFBFBF"),
		Border:    borders(1),
	})
	fmtTableSubheader := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 8},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      fill("D9D9D9"),
		Border:    borders(1),
	})
	fmtTableData := w.newStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    borders(1),
	})
	fmtTableDataLeft := w.newStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", WrapText: true},
		Border:    borders(1),
	})

	// Column widths of the operations table, which dominates the page.
	w.colWidth("A", "A", 6)
	w.colWidth("B", "B", 15)
	w.colWidth("C", "C", 15)
	w.colWidth("D", "D", 10)
	w.colWidth("E", "E", 7)
	w.colWidth("F", "F", 7)
	w.colWidth("G", "G", 12)
	w.colWidth("H", "H", 18)

	// Section I: header and order identification.
	w.merge(1, 1, 8, 1, "ROUTE CARD", fmtHeader)
	w.merge(1, 2, 8, 2, r.company.Name, fmtSubheader)

	w.set(1, 4, "COMANDA INTERNĂ:", fmtLabel)
	w.set(2, 4, order.InternalOrder, fmtInputHighlight)
	w.set(3, 4, "Data Generare:", fmtLabel)
	w.set(4, 4, r.now().Format("2006-01-02"), fmtData)
	w.set(5, 4, "Poziție Comandă:", fmtLabel)
	w.merge(6, 4, 8, 4, orNA(order.Position), fmtData)

	w.set(1, 5, "Comandă Client:", fmtLabel)
	w.set(2, 5, orNA(order.ClientOrder), fmtData)
	w.set(3, 5, "Fisa Interna Elmet:", fmtLabel)
	w.set(4, 5, orNA(order.InternalSheetRef), fmtData)
	w.set(5, 5, "Data Comanda:", fmtLabel)
	w.merge(6, 5, 8, 5, orNA(order.OrderDate), fmtData)

	w.set(1, 6, "Cod Piesă (Reper):", fmtLabel)
	w.set(2, 6, orNA(order.Part), fmtData)
	w.set(3, 6, "Denumire Piesă:", fmtLabel)
	w.set(4, 6, orNA(order.Description), fmtData)
	w.set(5, 6, "Cantitate Comandată:", fmtLabel)
	w.merge(6, 6, 8, 6, displayQuantity(order.Quantity), fmtData)

	rawMaterial, revision := "", ""
	if routing != nil {
		rawMaterial, revision = routing.RawMaterial, routing.Revision
	}
	w.set(1, 7, "Material Brut:", fmtLabel)
	w.set(2, 7, rawMaterial, fmtData)
	w.set(3, 7, "Revizie Desen:", fmtLabel)
	w.set(4, 7, revision, fmtData)
	w.set(5, 7, "Status Material:", fmtLabel)
	w.merge(6, 7, 8, 7, orNA(order.MaterialStatus), fmtData)

	// Section II: operations table.
	w.merge(1, 9, 8, 9, "II. FLUXUL OPERAȚIILOR ȘI ÎNREGISTRĂRI", fmtSubheader)

	w.merge(1, 10, 1, 11, "Nr. Op.", fmtTableHeader)
	w.merge(2, 10, 2, 11, "Operație", fmtTableHeader)
	w.merge(3, 10, 3, 11, "Utilaj / Locație", fmtTableHeader)
	w.merge(4, 10, 4, 11, "Timp Standard (min)", fmtTableHeader)
	w.merge(5, 10, 6, 10, "Cantitate REALIZATĂ", fmtTableHeader)
	w.set(5, 11, "OK", fmtTableSubheader)
	w.set(6, 11, "REJ", fmtTableSubheader)
	w.merge(7, 10, 7, 11, "Data / Ora", fmtTableHeader)
	w.merge(8, 10, 8, 11, "Operator / Semnătură", fmtTableHeader)

	const firstDataRow = 12
	for i := 0; i < MaxOperationRows; i++ {
		row := firstDataRow + i
		w.rowHeight(row, 20)
		if i < len(ops) {
			op := ops[i]
			w.set(1, row, strconv.Itoa(op.SequenceNumber), fmtTableData)
			w.set(2, row, op.Name, fmtTableDataLeft)
			w.set(3, row, op.Location, fmtTableDataLeft)
			w.set(4, row, op.Duration, fmtTableData)
		} else {
			w.set(1, row, "", fmtTableData)
			w.set(2, row, "", fmtTableDataLeft)
			w.set(3, row, "", fmtTableDataLeft)
			w.set(4, row, "", fmtTableData)
		}
		// Recording columns are filled in by hand on the floor.
		w.set(5, row, "", fmtTableData)
		w.set(6, row, "", fmtTableData)
		w.set(7, row, "", fmtTableData)
		w.set(8, row, "", fmtTableData)
	}

	// Section III: final inspection sign-off.
	finalRow := firstDataRow + MaxOperationRows + 1
	w.merge(1, finalRow, 8, finalRow, "III. CONTROL FINAL ȘI ÎNCHEIERE", fmtSubheader)

	w.set(1, finalRow+2, "Total Cantitate OK Finală:", fmtLabel)
	w.merge(2, finalRow+2, 4, finalRow+2, "", fmtData)
	w.set(5, finalRow+2, "Data Control Final:", fmtLabel)
	w.merge(6, finalRow+2, 8, finalRow+2, "", fmtData)

	w.set(1, finalRow+3, "Inspector QC Final:", fmtLabel)
	w.merge(2, finalRow+3, 4, finalRow+3, "", fmtData)
	w.set(5, finalRow+3, "Semnătură QC:", fmtLabel)
	w.merge(6, finalRow+3, 8, finalRow+3, "", fmtData)

	w.set(1, finalRow+5, "Manager Producție:", fmtLabel)
	w.merge(2, finalRow+5, 8, finalRow+5, "", fmtData)

	if w.err != nil {
		return "", fmt.Errorf("%w: route card layout: %v", secondary.ErrRender, w.err)
	}
	if err := f.SaveAs(outPath); err != nil {
		return "", fmt.Errorf("%w: saving %q: %v", secondary.ErrRender, outPath, err)
	}
	return fmt.Sprintf("route card written to %s", outPath), nil
}
