package excel

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/example/rcgen/internal/core/identity"
	"github.com/example/rcgen/internal/models"
	"github.com/example/rcgen/internal/ports/secondary"
)

const cocSheet = "COC"

// conformityStatement is the fixed boilerplate attestation of the
// certificate body.
const conformityStatement = "Prin prezenta, declarăm că piesele aferente certificatului de față sunt în conformitate cu cerințele clientului, transmise prin intermediul comenzii ferme.\n" +
	"Toate prelucrările au fost efectuate conform specificațiilor tehnice primite, respectând standardele de calitate aplicabile și cerințele contractuale."

const counterfeitNote = "Declara că toate materialele folosite nu sunt de origine contrafăcută / Declares that all materials used are not counterfeit origin."

// RenderCOC writes the Declaration of Conformity for an order.
func (r *Renderer) RenderCOC(ctx context.Context, order *models.OrderRecord, fields models.COCFields, revision string, folder string) (msg string, err error) {
	defer func() {
		if p := recover(); p != nil {
			msg, err = "", fmt.Errorf("%w: declaration construction: %v", secondary.ErrRender, p)
		}
	}()

	fileName := fmt.Sprintf("Declaratie_Conformitate_%s_%s_%s.xlsx",
		identity.Sanitize(fields.CertificateNo),
		identity.Sanitize(orUnknown(order.InternalOrder)),
		identity.Sanitize(orUnknown(order.Part)))
	outPath := filepath.Join(folder, fileName)

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(cocSheet); err != nil {
		return "", fmt.Errorf("%w: %v", secondary.ErrRender, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("%w: %v", secondary.ErrRender, err)
	}
	if err := setupPage(f, cocSheet); err != nil {
		return "", fmt.Errorf("%w: %v", secondary.ErrRender, err)
	}

	w := &sheetWriter{f: f, sheet: cocSheet}

	fmtTitle := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 18},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	fmtCompanyInfo := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	})
	fmtBoxLabel := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Fill:      fill("D9D9D9"),
		Border:    borders(1),
	})
	fmtBoxData := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      fill("FFFFE0"),
		Border:    borders(1),
	})
	fmtConformityBanner := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 2},
			{Type: "bottom", Color: "000000", Style: 2},
		},
	})
	fmtTableHeader := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Fill:      fill("E0E0E0"),
		Border:    borders(1),
	})
	fmtTableData := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    borders(1),
	})
	fmtStatementLabel := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	fmtRequirementsBox := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      fill("E0E0E0"),
		Border:    borders(2),
	})
	fmtLongText := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "justify", Vertical: "top", WrapText: true},
	})
	fmtSignatureLabel := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left"},
		Border:    []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})
	fmtItalicNote := w.newStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 9, Italic: true},
		Alignment: &excelize.Alignment{Horizontal: "left"},
		Border:    []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})

	w.colWidth("A", "H", 15)

	// Section I: company header.
	w.merge(1, 1, 8, 1, r.company.Name, fmtTitle)
	w.merge(1, 2, 8, 2, r.company.Address, fmtCompanyInfo)
	w.merge(1, 3, 8, 3, "Cod Unic Inregistrare: "+r.company.TaxID, fmtCompanyInfo)
	w.merge(1, 4, 8, 4, "Nr.de ordine in Registrul Comertului: "+r.company.RegistryNo, fmtCompanyInfo)

	// Section II: certificate and client identification.
	w.rowHeight(6, 40)
	w.merge(1, 6, 4, 6, "Nr. Certificat / Coc No.", fmtBoxLabel)
	w.merge(1, 7, 4, 7, fields.CertificateNo, fmtBoxData)
	w.merge(5, 6, 8, 6, "Client / Customer", fmtBoxLabel)
	w.merge(5, 7, 8, 7, fields.ClientName, fmtBoxData)

	w.merge(1, 9, 8, 9, "DECLARAȚIE CONFORMITATE / Declaration of Conformity", fmtConformityBanner)

	// Section III: order identification table.
	w.merge(1, 11, 2, 11, "Comanda Interna / Internal order", fmtTableHeader)
	w.merge(3, 11, 4, 11, "Nr. Buc. / No. Pcs", fmtTableHeader)
	w.set(5, 11, "Lot Nr. / Batch No.", fmtTableHeader)
	w.set(6, 11, "Comanda client / Client External Order", fmtTableHeader)
	w.merge(7, 11, 8, 11, "Comanda Interna client / Client internal order", fmtTableHeader)

	w.merge(1, 12, 2, 12, orUnknown(order.InternalOrder), fmtTableData)
	w.merge(3, 12, 4, 12, displayQuantity(order.Quantity), fmtTableData)
	w.set(5, 12, fields.LotNo, fmtTableData)
	w.set(6, 12, orNA(order.ClientOrder), fmtTableData)
	w.merge(7, 12, 8, 12, orNA(order.InternalSheetRef), fmtTableData)

	// Section IV: product identification.
	w.merge(1, 15, 3, 15, "Denumire Produs / Part Description", fmtBoxLabel)
	w.merge(4, 15, 8, 15, orNA(order.Description), fmtBoxData)

	w.merge(1, 16, 3, 16, "Cod Reper / Drawing No.", fmtBoxLabel)
	w.merge(4, 16, 6, 16, orNA(order.Part), fmtBoxData)
	w.set(7, 16, "Rev.", fmtBoxLabel)
	w.set(8, 16, revision, fmtBoxData)

	w.merge(1, 18, 3, 18, "Lot Material client / Client Material Batch No.", fmtBoxLabel)
	w.merge(4, 18, 8, 18, fields.ClientLotNo, fmtBoxData)

	// Section V: conformity statement and signatures.
	w.merge(1, 20, 8, 20, "Este conform specificațiilor din: / Conforms With Specifications Of:", fmtStatementLabel)
	w.merge(1, 21, 8, 21, "CERINȚE CLIENT / CUSTOMER REQ", fmtRequirementsBox)

	w.merge(1, 23, 8, 25, conformityStatement, fmtLongText)
	w.rowHeight(23, 40)

	w.set(1, 29, "Data emitere certificat / Issued date:", fmtSignatureLabel)
	w.merge(2, 29, 4, 29, r.now().Format("02.01.2006"), fmtTableData)
	w.merge(5, 29, 8, 29, r.company.Signer, fmtSignatureLabel)

	w.merge(1, 31, 8, 31, counterfeitNote, fmtItalicNote)

	if w.err != nil {
		return "", fmt.Errorf("%w: declaration layout: %v", secondary.ErrRender, w.err)
	}
	if err := f.SaveAs(outPath); err != nil {
		return "", fmt.Errorf("%w: saving %q: %v", secondary.ErrRender, outPath, err)
	}
	return fmt.Sprintf("declaration of conformity written to %s", outPath), nil
}
