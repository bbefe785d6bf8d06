package excel

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/rcgen/internal/config"
	"github.com/example/rcgen/internal/models"
)

var testCompany = config.CompanyProfile{
	Name:       "S.C. TEST SRL",
	Address:    "Str. Test 1",
	TaxID:      "RO123",
	RegistryNo: "J01/1/2001",
	Signer:     "Adm. Test",
}

func testRenderer() *Renderer {
	r := NewRenderer(testCompany)
	r.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	return r
}

func testOrder() *models.OrderRecord {
	return &models.OrderRecord{
		InternalOrder:    "CMD100",
		Part:             "FLANSA 22/B",
		Quantity:         "25.0",
		Position:         "3",
		ClientOrder:      "PO-77",
		InternalSheetRef: "FI-9",
		Description:      "Flansa intermediara",
	}
}

func testOps(n int) []models.Operation {
	ops := make([]models.Operation, n)
	for i := range ops {
		ops[i] = models.Operation{
			SequenceNumber: (i + 1) * 10,
			Name:           "Operatie",
			Duration:       "15",
			Location:       "CNC-1",
		}
	}
	return ops
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		t.Fatalf("GetCellValue(%s) error: %v", cell, err)
	}
	return v
}

func TestRenderRouteCard(t *testing.T) {
	folder := t.TempDir()
	routing := &models.RoutingRecord{Revision: "B", RawMaterial: "OLC45"}

	msg, err := testRenderer().RenderRouteCard(context.Background(), testOrder(), routing, testOps(3), folder)
	if err != nil {
		t.Fatalf("RenderRouteCard() error: %v", err)
	}

	wantPath := filepath.Join(folder, "Route_Card_CMD100_FLANSA_22-B_P3.xlsx")
	if msg != "route card written to "+wantPath {
		t.Errorf("message = %q", msg)
	}

	f, err := excelize.OpenFile(wantPath)
	if err != nil {
		t.Fatalf("written file does not open: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Route Card" {
		t.Errorf("sheets = %v", got)
	}
	if v := cellValue(t, f, "Route Card", "B4"); v != "CMD100" {
		t.Errorf("order cell = %q", v)
	}
	if v := cellValue(t, f, "Route Card", "D4"); v != "2024-03-15" {
		t.Errorf("generation date = %q", v)
	}
	// Integral quantity loses its decimal tail.
	if v := cellValue(t, f, "Route Card", "F6"); v != "25" {
		t.Errorf("quantity = %q", v)
	}
	if v := cellValue(t, f, "Route Card", "B7"); v != "OLC45" {
		t.Errorf("raw material = %q", v)
	}

	// Three operation rows, then blanks up to the fixed table size.
	if v := cellValue(t, f, "Route Card", "A12"); v != "10" {
		t.Errorf("first op number = %q", v)
	}
	if v := cellValue(t, f, "Route Card", "A14"); v != "30" {
		t.Errorf("third op number = %q", v)
	}
	for row := 15; row < 12+MaxOperationRows; row++ {
		cell, _ := excelize.CoordinatesToCellName(2, row)
		if v := cellValue(t, f, "Route Card", cell); v != "" {
			t.Errorf("row %d not blank: %q", row, v)
		}
	}
}

func TestRenderRouteCardTruncatesOperations(t *testing.T) {
	folder := t.TempDir()
	ops := testOps(MaxOperationRows + 3)
	routing := &models.RoutingRecord{}

	_, err := testRenderer().RenderRouteCard(context.Background(), testOrder(), routing, ops, folder)
	if err != nil {
		t.Fatalf("RenderRouteCard() error: %v", err)
	}

	f, err := excelize.OpenFile(filepath.Join(folder, "Route_Card_CMD100_FLANSA_22-B_P3.xlsx"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	last, _ := excelize.CoordinatesToCellName(1, 11+MaxOperationRows)
	if v := cellValue(t, f, "Route Card", last); v != "120" {
		t.Errorf("last table row = %q, want op 120", v)
	}
	// The row below the table belongs to the blank spacer before section III.
	if v := cellValue(t, f, "Route Card", "A24"); v != "" {
		t.Errorf("operations leaked past the table: %q", v)
	}
}

func TestRenderCOC(t *testing.T) {
	folder := t.TempDir()
	fields := models.COCFields{
		CertificateNo: "DCIR000100",
		LotNo:         "100",
		ClientLotNo:   "LOT-7",
		ClientName:    "Elmet International SRL",
	}

	msg, err := testRenderer().RenderCOC(context.Background(), testOrder(), fields, "B", folder)
	if err != nil {
		t.Fatalf("RenderCOC() error: %v", err)
	}

	wantPath := filepath.Join(folder, "Declaratie_Conformitate_DCIR000100_CMD100_FLANSA_22-B.xlsx")
	if msg != "declaration of conformity written to "+wantPath {
		t.Errorf("message = %q", msg)
	}

	f, err := excelize.OpenFile(wantPath)
	if err != nil {
		t.Fatalf("written file does not open: %v", err)
	}
	defer f.Close()

	if v := cellValue(t, f, "COC", "A1"); v != testCompany.Name {
		t.Errorf("company name = %q", v)
	}
	if v := cellValue(t, f, "COC", "A7"); v != "DCIR000100" {
		t.Errorf("certificate no = %q", v)
	}
	if v := cellValue(t, f, "COC", "E7"); v != "Elmet International SRL" {
		t.Errorf("client = %q", v)
	}
	if v := cellValue(t, f, "COC", "E12"); v != "100" {
		t.Errorf("lot no = %q", v)
	}
	if v := cellValue(t, f, "COC", "H16"); v != "B" {
		t.Errorf("revision = %q", v)
	}
	if v := cellValue(t, f, "COC", "D18"); v != "LOT-7" {
		t.Errorf("client lot = %q", v)
	}
	if v := cellValue(t, f, "COC", "B29"); v != "15.03.2024" {
		t.Errorf("issue date = %q", v)
	}
}

func TestRenderCOCMissingFolder(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	fields := models.COCFields{CertificateNo: "DCIR000001", LotNo: "1"}

	_, err := testRenderer().RenderCOC(context.Background(), testOrder(), fields, "N/A", missing)
	if err == nil {
		t.Fatal("RenderCOC() succeeded writing into a missing folder")
	}
}
