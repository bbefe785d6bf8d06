package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/example/rcgen/internal/models"
	"github.com/example/rcgen/internal/ports/primary"
	"github.com/example/rcgen/internal/ports/secondary"
)

// fakeReader serves canned rows per (path, key). Missing entries report
// ErrRowNotFound like the real adapter.
type fakeReader struct {
	rows map[string]secondary.Row // "<path>|<key>" -> row
	keys map[string][]string      // path -> key list
}

func (f *fakeReader) LookupRow(ctx context.Context, src secondary.DatasetSource, key string) (secondary.Row, error) {
	row, ok := f.rows[src.Path+"|"+key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, secondary.ErrRowNotFound)
	}
	return row, nil
}

func (f *fakeReader) ListKeys(ctx context.Context, src secondary.DatasetSource) ([]string, error) {
	return f.keys[src.Path], nil
}

type fakeFolders struct {
	failFor string
}

func (f *fakeFolders) Resolve(ctx context.Context, name string) (string, error) {
	if f.failFor != "" && strings.Contains(name, f.failFor) {
		return "", fmt.Errorf("mkdir %s: %w", name, secondary.ErrFolderCreation)
	}
	return "/out/" + name, nil
}

type renderedDoc struct {
	order    *models.OrderRecord
	ops      []models.Operation
	fields   models.COCFields
	revision string
	folder   string
}

type fakeRenderer struct {
	routeCards []renderedDoc
	cocs       []renderedDoc
	fail       bool
}

func (f *fakeRenderer) RenderRouteCard(ctx context.Context, order *models.OrderRecord, routing *models.RoutingRecord, ops []models.Operation, folder string) (string, error) {
	if f.fail {
		return "", fmt.Errorf("save: %w", secondary.ErrRender)
	}
	f.routeCards = append(f.routeCards, renderedDoc{order: order, ops: ops, folder: folder})
	return "route card written to " + folder, nil
}

func (f *fakeRenderer) RenderCOC(ctx context.Context, order *models.OrderRecord, fields models.COCFields, revision string, folder string) (string, error) {
	if f.fail {
		return "", fmt.Errorf("save: %w", secondary.ErrRender)
	}
	f.cocs = append(f.cocs, renderedDoc{order: order, fields: fields, revision: revision, folder: folder})
	return "certificate written to " + folder, nil
}

type fakeRunLog struct {
	records []*secondary.RunRecord
}

func (f *fakeRunLog) Append(ctx context.Context, r *secondary.RunRecord) error {
	f.records = append(f.records, r)
	return nil
}

func (f *fakeRunLog) Tail(ctx context.Context, n int) ([]*secondary.RunRecord, error) {
	out := make([]*secondary.RunRecord, 0, n)
	for i := len(f.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}

var (
	ordersSrc  = secondary.DatasetSource{Path: "orders.xlsx", Sheet: "Comenzi", SkipRows: 1, KeyColumn: models.ColInternalOrder}
	routingSrc = secondary.DatasetSource{Path: "routing.xlsx", KeyColumn: models.ColRoutingPart}
)

func orderRow(id, part string) secondary.Row {
	return secondary.Row{
		models.ColInternalOrder:    id,
		models.ColPart:             part,
		models.ColQuantity:         "25",
		models.ColClientOrder:      "PO-77",
		models.ColInternalSheetRef: "FI-9",
	}
}

func routingRow(part string, ops int) secondary.Row {
	row := secondary.Row{
		models.ColRoutingPart:     part,
		models.ColRoutingRevision: "B",
		models.ColRawMaterial:     "OLC45",
	}
	names := []string{"OP10", "OP20", "OP30"}
	for i := 0; i < ops && i < len(names); i++ {
		row[names[i]] = fmt.Sprintf("Operation %d", i+1)
	}
	return row
}

func newTestService(reader *fakeReader, renderer *fakeRenderer, runlog *fakeRunLog) *PipelineServiceImpl {
	return NewPipelineService(ordersSrc, routingSrc, reader, &fakeFolders{}, renderer, runlog, "Elmet International SRL", zap.NewNop())
}

func TestProcessOneRouteCard(t *testing.T) {
	reader := &fakeReader{rows: map[string]secondary.Row{
		"orders.xlsx|CMD100":     orderRow("CMD100", "FLANSA 22"),
		"routing.xlsx|FLANSA 22": routingRow("FLANSA 22", 3),
	}}
	renderer := &fakeRenderer{}
	runlog := &fakeRunLog{}
	svc := newTestService(reader, renderer, runlog)

	result := svc.ProcessOne(context.Background(), "  cmd100 ", primary.DocumentRouteCard, primary.GenerateOptions{})

	if !result.OK() {
		t.Fatalf("ProcessOne() failed: %s", result.Message)
	}
	if result.Order != "CMD100" {
		t.Errorf("order id not normalized: %q", result.Order)
	}
	if len(renderer.routeCards) != 1 {
		t.Fatalf("rendered %d route cards, want 1", len(renderer.routeCards))
	}
	rc := renderer.routeCards[0]
	if len(rc.ops) != 3 {
		t.Errorf("extracted %d operations, want 3", len(rc.ops))
	}
	if rc.folder != "/out/FLANSA_22_CMD100_FI-9" {
		t.Errorf("folder = %q", rc.folder)
	}
	if len(runlog.records) != 1 || runlog.records[0].Status != secondary.RunStatusOK {
		t.Errorf("run log not written: %+v", runlog.records)
	}
	if runlog.records[0].StartedAt == "" || runlog.records[0].FinishedAt == "" {
		t.Error("run log timestamps missing")
	}
}

func TestProcessOneUnknownOrder(t *testing.T) {
	reader := &fakeReader{rows: map[string]secondary.Row{}}
	runlog := &fakeRunLog{}
	svc := newTestService(reader, &fakeRenderer{}, runlog)

	result := svc.ProcessOne(context.Background(), "CMD999", primary.DocumentRouteCard, primary.GenerateOptions{})

	if result.OK() {
		t.Fatal("ProcessOne() succeeded for unknown order")
	}
	if !strings.Contains(result.Message, "CMD999") {
		t.Errorf("message does not name the order: %q", result.Message)
	}
	if len(runlog.records) != 1 || runlog.records[0].Status != secondary.RunStatusError {
		t.Errorf("error not recorded in run log: %+v", runlog.records)
	}
}

func TestProcessOneRouteCardNoOperations(t *testing.T) {
	reader := &fakeReader{rows: map[string]secondary.Row{
		"orders.xlsx|CMD100":     orderRow("CMD100", "FLANSA 22"),
		"routing.xlsx|FLANSA 22": routingRow("FLANSA 22", 0),
	}}
	svc := newTestService(reader, &fakeRenderer{}, &fakeRunLog{})

	result := svc.ProcessOne(context.Background(), "CMD100", primary.DocumentRouteCard, primary.GenerateOptions{})

	if result.OK() {
		t.Fatal("ProcessOne() succeeded with empty operation sequence")
	}
	if !strings.Contains(result.Message, "no operations") {
		t.Errorf("message = %q", result.Message)
	}
}

func TestProcessOneCOCRevisionFallback(t *testing.T) {
	reader := &fakeReader{rows: map[string]secondary.Row{
		"orders.xlsx|CMD100": orderRow("CMD100", "FLANSA 22"),
	}}
	renderer := &fakeRenderer{}
	svc := newTestService(reader, renderer, &fakeRunLog{})

	result := svc.ProcessOne(context.Background(), "CMD100", primary.DocumentCOC, primary.GenerateOptions{})

	if !result.OK() {
		t.Fatalf("ProcessOne() failed: %s", result.Message)
	}
	if len(renderer.cocs) != 1 {
		t.Fatalf("rendered %d certificates, want 1", len(renderer.cocs))
	}
	coc := renderer.cocs[0]
	if coc.revision != "N/A" {
		t.Errorf("revision = %q, want N/A when part has no routing row", coc.revision)
	}
	if coc.fields.CertificateNo != "DCIR000100" {
		t.Errorf("certificate no = %q", coc.fields.CertificateNo)
	}
	if coc.fields.LotNo != "100" {
		t.Errorf("lot no = %q", coc.fields.LotNo)
	}
}

func TestProcessOneCOCOrderRevisionWithoutRouting(t *testing.T) {
	row := orderRow("CMD100", "FLANSA 22")
	row[models.ColRevision] = "C"
	reader := &fakeReader{rows: map[string]secondary.Row{
		"orders.xlsx|CMD100": row,
	}}
	renderer := &fakeRenderer{}
	svc := newTestService(reader, renderer, &fakeRunLog{})

	result := svc.ProcessOne(context.Background(), "CMD100", primary.DocumentCOC, primary.GenerateOptions{})

	if !result.OK() {
		t.Fatalf("ProcessOne() failed: %s", result.Message)
	}
	if got := renderer.cocs[0].revision; got != "C" {
		t.Errorf("revision = %q, want order revision when routing is absent", got)
	}
}

func TestProcessOneCOCWithRoutingAndOverrides(t *testing.T) {
	reader := &fakeReader{rows: map[string]secondary.Row{
		"orders.xlsx|CMD100":     orderRow("CMD100", "FLANSA 22"),
		"routing.xlsx|FLANSA 22": routingRow("FLANSA 22", 2),
	}}
	renderer := &fakeRenderer{}
	svc := newTestService(reader, renderer, &fakeRunLog{})

	clientLot := "LOT-CLIENT-7"
	result := svc.ProcessOne(context.Background(), "CMD100", primary.DocumentCOC, primary.GenerateOptions{
		Overrides: primary.COCOverrides{ClientLotNo: &clientLot},
	})

	if !result.OK() {
		t.Fatalf("ProcessOne() failed: %s", result.Message)
	}
	coc := renderer.cocs[0]
	if coc.revision != "B" {
		t.Errorf("revision = %q, want B from routing ledger", coc.revision)
	}
	if coc.fields.ClientLotNo != clientLot {
		t.Errorf("client lot = %q, want override applied", coc.fields.ClientLotNo)
	}
	if coc.fields.ClientName != "Elmet International SRL" {
		t.Errorf("client name = %q", coc.fields.ClientName)
	}
}

func TestProcessBatchContinuesPastFailures(t *testing.T) {
	reader := &fakeReader{rows: map[string]secondary.Row{
		"orders.xlsx|A":   orderRow("A", "P1"),
		"routing.xlsx|P1": routingRow("P1", 1),
		"orders.xlsx|C":   orderRow("C", "P1"),
	}}
	runlog := &fakeRunLog{}
	svc := newTestService(reader, &fakeRenderer{}, runlog)

	results := svc.ProcessBatch(context.Background(), []string{"A", "B", "C"}, primary.DocumentRouteCard, primary.GenerateOptions{})

	if len(results) != 3 {
		t.Fatalf("ProcessBatch() returned %d results, want 3", len(results))
	}
	wantStatus := []string{secondary.RunStatusOK, secondary.RunStatusError, secondary.RunStatusOK}
	for i, want := range wantStatus {
		if results[i].Status != want {
			t.Errorf("results[%d].Status = %s, want %s (%s)", i, results[i].Status, want, results[i].Message)
		}
	}
	if len(runlog.records) != 3 {
		t.Errorf("run log has %d entries, want 3", len(runlog.records))
	}
}

func TestProcessOneRenderFailure(t *testing.T) {
	reader := &fakeReader{rows: map[string]secondary.Row{
		"orders.xlsx|CMD100":     orderRow("CMD100", "FLANSA 22"),
		"routing.xlsx|FLANSA 22": routingRow("FLANSA 22", 1),
	}}
	runlog := &fakeRunLog{}
	svc := newTestService(reader, &fakeRenderer{fail: true}, runlog)

	result := svc.ProcessOne(context.Background(), "CMD100", primary.DocumentRouteCard, primary.GenerateOptions{})

	if result.OK() {
		t.Fatal("ProcessOne() succeeded despite render failure")
	}
	if len(runlog.records) != 1 || runlog.records[0].Status != secondary.RunStatusError {
		t.Errorf("render failure not recorded: %+v", runlog.records)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	runlog := &fakeRunLog{records: []*secondary.RunRecord{
		{Order: "A"}, {Order: "B"}, {Order: "C"},
	}}
	svc := newTestService(&fakeReader{}, &fakeRenderer{}, runlog)

	runs, err := svc.RecentRuns(context.Background(), 2)
	if err != nil {
		t.Fatalf("RecentRuns() error: %v", err)
	}
	if len(runs) != 2 || runs[0].Order != "C" || runs[1].Order != "B" {
		t.Errorf("RecentRuns() = %+v, want [C B]", runs)
	}
}

func TestListOrders(t *testing.T) {
	reader := &fakeReader{keys: map[string][]string{
		"orders.xlsx": {"CMD1", "CMD2"},
	}}
	svc := newTestService(reader, &fakeRenderer{}, &fakeRunLog{})

	orders, err := svc.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders() error: %v", err)
	}
	if len(orders) != 2 || orders[0] != "CMD1" {
		t.Errorf("ListOrders() = %v", orders)
	}
}
