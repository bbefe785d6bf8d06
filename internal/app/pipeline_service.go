package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/rcgen/internal/core/cocfields"
	"github.com/example/rcgen/internal/core/identity"
	"github.com/example/rcgen/internal/core/sequence"
	"github.com/example/rcgen/internal/models"
	"github.com/example/rcgen/internal/ports/primary"
	"github.com/example/rcgen/internal/ports/secondary"
)

// PipelineServiceImpl implements the PipelineService interface. It owns the
// per-order state machine: dataset lookups, folder resolution, document
// rendering and run logging. Every terminal outcome, success or failure,
// appends exactly one run-log entry.
type PipelineServiceImpl struct {
	orders  secondary.DatasetSource
	routing secondary.DatasetSource

	reader        secondary.DatasetReader
	folders       secondary.FolderResolver
	renderer      secondary.DocumentRenderer
	runlog        secondary.RunLog
	defaultClient string
	log           *zap.Logger
	now           func() time.Time
}

// NewPipelineService creates a new PipelineService with injected dependencies.
func NewPipelineService(
	orders, routing secondary.DatasetSource,
	reader secondary.DatasetReader,
	folders secondary.FolderResolver,
	renderer secondary.DocumentRenderer,
	runlog secondary.RunLog,
	defaultClient string,
	log *zap.Logger,
) *PipelineServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &PipelineServiceImpl{
		orders:        orders,
		routing:       routing,
		reader:        reader,
		folders:       folders,
		renderer:      renderer,
		runlog:        runlog,
		defaultClient: defaultClient,
		log:           log,
		now:           time.Now,
	}
}

// ProcessOne runs the pipeline for a single order. Failures are classified
// into the result rather than returned; the run log always receives an entry.
func (s *PipelineServiceImpl) ProcessOne(ctx context.Context, orderID string, docType primary.DocumentType, opts primary.GenerateOptions) *primary.RunResult {
	start := s.now().UTC()
	id := strings.ToUpper(strings.TrimSpace(orderID))

	message, err := s.run(ctx, id, docType, opts)

	status := secondary.RunStatusOK
	if err != nil {
		status = secondary.RunStatusError
		message = err.Error()
		s.log.Warn("order failed", zap.String("order", id), zap.Error(err))
	} else {
		s.log.Info("order processed", zap.String("order", id), zap.String("message", message))
	}

	result := &primary.RunResult{
		Order:      id,
		Status:     status,
		Message:    message,
		StartedAt:  start.Format(time.RFC3339),
		FinishedAt: s.now().UTC().Format(time.RFC3339),
	}

	if err := s.runlog.Append(ctx, &secondary.RunRecord{
		Order:      result.Order,
		Status:     result.Status,
		Message:    result.Message,
		StartedAt:  result.StartedAt,
		FinishedAt: result.FinishedAt,
	}); err != nil {
		// The document run stands even when the audit write fails; surface
		// the problem without overwriting the run outcome.
		s.log.Error("failed to append run log entry", zap.String("order", id), zap.Error(err))
	}

	return result
}

// run executes the order state machine and returns the success message or the
// classified failure.
func (s *PipelineServiceImpl) run(ctx context.Context, id string, docType primary.DocumentType, opts primary.GenerateOptions) (string, error) {
	if id == "" {
		return "", errors.New("empty order id")
	}
	if !docType.Valid() {
		return "", fmt.Errorf("unknown document type %q", docType)
	}

	row, err := s.reader.LookupRow(ctx, s.orders, id)
	if err != nil {
		if errors.Is(err, secondary.ErrRowNotFound) {
			return "", fmt.Errorf("order %s not found in orders ledger", id)
		}
		return "", fmt.Errorf("orders ledger: %w", err)
	}
	order := models.OrderRecordFromRow(row)

	folderName := identity.FolderName(order.Part, id, order.InternalSheetRef)
	folder, err := s.folders.Resolve(ctx, folderName)
	if err != nil {
		return "", fmt.Errorf("output folder %s: %w", folderName, err)
	}

	switch docType {
	case primary.DocumentRouteCard:
		return s.runRouteCard(ctx, order, folder)
	case primary.DocumentCOC:
		return s.runCOC(ctx, id, order, opts.Overrides, folder)
	}
	return "", fmt.Errorf("unknown document type %q", docType)
}

func (s *PipelineServiceImpl) runRouteCard(ctx context.Context, order *models.OrderRecord, folder string) (string, error) {
	row, err := s.reader.LookupRow(ctx, s.routing, order.Part)
	if err != nil {
		if errors.Is(err, secondary.ErrRowNotFound) {
			return "", fmt.Errorf("part %s not found in routing ledger", order.Part)
		}
		return "", fmt.Errorf("routing ledger: %w", err)
	}
	routing := models.RoutingRecordFromRow(row)

	ops := sequence.Extract(routing.Row)
	if len(ops) == 0 {
		return "", fmt.Errorf("no operations defined for part %s", order.Part)
	}

	return s.renderer.RenderRouteCard(ctx, order, routing, ops, folder)
}

func (s *PipelineServiceImpl) runCOC(ctx context.Context, id string, order *models.OrderRecord, overrides primary.COCOverrides, folder string) (string, error) {
	fields := cocfields.ComputeDefaults(id, order)
	if s.defaultClient != "" {
		fields.ClientName = s.defaultClient
	}
	fields = cocfields.Apply(fields, cocfields.Overrides{
		CertificateNo: overrides.CertificateNo,
		LotNo:         overrides.LotNo,
		ClientLotNo:   overrides.ClientLotNo,
	})

	// The routing ledger's revision wins over the order's own. A part with no
	// routing row still gets its certificate on the defaulted revision.
	revision := fields.DrawingRevision
	if row, err := s.reader.LookupRow(ctx, s.routing, order.RoutingKey()); err == nil {
		if routing := models.RoutingRecordFromRow(row); routing.Revision != "" {
			revision = routing.Revision
		}
	} else {
		s.log.Debug("no routing row for part, revision degraded",
			zap.String("order", id), zap.String("part", order.RoutingKey()), zap.Error(err))
	}

	return s.renderer.RenderCOC(ctx, order, fields, revision, folder)
}

// ProcessBatch runs ProcessOne per order, sequentially. One failing order
// never stops the batch.
func (s *PipelineServiceImpl) ProcessBatch(ctx context.Context, orderIDs []string, docType primary.DocumentType, opts primary.GenerateOptions) []*primary.RunResult {
	results := make([]*primary.RunResult, 0, len(orderIDs))
	for _, id := range orderIDs {
		results = append(results, s.ProcessOne(ctx, id, docType, opts))
	}
	return results
}

// RecentRuns returns the last n run-log entries, newest first.
func (s *PipelineServiceImpl) RecentRuns(ctx context.Context, n int) ([]*primary.RunResult, error) {
	records, err := s.runlog.Tail(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to read run log: %w", err)
	}

	results := make([]*primary.RunResult, len(records))
	for i, r := range records {
		results[i] = &primary.RunResult{
			Order:      r.Order,
			Status:     r.Status,
			Message:    r.Message,
			StartedAt:  r.StartedAt,
			FinishedAt: r.FinishedAt,
		}
	}
	return results, nil
}

// ListOrders returns the distinct internal order ids of the orders dataset.
func (s *PipelineServiceImpl) ListOrders(ctx context.Context) ([]string, error) {
	keys, err := s.reader.ListKeys(ctx, s.orders)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return keys, nil
}

// Ensure PipelineServiceImpl implements the interface.
var _ primary.PipelineService = (*PipelineServiceImpl)(nil)
