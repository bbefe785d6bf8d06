// Package primary defines the primary ports (driving interfaces) exposed to
// the CLI and any other collaborator that invokes the pipeline.
package primary

import "context"

// DocumentType selects which document a run produces.
type DocumentType string

const (
	DocumentRouteCard DocumentType = "RC"
	DocumentCOC       DocumentType = "COC"
)

// Valid reports whether t names a known document type.
func (t DocumentType) Valid() bool {
	return t == DocumentRouteCard || t == DocumentCOC
}

// COCOverrides carries externally supplied certificate fields. Nil pointers
// mean "use the computed default". Overrides are applied by the caller's
// prompting layer or flags; the defaulting engine itself never blocks on
// user input.
type COCOverrides struct {
	CertificateNo *string
	LotNo         *string
	ClientLotNo   *string
}

// GenerateOptions are the per-run options of ProcessOne/ProcessBatch.
type GenerateOptions struct {
	Overrides COCOverrides
}

// RunResult is the outcome of one order run as recorded in the run log.
// Message is always present; on success it carries the written file's path.
type RunResult struct {
	Order      string
	Status     string // "OK" or "ERROR"
	Message    string
	StartedAt  string
	FinishedAt string
}

// OK reports whether the run succeeded.
func (r *RunResult) OK() bool {
	return r.Status == "OK"
}

// PipelineService is the primary port of the resolution-and-synthesis
// pipeline.
type PipelineService interface {
	// ProcessOne runs the pipeline for a single order. It never returns an
	// error: every failure is classified and reported in the result, and a
	// run-log entry is appended for every terminal outcome.
	ProcessOne(ctx context.Context, orderID string, docType DocumentType, opts GenerateOptions) *RunResult

	// ProcessBatch runs ProcessOne per order, sequentially, with no shared
	// mutable state between items. One bad order never aborts the batch.
	ProcessBatch(ctx context.Context, orderIDs []string, docType DocumentType, opts GenerateOptions) []*RunResult

	// RecentRuns returns the last n run-log entries, newest first.
	RecentRuns(ctx context.Context, n int) ([]*RunResult, error)

	// ListOrders returns the distinct internal order ids present in the
	// orders dataset, in file order.
	ListOrders(ctx context.Context) ([]string, error)
}
