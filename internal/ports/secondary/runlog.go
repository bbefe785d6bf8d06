package secondary

import "context"

// Run statuses recorded in the run log.
const (
	RunStatusOK    = "OK"
	RunStatusError = "ERROR"
)

// RunRecord is one append-only audit record of a pipeline run. Records are
// never updated or deleted. Timestamps are ISO 8601 text.
type RunRecord struct {
	Order      string `json:"order"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	StartedAt  string `json:"ts_start"`
	FinishedAt string `json:"ts_end"`
}

// RunLog defines the secondary port for the append-only run history.
type RunLog interface {
	// Append adds one record to the log.
	Append(ctx context.Context, record *RunRecord) error

	// Tail returns the last n records, newest first.
	Tail(ctx context.Context, n int) ([]*RunRecord, error)
}
