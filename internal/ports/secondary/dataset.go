// Package secondary defines the secondary ports (driven adapters) for the
// application: the interfaces through which the pipeline reaches the
// reference datasets, the filesystem and the run log.
package secondary

import "context"

// Row is one dataset row keyed by normalized (whitespace-trimmed) column
// label. Cell values are coerced to text; absent cells read as "".
type Row map[string]string

// DatasetSource identifies a tabular reference dataset and how to read it.
type DatasetSource struct {
	Path      string
	Sheet     string // empty selects the first sheet
	SkipRows  int    // leading sheet rows discarded before the header row
	KeyColumn string
}

// DatasetReader defines the secondary port for reference dataset lookups.
// Implementations open the dataset fresh on every call and hold no session
// state.
type DatasetReader interface {
	// LookupRow returns the first row whose key cell equals keyValue after
	// trimming. Duplicate keys are not an error: first match wins.
	LookupRow(ctx context.Context, src DatasetSource, keyValue string) (Row, error)

	// ListKeys returns the distinct non-empty key-column values in file
	// order.
	ListKeys(ctx context.Context, src DatasetSource) ([]string, error)
}
