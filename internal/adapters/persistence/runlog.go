// Package persistence contains file-based adapter implementations.
package persistence

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/rcgen/internal/ports/secondary"
)

// RunLogFileName is the newline-delimited JSON run history, colocated with
// the process working directory so external tooling can tail it.
const RunLogFileName = "rc_coc_runs.jsonl"

// FileRunLog implements secondary.RunLog as an append-only JSONL file.
// Appends are single short writes in O_APPEND mode, which the platform keeps
// atomic for cooperative concurrent writers.
type FileRunLog struct {
	path string
}

// NewFileRunLog creates a run log stored in dir.
func NewFileRunLog(dir string) *FileRunLog {
	return &FileRunLog{path: filepath.Join(dir, RunLogFileName)}
}

// Append adds one record to the log file, creating it on first use.
func (l *FileRunLog) Append(ctx context.Context, record *secondary.RunRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode run record: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append run record: %w", err)
	}
	return nil
}

// Tail returns the last n records, newest first. A missing log file reads as
// empty. Lines that fail to decode are preserved as raw-message records
// rather than dropped, so a corrupted line stays visible to the operator.
func (l *FileRunLog) Tail(ctx context.Context, n int) ([]*secondary.RunRecord, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read run log: %w", err)
	}

	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	records := make([]*secondary.RunRecord, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		var rec secondary.RunRecord
		if err := json.Unmarshal([]byte(lines[i]), &rec); err != nil {
			rec = secondary.RunRecord{Message: lines[i]}
		}
		records = append(records, &rec)
	}
	return records, nil
}

var _ secondary.RunLog = (*FileRunLog)(nil)
