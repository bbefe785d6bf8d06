package secondary

import "errors"

// Failure taxonomy of the pipeline. Every failure is terminal for the order
// being processed; the orchestrator converts it into an ERROR run-log entry
// and batch processing moves on. Adapters wrap these sentinels with context
// via fmt.Errorf("...: %w", ...) so callers can match with errors.Is.
var (
	// ErrDatasetNotFound means a reference dataset path does not resolve to
	// an existing file.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrSchema means an expected column is absent after header normalization.
	ErrSchema = errors.New("dataset schema error")

	// ErrRowNotFound means no row matched the lookup key.
	ErrRowNotFound = errors.New("row not found")

	// ErrParse means the dataset could not be read or decoded.
	ErrParse = errors.New("dataset parse error")

	// ErrFolderCreation means the output folder could not be created.
	ErrFolderCreation = errors.New("folder creation failed")

	// ErrFolderUnwritable means an existing output folder failed the write
	// probe and permission repair did not help.
	ErrFolderUnwritable = errors.New("folder not writable")

	// ErrRender means document construction or the final save failed.
	ErrRender = errors.New("render failed")
)
