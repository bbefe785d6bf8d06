package secondary

import "context"

// FolderResolver defines the secondary port for output folder resolution.
type FolderResolver interface {
	// Resolve ensures the named subfolder exists under the output root and
	// is writable, creating missing directories recursively. It returns the
	// absolute folder path.
	Resolve(ctx context.Context, name string) (string, error)
}
