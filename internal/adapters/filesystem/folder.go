// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/rcgen/internal/ports/secondary"
)

// OutputFolderResolver implements secondary.FolderResolver under a fixed
// output root.
type OutputFolderResolver struct {
	root string
	log  *zap.Logger
}

// NewOutputFolderResolver creates a resolver rooted at root.
func NewOutputFolderResolver(root string, log *zap.Logger) *OutputFolderResolver {
	return &OutputFolderResolver{root: root, log: log}
}

// Resolve ensures root and the named subfolder exist. A reused folder is
// write-probed; on probe failure a best-effort permission repair runs before
// the folder is declared unwritable.
func (r *OutputFolderResolver) Resolve(ctx context.Context, name string) (string, error) {
	if err := os.MkdirAll(r.root, 0755); err != nil {
		return "", fmt.Errorf("%w: output root %q: %v", secondary.ErrFolderCreation, r.root, err)
	}

	path := filepath.Join(r.root, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", fmt.Errorf("%w: %q: %v", secondary.ErrFolderCreation, name, err)
		}
		r.log.Info("created output folder", zap.String("folder", name))
		return path, nil
	}

	r.log.Info("reusing output folder", zap.String("folder", name))
	if err := r.probeWrite(path); err != nil {
		r.log.Warn("write probe failed, attempting permission repair",
			zap.String("folder", name), zap.Error(err))
		if repairErr := repairPermissions(path); repairErr != nil {
			return "", fmt.Errorf("%w: %q: %v", secondary.ErrFolderUnwritable, name, err)
		}
		if err := r.probeWrite(path); err != nil {
			return "", fmt.Errorf("%w: %q after repair: %v", secondary.ErrFolderUnwritable, name, err)
		}
	}
	return path, nil
}

// probeWrite creates and removes a uniquely named marker file. The unique
// name keeps cooperative concurrent probes on a shared folder from clashing.
func (r *OutputFolderResolver) probeWrite(path string) error {
	marker := filepath.Join(path, ".probe-"+uuid.NewString())
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return err
	}
	return os.Remove(marker)
}

var _ secondary.FolderResolver = (*OutputFolderResolver)(nil)
