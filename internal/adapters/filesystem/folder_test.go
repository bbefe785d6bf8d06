package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestResolveCreatesFolder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	r := NewOutputFolderResolver(root, zap.NewNop())

	path, err := r.Resolve(context.Background(), "PART_CMD1_FI1")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if path != filepath.Join(root, "PART_CMD1_FI1") {
		t.Errorf("Resolve() = %q, want folder under root", path)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("resolved folder does not exist: %v", err)
	}
}

func TestResolveCreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b", "out")
	r := NewOutputFolderResolver(root, zap.NewNop())

	if _, err := r.Resolve(context.Background(), "X_Y_Z"); err != nil {
		t.Fatalf("Resolve() with missing root error: %v", err)
	}
	if _, err := os.Stat(root); err != nil {
		t.Errorf("output root not created: %v", err)
	}
}

func TestResolveReusesExistingFolder(t *testing.T) {
	root := t.TempDir()
	name := "PART_CMD2_FI2"
	if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
		t.Fatal(err)
	}
	// Leave a file behind so reuse is observable.
	sentinel := filepath.Join(root, name, "existing.txt")
	if err := os.WriteFile(sentinel, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewOutputFolderResolver(root, zap.NewNop())
	path, err := r.Resolve(context.Background(), name)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if _, err := os.Stat(sentinel); err != nil {
		t.Errorf("existing content disturbed: %v", err)
	}

	// The write probe must not leave marker files behind.
	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "existing.txt" {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}
