// Package storage persists uploaded files on the local filesystem under a
// fixed root. The root is explicit construction-time configuration, not an
// import-time side effect.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type DiskStore struct {
	root string
}

// NewDiskStore creates the root directory if needed and returns the store.
func NewDiskStore(root string) (*DiskStore, error) {
	if root == "" {
		return nil, fmt.Errorf("file store: empty root directory")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes contents to <root>/<name>. The name must be a bare filename;
// anything carrying a path separator is rejected.
func (s *DiskStore) Save(name string, contents io.Reader) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("file store: invalid name %q", name)
	}

	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return fmt.Errorf("file store: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, contents); err != nil {
		return fmt.Errorf("file store: write: %w", err)
	}
	return nil
}

// Path returns the filesystem location a stored name resolves to.
func (s *DiskStore) Path(name string) string {
	return filepath.Join(s.root, name)
}
