package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes snapshots to the local filesystem.
type LocalStore struct{}

// NewLocalStore creates a local filesystem store.
func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

// Store writes the file, creating missing parent directories first.
func (s *LocalStore) Store(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// Close is a no-op for local storage.
func (s *LocalStore) Close() error {
	return nil
}
