// Package storage persists snapshot documents to a local or cloud backend.
package storage

import (
	"context"
)

// SnapshotStore writes a serialized snapshot to a destination path.
type SnapshotStore interface {
	// Store writes data at the given path, creating any missing parents.
	Store(ctx context.Context, path string, data []byte) error

	// Close releases backend resources.
	Close() error
}
