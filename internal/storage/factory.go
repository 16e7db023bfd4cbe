package storage

import (
	"context"
	"fmt"

	"github.com/simonykma/FuelSaverUK-Data/internal/config"
)

// Backend identifies a snapshot storage backend.
type Backend string

const (
	BackendLocal Backend = "local"
	BackendGCS   Backend = "gcs"
)

// New creates a snapshot store based on the configured backend.
func New(ctx context.Context, cfg *config.Config) (SnapshotStore, error) {
	switch Backend(cfg.StorageBackend) {
	case BackendLocal:
		return NewLocalStore(), nil
	case BackendGCS:
		store, err := NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}
