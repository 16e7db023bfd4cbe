package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/simonykma/FuelSaverUK-Data/internal/logger"
	"github.com/simonykma/FuelSaverUK-Data/internal/models"
	"github.com/simonykma/FuelSaverUK-Data/internal/storage"
)

// Writer serializes the normalized station list into the snapshot document
// and hands it to a storage backend.
type Writer struct {
	store storage.SnapshotStore
	path  string
	log   *logger.Logger
	now   func() time.Time
}

// NewWriter creates a snapshot writer targeting path on the given store.
func NewWriter(store storage.SnapshotStore, path string, log *logger.Logger) *Writer {
	return &Writer{
		store: store,
		path:  path,
		log:   log.WithComponent("writer"),
		now:   time.Now,
	}
}

// Write marshals the snapshot envelope and stores it.
func (w *Writer) Write(ctx context.Context, stations []models.Station) error {
	snapshot := models.Snapshot{
		LastUpdated:  w.now().UTC(),
		Source:       models.SnapshotSource,
		StationCount: len(stations),
		Stations:     stations,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := w.store.Store(ctx, w.path, data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	w.log.Infof("saved %d stations to %s", len(stations), w.path)
	return nil
}
