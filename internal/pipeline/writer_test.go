package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/simonykma/FuelSaverUK-Data/internal/models"
)

type captureStore struct {
	path string
	data []byte
	err  error
}

func (c *captureStore) Store(ctx context.Context, path string, data []byte) error {
	c.path = path
	c.data = data
	return c.err
}

func (c *captureStore) Close() error { return nil }

func TestWriterSnapshotEnvelope(t *testing.T) {
	store := &captureStore{}
	w := NewWriter(store, "data/uk-fuel-prices.json", testLogger())
	fixed := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	stations := []models.Station{
		{
			SiteID:   "S1",
			Brand:    "Shell",
			Address:  "1 Main St, Springfield",
			Postcode: "AB1 2CD",
			Location: models.StationLocation{Latitude: 51.5, Longitude: -0.1},
			Prices:   map[string]float64{"E10": 145.9},
		},
	}
	if err := w.Write(context.Background(), stations); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if store.path != "data/uk-fuel-prices.json" {
		t.Errorf("unexpected path %q", store.path)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(store.data, &snapshot); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if !snapshot.LastUpdated.Equal(fixed) {
		t.Errorf("last_updated = %v, want %v", snapshot.LastUpdated, fixed)
	}
	if snapshot.Source != models.SnapshotSource {
		t.Errorf("source = %q, want %q", snapshot.Source, models.SnapshotSource)
	}
	if snapshot.StationCount != 1 {
		t.Errorf("station_count = %d, want 1", snapshot.StationCount)
	}
	if len(snapshot.Stations) != 1 || snapshot.Stations[0].SiteID != "S1" {
		t.Errorf("unexpected stations: %+v", snapshot.Stations)
	}
}

func TestWriterSnapshotFieldNames(t *testing.T) {
	store := &captureStore{}
	w := NewWriter(store, "out.json", testLogger())

	if err := w.Write(context.Background(), []models.Station{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(store.data, &doc); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	for _, key := range []string{"last_updated", "source", "station_count", "stations"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("snapshot missing %q field", key)
		}
	}
}
