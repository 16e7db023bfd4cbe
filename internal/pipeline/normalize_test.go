package pipeline

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/simonykma/FuelSaverUK-Data/internal/logger"
	"github.com/simonykma/FuelSaverUK-Data/internal/models"
)

func testLogger() *logger.Logger {
	return logger.New(logger.ErrorLevel, "text", io.Discard)
}

func fl(v float64) *float64 {
	return &v
}

func coords(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Latitude: fl(lat), Longitude: fl(lng)}
}

func TestNormalizeValidStation(t *testing.T) {
	n := NewNormalizer(testLogger())

	stations := n.Normalize([]models.AggregatedStation{
		{
			SiteID:   "S1",
			Brand:    "Shell",
			Location: coords(51.5, -0.1),
			Prices:   map[string]float64{"E10": 145.9},
		},
	})

	if len(stations) != 1 {
		t.Fatalf("expected 1 station, got %d", len(stations))
	}
	st := stations[0]
	if st.SiteID != "S1" || st.Brand != "Shell" {
		t.Errorf("unexpected station identity: %+v", st)
	}
	if st.Location.Latitude != 51.5 || st.Location.Longitude != -0.1 {
		t.Errorf("unexpected location: %+v", st.Location)
	}
	if diff := cmp.Diff(map[string]float64{"E10": 145.9}, st.Prices); diff != "" {
		t.Errorf("prices not passed through (-want +got):\n%s", diff)
	}
}

func TestNormalizeDropsMissingCoordinates(t *testing.T) {
	n := NewNormalizer(testLogger())

	tests := []struct {
		name     string
		location *models.Coordinates
	}{
		{"no location", nil},
		{"missing latitude", &models.Coordinates{Longitude: fl(-0.1)}},
		{"missing longitude", &models.Coordinates{Latitude: fl(51.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := n.Normalize([]models.AggregatedStation{
				{SiteID: "S1", Location: tt.location, Prices: map[string]float64{}},
			})
			if len(out) != 0 {
				t.Errorf("expected record to be dropped, got %d stations", len(out))
			}
		})
	}
}

func TestNormalizeCoordinateBounds(t *testing.T) {
	n := NewNormalizer(testLogger())

	tests := []struct {
		name string
		lat  float64
		lng  float64
		keep bool
	}{
		{"valid", 51.5, -0.1, true},
		{"latitude too high", 95, 0, false},
		{"latitude too low", -90.5, 0, false},
		{"longitude too high", 0, 181, false},
		{"longitude too low", 0, -180.5, false},
		{"latitude at north bound", 90, 0, true},
		{"latitude at south bound", -90, 0, true},
		{"longitude at east bound", 0, 180, true},
		{"longitude at west bound", 0, -180, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := n.Normalize([]models.AggregatedStation{
				{SiteID: "S1", Location: coords(tt.lat, tt.lng), Prices: map[string]float64{}},
			})
			if tt.keep && len(out) != 1 {
				t.Errorf("expected record to survive, got %d stations", len(out))
			}
			if !tt.keep && len(out) != 0 {
				t.Errorf("expected record to be dropped, got %d stations", len(out))
			}
		})
	}
}

func TestNormalizeLogsDroppedCoordinates(t *testing.T) {
	var buf strings.Builder
	n := NewNormalizer(logger.New(logger.WarnLevel, "text", &buf))

	n.Normalize([]models.AggregatedStation{
		{SiteID: "S1", Location: coords(95, 0), Prices: map[string]float64{}},
	})

	out := buf.String()
	if !strings.Contains(out, "S1") || !strings.Contains(out, "95") {
		t.Errorf("expected diagnostic naming site and values, got %q", out)
	}
}

func TestNormalizeAddressPrecedence(t *testing.T) {
	n := NewNormalizer(testLogger())

	tests := []struct {
		name         string
		address      json.RawMessage
		postcode     string
		wantAddress  string
		wantPostcode string
	}{
		{
			name:         "structured address",
			address:      json.RawMessage(`{"line1": "1 Main St", "town": "Springfield", "postcode": "AB1 2CD"}`),
			postcode:     "ZZ9 9ZZ",
			wantAddress:  "1 Main St, Springfield",
			wantPostcode: "AB1 2CD",
		},
		{
			name:         "structured address missing town",
			address:      json.RawMessage(`{"line1": "1 Main St", "postcode": "AB1 2CD"}`),
			wantAddress:  "1 Main St",
			wantPostcode: "AB1 2CD",
		},
		{
			name:         "string address uses sibling postcode",
			address:      json.RawMessage(`"1 Main St, Springfield"`),
			postcode:     "AB1 2CD",
			wantAddress:  "1 Main St, Springfield",
			wantPostcode: "AB1 2CD",
		},
		{
			name:         "absent address",
			address:      nil,
			postcode:     "AB1 2CD",
			wantAddress:  "",
			wantPostcode: "AB1 2CD",
		},
		{
			name:         "null address",
			address:      json.RawMessage(`null`),
			postcode:     "AB1 2CD",
			wantAddress:  "",
			wantPostcode: "AB1 2CD",
		},
		{
			name:         "unrecognized address shape",
			address:      json.RawMessage(`42`),
			postcode:     "AB1 2CD",
			wantAddress:  "",
			wantPostcode: "AB1 2CD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := n.Normalize([]models.AggregatedStation{
				{
					SiteID:   "S1",
					Address:  tt.address,
					Postcode: tt.postcode,
					Location: coords(51.5, -0.1),
					Prices:   map[string]float64{},
				},
			})
			if len(out) != 1 {
				t.Fatalf("expected 1 station, got %d", len(out))
			}
			if out[0].Address != tt.wantAddress {
				t.Errorf("address = %q, want %q", out[0].Address, tt.wantAddress)
			}
			if out[0].Postcode != tt.wantPostcode {
				t.Errorf("postcode = %q, want %q", out[0].Postcode, tt.wantPostcode)
			}
		})
	}
}

func TestNormalizeBrandDefault(t *testing.T) {
	n := NewNormalizer(testLogger())

	out := n.Normalize([]models.AggregatedStation{
		{SiteID: "S1", Location: coords(51.5, -0.1), Prices: map[string]float64{}},
	})
	if len(out) != 1 {
		t.Fatalf("expected 1 station, got %d", len(out))
	}
	if out[0].Brand != "Unknown" {
		t.Errorf("expected default brand Unknown, got %q", out[0].Brand)
	}
}

func TestNormalizeDropDoesNotAffectOthers(t *testing.T) {
	n := NewNormalizer(testLogger())

	out := n.Normalize([]models.AggregatedStation{
		{SiteID: "S1", Location: coords(51.5, -0.1), Prices: map[string]float64{}},
		{SiteID: "S2", Location: coords(95, 0), Prices: map[string]float64{}},
		{SiteID: "S3", Location: coords(52.1, 1.3), Prices: map[string]float64{}},
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(out))
	}
	if out[0].SiteID != "S1" || out[1].SiteID != "S3" {
		t.Errorf("unexpected survivors: %+v", out)
	}
}

func TestAggregateThenNormalizeEndToEnd(t *testing.T) {
	raws := []models.RawStation{
		{SiteID: "S1", Location: coords(51.5, -0.1), Prices: json.RawMessage(`{"E10": 145.9}`)},
		{SiteID: "S1", Location: coords(51.5, -0.1), Prices: json.RawMessage(`{"B7": 148.2}`)},
	}

	out := NewNormalizer(testLogger()).Normalize(Aggregate(raws))
	if len(out) != 1 {
		t.Fatalf("expected 1 station, got %d", len(out))
	}

	want := map[string]float64{"E10": 145.9, "B7": 148.2}
	if diff := cmp.Diff(want, out[0].Prices); diff != "" {
		t.Errorf("merged prices mismatch (-want +got):\n%s", diff)
	}
}
