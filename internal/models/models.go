package models

import (
	"encoding/json"
	"time"
)

// SnapshotSource identifies where the snapshot data came from.
const SnapshotSource = "GOV UK Fuel Finder API"

// RawStation is a single station record as delivered by the prices endpoint.
// The feed is inconsistent: address arrives either as a plain string or as a
// structured object, and prices is occasionally something other than a JSON
// object, so both fields are kept raw and decoded on demand.
type RawStation struct {
	SiteID   string          `json:"site_id"`
	Brand    string          `json:"brand"`
	Address  json.RawMessage `json:"address"`
	Postcode string          `json:"postcode"`
	Location *Coordinates    `json:"location"`
	Prices   json.RawMessage `json:"prices"`
}

// Coordinates holds a station position. Pointers distinguish an absent
// field from a genuine zero value.
type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// StructuredAddress is the object form of the address field.
type StructuredAddress struct {
	Line1    string `json:"line1"`
	Town     string `json:"town"`
	Postcode string `json:"postcode"`
}

// PriceMap decodes the prices field into a fuel-type to price mapping.
// Returns nil when the field is absent or not a JSON object of numbers.
func (r *RawStation) PriceMap() map[string]float64 {
	return decodePrices(r.Prices)
}

// AggregatedStation is one station after merging per-fuel-type records.
// Non-price fields come from the first record seen for the site_id; Prices
// is the union across all records and is never nil.
type AggregatedStation struct {
	SiteID   string
	Brand    string
	Address  json.RawMessage
	Postcode string
	Location *Coordinates
	Prices   map[string]float64
}

// AddressObject decodes the structured form of the address field.
// JSON null decodes into any Go type without error, so the shape is
// checked on the raw bytes first.
func (a *AggregatedStation) AddressObject() (StructuredAddress, bool) {
	if !hasShape(a.Address, '{') {
		return StructuredAddress{}, false
	}
	var obj StructuredAddress
	if err := json.Unmarshal(a.Address, &obj); err != nil {
		return StructuredAddress{}, false
	}
	return obj, true
}

// AddressString decodes the plain-string form of the address field.
func (a *AggregatedStation) AddressString() (string, bool) {
	if !hasShape(a.Address, '"') {
		return "", false
	}
	var s string
	if err := json.Unmarshal(a.Address, &s); err != nil {
		return "", false
	}
	return s, true
}

func hasShape(raw json.RawMessage, first byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return b == first
		}
	}
	return false
}

// Station is a normalized station in the CMA schema consumed downstream.
type Station struct {
	SiteID   string             `json:"site_id"`
	Brand    string             `json:"brand"`
	Address  string             `json:"address"`
	Postcode string             `json:"postcode"`
	Location StationLocation    `json:"location"`
	Prices   map[string]float64 `json:"prices"`
}

// StationLocation holds validated coordinates.
type StationLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Snapshot is the output document written at the end of a run.
type Snapshot struct {
	LastUpdated  time.Time `json:"last_updated"`
	Source       string    `json:"source"`
	StationCount int       `json:"station_count"`
	Stations     []Station `json:"stations"`
}

func decodePrices(raw json.RawMessage) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}
	var prices map[string]float64
	if err := json.Unmarshal(raw, &prices); err != nil {
		return nil
	}
	return prices
}
