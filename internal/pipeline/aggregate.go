// Package pipeline contains the aggregation and normalization core plus the
// runner that drives one fetch-transform-save pass.
package pipeline

import (
	"github.com/simonykma/FuelSaverUK-Data/internal/models"
)

// Aggregate merges raw per-fuel-type records into one record per site_id.
// The first record seen for a site_id supplies all non-price fields; later
// records contribute only price entries, with the later value winning on a
// duplicate fuel-type key. Records without a site_id are dropped. Output
// preserves first-seen order.
func Aggregate(raws []models.RawStation) []models.AggregatedStation {
	byID := make(map[string]int, len(raws))
	merged := make([]models.AggregatedStation, 0, len(raws))

	for i := range raws {
		raw := &raws[i]
		if raw.SiteID == "" {
			continue
		}

		if idx, ok := byID[raw.SiteID]; ok {
			for fuelType, price := range raw.PriceMap() {
				merged[idx].Prices[fuelType] = price
			}
			continue
		}

		prices := raw.PriceMap()
		if prices == nil {
			prices = make(map[string]float64)
		}
		byID[raw.SiteID] = len(merged)
		merged = append(merged, models.AggregatedStation{
			SiteID:   raw.SiteID,
			Brand:    raw.Brand,
			Address:  raw.Address,
			Postcode: raw.Postcode,
			Location: raw.Location,
			Prices:   prices,
		})
	}

	return merged
}
