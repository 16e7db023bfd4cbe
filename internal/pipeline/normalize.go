package pipeline

import (
	"strings"

	"github.com/simonykma/FuelSaverUK-Data/internal/logger"
	"github.com/simonykma/FuelSaverUK-Data/internal/models"
)

// DefaultBrand is used when a station record carries no brand.
const DefaultBrand = "Unknown"

// Normalizer converts aggregated stations into the CMA schema. It performs
// no I/O beyond diagnostics on the injected logger.
type Normalizer struct {
	log *logger.Logger
}

// NewNormalizer creates a normalizer that reports dropped records to log.
func NewNormalizer(log *logger.Logger) *Normalizer {
	return &Normalizer{log: log.WithComponent("normalize")}
}

// Normalize converts stations to the output schema. Records with absent or
// out-of-range coordinates are dropped, never repaired; an out-of-range drop
// is logged with the site_id and offending values.
func (n *Normalizer) Normalize(stations []models.AggregatedStation) []models.Station {
	out := make([]models.Station, 0, len(stations))

	for i := range stations {
		st := &stations[i]
		if st.Location == nil || st.Location.Latitude == nil || st.Location.Longitude == nil {
			continue
		}
		lat := *st.Location.Latitude
		lng := *st.Location.Longitude
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			n.log.Warnf("invalid coordinates for station %s: lat=%v, lng=%v", st.SiteID, lat, lng)
			continue
		}

		address, postcode := resolveAddress(st)

		brand := st.Brand
		if brand == "" {
			brand = DefaultBrand
		}

		out = append(out, models.Station{
			SiteID:   st.SiteID,
			Brand:    brand,
			Address:  address,
			Postcode: postcode,
			Location: models.StationLocation{Latitude: lat, Longitude: lng},
			Prices:   st.Prices,
		})
	}

	return out
}

// resolveAddress applies the address precedence: structured object first,
// then plain string, then whatever the sibling postcode field offers.
func resolveAddress(st *models.AggregatedStation) (address, postcode string) {
	if obj, ok := st.AddressObject(); ok {
		parts := make([]string, 0, 2)
		if obj.Line1 != "" {
			parts = append(parts, obj.Line1)
		}
		if obj.Town != "" {
			parts = append(parts, obj.Town)
		}
		return strings.Join(parts, ", "), obj.Postcode
	}
	if s, ok := st.AddressString(); ok {
		return s, st.Postcode
	}
	return "", st.Postcode
}
