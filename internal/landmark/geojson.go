package landmark

import (
	"github.com/vista6040/vistamap/internal/geo"

	"github.com/paulmach/orb/geojson"
)

// FeatureCollection exports the set as GeoJSON points. Distances are
// computed first so every non-primary feature carries its calculated value.
func (s *Set) FeatureCollection() *geojson.FeatureCollection {
	s.ComputeDistances()

	fc := geojson.NewFeatureCollection()
	for _, l := range s.items {
		props := map[string]interface{}{
			"id":       l.ID,
			"name":     l.Name,
			"type":     string(l.Type),
			"icon":     l.Icon,
			"color":    l.Color,
			"distance": l.DisplayDistance(),
			"time":     l.Time,
		}
		if l.IsPrimary {
			props["primary"] = true
		}

		fc.Append(geo.NewPointFeature(l.Lat, l.Lng, props))
	}

	return fc
}
