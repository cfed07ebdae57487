// Package geo handles geographic math, projection to scene space and GeoJSON helpers.
package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// NewPointFeature returns a GeoJSON point feature at lat/lng with the given properties.
// GeoJSON coordinates are ordered [lng, lat].
func NewPointFeature(lat, lng float64, props map[string]interface{}) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{lng, lat})
	for k, v := range props {
		f.Properties[k] = v
	}

	return f
}
