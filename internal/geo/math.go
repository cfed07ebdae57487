package geo

import (
	"fmt"
	"math"
)

// EarthRadius is the mean Earth radius in meters used for great-circle distances.
const EarthRadius = 6371000.0

// DistanceMeters returns the haversine great-circle distance in meters
// between two WGS84 coordinates given in degrees.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	// a = sin²(Δlat/2) + cos(lat1) * cos(lat2) * sin²(Δlng/2)
	sLat := math.Sin(dLat / 2)
	sLng := math.Sin(dLng / 2)
	a := sLat*sLat + math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*sLng*sLng

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// FormatDistance renders meters as "150M" below one kilometer and as
// "3.2KM" (one decimal, half-up) from one kilometer on.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dM", int64(math.Floor(meters+0.5)))
	}

	// round on tenths of a kilometer, i.e. hundreds of meters
	tenths := math.Floor(meters/100 + 0.5)
	return fmt.Sprintf("%.1fKM", tenths/10)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
