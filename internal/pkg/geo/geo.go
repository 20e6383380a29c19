package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

// HaversineDistance returns the great-circle distance between two coordinates
// in meters. Geofence radii can be as small as 50 m, so no planar shortcut.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// WithinRadius reports whether the candidate coordinate lies inside the
// allowed working area around the reference point.
func WithinRadius(candLat, candLon, refLat, refLon, radiusMeters float64) bool {
	return HaversineDistance(candLat, candLon, refLat, refLon) <= radiusMeters
}
