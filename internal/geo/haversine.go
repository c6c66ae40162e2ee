// Package geo provides the great-circle distance math shared by the
// nearest-station query and distance labels in API responses.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// (latitude, longitude) pairs given in degrees, using the Haversine formula:
//
//	d = 2R * asin(sqrt(sin²(Δφ/2) + cosφ1·cosφ2·sin²(Δλ/2)))
//
// Plain float64 trigonometry keeps the result reproducible across calls;
// the value feeds both user-visible distance labels and result ordering.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// BoundingBox returns a latitude/longitude box that encloses the circle of
// radiusKm around (lat, lng).  It is a cheap SQL prefilter for the exact
// Haversine check; near the poles the longitude span is widened to the full
// range rather than risking a box that misses candidates.
func BoundingBox(lat, lng, radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	dLat := radiusKm / EarthRadiusKm * 180 / math.Pi
	minLat, maxLat = lat-dLat, lat+dLat

	cos := math.Cos(lat * math.Pi / 180)
	if cos < 1e-6 {
		return minLat, maxLat, -180, 180
	}
	dLng := radiusKm / (EarthRadiusKm * cos) * 180 / math.Pi
	return minLat, maxLat, lng - dLng, lng + dLng
}
