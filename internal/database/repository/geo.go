package repository

import "math"

const earthRadiusMeters = 6371000.0

// haversineMeters computes the great-circle distance between two points
// given as (latitude, longitude) degree pairs.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// boundingBox returns the latitude/longitude bounds enclosing a circle of
// radiusMeters around the point. The box is a superset of the circle; exact
// membership is decided by haversineMeters afterwards.
func boundingBox(lat, lon, radiusMeters float64) (minLat, maxLat, minLon, maxLon float64) {
	latDelta := radiusMeters / 111320.0

	cosLat := math.Cos(lat * math.Pi / 180)
	var lonDelta float64
	if cosLat < 1e-6 {
		// Near the poles every longitude is within reach
		lonDelta = 180
	} else {
		lonDelta = radiusMeters / (111320.0 * cosLat)
	}

	return lat - latDelta, lat + latDelta, lon - lonDelta, lon + lonDelta
}
