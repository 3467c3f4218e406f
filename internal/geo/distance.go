// Package geo computes great-circle distances between job and worker locations.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Coordinate is a point in decimal degrees. Nil fields mean "unknown".
type Coordinate struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Point builds a fully known Coordinate.
func Point(lat, lon float64) *Coordinate {
	return &Coordinate{Lat: &lat, Lon: &lon}
}

// known mirrors the client's truthiness check: zero and NaN degree values count as missing.
// Infinite values are not positions either.
func (c *Coordinate) known() bool {
	return c != nil && c.Lat != nil && c.Lon != nil && usable(*c.Lat) && usable(*c.Lon)
}

func usable(deg float64) bool {
	return deg != 0 && !math.IsNaN(deg) && !math.IsInf(deg, 0)
}

// Distance returns the haversine distance in kilometres, or +Inf when either side is unknown.
func Distance(a, b *Coordinate) float64 {
	if !a.known() || !b.known() {
		return math.Inf(1)
	}
	lat1, lat2 := toRad(*a.Lat), toRad(*b.Lat)
	dLat := lat2 - lat1
	dLon := toRad(*b.Lon - *a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
