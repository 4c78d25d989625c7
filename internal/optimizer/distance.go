package optimizer

import "math"

const earthRadiusKM = 6371.0

// DistanceKM returns the great-circle distance between two points. When
// either coordinate is unknown it returns the configured default distance;
// missing geodata is a convention here, not an error.
func (e *Engine) DistanceKM(a, b *Coordinate) float64 {
	if a == nil || b == nil {
		return e.opts.DefaultDistKM
	}
	return haversineKM(*a, *b)
}

func haversineKM(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}
