package domain

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LatLonPath flattens a geometry into [lat, lon] pairs for the wire format.
func LatLonPath(points []GeoPoint) [][2]float64 {
	path := make([][2]float64, len(points))
	for i, p := range points {
		path[i] = [2]float64{p.Lat, p.Lon}
	}
	return path
}

// RouteLeg is a single routed path between two points as reported by a
// routing provider, in provider units (meters, seconds).
type RouteLeg struct {
	Geometry          []GeoPoint
	DistanceMeters    float64
	TravelTimeSeconds float64
}
