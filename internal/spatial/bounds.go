package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Bounds is the bounding box and center of a set of coordinates
type Bounds struct {
	CenterLat float64
	CenterLng float64
	MinLat    float64
	MinLng    float64
	MaxLat    float64
	MaxLng    float64
}

// BoundsOf computes the lat/lng bounding rectangle and its center over
// the given points using S2 geometry. NaN coordinates are skipped.
// Returns false when no valid point remains.
func BoundsOf(lats, lngs []float64) (Bounds, bool) {
	rect := s2.EmptyRect()
	for i := range lats {
		if math.IsNaN(lats[i]) || math.IsNaN(lngs[i]) {
			continue
		}
		rect = rect.AddPoint(s2.LatLngFromDegrees(lats[i], lngs[i]))
	}

	if rect.IsEmpty() {
		return Bounds{}, false
	}

	center := rect.Center()
	return Bounds{
		CenterLat: center.Lat.Degrees(),
		CenterLng: center.Lng.Degrees(),
		MinLat:    rect.Lo().Lat.Degrees(),
		MinLng:    rect.Lo().Lng.Degrees(),
		MaxLat:    rect.Hi().Lat.Degrees(),
		MaxLng:    rect.Hi().Lng.Degrees(),
	}, true
}

// HaversineDistance calculates the great-circle distance between two
// points in meters
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// EarthRadiusMeters is Earth's mean radius in meters
const EarthRadiusMeters = 6371000.0
