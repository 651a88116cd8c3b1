package analytics

import (
	"math"
	"sort"

	"github.com/bikeshare/backend/internal/domain"
)

// TopN counts the distinct values produced by key over the trips and
// returns the n most frequent, counts non-increasing. Ties keep
// first-seen order. The result length is min(n, distinct values).
func TopN(trips []domain.TripRecord, key func(domain.TripRecord) string, n int) []domain.StationCount {
	counts := make(map[string]int)
	var order []string
	for _, t := range trips {
		v := key(t)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if n < len(order) {
		order = order[:n]
	}

	ranked := make([]domain.StationCount, len(order))
	for i, v := range order {
		ranked[i] = domain.StationCount{Station: v, Rides: counts[v]}
	}
	return ranked
}

// StartStation and EndStation are the ranking keys used by the
// popular-stations view
func StartStation(t domain.TripRecord) string { return t.StartStationName }
func EndStation(t domain.TripRecord) string   { return t.EndStationName }

// GroupStations aggregates rides per unique (station, lat, lng) triple
// for the geographic scatter. Records with NaN coordinates are dropped.
// Output is ordered by ride count descending, ties in first-seen order.
func GroupStations(trips []domain.TripRecord) []domain.StationPoint {
	type locKey struct {
		station  string
		lat, lng float64
	}

	counts := make(map[locKey]int)
	var order []locKey
	for _, t := range trips {
		if math.IsNaN(t.StartLat) || math.IsNaN(t.StartLng) {
			continue
		}
		k := locKey{station: t.StartStationName, lat: t.StartLat, lng: t.StartLng}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	points := make([]domain.StationPoint, len(order))
	for i, k := range order {
		points[i] = domain.StationPoint{
			Station: k.station,
			Lat:     k.lat,
			Lng:     k.lng,
			Rides:   counts[k],
		}
	}
	return points
}
