package service

import (
	"context"

	"github.com/bikeshare/backend/internal/analytics"
	"github.com/bikeshare/backend/internal/dataset"
	"github.com/bikeshare/backend/internal/domain"
	"github.com/bikeshare/backend/internal/spatial"
	"github.com/bikeshare/backend/pkg/utils"
)

// StationsService computes station rankings and the geographic scatter
type StationsService struct {
	store *dataset.Store
	topN  int
}

// NewStationsService creates a new stations service
func NewStationsService(store *dataset.Store, topN int) *StationsService {
	if topN <= 0 {
		topN = 10
	}
	return &StationsService{store: store, topN: topN}
}

// GetPopularStations ranks start and end stations by ride count
func (s *StationsService) GetPopularStations(ctx context.Context) (domain.PopularStationsPayload, error) {
	trips, err := s.store.Records(ctx)
	if err != nil {
		return domain.PopularStationsPayload{}, err
	}

	return domain.PopularStationsPayload{
		StartStations: analytics.TopN(trips, analytics.StartStation, s.topN),
		EndStations:   analytics.TopN(trips, analytics.EndStation, s.topN),
	}, nil
}

// GetStationMap aggregates rides per unique station location and derives
// the map viewport from the surviving points
func (s *StationsService) GetStationMap(ctx context.Context) (domain.StationMapPayload, error) {
	trips, err := s.store.Records(ctx)
	if err != nil {
		return domain.StationMapPayload{}, err
	}

	points := analytics.GroupStations(trips)
	payload := domain.StationMapPayload{Points: points}

	lats := make([]float64, len(points))
	lngs := make([]float64, len(points))
	for i, p := range points {
		lats[i] = p.Lat
		lngs[i] = p.Lng
	}

	if b, ok := spatial.BoundsOf(lats, lngs); ok {
		diagonal := spatial.HaversineDistance(b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
		payload.Viewport = domain.MapViewport{
			CenterLat: b.CenterLat,
			CenterLng: b.CenterLng,
			MinLat:    b.MinLat,
			MinLng:    b.MinLng,
			MaxLat:    b.MaxLat,
			MaxLng:    b.MaxLng,
			SpanKm:    utils.RoundTo(diagonal/1000, 2),
		}
	}

	return payload, nil
}
