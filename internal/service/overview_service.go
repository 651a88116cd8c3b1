package service

import (
	"context"

	"github.com/bikeshare/backend/internal/dataset"
	"github.com/bikeshare/backend/internal/domain"
)

// OverviewService computes the landing-view dataset summary
type OverviewService struct {
	store       *dataset.Store
	previewRows int
}

// NewOverviewService creates a new overview service
func NewOverviewService(store *dataset.Store, previewRows int) *OverviewService {
	if previewRows <= 0 {
		previewRows = 5
	}
	return &OverviewService{store: store, previewRows: previewRows}
}

// GetOverview returns total rides, unique start stations, the observed
// started_at range and a head-of-table preview. The preview is the only
// place raw rows leave the backend.
func (s *OverviewService) GetOverview(ctx context.Context) (domain.OverviewPayload, error) {
	trips, err := s.store.Records(ctx)
	if err != nil {
		return domain.OverviewPayload{}, err
	}

	payload := domain.OverviewPayload{
		TotalRides: len(trips),
		Preview:    []domain.TripRecord{},
	}
	if len(trips) == 0 {
		return payload, nil
	}

	stations := make(map[string]struct{})
	payload.FirstStartedAt = trips[0].StartedAt
	payload.LastStartedAt = trips[0].StartedAt
	for _, t := range trips {
		stations[t.StartStationName] = struct{}{}
		if t.StartedAt.Before(payload.FirstStartedAt) {
			payload.FirstStartedAt = t.StartedAt
		}
		if t.StartedAt.After(payload.LastStartedAt) {
			payload.LastStartedAt = t.StartedAt
		}
	}
	payload.UniqueStartStations = len(stations)

	n := s.previewRows
	if n > len(trips) {
		n = len(trips)
	}
	payload.Preview = trips[:n]

	return payload, nil
}
