package service

import (
	"context"
	"time"

	"github.com/bikeshare/backend/internal/domain"
)

// DashboardService composes every view into a single payload
type DashboardService struct {
	overviewSvc *OverviewService
	trendsSvc   *TrendsService
	stationsSvc *StationsService
	usersSvc    *UsersService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	overviewSvc *OverviewService,
	trendsSvc *TrendsService,
	stationsSvc *StationsService,
	usersSvc *UsersService,
) *DashboardService {
	return &DashboardService{
		overviewSvc: overviewSvc,
		trendsSvc:   trendsSvc,
		stationsSvc: stationsSvc,
		usersSvc:    usersSvc,
	}
}

// GetDashboard recomputes every view over the cached table. All views
// read the same memoized records, so this stays sequential; the first
// failing view aborts the whole payload.
func (s *DashboardService) GetDashboard(ctx context.Context) (domain.DashboardPayload, error) {
	overview, err := s.overviewSvc.GetOverview(ctx)
	if err != nil {
		return domain.DashboardPayload{}, err
	}

	trends, err := s.trendsSvc.GetDailyTrends(ctx)
	if err != nil {
		return domain.DashboardPayload{}, err
	}

	stations, err := s.stationsSvc.GetPopularStations(ctx)
	if err != nil {
		return domain.DashboardPayload{}, err
	}

	users, err := s.usersSvc.GetUserAnalysis(ctx)
	if err != nil {
		return domain.DashboardPayload{}, err
	}

	return domain.DashboardPayload{
		Overview:  overview,
		Trends:    trends,
		Stations:  stations,
		Users:     users,
		Timestamp: time.Now(),
	}, nil
}
