package service

import (
	"context"

	"github.com/bikeshare/backend/internal/analytics"
	"github.com/bikeshare/backend/internal/dataset"
	"github.com/bikeshare/backend/internal/domain"
	"github.com/bikeshare/backend/pkg/utils"
)

// UsersService computes the user-analysis view: categorical breakdowns
// plus the duration distribution
type UsersService struct {
	store         *dataset.Store
	histogramBins int
}

// NewUsersService creates a new users service
func NewUsersService(store *dataset.Store, histogramBins int) *UsersService {
	if histogramBins <= 0 {
		histogramBins = 20
	}
	return &UsersService{store: store, histogramBins: histogramBins}
}

// GetUserAnalysis breaks rides down by user type and bike type over the
// full table, then bins durations inside the distribution window.
// Categories absent from the data report zero rather than failing.
func (s *UsersService) GetUserAnalysis(ctx context.Context) (domain.UserAnalysisPayload, error) {
	trips, err := s.store.Records(ctx)
	if err != nil {
		return domain.UserAnalysisPayload{}, err
	}

	userTypes := analytics.Breakdown(trips, analytics.UserType)
	bikeTypes := analytics.Breakdown(trips, analytics.BikeType)

	filtered := analytics.FilterByDuration(trips, analytics.DistributionWindow)
	durations := analytics.Durations(filtered)

	return domain.UserAnalysisPayload{
		UserTypes:         userTypes,
		MemberRides:       analytics.CountOf(userTypes, domain.UserMember),
		CasualRides:       analytics.CountOf(userTypes, domain.UserCasual),
		MemberPercent:     analytics.PercentOf(userTypes, domain.UserMember),
		BikeTypes:         bikeTypes,
		ClassicRides:      analytics.CountOf(bikeTypes, domain.BikeClassic),
		ElectricRides:     analytics.CountOf(bikeTypes, domain.BikeElectric),
		ElectricPercent:   analytics.PercentOf(bikeTypes, domain.BikeElectric),
		DurationHistogram: analytics.Histogram(durations, s.histogramBins),
		AvgDurationMin:    utils.RoundTo(analytics.Mean(durations), 1),
		MedianDurationMin: utils.RoundTo(analytics.Median(durations), 1),
	}, nil
}
