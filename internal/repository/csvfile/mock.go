package csvfile

import (
	"context"
	"math"
	"time"

	"github.com/bikeshare/backend/internal/domain"
)

// MockSource implements domain.TripSource for testing/demo mode
type MockSource struct{}

// NewMockSource creates a new mock trip source
func NewMockSource() *MockSource {
	return &MockSource{}
}

// Load returns a small fixed sample of January 2022 style trips spanning
// two days, three stations, both user types and both bike types. One
// record carries NaN coordinates the way blank cells parse from CSV.
func (s *MockSource) Load(ctx context.Context) ([]domain.TripRecord, error) {
	day1 := time.Date(2022, 1, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2022, 1, 11, 17, 30, 0, 0, time.UTC)

	return []domain.TripRecord{
		{
			RideID:           "A1B2C3D4E5F60001",
			RideableType:     domain.BikeClassic,
			StartedAt:        day1,
			EndedAt:          day1.Add(12 * time.Minute),
			StartStationName: "W 21 St & 6 Ave",
			EndStationName:   "E 17 St & Broadway",
			StartLat:         40.7417, StartLng: -73.9942,
			EndLat: 40.7371, EndLng: -73.9901,
			MemberCasual: domain.UserMember,
		},
		{
			RideID:           "A1B2C3D4E5F60002",
			RideableType:     domain.BikeElectric,
			StartedAt:        day1.Add(45 * time.Minute),
			EndedAt:          day1.Add(45*time.Minute + 8*time.Minute),
			StartStationName: "W 21 St & 6 Ave",
			EndStationName:   "Broadway & W 58 St",
			StartLat:         40.7417, StartLng: -73.9942,
			EndLat: 40.7669, EndLng: -73.9817,
			MemberCasual: domain.UserMember,
		},
		{
			RideID:           "A1B2C3D4E5F60003",
			RideableType:     domain.BikeClassic,
			StartedAt:        day1.Add(2 * time.Hour),
			EndedAt:          day1.Add(2*time.Hour + 25*time.Minute),
			StartStationName: "E 17 St & Broadway",
			EndStationName:   "W 21 St & 6 Ave",
			StartLat:         40.7371, StartLng: -73.9901,
			EndLat: 40.7417, EndLng: -73.9942,
			MemberCasual: domain.UserCasual,
		},
		{
			RideID:           "A1B2C3D4E5F60004",
			RideableType:     domain.BikeElectric,
			StartedAt:        day2,
			EndedAt:          day2.Add(35 * time.Minute),
			StartStationName: "Broadway & W 58 St",
			EndStationName:   "E 17 St & Broadway",
			StartLat:         40.7669, StartLng: -73.9817,
			EndLat: 40.7371, EndLng: -73.9901,
			MemberCasual: domain.UserCasual,
		},
		{
			RideID:           "A1B2C3D4E5F60005",
			RideableType:     domain.BikeClassic,
			StartedAt:        day2.Add(20 * time.Minute),
			EndedAt:          day2.Add(20*time.Minute + 5*time.Minute),
			StartStationName: "E 17 St & Broadway",
			EndStationName:   "Broadway & W 58 St",
			StartLat:         40.7371, StartLng: -73.9901,
			EndLat: 40.7669, EndLng: -73.9817,
			MemberCasual: domain.UserMember,
		},
		{
			RideID:           "A1B2C3D4E5F60006",
			RideableType:     domain.BikeElectric,
			StartedAt:        day2.Add(time.Hour),
			EndedAt:          day2.Add(time.Hour + 3*time.Hour),
			StartStationName: "W 21 St & 6 Ave",
			EndStationName:   "W 21 St & 6 Ave",
			StartLat:         40.7417, StartLng: -73.9942,
			EndLat: 40.7417, EndLng: -73.9942,
			MemberCasual: domain.UserCasual,
		},
		{
			RideID:           "A1B2C3D4E5F60007",
			RideableType:     domain.BikeClassic,
			StartedAt:        day2.Add(90 * time.Minute),
			EndedAt:          day2.Add(90*time.Minute + 18*time.Minute),
			StartStationName: "Central Park S & 6 Ave",
			EndStationName:   "W 21 St & 6 Ave",
			StartLat:         math.NaN(), StartLng: math.NaN(),
			EndLat: 40.7417, EndLng: -73.9942,
			MemberCasual: domain.UserMember,
		},
	}, nil
}
