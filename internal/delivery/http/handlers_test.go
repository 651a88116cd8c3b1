package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikeshare/backend/internal/dataset"
	"github.com/bikeshare/backend/internal/domain"
	"github.com/bikeshare/backend/internal/repository/csvfile"
	"github.com/bikeshare/backend/internal/service"
)

type missingSource struct{}

func (missingSource) Load(ctx context.Context) ([]domain.TripRecord, error) {
	return nil, domain.ErrDatasetNotFound
}

func newTestApp(src domain.TripSource) *fiber.App {
	store := dataset.NewStore(src)
	overviewSvc := service.NewOverviewService(store, 5)
	trendsSvc := service.NewTrendsService(store)
	stationsSvc := service.NewStationsService(store, 10)
	usersSvc := service.NewUsersService(store, 20)
	dashboardSvc := service.NewDashboardService(overviewSvc, trendsSvc, stationsSvc, usersSvc)

	app := fiber.New()
	SetupRoutes(app, overviewSvc, trendsSvc, stationsSvc, usersSvc, dashboardSvc)
	return app
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(csvfile.NewMockSource())

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestViewEndpoints(t *testing.T) {
	app := newTestApp(csvfile.NewMockSource())

	routes := []string{
		"/api/v1/overview",
		"/api/v1/trends/daily",
		"/api/v1/stations/popular",
		"/api/v1/stations/map",
		"/api/v1/users/analysis",
		"/api/v1/dashboard",
	}

	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", route, nil))

			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var envelope struct {
				Success bool            `json:"success"`
				Data    json.RawMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(body, &envelope))
			assert.True(t, envelope.Success)
			assert.NotEmpty(t, envelope.Data)
		})
	}
}

func TestOverviewPayload(t *testing.T) {
	app := newTestApp(csvfile.NewMockSource())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/overview", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Data domain.OverviewPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, 7, envelope.Data.TotalRides)
	assert.Len(t, envelope.Data.Preview, 5)
}

func TestMissingDatasetBlocksEveryView(t *testing.T) {
	app := newTestApp(missingSource{})

	routes := []string{
		"/api/v1/overview",
		"/api/v1/trends/daily",
		"/api/v1/stations/popular",
		"/api/v1/users/analysis",
		"/api/v1/dashboard",
	}

	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", route, nil))

			require.NoError(t, err)
			assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		})
	}
}
