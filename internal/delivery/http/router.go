package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bikeshare/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(
	app *fiber.App,
	overviewSvc *service.OverviewService,
	trendsSvc *service.TrendsService,
	stationsSvc *service.StationsService,
	usersSvc *service.UsersService,
	dashboardSvc *service.DashboardService,
) {
	handler := NewHandler(overviewSvc, trendsSvc, stationsSvc, usersSvc, dashboardSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes, one endpoint per dashboard view.
	// Recommendations is static frontend content and has no endpoint.
	api := app.Group("/api/v1")
	{
		api.Get("/overview", handler.GetOverview)
		api.Get("/trends/daily", handler.GetDailyTrends)
		api.Get("/stations/popular", handler.GetPopularStations)
		api.Get("/stations/map", handler.GetStationMap)
		api.Get("/users/analysis", handler.GetUserAnalysis)
		api.Get("/dashboard", handler.GetDashboard)
	}
}
