package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bikeshare/backend/internal/domain"
	"github.com/bikeshare/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	overviewSvc  *service.OverviewService
	trendsSvc    *service.TrendsService
	stationsSvc  *service.StationsService
	usersSvc     *service.UsersService
	dashboardSvc *service.DashboardService
}

// NewHandler creates a new handler
func NewHandler(
	overviewSvc *service.OverviewService,
	trendsSvc *service.TrendsService,
	stationsSvc *service.StationsService,
	usersSvc *service.UsersService,
	dashboardSvc *service.DashboardService,
) *Handler {
	return &Handler{
		overviewSvc:  overviewSvc,
		trendsSvc:    trendsSvc,
		stationsSvc:  stationsSvc,
		usersSvc:     usersSvc,
		dashboardSvc: dashboardSvc,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "bikeshare-backend",
		"version": "1.0.0",
	})
}

// GetOverview returns the landing-view dataset summary
func (h *Handler) GetOverview(c *fiber.Ctx) error {
	data, err := h.overviewSvc.GetOverview(c.Context())
	if err != nil {
		return viewError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// GetDailyTrends returns the daily ride time series with summary metrics
func (h *Handler) GetDailyTrends(c *fiber.Ctx) error {
	data, err := h.trendsSvc.GetDailyTrends(c.Context())
	if err != nil {
		return viewError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// GetPopularStations returns the start/end station rankings
func (h *Handler) GetPopularStations(c *fiber.Ctx) error {
	data, err := h.stationsSvc.GetPopularStations(c.Context())
	if err != nil {
		return viewError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// GetStationMap returns the geographic station scatter with its viewport
func (h *Handler) GetStationMap(c *fiber.Ctx) error {
	data, err := h.stationsSvc.GetStationMap(c.Context())
	if err != nil {
		return viewError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// GetUserAnalysis returns the user/bike breakdowns and duration histogram
func (h *Handler) GetUserAnalysis(c *fiber.Ctx) error {
	data, err := h.usersSvc.GetUserAnalysis(c.Context())
	if err != nil {
		return viewError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// GetDashboard returns every view composed into one payload
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardSvc.GetDashboard(c.Context())
	if err != nil {
		return viewError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// viewError maps dataset failures onto user-facing HTTP errors.
// A missing dataset blocks every view; malformed input aborts only the
// requested view. Nothing is retried and no partial result is rendered.
func viewError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDatasetNotFound):
		return fiber.NewError(fiber.StatusServiceUnavailable,
			"Trip dataset file not found. Place the CSV at the configured DATASET_PATH and try again.")
	case errors.Is(err, domain.ErrBadTimestamp):
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"Trip dataset contains an unparseable timestamp.")
	case errors.Is(err, domain.ErrMissingColumn):
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			"Trip dataset is missing a required column.")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute view")
	}
}
