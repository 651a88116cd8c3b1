package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/bikeshare/backend/internal/dataset"
	"github.com/bikeshare/backend/internal/delivery/http"
	"github.com/bikeshare/backend/internal/domain"
	"github.com/bikeshare/backend/internal/repository/csvfile"
	"github.com/bikeshare/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	// Dependency Injection: trip source + memoized dataset store
	var src domain.TripSource
	if cfg.DemoMode {
		log.Println("DEMO_MODE set, serving built-in sample trips")
		src = csvfile.NewMockSource()
	} else {
		src = csvfile.NewSource(cfg.DatasetPath)
	}
	store := dataset.NewStore(src)

	// Warm the cache once at startup. A failure is not fatal: the server
	// still runs and every view reports the load error to the user.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if trips, err := store.Records(ctx); err != nil {
		log.Printf("Warning: dataset not loaded: %v", err)
		log.Println("Views will report the failure until the dataset is available")
	} else {
		log.Printf("Loaded %d trip records", len(trips))
	}
	cancel()

	// Dependency Injection: Services
	overviewSvc := service.NewOverviewService(store, cfg.PreviewRows)
	trendsSvc := service.NewTrendsService(store)
	stationsSvc := service.NewStationsService(store, cfg.TopStations)
	usersSvc := service.NewUsersService(store, cfg.HistogramBins)
	dashboardSvc := service.NewDashboardService(overviewSvc, trendsSvc, stationsSvc, usersSvc)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Bikeshare Analytics API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, overviewSvc, trendsSvc, stationsSvc, usersSvc, dashboardSvc)

	// Graceful shutdown
	go func() {
		port := cfg.Port
		if port == "" {
			port = "8080"
		}
		log.Printf("Server starting on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

type Config struct {
	Port          string
	DatasetPath   string
	PreviewRows   int
	TopStations   int
	HistogramBins int
	DemoMode      bool
	Env           string
}

func loadConfig() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatasetPath:   getEnv("DATASET_PATH", "data/202201-citibike-tripdata_1_sample.csv"),
		PreviewRows:   getEnvInt("PREVIEW_ROWS", 5),
		TopStations:   getEnvInt("TOP_STATIONS", 10),
		HistogramBins: getEnvInt("HISTOGRAM_BINS", 20),
		DemoMode:      getEnv("DEMO_MODE", "") != "",
		Env:           getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: %s=%q is not an integer, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
