package domain

import (
	"context"
	"errors"
)

// Sentinel errors for dataset loading. Handlers map these onto HTTP
// statuses; everything else is treated as an internal failure.
var (
	// ErrDatasetNotFound means the trip dataset file is absent. Fatal for
	// every view - nothing can be aggregated without the source table.
	ErrDatasetNotFound = errors.New("dataset file not found")

	// ErrMissingColumn means the dataset header lacks a required column
	ErrMissingColumn = errors.New("required column missing")

	// ErrBadTimestamp means a started_at/ended_at cell could not be parsed.
	// Invalid timestamps are never coerced to zero durations.
	ErrBadTimestamp = errors.New("unparseable timestamp")
)

// TripSource loads the raw trip table.
// This follows the Dependency Inversion Principle - domain defines the interface
type TripSource interface {
	// Load reads every trip record from the underlying source.
	// Implementations are expected to be idempotent; callers memoize the
	// result so Load runs at most once per process under normal operation.
	Load(ctx context.Context) ([]TripRecord, error)
}
