package service

import (
	"github.com/bikeshare/backend/internal/domain"
)

// TripSource is re-exported from domain for convenience
type TripSource = domain.TripSource
