// Package dataset memoizes the raw trip table for the process lifetime.
// The first caller populates the cache, every later caller reads the
// same slice; load failures are not cached, so a later call retries.
package dataset

import (
	"context"
	"fmt"

	"github.com/bluele/gcache"

	"github.com/bikeshare/backend/internal/domain"
)

const recordsKey = "records"

// Store wraps a TripSource behind an at-most-once-per-key loader cache
type Store struct {
	cache gcache.Cache
}

// NewStore creates a memoizing store over the given source
func NewStore(src domain.TripSource) *Store {
	cache := gcache.New(1).
		Simple().
		LoaderFunc(func(key interface{}) (interface{}, error) {
			// gcache loaders carry no context; the load is a bounded
			// local file read, so a background context is fine here.
			return src.Load(context.Background())
		}).
		Build()

	return &Store{cache: cache}
}

// Records returns the cached trip table, loading it on first use.
// Aggregation must not proceed when an error is returned.
func (s *Store) Records(ctx context.Context) ([]domain.TripRecord, error) {
	v, err := s.cache.Get(recordsKey)
	if err != nil {
		return nil, err
	}

	trips, ok := v.([]domain.TripRecord)
	if !ok {
		return nil, fmt.Errorf("dataset: unexpected cache entry type %T", v)
	}
	return trips, nil
}

// Reset drops the cached table so the next Records call re-reads the source
func (s *Store) Reset() {
	s.cache.Remove(recordsKey)
}
