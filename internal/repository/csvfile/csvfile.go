package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/bikeshare/backend/internal/domain"
)

// Timestamp layouts accepted in started_at/ended_at cells
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Required dataset columns, resolved by header name so column order
// in the file is irrelevant
var requiredColumns = []string{
	"ride_id",
	"rideable_type",
	"started_at",
	"ended_at",
	"start_station_name",
	"end_station_name",
	"start_lat",
	"start_lng",
	"end_lat",
	"end_lng",
	"member_casual",
}

// Source implements domain.TripSource over a single CSV file
type Source struct {
	path string
}

// NewSource creates a CSV-backed trip source for the given file path
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads the whole dataset into memory.
// A missing file yields domain.ErrDatasetNotFound, a missing header
// column domain.ErrMissingColumn, and a malformed timestamp
// domain.ErrBadTimestamp. Blank or malformed coordinates become NaN
// rather than failing the load.
func (s *Source) Load(ctx context.Context) ([]domain.TripRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("csvfile: open %s: %w", s.path, domain.ErrDatasetNotFound)
		}
		return nil, fmt.Errorf("csvfile: open %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csvfile: %s has no header row: %w", s.path, domain.ErrMissingColumn)
		}
		return nil, fmt.Errorf("csvfile: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("csvfile: column %q: %w", name, domain.ErrMissingColumn)
		}
	}

	var trips []domain.TripRecord
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvfile: read row: %w", err)
		}
		line++

		startedAt, err := parseTimestamp(row[col["started_at"]])
		if err != nil {
			return nil, fmt.Errorf("csvfile: line %d started_at %q: %w", line, row[col["started_at"]], domain.ErrBadTimestamp)
		}
		endedAt, err := parseTimestamp(row[col["ended_at"]])
		if err != nil {
			return nil, fmt.Errorf("csvfile: line %d ended_at %q: %w", line, row[col["ended_at"]], domain.ErrBadTimestamp)
		}

		trips = append(trips, domain.TripRecord{
			RideID:           row[col["ride_id"]],
			RideableType:     row[col["rideable_type"]],
			StartedAt:        startedAt,
			EndedAt:          endedAt,
			StartStationName: row[col["start_station_name"]],
			EndStationName:   row[col["end_station_name"]],
			StartLat:         parseCoordinate(row[col["start_lat"]]),
			StartLng:         parseCoordinate(row[col["start_lng"]]),
			EndLat:           parseCoordinate(row[col["end_lat"]]),
			EndLng:           parseCoordinate(row[col["end_lng"]]),
			MemberCasual:     row[col["member_casual"]],
		})
	}

	return trips, nil
}

// parseTimestamp tries each accepted layout in order
func parseTimestamp(value string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// parseCoordinate maps blank or malformed cells to NaN
func parseCoordinate(value string) float64 {
	if value == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
