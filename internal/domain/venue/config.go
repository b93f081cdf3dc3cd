package venue

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOperatingWindow = errors.New("operating window is invalid")
	ErrInvalidLaneCount       = errors.New("lane count must be at least 1")
	ErrInvalidDurationBounds  = errors.New("duration bounds are invalid")
	ErrUnknownTimezone        = errors.New("unknown venue timezone")
)

// Config is the immutable-per-request snapshot of a venue's operating
// parameters. It is supplied by the config provider and never written by
// the engine; every availability query loads a fresh copy.
type Config struct {
	ID                   uuid.UUID
	Name                 string
	Timezone             string
	OpenMinute           int // minutes of day, inclusive
	CloseMinute          int // minutes of day, exclusive
	LaneCount            int
	MinDurationMinutes   int
	MaxDurationMinutes   int
	SlotIncrementMinutes int
	HorizonDays          int
	LeadTimeMinutes      int
}

func (c Config) Validate() error {
	if c.OpenMinute < 0 || c.CloseMinute > 24*60 || c.OpenMinute >= c.CloseMinute {
		return ErrInvalidOperatingWindow
	}
	if c.LaneCount < 1 {
		return ErrInvalidLaneCount
	}
	if c.MinDurationMinutes <= 0 || c.MaxDurationMinutes < c.MinDurationMinutes || c.SlotIncrementMinutes <= 0 {
		return ErrInvalidDurationBounds
	}
	return nil
}

// Location resolves the venue timezone. All day-boundary arithmetic in the
// engine happens in this single location.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, ErrUnknownTimezone
	}
	return loc, nil
}

// AllowsDuration reports whether d is within the configured bounds and on
// the increment grid.
func (c Config) AllowsDuration(d int) bool {
	if d < c.MinDurationMinutes || d > c.MaxDurationMinutes {
		return false
	}
	return d%c.SlotIncrementMinutes == 0
}

func (c Config) AllowsLaneCount(n int) bool {
	return n >= 1 && n <= c.LaneCount
}
