//go:build unit

package venue_test

import (
	"testing"
	"time"

	"lanebook/internal/domain/venue"

	"github.com/stretchr/testify/assert"
)

func TestRateTableAmount(t *testing.T) {
	rt := venue.DefaultRateTable()

	wednesday := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		duration int
		lanes    int
		want     int64
	}{
		{name: "weekday one lane one hour", date: wednesday, duration: 60, lanes: 1, want: 1500},
		{name: "friday uses the weekend rate", date: friday, duration: 60, lanes: 1, want: 1800},
		{name: "saturday uses the weekend rate", date: saturday, duration: 60, lanes: 1, want: 1800},
		{name: "sunday is a weekday rate", date: sunday, duration: 60, lanes: 1, want: 1500},
		{name: "fraction of an hour rounds down", date: wednesday, duration: 45, lanes: 1, want: 1125},
		{name: "multiple lanes multiply", date: saturday, duration: 90, lanes: 3, want: 8100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rt.Amount(tt.date, tt.duration, tt.lanes))
		})
	}
}

func TestRateTableValidate(t *testing.T) {
	assert.NoError(t, venue.DefaultRateTable().Validate())
	assert.ErrorIs(t, (&venue.RateTable{WeekdayHourCents: 0, WeekendHourCents: 1800}).Validate(), venue.ErrInvalidRateTable)
}

func TestConfigAllowsDuration(t *testing.T) {
	cfg := venue.Config{
		OpenMinute:           13 * 60,
		CloseMinute:          22 * 60,
		LaneCount:            8,
		MinDurationMinutes:   15,
		MaxDurationMinutes:   120,
		SlotIncrementMinutes: 15,
	}

	assert.True(t, cfg.AllowsDuration(15))
	assert.True(t, cfg.AllowsDuration(90))
	assert.True(t, cfg.AllowsDuration(120))
	assert.False(t, cfg.AllowsDuration(10))
	assert.False(t, cfg.AllowsDuration(50))
	assert.False(t, cfg.AllowsDuration(135))

	assert.True(t, cfg.AllowsLaneCount(1))
	assert.True(t, cfg.AllowsLaneCount(8))
	assert.False(t, cfg.AllowsLaneCount(0))
	assert.False(t, cfg.AllowsLaneCount(9))
}
