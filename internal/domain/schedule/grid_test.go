//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"lanebook/internal/domain/schedule"
	"lanebook/internal/domain/venue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eightLaneVenue mirrors a typical bowling floor: open 13:00-22:00, eight
// lanes, sessions from 15 minutes to two hours on a 15-minute grid.
func eightLaneVenue() venue.Config {
	return venue.Config{
		ID:                   uuid.New(),
		Name:                 "Kreuzberg Bowl",
		Timezone:             "Europe/Berlin",
		OpenMinute:           13 * 60,
		CloseMinute:          22 * 60,
		LaneCount:            8,
		MinDurationMinutes:   15,
		MaxDurationMinutes:   120,
		SlotIncrementMinutes: 15,
		HorizonDays:          60,
		LeadTimeMinutes:      15,
	}
}

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func TestBuildGrid(t *testing.T) {
	cfg := eightLaneVenue()
	rates := venue.DefaultRateTable()
	loc := berlin(t)

	// A Wednesday morning, querying the following Saturday.
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, loc)
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, loc)

	t.Run("empty day offers every start on the increment grid", func(t *testing.T) {
		slots, err := schedule.BuildGrid(cfg, rates, schedule.GridRequest{
			Date: date, DurationMinutes: 60, LanesRequested: 1,
		}, now, nil)
		require.NoError(t, err)

		// 13:00 through 21:00 inclusive, every 15 minutes.
		require.Len(t, slots, 33)
		assert.Equal(t, 13*60, slots[0].StartMinute)
		assert.Equal(t, 21*60, slots[len(slots)-1].StartMinute)
	})

	t.Run("last start leaves room for the full duration", func(t *testing.T) {
		slots, err := schedule.BuildGrid(cfg, rates, schedule.GridRequest{
			Date: date, DurationMinutes: 120, LanesRequested: 1,
		}, now, nil)
		require.NoError(t, err)

		last := slots[len(slots)-1]
		assert.Equal(t, 20*60, last.StartMinute)
		assert.Equal(t, 22*60, last.EndMinute)
	})

	t.Run("slots carry the lowest-numbered free lanes", func(t *testing.T) {
		intervals := []schedule.Interval{
			{Lane: 1, StartMinute: 18 * 60, EndMinute: 20 * 60},
			{Lane: 2, StartMinute: 18 * 60, EndMinute: 20 * 60},
		}
		slots, err := schedule.BuildGrid(cfg, rates, schedule.GridRequest{
			Date: date, DurationMinutes: 60, LanesRequested: 2,
		}, now, intervals)
		require.NoError(t, err)

		for _, s := range slots {
			if s.StartMinute == 18*60 {
				assert.Equal(t, []int{3, 4}, s.Lanes)
			}
			if s.StartMinute == 13*60 {
				assert.Equal(t, []int{1, 2}, s.Lanes)
			}
		}
	})

	t.Run("start disappears when too few lanes remain", func(t *testing.T) {
		intervals := make([]schedule.Interval, 0, 7)
		for lane := 1; lane <= 7; lane++ {
			intervals = append(intervals, schedule.Interval{Lane: lane, StartMinute: 18 * 60, EndMinute: 19 * 60})
		}
		slots, err := schedule.BuildGrid(cfg, rates, schedule.GridRequest{
			Date: date, DurationMinutes: 60, LanesRequested: 2,
		}, now, intervals)
		require.NoError(t, err)

		for _, s := range slots {
			// Any start overlapping 18:00-19:00 has only lane 8 left.
			if s.StartMinute < 19*60 && s.EndMinute > 18*60 {
				t.Fatalf("start %d should not be offered for 2 lanes", s.StartMinute)
			}
		}
	})

	t.Run("one busy lane blocks full-floor starts around it", func(t *testing.T) {
		intervals := []schedule.Interval{
			{Lane: 3, StartMinute: 18 * 60, EndMinute: 19 * 60},
		}
		slots, err := schedule.BuildGrid(cfg, rates, schedule.GridRequest{
			Date: date, DurationMinutes: 60, LanesRequested: 8,
		}, now, intervals)
		require.NoError(t, err)

		starts := make(map[int]bool, len(slots))
		for _, s := range slots {
			starts[s.StartMinute] = true
		}
		assert.True(t, starts[17*60])
		assert.True(t, starts[19*60])
		assert.False(t, starts[18*60])
		assert.False(t, starts[17*60+15])
	})

	t.Run("same-day grid drops starts inside the lead time", func(t *testing.T) {
		sameDayNow := time.Date(2026, 9, 5, 18, 0, 0, 0, loc)
		slots, err := schedule.BuildGrid(cfg, rates, schedule.GridRequest{
			Date: date, DurationMinutes: 60, LanesRequested: 1,
		}, sameDayNow, nil)
		require.NoError(t, err)

		// 18:00 + 15 minutes lead time: 18:15 is excluded, 18:30 is first.
		require.NotEmpty(t, slots)
		assert.Equal(t, 18*60+30, slots[0].StartMinute)
	})

	t.Run("weekend slot carries the weekend estimate", func(t *testing.T) {
		slots, err := schedule.BuildGrid(cfg, rates, schedule.GridRequest{
			Date: date, DurationMinutes: 60, LanesRequested: 2,
		}, now, nil)
		require.NoError(t, err)

		// Saturday, 2 lanes, 1 hour at 1800 cents per lane-hour.
		assert.Equal(t, int64(3600), slots[0].EstimatedAmountCents)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name  string
			req   schedule.GridRequest
			now   time.Time
			errIs error
		}{
			{
				name:  "date in the past",
				req:   schedule.GridRequest{Date: date.AddDate(0, 0, -10), DurationMinutes: 60, LanesRequested: 1},
				now:   now,
				errIs: schedule.ErrDateInPast,
			},
			{
				name:  "date beyond horizon",
				req:   schedule.GridRequest{Date: date.AddDate(0, 0, 90), DurationMinutes: 60, LanesRequested: 1},
				now:   now,
				errIs: schedule.ErrDateBeyondHorizon,
			},
			{
				name:  "duration off the increment grid",
				req:   schedule.GridRequest{Date: date, DurationMinutes: 50, LanesRequested: 1},
				now:   now,
				errIs: schedule.ErrInvalidDuration,
			},
			{
				name:  "duration above maximum",
				req:   schedule.GridRequest{Date: date, DurationMinutes: 180, LanesRequested: 1},
				now:   now,
				errIs: schedule.ErrInvalidDuration,
			},
			{
				name:  "more lanes than the venue has",
				req:   schedule.GridRequest{Date: date, DurationMinutes: 60, LanesRequested: 9},
				now:   now,
				errIs: schedule.ErrInvalidLaneCount,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := schedule.BuildGrid(cfg, rates, tc.req, tc.now, nil)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
