//go:build integration

package integration

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"lanebook/internal/domain/schedule"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase"

	"github.com/stretchr/testify/require"
)

// TestNoOverlappingActiveIntervals hammers a two-lane venue with randomized
// concurrent hold attempts over a small evening window, commits or releases
// a random share of the winners, and then checks the store directly: no two
// active claims on one lane may overlap. Losing a slot race is the expected
// outcome for most workers; any other error fails the run.
func TestNoOverlappingActiveIntervals(t *testing.T) {
	env := newTestEnv(t, 2, berlinTime(t, 4, 10, 0))
	ctx := context.Background()

	const workers = 24
	durations := []int{30, 60, 90}

	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))

			// Starts on the 15-minute grid between 18:00 and 20:30.
			start := 18*60 + 15*rng.Intn(11)
			duration := durations[rng.Intn(len(durations))]
			lanes := 1 + rng.Intn(2)

			hold, err := env.holds.Create(ctx, usecase.CreateHoldCommand{
				VenueID:         env.venueID,
				Date:            testDate,
				StartMinute:     start,
				DurationMinutes: duration,
				LanesRequested:  lanes,
				PartySize:       1 + rng.Intn(6),
			})
			if err != nil {
				if !errors.Is(err, errs.ErrSlotUnavailable) {
					errCh <- fmt.Errorf("hold (start=%d dur=%d lanes=%d): %w", start, duration, lanes, err)
				}
				return
			}

			switch rng.Intn(3) {
			case 0:
				if _, err := env.bookings.Commit(ctx, usecase.CommitHoldCommand{
					HoldToken:     hold.Token,
					CustomerName:  "Ada Kowalski",
					CustomerEmail: "ada@example.com",
				}); err != nil {
					errCh <- fmt.Errorf("commit: %w", err)
				}
			case 1:
				if err := env.holds.Release(ctx, hold.Token); err != nil {
					errCh <- fmt.Errorf("release: %w", err)
				}
			default:
				// Leave the hold live; it must block its window like a booking.
			}
		}(int64(w) + 1)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Error(err)
	}

	intervals := activeIntervals(t, env)
	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			a, b := intervals[i], intervals[j]
			if a.Lane == b.Lane && a.Overlaps(b.StartMinute, b.EndMinute) {
				t.Errorf("lane %d double-claimed: [%d,%d) overlaps [%d,%d)",
					a.Lane, a.StartMinute, a.EndMinute, b.StartMinute, b.EndMinute)
			}
		}
	}
}

// activeIntervals reads the store's whole active set for the test day:
// non-cancelled bookings plus unexpired holds.
func activeIntervals(t *testing.T, env *testEnv) []schedule.Interval {
	t.Helper()

	const query = `
SELECT lane_no, start_minute, end_minute
FROM lane_bookings
WHERE venue_id = $1 AND booking_date = $2::date AND status <> 'cancelled'
UNION ALL
SELECT lane_no, start_minute, end_minute
FROM lane_holds
WHERE venue_id = $1 AND booking_date = $2::date AND expires_at > $3`

	rows, err := env.pool.Query(context.Background(), query, env.venueID, testDate, env.clock.Now())
	require.NoError(t, err)
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		require.NoError(t, rows.Scan(&iv.Lane, &iv.StartMinute, &iv.EndMinute))
		intervals = append(intervals, iv)
	}
	require.NoError(t, rows.Err())
	return intervals
}
