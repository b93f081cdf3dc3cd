package schedule

import (
	"errors"
	"time"

	"lanebook/internal/domain/venue"
)

var (
	ErrDateInPast        = errors.New("date is in the past")
	ErrDateBeyondHorizon = errors.New("date is beyond the booking horizon")
	ErrInvalidDuration   = errors.New("duration outside configured bounds")
	ErrInvalidLaneCount  = errors.New("lane count outside configured bounds")
)

type GridRequest struct {
	Date            time.Time // any instant on the requested day, venue timezone
	DurationMinutes int
	LanesRequested  int
}

// Slot is one bookable candidate start. Lanes holds the lowest-numbered
// free lanes, truncated to the requested count; the full free set is not
// exposed because the hold path re-derives it anyway.
type Slot struct {
	StartMinute          int
	EndMinute            int
	Lanes                []int
	EstimatedAmountCents int64
}

// BuildGrid computes the bookable start times for one day. Pure: it reads
// the supplied intervals and never claims anything, so it is safe to call
// on every form change. The grid is advisory the moment it is returned —
// only the hold manager's own in-transaction check is authoritative.
func BuildGrid(
	cfg venue.Config,
	rates *venue.RateTable,
	req GridRequest,
	now time.Time,
	intervals []Interval,
) ([]Slot, error) {
	if err := validateRequest(cfg, req, now); err != nil {
		return nil, err
	}

	// Same-day candidates must start at least LeadTimeMinutes from now.
	minStart := -1
	if sameDay(req.Date, now) {
		minStart = minutesOfDay(now) + cfg.LeadTimeMinutes
	}

	var slots []Slot
	for start := cfg.OpenMinute; start+req.DurationMinutes <= cfg.CloseMinute; start += cfg.SlotIncrementMinutes {
		if start <= minStart {
			continue
		}
		end := start + req.DurationMinutes

		free := FreeLanes(cfg.LaneCount, intervals, start, end)
		if len(free) < req.LanesRequested {
			continue
		}

		slots = append(slots, Slot{
			StartMinute:          start,
			EndMinute:            end,
			Lanes:                free[:req.LanesRequested],
			EstimatedAmountCents: rates.Amount(req.Date, req.DurationMinutes, req.LanesRequested),
		})
	}
	return slots, nil
}

func validateRequest(cfg venue.Config, req GridRequest, now time.Time) error {
	if !cfg.AllowsDuration(req.DurationMinutes) {
		return ErrInvalidDuration
	}
	if !cfg.AllowsLaneCount(req.LanesRequested) {
		return ErrInvalidLaneCount
	}

	reqDay := startOfDay(req.Date)
	today := startOfDay(now)
	if reqDay.Before(today) {
		return ErrDateInPast
	}
	if reqDay.After(today.AddDate(0, 0, cfg.HorizonDays)) {
		return ErrDateBeyondHorizon
	}
	return nil
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
