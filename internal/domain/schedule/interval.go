package schedule

import "sort"

// Interval is an active claim on one lane for one date, expressed as a
// half-open [start, end) range in minutes of day. Both live holds and
// pending/confirmed reservations are flattened into this shape before any
// availability math runs; the calculator never cares which class a claim
// came from.
type Interval struct {
	Lane        int
	StartMinute int
	EndMinute   int
}

// Overlaps applies the half-open conflict rule: two ranges conflict iff
// startA < endB && startB < endA. Touching boundaries do not conflict.
func (i Interval) Overlaps(startMinute, endMinute int) bool {
	return i.StartMinute < endMinute && startMinute < i.EndMinute
}

// FreeLanes returns the lanes in [1, laneCount] with no interval
// overlapping [startMinute, endMinute), in ascending lane order. The
// ascending order is the engine-wide deterministic tie-break: every caller
// that picks N lanes picks the lowest-numbered free ones.
func FreeLanes(laneCount int, intervals []Interval, startMinute, endMinute int) []int {
	busy := make(map[int]bool, laneCount)
	for _, iv := range intervals {
		if iv.Overlaps(startMinute, endMinute) {
			busy[iv.Lane] = true
		}
	}

	free := make([]int, 0, laneCount)
	for lane := 1; lane <= laneCount; lane++ {
		if !busy[lane] {
			free = append(free, lane)
		}
	}
	sort.Ints(free)
	return free
}
