//go:build unit || integration

package builder

import (
	"time"

	"lanebook/internal/domain/hold"
	"lanebook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// HoldBuilder assembles hold fixtures. Defaults describe a two-lane
// Saturday evening session held at 17:30 for a 19:00 start.
type HoldBuilder struct {
	venueID     uuid.UUID
	lanes       []int
	date        time.Time
	startMinute int
	endMinute   int
	partySize   int
	amountCents int64
	note        string
	now         time.Time
	ttl         time.Duration
}

func NewHoldBuilder() *HoldBuilder {
	return &HoldBuilder{
		venueID:     uuid.New(),
		lanes:       []int{1, 2},
		date:        time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		startMinute: 19 * 60,
		endMinute:   20 * 60,
		partySize:   6,
		amountCents: 3600,
		now:         time.Date(2026, 9, 5, 17, 30, 0, 0, time.UTC),
		ttl:         30 * time.Minute,
	}
}

func (b *HoldBuilder) WithVenueID(id uuid.UUID) *HoldBuilder {
	b.venueID = id
	return b
}

func (b *HoldBuilder) WithLanes(lanes ...int) *HoldBuilder {
	b.lanes = lanes
	return b
}

func (b *HoldBuilder) WithWindow(startMinute, endMinute int) *HoldBuilder {
	b.startMinute = startMinute
	b.endMinute = endMinute
	return b
}

func (b *HoldBuilder) WithDate(date time.Time) *HoldBuilder {
	b.date = date
	return b
}

func (b *HoldBuilder) WithNow(now time.Time) *HoldBuilder {
	b.now = now
	return b
}

func (b *HoldBuilder) WithTTL(ttl time.Duration) *HoldBuilder {
	b.ttl = ttl
	return b
}

func (b *HoldBuilder) WithAmountCents(cents int64) *HoldBuilder {
	b.amountCents = cents
	return b
}

func (b *HoldBuilder) WithNote(note string) *HoldBuilder {
	b.note = note
	return b
}

func (b *HoldBuilder) BuildDomain() (*hold.Hold, error) {
	return hold.New(b.venueID, b.lanes, b.date, b.startMinute, b.endMinute, b.partySize, b.amountCents, b.note, b.now, b.ttl)
}

func (b *HoldBuilder) BuildRM() *readmodel.HoldRM {
	return &readmodel.HoldRM{
		Token:       uuid.New(),
		VenueID:     b.venueID,
		Lanes:       b.lanes,
		Date:        b.date.Format("2006-01-02"),
		StartMinute: b.startMinute,
		EndMinute:   b.endMinute,
		PartySize:   b.partySize,
		AmountCents: b.amountCents,
		Note:        b.note,
		ExpiresAt:   b.now.Add(b.ttl),
	}
}

// BuildCreateRequestMap is the JSON body for POST /holds as a mutable map.
func (b *HoldBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"venue_id":     b.venueID.String(),
		"date":         b.date.Format("2006-01-02"),
		"start_minute": b.startMinute,
		"duration":     b.endMinute - b.startMinute,
		"lanes":        len(b.lanes),
		"party_size":   b.partySize,
		"note":         b.note,
	}
}
