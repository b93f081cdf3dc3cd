package hold

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLanes     = errors.New("hold must claim at least one lane")
	ErrExpired     = errors.New("hold has expired")
	ErrInvalidSpan = errors.New("hold time span is invalid")
)

// Hold is a time-boxed claim on one or more lanes, identified by an opaque
// token. It never transitions state in place: it is either present and
// unexpired, or it is gone — consumed by commit, released explicitly, or
// swept after expiry.
type Hold struct {
	token       uuid.UUID
	venueID     uuid.UUID
	lanes       []int
	date        time.Time // venue-local midnight
	startMinute int
	endMinute   int
	partySize   int
	amountCents int64
	note        string
	createdAt   time.Time
	expiresAt   time.Time
}

func New(
	venueID uuid.UUID,
	lanes []int,
	date time.Time,
	startMinute, endMinute int,
	partySize int,
	amountCents int64,
	note string,
	now time.Time,
	ttl time.Duration,
) (*Hold, error) {
	if len(lanes) == 0 {
		return nil, ErrNoLanes
	}
	if startMinute < 0 || endMinute <= startMinute {
		return nil, ErrInvalidSpan
	}
	return &Hold{
		token:       uuid.New(),
		venueID:     venueID,
		lanes:       lanes,
		date:        date,
		startMinute: startMinute,
		endMinute:   endMinute,
		partySize:   partySize,
		amountCents: amountCents,
		note:        strings.TrimSpace(note),
		createdAt:   now,
		expiresAt:   now.Add(ttl),
	}, nil
}

func Reconstruct(
	token, venueID uuid.UUID,
	lanes []int,
	date time.Time,
	startMinute, endMinute int,
	partySize int,
	amountCents int64,
	note string,
	createdAt, expiresAt time.Time,
) *Hold {
	return &Hold{
		token:       token,
		venueID:     venueID,
		lanes:       lanes,
		date:        date,
		startMinute: startMinute,
		endMinute:   endMinute,
		partySize:   partySize,
		amountCents: amountCents,
		note:        note,
		createdAt:   createdAt,
		expiresAt:   expiresAt,
	}
}

// ValidateUnexpired is the finalizer's last guard: even when the sweeper
// lags, an expired hold can never be committed.
func (h *Hold) ValidateUnexpired(now time.Time) error {
	if !h.expiresAt.After(now) {
		return ErrExpired
	}
	return nil
}

func (h *Hold) Token() uuid.UUID     { return h.token }
func (h *Hold) VenueID() uuid.UUID   { return h.venueID }
func (h *Hold) Lanes() []int         { return h.lanes }
func (h *Hold) Date() time.Time      { return h.date }
func (h *Hold) StartMinute() int     { return h.startMinute }
func (h *Hold) EndMinute() int       { return h.endMinute }
func (h *Hold) PartySize() int       { return h.partySize }
func (h *Hold) AmountCents() int64   { return h.amountCents }
func (h *Hold) Note() string         { return h.note }
func (h *Hold) CreatedAt() time.Time { return h.createdAt }
func (h *Hold) ExpiresAt() time.Time { return h.expiresAt }
