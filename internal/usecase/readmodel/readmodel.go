package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// SlotRM is one bookable candidate start in an availability grid.
type SlotRM struct {
	StartMinute          int
	EndMinute            int
	Lanes                []int
	EstimatedAmountCents int64
}

type AvailabilityRM struct {
	VenueID         uuid.UUID
	Date            string
	DurationMinutes int
	LanesRequested  int
	OpenMinute      int
	CloseMinute     int
	Slots           []SlotRM
}

type HoldRM struct {
	Token       uuid.UUID
	VenueID     uuid.UUID
	Lanes       []int
	Date        string
	StartMinute int
	EndMinute   int
	PartySize   int
	AmountCents int64
	Note        string
	ExpiresAt   time.Time
}

type BookingRM struct {
	ID            uuid.UUID
	VenueID       uuid.UUID
	Lane          int
	Date          string
	StartMinute   int
	EndMinute     int
	StartAt       time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PartySize     int
	Status        string
	PriceCents    int64
	PaymentMethod string
	PaymentRef    *string
	HoldToken     uuid.UUID
	Note          string
	CreatedAt     time.Time
}

type BookingListItemRM struct {
	ID            uuid.UUID
	VenueID       uuid.UUID
	Lane          int
	Date          string
	StartMinute   int
	EndMinute     int
	StartAt       time.Time
	CustomerName  string
	CustomerEmail string
	PartySize     int
	Status        string
	PriceCents    int64
	PaymentMethod string
	HoldToken     uuid.UUID
	CreatedAt     time.Time
}
