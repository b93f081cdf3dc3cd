package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
	ErrCancellationLate  = errors.New("too late to cancel")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrNotPendingPayment = errors.New("reservation is not awaiting payment")
)

// Reservation is one lane's durable claim, created by consuming a hold.
// Multi-lane sessions produce one Reservation per lane sharing the hold
// token as their group key.
type Reservation struct {
	id            uuid.UUID
	venueID       uuid.UUID
	lane          int
	date          time.Time // midnight of the booking day
	startMinute   int
	endMinute     int
	startAt       time.Time // absolute start instant, venue timezone
	customer      CustomerDetails
	partySize     int
	status        Status
	price         Money
	paymentMethod PaymentMethod
	paymentRef    *string
	holdToken     uuid.UUID
	note          Note
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(
	venueID uuid.UUID,
	lane int,
	date time.Time,
	startMinute, endMinute int,
	customer CustomerDetails,
	partySize int,
	price Money,
	paymentMethod PaymentMethod,
	holdToken uuid.UUID,
	note Note,
) (*Reservation, error) {
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}
	if !paymentMethod.IsValid() {
		paymentMethod = PaymentOnSite
	}
	// The start instant is built from wall-clock components, not by adding
	// minutes to midnight: on DST-transition days those differ by an hour.
	y, m, d := date.Date()
	startAt := time.Date(y, m, d, startMinute/60, startMinute%60, 0, 0, date.Location())
	return &Reservation{
		id:            uuid.New(),
		venueID:       venueID,
		lane:          lane,
		date:          date,
		startMinute:   startMinute,
		endMinute:     endMinute,
		startAt:       startAt,
		customer:      customer,
		partySize:     partySize,
		status:        StatusPending,
		price:         price,
		paymentMethod: paymentMethod,
		holdToken:     holdToken,
		note:          note,
	}, nil
}

func ReconstructReservation(
	id, venueID uuid.UUID,
	lane int,
	date time.Time,
	startMinute, endMinute int,
	startAt time.Time,
	customer CustomerDetails,
	partySize int,
	status Status,
	price Money,
	paymentMethod PaymentMethod,
	paymentRef *string,
	holdToken uuid.UUID,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		venueID:       venueID,
		lane:          lane,
		date:          date,
		startMinute:   startMinute,
		endMinute:     endMinute,
		startAt:       startAt,
		customer:      customer,
		partySize:     partySize,
		status:        status,
		price:         price,
		paymentMethod: paymentMethod,
		paymentRef:    paymentRef,
		holdToken:     holdToken,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// StartTime is the reservation's absolute start instant.
func (r *Reservation) StartTime() time.Time {
	return r.startAt
}

// ValidateCancellation enforces the cutoff policy: cancellation is denied
// once the start is closer than the cutoff, and for already-cancelled rows.
func (r *Reservation) ValidateCancellation(now time.Time, cutoff time.Duration) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if now.After(r.StartTime().Add(-cutoff)) {
		return ErrCancellationLate
	}
	return nil
}

// MarkConfirmed records the external payment collaborator's pending →
// confirmed transition. The engine only stores the result.
func (r *Reservation) MarkConfirmed(paymentRef string) error {
	if r.status != StatusPending {
		return ErrNotPendingPayment
	}
	r.status = StatusConfirmed
	r.paymentRef = &paymentRef
	return nil
}

func (r *Reservation) MarkCancelled() {
	r.status = StatusCancelled
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) VenueID() uuid.UUID            { return r.venueID }
func (r *Reservation) Lane() int                     { return r.lane }
func (r *Reservation) Date() time.Time               { return r.date }
func (r *Reservation) StartMinute() int              { return r.startMinute }
func (r *Reservation) EndMinute() int                { return r.endMinute }
func (r *Reservation) Customer() CustomerDetails     { return r.customer }
func (r *Reservation) PartySize() int                { return r.partySize }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) Price() Money                  { return r.price }
func (r *Reservation) PaymentMethod() PaymentMethod  { return r.paymentMethod }
func (r *Reservation) PaymentRef() *string           { return r.paymentRef }
func (r *Reservation) HoldToken() uuid.UUID          { return r.holdToken }
func (r *Reservation) Note() Note                    { return r.note }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
