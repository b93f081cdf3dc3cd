//go:build unit || integration

package builder

import (
	"time"

	"lanebook/internal/domain/booking"
	"lanebook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	venueID       uuid.UUID
	lane          int
	date          time.Time
	startMinute   int
	endMinute     int
	name          string
	email         string
	phone         string
	partySize     int
	priceCents    int64
	paymentMethod booking.PaymentMethod
	holdToken     uuid.UUID
	note          string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		venueID:       uuid.New(),
		lane:          1,
		date:          time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		startMinute:   19 * 60,
		endMinute:     20 * 60,
		name:          "Ada Kowalski",
		email:         "ada@example.com",
		phone:         "+49 30 1234567",
		partySize:     4,
		priceCents:    1800,
		paymentMethod: booking.PaymentOnSite,
		holdToken:     uuid.New(),
		note:          "",
	}
}

func (b *BookingBuilder) WithLane(lane int) *BookingBuilder {
	b.lane = lane
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.date = date
	return b
}

func (b *BookingBuilder) WithWindow(startMinute, endMinute int) *BookingBuilder {
	b.startMinute = startMinute
	b.endMinute = endMinute
	return b
}

func (b *BookingBuilder) WithCustomer(name, email, phone string) *BookingBuilder {
	b.name = name
	b.email = email
	b.phone = phone
	return b
}

func (b *BookingBuilder) WithHoldToken(token uuid.UUID) *BookingBuilder {
	b.holdToken = token
	return b
}

func (b *BookingBuilder) WithPriceCents(cents int64) *BookingBuilder {
	b.priceCents = cents
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Reservation, error) {
	customer, err := booking.NewCustomerDetails(b.name, b.email, b.phone)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(b.priceCents)
	if err != nil {
		return nil, err
	}
	return booking.NewReservation(
		b.venueID,
		b.lane,
		b.date,
		b.startMinute, b.endMinute,
		customer,
		b.partySize,
		price,
		b.paymentMethod,
		b.holdToken,
		booking.NewNote(b.note),
	)
}

func (b *BookingBuilder) startAt() time.Time {
	y, m, d := b.date.Date()
	return time.Date(y, m, d, b.startMinute/60, b.startMinute%60, 0, 0, b.date.Location())
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:            uuid.New(),
		VenueID:       b.venueID,
		Lane:          b.lane,
		Date:          b.date.Format("2006-01-02"),
		StartMinute:   b.startMinute,
		EndMinute:     b.endMinute,
		StartAt:       b.startAt(),
		CustomerName:  b.name,
		CustomerEmail: b.email,
		CustomerPhone: b.phone,
		PartySize:     b.partySize,
		Status:        booking.StatusPending.String(),
		PriceCents:    b.priceCents,
		PaymentMethod: string(b.paymentMethod),
		HoldToken:     b.holdToken,
		Note:          b.note,
		CreatedAt:     b.date,
	}
}

// BuildCommitRequestMap is the JSON body for POST /holds/{token}/commit.
func (b *BookingBuilder) BuildCommitRequestMap() map[string]any {
	return map[string]any{
		"customer_name":  b.name,
		"customer_email": b.email,
		"customer_phone": b.phone,
		"payment_method": string(b.paymentMethod),
		"note":           b.note,
	}
}
