package request

import (
	"time"

	"lanebook/internal/infra/readstore"

	"github.com/google/uuid"
)

type ListBookingsQuery struct {
	VenueID  *uuid.UUID `form:"venue_id"`
	DateFrom string     `form:"date_from"`
	DateTo   string     `form:"date_to"`
	Status   string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	Email    string     `form:"email"`
	Limit    uint64     `form:"limit" binding:"max=200"`
	Offset   uint64     `form:"offset"`
}

func (q ListBookingsQuery) ToFilter() (readstore.BookingListFilter, error) {
	filter := readstore.BookingListFilter{
		VenueID: q.VenueID,
		Limit:   q.Limit,
		Offset:  q.Offset,
	}
	if q.DateFrom != "" {
		from, err := time.Parse("2006-01-02", q.DateFrom)
		if err != nil {
			return readstore.BookingListFilter{}, err
		}
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, err := time.Parse("2006-01-02", q.DateTo)
		if err != nil {
			return readstore.BookingListFilter{}, err
		}
		filter.DateTo = &to
	}
	if q.Status != "" {
		status := q.Status
		filter.Status = &status
	}
	if q.Email != "" {
		email := q.Email
		filter.Email = &email
	}
	return filter, nil
}

type ConfirmPaymentRequest struct {
	PaymentRef string `json:"payment_ref" binding:"required"`
}
