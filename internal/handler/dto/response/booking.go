package response

import (
	"time"

	"lanebook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	VenueID       uuid.UUID `json:"venueId"`
	Lane          int       `json:"lane"`
	Date          string    `json:"date"`
	StartMinute   int       `json:"startMinute"`
	EndMinute     int       `json:"endMinute"`
	StartAt       time.Time `json:"startAt"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	PartySize     int       `json:"partySize"`
	Status        string    `json:"status"`
	PriceCents    int64     `json:"priceCents"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentRef    *string   `json:"paymentRef,omitempty"`
	GroupToken    uuid.UUID `json:"groupToken"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	VenueID       uuid.UUID `json:"venueId"`
	Lane          int       `json:"lane"`
	Date          string    `json:"date"`
	StartMinute   int       `json:"startMinute"`
	EndMinute     int       `json:"endMinute"`
	StartAt       time.Time `json:"startAt"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	PartySize     int       `json:"partySize"`
	Status        string    `json:"status"`
	PriceCents    int64     `json:"priceCents"`
	PaymentMethod string    `json:"paymentMethod"`
	GroupToken    uuid.UUID `json:"groupToken"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:            rm.ID,
		VenueID:       rm.VenueID,
		Lane:          rm.Lane,
		Date:          rm.Date,
		StartMinute:   rm.StartMinute,
		EndMinute:     rm.EndMinute,
		StartAt:       rm.StartAt,
		CustomerName:  rm.CustomerName,
		CustomerEmail: rm.CustomerEmail,
		CustomerPhone: rm.CustomerPhone,
		PartySize:     rm.PartySize,
		Status:        rm.Status,
		PriceCents:    rm.PriceCents,
		PaymentMethod: rm.PaymentMethod,
		PaymentRef:    rm.PaymentRef,
		GroupToken:    rm.HoldToken,
		Note:          rm.Note,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromBookingRM(rm))
	}
	return out
}

func FromBookingListItem(rm *readmodel.BookingListItemRM) *BookingListResponse {
	return &BookingListResponse{
		ID:            rm.ID,
		VenueID:       rm.VenueID,
		Lane:          rm.Lane,
		Date:          rm.Date,
		StartMinute:   rm.StartMinute,
		EndMinute:     rm.EndMinute,
		StartAt:       rm.StartAt,
		CustomerName:  rm.CustomerName,
		CustomerEmail: rm.CustomerEmail,
		PartySize:     rm.PartySize,
		Status:        rm.Status,
		PriceCents:    rm.PriceCents,
		PaymentMethod: rm.PaymentMethod,
		GroupToken:    rm.HoldToken,
		CreatedAt:     rm.CreatedAt,
	}
}
