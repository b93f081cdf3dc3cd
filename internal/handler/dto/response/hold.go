package response

import (
	"time"

	"lanebook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type HoldResponse struct {
	Token       uuid.UUID `json:"token"`
	VenueID     uuid.UUID `json:"venueId"`
	Lanes       []int     `json:"lanes"`
	Date        string    `json:"date"`
	StartMinute int       `json:"startMinute"`
	EndMinute   int       `json:"endMinute"`
	PartySize   int       `json:"partySize"`
	AmountCents int64     `json:"amountCents"`
	Note        string    `json:"note,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func FromHoldRM(rm *readmodel.HoldRM) *HoldResponse {
	return &HoldResponse{
		Token:       rm.Token,
		VenueID:     rm.VenueID,
		Lanes:       rm.Lanes,
		Date:        rm.Date,
		StartMinute: rm.StartMinute,
		EndMinute:   rm.EndMinute,
		PartySize:   rm.PartySize,
		AmountCents: rm.AmountCents,
		Note:        rm.Note,
		ExpiresAt:   rm.ExpiresAt,
	}
}
