package response

import (
	"lanebook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SlotResponse struct {
	StartMinute          int   `json:"startMinute"`
	EndMinute            int   `json:"endMinute"`
	Lanes                []int `json:"lanes"`
	EstimatedAmountCents int64 `json:"estimatedAmountCents"`
}

type AvailabilityResponse struct {
	VenueID     uuid.UUID      `json:"venueId"`
	Date        string         `json:"date"`
	Duration    int            `json:"duration"`
	Lanes       int            `json:"lanes"`
	OpenMinute  int            `json:"openMinute"`
	CloseMinute int            `json:"closeMinute"`
	Slots       []SlotResponse `json:"slots"`
}

func FromAvailabilityRM(rm *readmodel.AvailabilityRM) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(rm.Slots))
	for _, s := range rm.Slots {
		slots = append(slots, SlotResponse{
			StartMinute:          s.StartMinute,
			EndMinute:            s.EndMinute,
			Lanes:                s.Lanes,
			EstimatedAmountCents: s.EstimatedAmountCents,
		})
	}
	return &AvailabilityResponse{
		VenueID:     rm.VenueID,
		Date:        rm.Date,
		Duration:    rm.DurationMinutes,
		Lanes:       rm.LanesRequested,
		OpenMinute:  rm.OpenMinute,
		CloseMinute: rm.CloseMinute,
		Slots:       slots,
	}
}
