package request

import "github.com/google/uuid"

// AvailabilityQuery binds GET /availability query parameters. Date is a
// plain calendar day; the venue's timezone decides what instant it spans.
type AvailabilityQuery struct {
	VenueID  uuid.UUID `form:"venue_id" binding:"required"`
	Date     string    `form:"date" binding:"required"`
	Duration int       `form:"duration" binding:"required,min=1"`
	Lanes    int       `form:"lanes" binding:"required,min=1"`
}
