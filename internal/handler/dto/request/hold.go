package request

import "github.com/google/uuid"

type CreateHoldRequest struct {
	VenueID     uuid.UUID `json:"venue_id" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	StartMinute int       `json:"start_minute" binding:"min=0,max=1439"`
	Duration    int       `json:"duration" binding:"required,min=1"`
	Lanes       int       `json:"lanes" binding:"required,min=1"`
	PartySize   int       `json:"party_size" binding:"required,min=1"`
	Note        string    `json:"note"`
}

type CommitHoldRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=card paypal on_site"`
	Note          string `json:"note"`
}
