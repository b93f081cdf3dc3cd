package errs

import "errors"

// Sentinel errors shared across the usecase layer. The handler layer maps
// these to HTTP statuses; the usecase layer marks infra failures separately
// so a lost slot race is never confused with a broken store.
var (
	// Input errors: rejected before any store access.
	ErrInvalidInput = errors.New("invalid input")

	// Hold errors
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrHoldNotFound    = errors.New("hold not found")
	ErrHoldExpired     = errors.New("hold expired")

	// Booking errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrCancellationDenied = errors.New("cancellation denied")

	// Venue errors
	ErrVenueNotFound = errors.New("venue not found")

	// Operation errors
	ErrStoreUnavailable = errors.New("store unavailable")
)
