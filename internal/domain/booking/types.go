package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Active reports whether the reservation still claims its interval.
// Cancelled reservations are invisible to availability queries.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPaypal PaymentMethod = "paypal"
	PaymentOnSite PaymentMethod = "on_site"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentPaypal, PaymentOnSite:
		return true
	default:
		return false
	}
}
