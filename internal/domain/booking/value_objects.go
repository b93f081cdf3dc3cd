package booking

import (
	"errors"
	"strings"
)

var (
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrMissingCustomerEmail = errors.New("customer email is required")
	ErrInvalidCustomerEmail = errors.New("customer email is invalid")
	ErrInvalidPartySize     = errors.New("party size must be at least 1")
	ErrNegativeMoney        = errors.New("money cannot be negative")
)

type CustomerDetails struct {
	name  string
	email string
	phone string
}

func NewCustomerDetails(name, email, phone string) (CustomerDetails, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return CustomerDetails{}, ErrMissingCustomerName
	}
	if email == "" {
		return CustomerDetails{}, ErrMissingCustomerEmail
	}
	if !strings.Contains(email, "@") {
		return CustomerDetails{}, ErrInvalidCustomerEmail
	}
	return CustomerDetails{
		name:  name,
		email: email,
		phone: strings.TrimSpace(phone),
	}, nil
}

func (c CustomerDetails) Name() string  { return c.name }
func (c CustomerDetails) Email() string { return c.email }
func (c CustomerDetails) Phone() string { return c.phone }

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

// Split divides the amount into n integer parts whose sum equals the
// original, distributing the remainder one cent at a time starting from the
// first part. Multi-lane estimates therefore never drift from the total the
// customer was quoted.
func (m Money) Split(n int) []Money {
	if n <= 0 {
		return nil
	}
	base := m.cents / int64(n)
	rem := m.cents % int64(n)

	parts := make([]Money, n)
	for i := range parts {
		parts[i] = Money{cents: base}
		if int64(i) < rem {
			parts[i].cents++
		}
	}
	return parts
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string { return n.value }
