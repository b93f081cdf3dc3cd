//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lanebook/internal/domain/booking"
	"lanebook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	res, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, booking.StatusPending, res.Status())
	assert.Equal(t, 19, res.StartTime().Hour())
	assert.Equal(t, 0, res.StartTime().Minute())
	assert.Nil(t, res.PaymentRef())
}

func TestStartTimeOnDSTTransitionDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// Clocks jump from 02:00 to 03:00 on this day, so midnight plus 19h of
	// elapsed time lands at 20:00. The session still starts at 19:00 wall
	// time and the cancellation cutoff is measured from there.
	res, err := builder.NewBookingBuilder().
		WithDate(time.Date(2026, 3, 29, 0, 0, 0, 0, loc)).
		WithWindow(19*60, 20*60).
		BuildDomain()
	require.NoError(t, err)

	start := res.StartTime().In(loc)
	assert.Equal(t, 19, start.Hour())
	assert.Equal(t, 0, start.Minute())
}

func TestValidateCancellation(t *testing.T) {
	cutoff := 8 * time.Hour

	res, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	start := res.StartTime()

	t.Run("well before the cutoff", func(t *testing.T) {
		assert.NoError(t, res.ValidateCancellation(start.Add(-24*time.Hour), cutoff))
	})

	t.Run("exactly at the cutoff boundary", func(t *testing.T) {
		assert.NoError(t, res.ValidateCancellation(start.Add(-cutoff), cutoff))
	})

	t.Run("one minute inside the cutoff", func(t *testing.T) {
		err := res.ValidateCancellation(start.Add(-cutoff).Add(time.Minute), cutoff)
		assert.ErrorIs(t, err, booking.ErrCancellationLate)
	})

	t.Run("after the session started", func(t *testing.T) {
		err := res.ValidateCancellation(start.Add(time.Hour), cutoff)
		assert.ErrorIs(t, err, booking.ErrCancellationLate)
	})

	t.Run("already cancelled", func(t *testing.T) {
		cancelled, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		cancelled.MarkCancelled()

		got := cancelled.ValidateCancellation(start.Add(-24*time.Hour), cutoff)
		assert.ErrorIs(t, got, booking.ErrAlreadyCancelled)
	})
}

func TestMarkConfirmed(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		res, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.MarkConfirmed("pay_123"))
		assert.Equal(t, booking.StatusConfirmed, res.Status())
		require.NotNil(t, res.PaymentRef())
		assert.Equal(t, "pay_123", *res.PaymentRef())
	})

	t.Run("double confirmation rejected", func(t *testing.T) {
		res, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.MarkConfirmed("pay_123"))
		assert.ErrorIs(t, res.MarkConfirmed("pay_456"), booking.ErrNotPendingPayment)
	})

	t.Run("cancelled reservation cannot confirm", func(t *testing.T) {
		res, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		res.MarkCancelled()

		assert.ErrorIs(t, res.MarkConfirmed("pay_123"), booking.ErrNotPendingPayment)
	})
}
