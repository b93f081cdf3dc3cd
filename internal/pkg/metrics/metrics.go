package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the engine's booking counters. Registered once at
// bootstrap; usecases increment them outside any transaction.
type Metrics struct {
	HoldsCreated     prometheus.Counter
	HoldConflicts    prometheus.Counter
	HoldsReleased    prometheus.Counter
	BookingsCreated  prometheus.Counter
	BookingsCanceled prometheus.Counter
	ExpiredSwept     prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HoldsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "lanebook_holds_created_total",
			Help: "Number of lane holds successfully created.",
		}),
		HoldConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "lanebook_hold_conflicts_total",
			Help: "Number of hold attempts that lost the slot race.",
		}),
		HoldsReleased: factory.NewCounter(prometheus.CounterOpts{
			Name: "lanebook_holds_released_total",
			Help: "Number of holds released explicitly by the customer.",
		}),
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "lanebook_bookings_created_total",
			Help: "Number of reservations created from holds.",
		}),
		BookingsCanceled: factory.NewCounter(prometheus.CounterOpts{
			Name: "lanebook_bookings_canceled_total",
			Help: "Number of reservations canceled by their customer.",
		}),
		ExpiredSwept: factory.NewCounter(prometheus.CounterOpts{
			Name: "lanebook_expired_holds_swept_total",
			Help: "Number of expired hold rows removed by the sweeper.",
		}),
	}
}
