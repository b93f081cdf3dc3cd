package components

import (
	"lanebook/internal/domain/venue"
	"lanebook/internal/infra/venueconfig"
	"lanebook/internal/notify"
	"lanebook/internal/pkg/clock"
	"lanebook/internal/pkg/config"
	"lanebook/internal/pkg/metrics"
	"lanebook/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewAvailabilityUseCase,
		NewHoldUseCase,
		NewBookingUseCase,
		NewSweeper,
	),
)

func NewAvailabilityUseCase(
	venues venueconfig.Provider,
	bookings usecase.BookingIntervalReader,
	holds usecase.HoldIntervalReader,
	rates *venue.RateTable,
	db *pgxpool.Pool,
	clock clock.Clock,
) usecase.AvailabilityUseCase {
	return usecase.NewAvailabilityUseCase(venues, bookings, holds, rates, db, clock)
}

func NewHoldUseCase(
	venues venueconfig.Provider,
	holds usecase.HoldRepository,
	bookings usecase.BookingIntervalReader,
	lanes usecase.LaneLocker,
	rates *venue.RateTable,
	db *pgxpool.Pool,
	clock clock.Clock,
	metrics *metrics.Metrics,
	notifier notify.Notifier,
	cfg config.Config,
) usecase.HoldUseCase {
	return usecase.NewHoldUseCase(venues, holds, bookings, lanes, rates, db, clock, metrics, notifier, cfg.Booking)
}

func NewBookingUseCase(
	venues venueconfig.Provider,
	bookings usecase.BookingRepository,
	holds usecase.HoldRepository,
	lister usecase.BookingLister,
	db *pgxpool.Pool,
	clock clock.Clock,
	metrics *metrics.Metrics,
	notifier notify.Notifier,
	cfg config.Config,
) usecase.BookingUseCase {
	return usecase.NewBookingUseCase(venues, bookings, holds, lister, db, clock, metrics, notifier, cfg.Booking)
}

func NewSweeper(
	holds usecase.ExpiredHoldDeleter,
	db *pgxpool.Pool,
	clock clock.Clock,
	metrics *metrics.Metrics,
	cfg config.Config,
) *usecase.Sweeper {
	return usecase.NewSweeper(holds, db, clock, metrics, cfg.Booking.SweepInterval)
}
