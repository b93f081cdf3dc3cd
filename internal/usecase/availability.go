package usecase

import (
	"context"
	"time"

	"lanebook/internal/domain/schedule"
	"lanebook/internal/domain/venue"
	"lanebook/internal/infra"
	lbdb "lanebook/internal/infra/db"
	"lanebook/internal/infra/venueconfig"
	"lanebook/internal/pkg/clock"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

// IntervalReader lists the lane claims that block availability. Bookings
// and holds each implement it over their own table.
type BookingIntervalReader interface {
	ActiveIntervals(ctx context.Context, db lbdb.DBTX, venueID uuid.UUID, date string) ([]schedule.Interval, error)
}

type HoldIntervalReader interface {
	ActiveIntervals(ctx context.Context, db lbdb.DBTX, venueID uuid.UUID, date string, now time.Time) ([]schedule.Interval, error)
}

type AvailabilityQuery struct {
	VenueID         uuid.UUID
	Date            string
	DurationMinutes int
	LanesRequested  int
}

type AvailabilityUseCase interface {
	GetGrid(ctx context.Context, query AvailabilityQuery) (*readmodel.AvailabilityRM, error)
}

type availabilityUseCaseImpl struct {
	venues   venueconfig.Provider
	bookings BookingIntervalReader
	holds    HoldIntervalReader
	rates    *venue.RateTable
	db       *pgxpool.Pool
	clock    clock.Clock
}

func NewAvailabilityUseCase(
	venues venueconfig.Provider,
	bookings BookingIntervalReader,
	holds HoldIntervalReader,
	rates *venue.RateTable,
	db *pgxpool.Pool,
	clock clock.Clock,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		venues:   venues,
		bookings: bookings,
		holds:    holds,
		rates:    rates,
		db:       db,
		clock:    clock,
	}
}

// GetGrid computes the advisory availability grid for one day. It reads
// without locking: the result can be stale the moment it returns, and the
// hold manager re-checks under lock before claiming anything.
func (u *availabilityUseCaseImpl) GetGrid(ctx context.Context, query AvailabilityQuery) (*readmodel.AvailabilityRM, error) {
	cfg, err := u.venues.Get(ctx, query.VenueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVenueNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	date, err := time.ParseInLocation(dateLayout, query.Date, loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	now := u.clock.Now().In(loc)

	intervals, err := u.loadActiveIntervals(ctx, u.db, query.VenueID, query.Date, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	slots, err := schedule.BuildGrid(cfg, u.rates, schedule.GridRequest{
		Date:            date,
		DurationMinutes: query.DurationMinutes,
		LanesRequested:  query.LanesRequested,
	}, now, intervals)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	rm := &readmodel.AvailabilityRM{
		VenueID:         query.VenueID,
		Date:            query.Date,
		DurationMinutes: query.DurationMinutes,
		LanesRequested:  query.LanesRequested,
		OpenMinute:      cfg.OpenMinute,
		CloseMinute:     cfg.CloseMinute,
		Slots:           make([]readmodel.SlotRM, 0, len(slots)),
	}
	for _, s := range slots {
		rm.Slots = append(rm.Slots, readmodel.SlotRM{
			StartMinute:          s.StartMinute,
			EndMinute:            s.EndMinute,
			Lanes:                s.Lanes,
			EstimatedAmountCents: s.EstimatedAmountCents,
		})
	}
	return rm, nil
}

// loadActiveIntervals merges booking and hold claims into one blocking set.
// Shared with the hold manager, which calls it again inside its transaction.
func (u *availabilityUseCaseImpl) loadActiveIntervals(
	ctx context.Context,
	db lbdb.DBTX,
	venueID uuid.UUID,
	date string,
	now time.Time,
) ([]schedule.Interval, error) {
	booked, err := u.bookings.ActiveIntervals(ctx, db, venueID, date)
	if err != nil {
		return nil, err
	}
	held, err := u.holds.ActiveIntervals(ctx, db, venueID, date, now)
	if err != nil {
		return nil, err
	}
	return append(booked, held...), nil
}
