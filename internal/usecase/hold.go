package usecase

import (
	"context"
	"errors"
	"time"

	"lanebook/internal/domain/hold"
	"lanebook/internal/domain/schedule"
	"lanebook/internal/domain/venue"
	"lanebook/internal/infra"
	lbdb "lanebook/internal/infra/db"
	"lanebook/internal/infra/venueconfig"
	"lanebook/internal/notify"
	"lanebook/internal/pkg/clock"
	"lanebook/internal/pkg/config"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/pkg/metrics"
	"lanebook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldRepository interface {
	ActiveIntervals(ctx context.Context, db lbdb.DBTX, venueID uuid.UUID, date string, now time.Time) ([]schedule.Interval, error)
	Insert(ctx context.Context, db lbdb.DBTX, h *hold.Hold) error
	FindByTokenForUpdate(ctx context.Context, db lbdb.DBTX, token uuid.UUID) (*hold.Hold, error)
	DeleteByToken(ctx context.Context, db lbdb.DBTX, token uuid.UUID) (int64, error)
	DeleteExpiredInWindow(ctx context.Context, db lbdb.DBTX, venueID uuid.UUID, date string, now time.Time) (int64, error)
}

type LaneLocker interface {
	Lock(ctx context.Context, db lbdb.DBTX, venueID uuid.UUID, lanes []int) error
}

type CreateHoldCommand struct {
	VenueID         uuid.UUID
	Date            string
	StartMinute     int
	DurationMinutes int
	LanesRequested  int
	PartySize       int
	Note            string
}

type HoldUseCase interface {
	Create(ctx context.Context, cmd CreateHoldCommand) (*readmodel.HoldRM, error)
	Release(ctx context.Context, token uuid.UUID) error
}

type holdUseCaseImpl struct {
	venues   venueconfig.Provider
	holds    HoldRepository
	bookings BookingIntervalReader
	lanes    LaneLocker
	rates    *venue.RateTable
	db       *pgxpool.Pool
	clock    clock.Clock
	metrics  *metrics.Metrics
	notifier notify.Notifier
	policy   config.BookingConfig
}

func NewHoldUseCase(
	venues venueconfig.Provider,
	holds HoldRepository,
	bookings BookingIntervalReader,
	lanes LaneLocker,
	rates *venue.RateTable,
	db *pgxpool.Pool,
	clock clock.Clock,
	metrics *metrics.Metrics,
	notifier notify.Notifier,
	policy config.BookingConfig,
) HoldUseCase {
	return &holdUseCaseImpl{
		venues:   venues,
		holds:    holds,
		bookings: bookings,
		lanes:    lanes,
		rates:    rates,
		db:       db,
		clock:    clock,
		metrics:  metrics,
		notifier: notifier,
		policy:   policy,
	}
}

// Create claims the lowest-numbered free lanes for the requested window.
//
// Inside one transaction it clears expired holds for the window, computes
// the free set, locks exactly the candidate lane rows (ascending, so
// competing writers cannot deadlock), re-checks the free set under lock and
// inserts the hold rows. Only the candidate lanes are ever locked; writers
// touching disjoint lanes proceed in parallel.
func (u *holdUseCaseImpl) Create(ctx context.Context, cmd CreateHoldCommand) (*readmodel.HoldRM, error) {
	cfg, err := u.venues.Get(ctx, cmd.VenueID)
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
	now := u.clock.Now().In(loc)

	date, err := u.validate(cfg, cmd, now, loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	endMinute := cmd.StartMinute + cmd.DurationMinutes
	amount := u.rates.Amount(date, cmd.DurationMinutes, cmd.LanesRequested)

	created, err := lbdb.WithDefaultRetry(ctx, u.db, func(tx lbdb.DBTX) (*hold.Hold, error) {
		// A stale expired row would trip the storage overlap constraint,
		// so clear the window before inserting.
		if _, err := u.holds.DeleteExpiredInWindow(ctx, tx, cmd.VenueID, cmd.Date, now); err != nil {
			return nil, err
		}

		candidate, err := u.pickLanes(ctx, tx, cfg, cmd, now)
		if err != nil {
			return nil, err
		}

		if err := u.lanes.Lock(ctx, tx, cmd.VenueID, candidate); err != nil {
			return nil, err
		}

		// Re-check under lock: a competing writer may have claimed one of
		// the candidate lanes between the first read and the lock. Losing
		// any locked lane is a lost race, not a retry.
		free, err := u.freeLanes(ctx, tx, cfg, cmd, now)
		if err != nil {
			return nil, err
		}
		if !containsAll(free, candidate) {
			return nil, errs.ErrSlotUnavailable
		}

		h, err := hold.New(cmd.VenueID, candidate, date, cmd.StartMinute, endMinute, cmd.PartySize, amount, cmd.Note, now, u.policy.HoldTTL)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		if err := u.holds.Insert(ctx, tx, h); err != nil {
			return nil, err
		}
		return h, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) || errors.Is(err, errs.ErrSlotUnavailable) {
			u.metrics.HoldConflicts.Inc()
			return nil, errs.Mark(err, errs.ErrSlotUnavailable)
		}
		if errors.Is(err, errs.ErrInvalidInput) {
			return nil, err
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVenueNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	u.metrics.HoldsCreated.Inc()
	u.notifier.Publish(notify.Event{
		Type:       notify.EventHoldCreated,
		VenueID:    cmd.VenueID,
		HoldToken:  created.Token(),
		OccurredAt: now,
	})

	return holdToRM(created), nil
}

// Release drops a hold explicitly. Releasing an unknown or already-expired
// token reports not found; the customer outcome is the same either way.
func (u *holdUseCaseImpl) Release(ctx context.Context, token uuid.UUID) error {
	deleted, err := lbdb.RunInTx(ctx, u.db, func(tx lbdb.DBTX) (int64, error) {
		return u.holds.DeleteByToken(ctx, tx, token)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if deleted == 0 {
		return errs.ErrHoldNotFound
	}

	u.metrics.HoldsReleased.Inc()
	u.notifier.Publish(notify.Event{
		Type:       notify.EventHoldReleased,
		HoldToken:  token,
		OccurredAt: u.clock.Now(),
	})
	return nil
}

func (u *holdUseCaseImpl) validate(cfg venue.Config, cmd CreateHoldCommand, now time.Time, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, cmd.Date, loc)
	if err != nil {
		return time.Time{}, err
	}

	// The grid calculator enforces the date, duration and lane bounds; a
	// zero-length grid means the requested start was never offered.
	slots, err := schedule.BuildGrid(cfg, u.rates, schedule.GridRequest{
		Date:            date,
		DurationMinutes: cmd.DurationMinutes,
		LanesRequested:  cmd.LanesRequested,
	}, now, nil)
	if err != nil {
		return time.Time{}, err
	}
	for _, s := range slots {
		if s.StartMinute == cmd.StartMinute {
			if cmd.PartySize < 1 {
				return time.Time{}, errs.New("party size must be at least 1")
			}
			return date, nil
		}
	}
	return time.Time{}, errs.New("requested start is not a bookable slot")
}

// pickLanes chooses the lowest-numbered free lanes for the window, or
// ErrSlotUnavailable when fewer than requested remain.
func (u *holdUseCaseImpl) pickLanes(ctx context.Context, tx lbdb.DBTX, cfg venue.Config, cmd CreateHoldCommand, now time.Time) ([]int, error) {
	free, err := u.freeLanes(ctx, tx, cfg, cmd, now)
	if err != nil {
		return nil, err
	}
	if len(free) < cmd.LanesRequested {
		return nil, errs.ErrSlotUnavailable
	}
	return free[:cmd.LanesRequested], nil
}

func (u *holdUseCaseImpl) freeLanes(ctx context.Context, tx lbdb.DBTX, cfg venue.Config, cmd CreateHoldCommand, now time.Time) ([]int, error) {
	booked, err := u.bookings.ActiveIntervals(ctx, tx, cmd.VenueID, cmd.Date)
	if err != nil {
		return nil, err
	}
	held, err := u.holds.ActiveIntervals(ctx, tx, cmd.VenueID, cmd.Date, now)
	if err != nil {
		return nil, err
	}
	return schedule.FreeLanes(cfg.LaneCount, append(booked, held...), cmd.StartMinute, cmd.StartMinute+cmd.DurationMinutes), nil
}

func containsAll(set, want []int) bool {
	members := make(map[int]struct{}, len(set))
	for _, n := range set {
		members[n] = struct{}{}
	}
	for _, n := range want {
		if _, ok := members[n]; !ok {
			return false
		}
	}
	return true
}

func holdToRM(h *hold.Hold) *readmodel.HoldRM {
	return &readmodel.HoldRM{
		Token:       h.Token(),
		VenueID:     h.VenueID(),
		Lanes:       h.Lanes(),
		Date:        h.Date().Format(dateLayout),
		StartMinute: h.StartMinute(),
		EndMinute:   h.EndMinute(),
		PartySize:   h.PartySize(),
		AmountCents: h.AmountCents(),
		Note:        h.Note(),
		ExpiresAt:   h.ExpiresAt(),
	}
}
