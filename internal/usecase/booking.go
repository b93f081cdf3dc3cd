package usecase

import (
	"context"
	"errors"
	"time"

	"lanebook/internal/domain/booking"
	"lanebook/internal/infra"
	lbdb "lanebook/internal/infra/db"
	"lanebook/internal/infra/readstore"
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

type BookingRepository interface {
	Insert(ctx context.Context, db lbdb.DBTX, res *booking.Reservation) error
	FindByID(ctx context.Context, db lbdb.DBTX, id uuid.UUID) (*booking.Reservation, error)
	FindByIDForUpdate(ctx context.Context, db lbdb.DBTX, id uuid.UUID) (*booking.Reservation, error)
	FindByHoldToken(ctx context.Context, db lbdb.DBTX, token uuid.UUID) ([]*booking.Reservation, error)
	MarkConfirmed(ctx context.Context, db lbdb.DBTX, id uuid.UUID, paymentRef string) error
	CancelGroup(ctx context.Context, db lbdb.DBTX, token uuid.UUID) (int64, error)
}

type BookingLister interface {
	List(ctx context.Context, db lbdb.DBTX, filter readstore.BookingListFilter) ([]readstore.BookingRow, error)
}

type CommitHoldCommand struct {
	HoldToken     uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod string
	Note          string
}

type BookingUseCase interface {
	Commit(ctx context.Context, cmd CommitHoldCommand) ([]*readmodel.BookingRM, error)
	Cancel(ctx context.Context, bookingID uuid.UUID) error
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paymentRef string) error
	Get(ctx context.Context, bookingID uuid.UUID) (*readmodel.BookingRM, error)
	List(ctx context.Context, filter readstore.BookingListFilter) ([]*readmodel.BookingListItemRM, error)
}

type bookingUseCaseImpl struct {
	venues   venueconfig.Provider
	bookings BookingRepository
	holds    HoldRepository
	lister   BookingLister
	db       *pgxpool.Pool
	clock    clock.Clock
	metrics  *metrics.Metrics
	notifier notify.Notifier
	policy   config.BookingConfig
}

func NewBookingUseCase(
	venues venueconfig.Provider,
	bookings BookingRepository,
	holds HoldRepository,
	lister BookingLister,
	db *pgxpool.Pool,
	clock clock.Clock,
	metrics *metrics.Metrics,
	notifier notify.Notifier,
	policy config.BookingConfig,
) BookingUseCase {
	return &bookingUseCaseImpl{
		venues:   venues,
		bookings: bookings,
		holds:    holds,
		lister:   lister,
		db:       db,
		clock:    clock,
		metrics:  metrics,
		notifier: notifier,
		policy:   policy,
	}
}

// Commit converts a hold into one reservation per held lane, all sharing
// the hold token as their group key. Replays are idempotent: a token that
// already produced reservations returns the same set, so a retried commit
// never double-books and never errors.
func (u *bookingUseCaseImpl) Commit(ctx context.Context, cmd CommitHoldCommand) ([]*readmodel.BookingRM, error) {
	customer, err := booking.NewCustomerDetails(cmd.CustomerName, cmd.CustomerEmail, cmd.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	now := u.clock.Now()

	type commitResult struct {
		reservations []*booking.Reservation
		replayed     bool
	}

	result, err := lbdb.WithDefaultRetry(ctx, u.db, func(tx lbdb.DBTX) (commitResult, error) {
		// Replay check first: a consumed hold is gone, but its reservations
		// carry the token.
		existing, err := u.bookings.FindByHoldToken(ctx, tx, cmd.HoldToken)
		if err != nil {
			return commitResult{}, err
		}
		if len(existing) > 0 {
			return commitResult{reservations: existing, replayed: true}, nil
		}

		h, err := u.holds.FindByTokenForUpdate(ctx, tx, cmd.HoldToken)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return commitResult{}, errs.ErrHoldNotFound
			}
			return commitResult{}, err
		}
		if err := h.ValidateUnexpired(now); err != nil {
			return commitResult{}, errs.ErrHoldExpired
		}

		cfg, err := u.venues.Get(ctx, h.VenueID())
		if err != nil {
			return commitResult{}, err
		}
		loc, err := cfg.Location()
		if err != nil {
			return commitResult{}, err
		}
		y, m, d := h.Date().Date()
		date := time.Date(y, m, d, 0, 0, 0, 0, loc)

		total, err := booking.NewMoney(h.AmountCents())
		if err != nil {
			return commitResult{}, err
		}
		parts := total.Split(len(h.Lanes()))

		// The note captured at hold time travels onto the reservations
		// unless the commit supplies its own.
		note := booking.NewNote(cmd.Note)
		if note.String() == "" {
			note = booking.NewNote(h.Note())
		}

		reservations := make([]*booking.Reservation, 0, len(h.Lanes()))
		for i, lane := range h.Lanes() {
			res, err := booking.NewReservation(
				h.VenueID(),
				lane,
				date,
				h.StartMinute(), h.EndMinute(),
				customer,
				h.PartySize(),
				parts[i],
				booking.PaymentMethod(cmd.PaymentMethod),
				cmd.HoldToken,
				note,
			)
			if err != nil {
				return commitResult{}, errs.Mark(err, errs.ErrInvalidInput)
			}
			if err := u.bookings.Insert(ctx, tx, res); err != nil {
				return commitResult{}, err
			}
			reservations = append(reservations, res)
		}

		if _, err := u.holds.DeleteByToken(ctx, tx, cmd.HoldToken); err != nil {
			return commitResult{}, err
		}
		return commitResult{reservations: reservations}, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrHoldNotFound),
			errors.Is(err, errs.ErrHoldExpired),
			errors.Is(err, errs.ErrInvalidInput):
			return nil, err
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, errs.ErrSlotUnavailable)
		default:
			return nil, errs.Mark(err, errs.ErrStoreUnavailable)
		}
	}

	rms := make([]*readmodel.BookingRM, 0, len(result.reservations))
	for _, res := range result.reservations {
		rms = append(rms, bookingToRM(res))
	}

	if !result.replayed {
		u.metrics.BookingsCreated.Add(float64(len(result.reservations)))
		ids := make([]string, 0, len(result.reservations))
		for _, res := range result.reservations {
			ids = append(ids, res.ID().String())
		}
		u.notifier.Publish(notify.Event{
			Type:       notify.EventBookingCreated,
			VenueID:    result.reservations[0].VenueID(),
			HoldToken:  cmd.HoldToken,
			BookingIDs: ids,
			OccurredAt: now,
		})
	}
	return rms, nil
}

// Cancel cancels the whole reservation group the booking belongs to.
// Lanes booked together are cancelled together; the cutoff is measured
// against the session start.
func (u *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	now := u.clock.Now()

	var (
		venueID   uuid.UUID
		holdToken uuid.UUID
	)
	_, err := lbdb.WithDefaultRetry(ctx, u.db, func(tx lbdb.DBTX) (int64, error) {
		res, err := u.bookings.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, errs.ErrBookingNotFound
			}
			return 0, err
		}
		if err := res.ValidateCancellation(now, u.policy.CancellationCutoff); err != nil {
			return 0, errs.Mark(err, errs.ErrCancellationDenied)
		}

		venueID = res.VenueID()
		holdToken = res.HoldToken()
		return u.bookings.CancelGroup(ctx, tx, holdToken)
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound),
			errors.Is(err, errs.ErrCancellationDenied):
			return err
		default:
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
	}

	u.metrics.BookingsCanceled.Inc()
	u.notifier.Publish(notify.Event{
		Type:       notify.EventBookingCancelled,
		VenueID:    venueID,
		HoldToken:  holdToken,
		BookingIDs: []string{bookingID.String()},
		OccurredAt: now,
	})
	return nil
}

// ConfirmPayment records the pending-to-confirmed transition reported by
// the payment collaborator. The engine never talks to the processor itself.
func (u *bookingUseCaseImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paymentRef string) error {
	var (
		venueID   uuid.UUID
		holdToken uuid.UUID
	)
	_, err := lbdb.RunInTx(ctx, u.db, func(tx lbdb.DBTX) (struct{}, error) {
		res, err := u.bookings.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, errs.ErrBookingNotFound
			}
			return struct{}{}, err
		}
		if err := res.MarkConfirmed(paymentRef); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrInvalidInput)
		}

		venueID = res.VenueID()
		holdToken = res.HoldToken()
		return struct{}{}, u.bookings.MarkConfirmed(ctx, tx, bookingID, paymentRef)
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound),
			errors.Is(err, errs.ErrInvalidInput):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrBookingNotFound)
		default:
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
	}

	u.notifier.Publish(notify.Event{
		Type:       notify.EventBookingConfirmed,
		VenueID:    venueID,
		HoldToken:  holdToken,
		BookingIDs: []string{bookingID.String()},
		OccurredAt: u.clock.Now(),
	})
	return nil
}

func (u *bookingUseCaseImpl) Get(ctx context.Context, bookingID uuid.UUID) (*readmodel.BookingRM, error) {
	res, err := u.bookings.FindByID(ctx, u.db, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return bookingToRM(res), nil
}

func (u *bookingUseCaseImpl) List(ctx context.Context, filter readstore.BookingListFilter) ([]*readmodel.BookingListItemRM, error) {
	rows, err := u.lister.List(ctx, u.db, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	items := make([]*readmodel.BookingListItemRM, 0, len(rows))
	for _, r := range rows {
		items = append(items, &readmodel.BookingListItemRM{
			ID:            r.ID,
			VenueID:       r.VenueID,
			Lane:          r.Lane,
			Date:          r.Date.Format(dateLayout),
			StartMinute:   r.StartMinute,
			EndMinute:     r.EndMinute,
			StartAt:       r.StartAt,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			PartySize:     r.PartySize,
			Status:        r.Status,
			PriceCents:    r.PriceCents,
			PaymentMethod: r.PaymentMethod,
			HoldToken:     r.HoldToken,
			CreatedAt:     r.CreatedAt,
		})
	}
	return items, nil
}

func bookingToRM(res *booking.Reservation) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:            res.ID(),
		VenueID:       res.VenueID(),
		Lane:          res.Lane(),
		Date:          res.Date().Format(dateLayout),
		StartMinute:   res.StartMinute(),
		EndMinute:     res.EndMinute(),
		StartAt:       res.StartTime(),
		CustomerName:  res.Customer().Name(),
		CustomerEmail: res.Customer().Email(),
		CustomerPhone: res.Customer().Phone(),
		PartySize:     res.PartySize(),
		Status:        res.Status().String(),
		PriceCents:    res.Price().Cents(),
		PaymentMethod: string(res.PaymentMethod()),
		PaymentRef:    res.PaymentRef(),
		HoldToken:     res.HoldToken(),
		Note:          res.Note().String(),
		CreatedAt:     res.CreatedAt(),
	}
}
