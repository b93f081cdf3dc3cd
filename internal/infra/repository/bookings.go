package repository

import (
	"context"
	"time"

	"lanebook/internal/domain/booking"
	"lanebook/internal/domain/schedule"
	"lanebook/internal/infra"
	lbdb "lanebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const bookingColumns = `
id, venue_id, lane_no, booking_date, start_minute, end_minute, start_at,
customer_name, customer_email, customer_phone, party_size, status,
price_cents, payment_method, payment_ref, hold_token, note, created_at, updated_at`

// ActiveIntervals lists the lane claims of pending and confirmed bookings
// for one venue and date. Cancelled rows do not block availability.
func (r *BookingRepository) ActiveIntervals(ctx context.Context, db lbdb.DBTX, venueID uuid.UUID, date string) ([]schedule.Interval, error) {
	const query = `
SELECT lane_no, start_minute, end_minute
FROM lane_bookings
WHERE venue_id = $1 AND booking_date = $2::date AND status <> 'cancelled'`

	rows, err := db.Query(ctx, query, venueID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Lane, &iv.StartMinute, &iv.EndMinute); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking intervals", err)
	}
	return intervals, nil
}

func (r *BookingRepository) Insert(ctx context.Context, db lbdb.DBTX, res *booking.Reservation) error {
	const stmt = `
INSERT INTO lane_bookings (
    id, venue_id, lane_no, booking_date, start_minute, end_minute, start_at,
    customer_name, customer_email, customer_phone, party_size, status,
    price_cents, payment_method, payment_ref, hold_token, note
) VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := db.Exec(ctx, stmt,
		res.ID(),
		res.VenueID(),
		res.Lane(),
		res.Date().Format("2006-01-02"),
		res.StartMinute(),
		res.EndMinute(),
		res.StartTime(),
		res.Customer().Name(),
		res.Customer().Email(),
		res.Customer().Phone(),
		res.PartySize(),
		res.Status().String(),
		res.Price().Cents(),
		string(res.PaymentMethod()),
		res.PaymentRef(),
		res.HoldToken(),
		res.Note().String(),
	)
	if err != nil {
		if isConflict(err) {
			return infra.WrapRepoErr("booking conflicts with an existing reservation", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, db lbdb.DBTX, id uuid.UUID) (*booking.Reservation, error) {
	query := `SELECT ` + bookingColumns + ` FROM lane_bookings WHERE id = $1`
	return r.findOne(ctx, db, query, id)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, db lbdb.DBTX, id uuid.UUID) (*booking.Reservation, error) {
	query := `SELECT ` + bookingColumns + ` FROM lane_bookings WHERE id = $1 FOR UPDATE`
	return r.findOne(ctx, db, query, id)
}

// FindByHoldToken returns all reservations created from one hold, ordered
// by lane. The finalizer uses this for idempotent replay: a token that
// already produced bookings yields the same set again.
func (r *BookingRepository) FindByHoldToken(ctx context.Context, db lbdb.DBTX, token uuid.UUID) ([]*booking.Reservation, error) {
	query := `SELECT ` + bookingColumns + ` FROM lane_bookings WHERE hold_token = $1 ORDER BY lane_no`
	return r.findMany(ctx, db, query, token)
}

func (r *BookingRepository) MarkConfirmed(ctx context.Context, db lbdb.DBTX, id uuid.UUID, paymentRef string) error {
	const stmt = `
UPDATE lane_bookings
SET status = 'confirmed', payment_ref = $2, updated_at = now()
WHERE id = $1 AND status = 'pending'`

	tag, err := db.Exec(ctx, stmt, id, paymentRef)
	if err != nil {
		return infra.WrapRepoErr("failed to confirm booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no pending booking to confirm", nil, infra.KindNotFound)
	}
	return nil
}

// CancelGroup cancels every non-cancelled reservation sharing the hold
// token and returns how many rows changed.
func (r *BookingRepository) CancelGroup(ctx context.Context, db lbdb.DBTX, token uuid.UUID) (int64, error) {
	const stmt = `
UPDATE lane_bookings
SET status = 'cancelled', updated_at = now()
WHERE hold_token = $1 AND status <> 'cancelled'`

	tag, err := db.Exec(ctx, stmt, token)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel booking group", err)
	}
	return tag.RowsAffected(), nil
}

func (r *BookingRepository) findOne(ctx context.Context, db lbdb.DBTX, query string, arg any) (*booking.Reservation, error) {
	row := db.QueryRow(ctx, query, arg)
	res, err := scanReservation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return res, nil
}

func (r *BookingRepository) findMany(ctx context.Context, db lbdb.DBTX, query string, arg any) ([]*booking.Reservation, error) {
	rows, err := db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var results []*booking.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return results, nil
}

func scanReservation(row pgx.Row) (*booking.Reservation, error) {
	var (
		id            uuid.UUID
		venueID       uuid.UUID
		lane          int
		date          time.Time
		startMinute   int
		endMinute     int
		startAt       time.Time
		name          string
		email         string
		phone         string
		partySize     int
		status        string
		priceCents    int64
		paymentMethod string
		paymentRef    *string
		holdToken     uuid.UUID
		note          string
		createdAt     time.Time
		updatedAt     time.Time
	)
	err := row.Scan(
		&id, &venueID, &lane, &date, &startMinute, &endMinute, &startAt,
		&name, &email, &phone, &partySize, &status,
		&priceCents, &paymentMethod, &paymentRef, &holdToken, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	customer, err := booking.NewCustomerDetails(name, email, phone)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(priceCents)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructReservation(
		id, venueID,
		lane,
		date,
		startMinute, endMinute,
		startAt,
		customer,
		partySize,
		booking.Status(status),
		price,
		booking.PaymentMethod(paymentMethod),
		paymentRef,
		holdToken,
		booking.NewNote(note),
		createdAt, updatedAt,
	), nil
}
