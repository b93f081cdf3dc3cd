package readstore

import (
	"context"
	"time"

	"lanebook/internal/infra"
	lbdb "lanebook/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// BookingRow is the flattened list representation. Read queries bypass the
// domain entity; they never mutate and don't need its invariants.
type BookingRow struct {
	ID            uuid.UUID
	VenueID       uuid.UUID
	Lane          int
	Date          time.Time
	StartMinute   int
	EndMinute     int
	StartAt       time.Time
	CustomerName  string
	CustomerEmail string
	PartySize     int
	Status        string
	PriceCents    int64
	PaymentMethod string
	HoldToken     uuid.UUID
	CreatedAt     time.Time
}

type BookingListFilter struct {
	VenueID  *uuid.UUID
	DateFrom *time.Time
	DateTo   *time.Time
	Status   *string
	Email    *string
	Limit    uint64
	Offset   uint64
}

const defaultListLimit = 50

type BookingReadStore struct{}

func NewBookingReadStore() *BookingReadStore {
	return &BookingReadStore{}
}

func (s *BookingReadStore) List(ctx context.Context, db lbdb.DBTX, filter BookingListFilter) ([]BookingRow, error) {
	builder := sq.Select(
		"id", "venue_id", "lane_no", "booking_date", "start_minute", "end_minute",
		"start_at", "customer_name", "customer_email", "party_size", "status",
		"price_cents", "payment_method", "hold_token", "created_at",
	).
		From("lane_bookings").
		OrderBy("booking_date DESC", "start_minute ASC", "lane_no ASC").
		PlaceholderFormat(sq.Dollar)

	if filter.VenueID != nil {
		builder = builder.Where(sq.Eq{"venue_id": *filter.VenueID})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"booking_date": filter.DateFrom.Format("2006-01-02")})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"booking_date": filter.DateTo.Format("2006-01-02")})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.Email != nil {
		builder = builder.Where(sq.Eq{"customer_email": *filter.Email})
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	builder = builder.Limit(limit).Offset(filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []BookingRow
	for rows.Next() {
		var r BookingRow
		err := rows.Scan(
			&r.ID, &r.VenueID, &r.Lane, &r.Date, &r.StartMinute, &r.EndMinute,
			&r.StartAt, &r.CustomerName, &r.CustomerEmail, &r.PartySize, &r.Status,
			&r.PriceCents, &r.PaymentMethod, &r.HoldToken, &r.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list row", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list rows", err)
	}
	return result, nil
}
