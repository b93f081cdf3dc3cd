package repository

import (
	"context"
	"time"

	"lanebook/internal/domain/hold"
	"lanebook/internal/domain/schedule"
	"lanebook/internal/infra"
	lbdb "lanebook/internal/infra/db"

	"github.com/google/uuid"
)

type HoldRepository struct{}

func NewHoldRepository() *HoldRepository {
	return &HoldRepository{}
}

// ActiveIntervals lists the unexpired hold claims for one venue and date.
// The expires_at filter is the query-time half of the expiry reconciler:
// an expired hold is invisible here even before the sweeper removes it.
func (r *HoldRepository) ActiveIntervals(ctx context.Context, db lbdb.DBTX, venueID uuid.UUID, date string, now time.Time) ([]schedule.Interval, error) {
	const query = `
SELECT lane_no, start_minute, end_minute
FROM lane_holds
WHERE venue_id = $1 AND booking_date = $2::date AND expires_at > $3`

	rows, err := db.Query(ctx, query, venueID, date, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active holds", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Lane, &iv.StartMinute, &iv.EndMinute); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hold interval", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hold intervals", err)
	}
	return intervals, nil
}

// Insert writes one row per held lane. All rows go in together; a
// constraint violation from a competing writer surfaces as KindConflict
// and aborts the whole transaction, so a partial hold is never visible.
func (r *HoldRepository) Insert(ctx context.Context, db lbdb.DBTX, h *hold.Hold) error {
	const stmt = `
INSERT INTO lane_holds (token, venue_id, lane_no, booking_date, start_minute, end_minute, party_size, amount_cents, note, created_at, expires_at)
VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11)`

	date := h.Date().Format("2006-01-02")
	for _, lane := range h.Lanes() {
		_, err := db.Exec(ctx, stmt,
			h.Token(),
			h.VenueID(),
			lane,
			date,
			h.StartMinute(),
			h.EndMinute(),
			h.PartySize(),
			h.AmountCents(),
			h.Note(),
			h.CreatedAt(),
			h.ExpiresAt(),
		)
		if err != nil {
			if isConflict(err) {
				return infra.WrapRepoErr("hold conflicts with an existing claim", err, infra.KindConflict)
			}
			return infra.WrapRepoErr("failed to insert hold", err)
		}
	}
	return nil
}

// FindByTokenForUpdate loads and locks all rows of one hold. Used by the
// finalizer so a concurrent commit or sweep of the same token serializes.
func (r *HoldRepository) FindByTokenForUpdate(ctx context.Context, db lbdb.DBTX, token uuid.UUID) (*hold.Hold, error) {
	const query = `
SELECT venue_id, lane_no, booking_date, start_minute, end_minute, party_size, amount_cents, note, created_at, expires_at
FROM lane_holds
WHERE token = $1
ORDER BY lane_no
FOR UPDATE`

	rows, err := db.Query(ctx, query, token)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hold by token", err)
	}
	defer rows.Close()

	var (
		venueID     uuid.UUID
		lanes       []int
		date        time.Time
		startMinute int
		endMinute   int
		partySize   int
		amountCents int64
		note        string
		createdAt   time.Time
		expiresAt   time.Time
	)
	for rows.Next() {
		var lane int
		if err := rows.Scan(&venueID, &lane, &date, &startMinute, &endMinute, &partySize, &amountCents, &note, &createdAt, &expiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hold row", err)
		}
		lanes = append(lanes, lane)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read hold rows", err)
	}
	if len(lanes) == 0 {
		return nil, infra.WrapRepoErr("hold not found", nil, infra.KindNotFound)
	}

	return hold.Reconstruct(token, venueID, lanes, date, startMinute, endMinute, partySize, amountCents, note, createdAt, expiresAt), nil
}

func (r *HoldRepository) DeleteByToken(ctx context.Context, db lbdb.DBTX, token uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM lane_holds WHERE token = $1`, token)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete hold by token", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpiredInWindow clears expired rows for one venue and date inside
// the hold transaction. Without this, a stale expired row would trip the
// overlap constraint even though the slot is logically free.
func (r *HoldRepository) DeleteExpiredInWindow(ctx context.Context, db lbdb.DBTX, venueID uuid.UUID, date string, now time.Time) (int64, error) {
	const stmt = `
DELETE FROM lane_holds
WHERE venue_id = $1 AND booking_date = $2::date AND expires_at <= $3`

	tag, err := db.Exec(ctx, stmt, venueID, date, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired holds in window", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired is the periodic sweep across all venues.
func (r *HoldRepository) DeleteExpired(ctx context.Context, db lbdb.DBTX, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM lane_holds WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired holds", err)
	}
	return tag.RowsAffected(), nil
}
