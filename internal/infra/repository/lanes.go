package repository

import (
	"context"

	"lanebook/internal/infra"
	lbdb "lanebook/internal/infra/db"

	"github.com/google/uuid"
)

type LaneRepository struct{}

func NewLaneRepository() *LaneRepository {
	return &LaneRepository{}
}

// Lock takes FOR UPDATE row locks on the given lanes. Lanes are locked in
// ascending order so two competing hold transactions always acquire locks
// in the same sequence; contention stays scoped to the lanes actually
// requested and never spans the whole pool.
func (r *LaneRepository) Lock(ctx context.Context, db lbdb.DBTX, venueID uuid.UUID, lanes []int) error {
	const query = `
SELECT lane_no
FROM lanes
WHERE venue_id = $1 AND lane_no = ANY($2)
ORDER BY lane_no
FOR UPDATE`

	rows, err := db.Query(ctx, query, venueID, lanes)
	if err != nil {
		return infra.WrapRepoErr("failed to lock lanes", err)
	}
	defer rows.Close()

	locked := 0
	for rows.Next() {
		var laneNo int
		if err := rows.Scan(&laneNo); err != nil {
			return infra.WrapRepoErr("failed to scan locked lane", err)
		}
		locked++
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read locked lanes", err)
	}
	if locked != len(lanes) {
		return infra.WrapRepoErr("some requested lanes do not exist", nil, infra.KindNotFound)
	}
	return nil
}
