package venueconfig

import (
	"context"

	"lanebook/internal/domain/venue"
	"lanebook/internal/infra"
	lbdb "lanebook/internal/infra/db"

	"github.com/google/uuid"
)

// Provider supplies per-venue operating parameters. The engine treats the
// result as a read-only snapshot.
type Provider interface {
	Get(ctx context.Context, venueID uuid.UUID) (venue.Config, error)
}

// PgProvider reads venue configuration from the venues table.
type PgProvider struct {
	db lbdb.DBTX
}

func NewPgProvider(db lbdb.DBTX) *PgProvider {
	return &PgProvider{db: db}
}

func (p *PgProvider) Get(ctx context.Context, venueID uuid.UUID) (venue.Config, error) {
	const query = `
SELECT id, name, timezone, open_minute, close_minute, lane_count,
       min_duration_minutes, max_duration_minutes, slot_increment_minutes,
       horizon_days, lead_time_minutes
FROM venues
WHERE id = $1`

	var cfg venue.Config
	err := p.db.QueryRow(ctx, query, venueID).Scan(
		&cfg.ID, &cfg.Name, &cfg.Timezone, &cfg.OpenMinute, &cfg.CloseMinute, &cfg.LaneCount,
		&cfg.MinDurationMinutes, &cfg.MaxDurationMinutes, &cfg.SlotIncrementMinutes,
		&cfg.HorizonDays, &cfg.LeadTimeMinutes,
	)
	if err != nil {
		if isNoRows(err) {
			return venue.Config{}, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return venue.Config{}, infra.WrapRepoErr("failed to load venue config", err)
	}
	if err := cfg.Validate(); err != nil {
		return venue.Config{}, infra.WrapRepoErr("venue config is invalid", err)
	}
	return cfg, nil
}
