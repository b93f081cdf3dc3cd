package components

import (
	"lanebook/internal/infra/db"
	"lanebook/internal/infra/readstore"
	repo_impl "lanebook/internal/infra/repository"
	"lanebook/internal/infra/venueconfig"
	"lanebook/internal/pkg/config"
	"lanebook/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewHoldRepository,
			fx.As(new(usecase.HoldRepository)),
			fx.As(new(usecase.HoldIntervalReader)),
			fx.As(new(usecase.ExpiredHoldDeleter)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
			fx.As(new(usecase.BookingIntervalReader)),
		),
		fx.Annotate(
			repo_impl.NewLaneRepository,
			fx.As(new(usecase.LaneLocker)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(usecase.BookingLister)),
		),
		NewVenueConfigProvider,
	),
)

// NewVenueConfigProvider layers the Redis read-through cache over the
// Postgres venue store.
func NewVenueConfigProvider(dbtx db.DBTX, client *redis.Client, cfg config.Config) venueconfig.Provider {
	source := venueconfig.NewPgProvider(dbtx)
	return venueconfig.NewCachedProvider(source, client, cfg.Redis.VenueConfigTTL)
}
