package bootstrap

import (
	"log/slog"
	"os"

	"lanebook/internal/domain/venue"
	"lanebook/internal/pkg/config"

	"go.uber.org/fx"
)

var RateTableModule = fx.Module("rates",
	fx.Provide(
		NewRateTable,
	),
)

// NewRateTable loads pricing from the configured TOML file. A missing file
// falls back to the built-in defaults; a malformed file is a startup error.
func NewRateTable(cfg config.Config) (*venue.RateTable, error) {
	path := cfg.Booking.RateTablePath
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("rate table file not found, using defaults", "path", path)
		return venue.DefaultRateTable(), nil
	}
	return venue.LoadRateTable(path)
}
