package bootstrap

import (
	"log/slog"

	"lanebook/internal/handler/middleware"
	"lanebook/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log)
	return logger.GetSlogLogger()
}
