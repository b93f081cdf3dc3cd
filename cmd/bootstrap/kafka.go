package bootstrap

import (
	"context"

	"lanebook/internal/notify"
	"lanebook/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(notify.Notifier)),
		),
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config) *notify.KafkaNotifier {
	notifier := notify.NewKafkaNotifier(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return notifier.Close()
		},
	})
	return notifier
}
