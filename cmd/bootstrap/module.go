package bootstrap

import (
	"lanebook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	NotifierModule,
	MetricsModule,
	RateTableModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	SweeperModule,
)
