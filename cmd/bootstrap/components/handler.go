package components

import (
	"lanebook/internal/handler"
	"lanebook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewHoldHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
