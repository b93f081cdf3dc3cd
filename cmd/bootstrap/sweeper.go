package bootstrap

import (
	"context"

	"lanebook/internal/usecase"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(startSweeper),
)

// startSweeper runs the expiry sweep loop for the lifetime of the app.
func startSweeper(lc fx.Lifecycle, sweeper *usecase.Sweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
