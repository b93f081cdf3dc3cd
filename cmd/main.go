package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"lanebook/cmd/bootstrap"
	"lanebook/internal/infra/db"
	"lanebook/internal/infra/repository"
	"lanebook/internal/pkg/clock"
	"lanebook/internal/pkg/config"
	"lanebook/internal/pkg/metrics"
	"lanebook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Release mode unless explicitly overridden, so a config mistake never
	// exposes debug output.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           lanebook
// @version         1.0
// @description     Lane availability and reservation-hold engine.

// @BasePath  /api
// @schemes http https
func main() {
	root := &cobra.Command{
		Use:   "lanebook",
		Short: "Lane availability and reservation-hold engine",
	}
	root.AddCommand(newServeCmd(), newSweepCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServer()
		},
	}
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}

func runServer() error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application cleanly", "error", err)
	}

	slog.Info("application stopped")
	return nil
}

// newSweepCmd runs a single expiry sweep and exits. Useful as a cron
// fallback when the in-process sweeper is disabled.
func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove expired holds once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			pool, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			sweeper := usecase.NewSweeper(
				repository.NewHoldRepository(),
				pool,
				clock.NewRealClock(),
				metrics.New(prometheus.NewRegistry()),
				cfg.Booking.SweepInterval,
			)
			swept, err := sweeper.RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("swept %d expired hold rows\n", swept)
			return nil
		},
	}
}
