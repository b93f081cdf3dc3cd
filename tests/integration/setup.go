//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"lanebook/internal/domain/venue"
	"lanebook/internal/infra/readstore"
	"lanebook/internal/infra/repository"
	"lanebook/internal/infra/venueconfig"
	"lanebook/internal/notify"
	"lanebook/internal/pkg/clock"
	"lanebook/internal/pkg/config"
	"lanebook/internal/pkg/metrics"
	"lanebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	testDB       = "lanebook_test"
)

// startPostgres runs a throwaway Postgres container and returns a pool
// with the schema applied.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, host, port.Port(), testDB)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applySchema(t, pool)
	return pool
}

func applySchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	schemaPath := filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations", "schema.sql")

	schema, err := os.ReadFile(schemaPath)
	require.NoError(t, err, "failed to read schema file")

	_, err = pool.Exec(context.Background(), string(schema))
	require.NoError(t, err, "failed to apply schema")
}

// seedVenue inserts a venue with its lane rows and returns its ID.
func seedVenue(t *testing.T, pool *pgxpool.Pool, laneCount int) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	venueID := uuid.New()
	_, err := pool.Exec(ctx, `
INSERT INTO venues (id, name, timezone, open_minute, close_minute, lane_count,
                    min_duration_minutes, max_duration_minutes, slot_increment_minutes,
                    horizon_days, lead_time_minutes)
VALUES ($1, 'Test Bowl', 'Europe/Berlin', $2, $3, $4, 15, 120, 15, 60, 15)`,
		venueID, 13*60, 22*60, laneCount)
	require.NoError(t, err)

	for lane := 1; lane <= laneCount; lane++ {
		_, err := pool.Exec(ctx, `INSERT INTO lanes (venue_id, lane_no) VALUES ($1, $2)`, venueID, lane)
		require.NoError(t, err)
	}
	return venueID
}

type testEnv struct {
	pool         *pgxpool.Pool
	venueID      uuid.UUID
	clock        *clock.MockClock
	availability usecase.AvailabilityUseCase
	holds        usecase.HoldUseCase
	bookings     usecase.BookingUseCase
	sweeper      *usecase.Sweeper
}

// newTestEnv wires the full usecase stack against the container database,
// with a controllable clock and notifications discarded.
func newTestEnv(t *testing.T, laneCount int, now time.Time) *testEnv {
	t.Helper()

	pool := startPostgres(t)
	venueID := seedVenue(t, pool, laneCount)

	mockClock := clock.NewMockClock(now)
	m := metrics.New(prometheus.NewRegistry())
	notifier := notify.NopNotifier{}
	policy := config.NewTestConfig().Booking
	rates := venue.DefaultRateTable()

	venues := venueconfig.NewPgProvider(pool)
	holdRepo := repository.NewHoldRepository()
	bookingRepo := repository.NewBookingRepository()
	laneRepo := repository.NewLaneRepository()
	lister := readstore.NewBookingReadStore()

	return &testEnv{
		pool:         pool,
		venueID:      venueID,
		clock:        mockClock,
		availability: usecase.NewAvailabilityUseCase(venues, bookingRepo, holdRepo, rates, pool, mockClock),
		holds:        usecase.NewHoldUseCase(venues, holdRepo, bookingRepo, laneRepo, rates, pool, mockClock, m, notifier, policy),
		bookings:     usecase.NewBookingUseCase(venues, bookingRepo, holdRepo, lister, pool, mockClock, m, notifier, policy),
		sweeper:      usecase.NewSweeper(holdRepo, pool, mockClock, m, policy.SweepInterval),
	}
}
