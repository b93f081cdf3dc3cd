package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB/broker addresses)
// - default: values common across all environments (timeouts, booking policy)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Berlin"`
}

type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	VenueConfigTTL time.Duration `envconfig:"REDIS_VENUE_CONFIG_TTL" default:"30s"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_NOTIFICATIONS_TOPIC" default:"lanebook.notifications"`
	Buffer  int      `envconfig:"KAFKA_PRODUCER_BUFFER" default:"256"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Europe/Berlin"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// BookingConfig holds the engine-wide policy knobs. Venue-specific
// parameters (hours, lane count, durations) live in the venue config store.
type BookingConfig struct {
	HoldTTL            time.Duration `envconfig:"BOOKING_HOLD_TTL" default:"30m"`
	CancellationCutoff time.Duration `envconfig:"BOOKING_CANCELLATION_CUTOFF" default:"8h"`
	SweepInterval      time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"1m"`
	RateTablePath      string        `envconfig:"BOOKING_RATE_TABLE_PATH" default:"rates.toml"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Berlin",
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "Europe/Berlin",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Booking: BookingConfig{
			HoldTTL:            30 * time.Minute,
			CancellationCutoff: 8 * time.Hour,
			SweepInterval:      time.Minute,
			RateTablePath:      "rates.toml",
		},
	}
}
