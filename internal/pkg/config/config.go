package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (rates, batch sizes, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Booking BookingConfig
	Sync    SyncConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" required:"true"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`

	// Retries of a write transaction after a serialization failure or deadlock
	TxMaxRetries int           `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
	TxRetryBase  time.Duration `envconfig:"DB_TX_RETRY_BASE" default:"100ms"`

	// Apply the embedded schema on startup
	Migrate bool `envconfig:"DB_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string `envconfig:"REDIS_PASSWORD" default:""`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"hotel"`
}

type CacheConfig struct {
	TTL time.Duration `envconfig:"CACHE_TTL" default:"10m"`
}

type BookingConfig struct {
	RatePerNightCents int64  `envconfig:"PRICING_RATE_PER_NIGHT_CENTS" default:"10000"`
	TaxRateBps        int64  `envconfig:"PRICING_TAX_RATE_BPS" default:"1000"`
	ServiceFeeBps     int64  `envconfig:"PRICING_SERVICE_FEE_BPS" default:"500"`
	ReferencePrefix   string `envconfig:"BOOKING_REFERENCE_PREFIX" default:"HRS"`
}

type SyncConfig struct {
	BatchSize      int           `envconfig:"SYNC_BATCH_SIZE" default:"100"`
	Timeout        time.Duration `envconfig:"SYNC_TIMEOUT" default:"10m"`
	Interval       time.Duration `envconfig:"SYNC_INTERVAL" default:"1h"`
	OnStartup      bool          `envconfig:"SYNC_ON_STARTUP" default:"true"`
	PagesPerSecond float64       `envconfig:"SYNC_PAGES_PER_SECOND" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Actor,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
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
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports every setting that would make the service misbehave at runtime.
func (c Config) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.Booking.RatePerNightCents > 0, "PRICING_RATE_PER_NIGHT_CENTS must be positive, got %d", c.Booking.RatePerNightCents)
	check(c.Booking.TaxRateBps >= 0, "PRICING_TAX_RATE_BPS must not be negative, got %d", c.Booking.TaxRateBps)
	check(c.Booking.ServiceFeeBps >= 0, "PRICING_SERVICE_FEE_BPS must not be negative, got %d", c.Booking.ServiceFeeBps)
	check(c.Sync.BatchSize > 0, "SYNC_BATCH_SIZE must be positive, got %d", c.Sync.BatchSize)
	check(c.Sync.Timeout > 0, "SYNC_TIMEOUT must be positive, got %s", c.Sync.Timeout)
	check(c.Sync.PagesPerSecond >= 0, "SYNC_PAGES_PER_SECOND must not be negative, got %g", c.Sync.PagesPerSecond)
	check(c.Cache.TTL > 0, "CACHE_TTL must be positive, got %s", c.Cache.TTL)
	check(c.DB.TxMaxRetries >= 0, "DB_TX_MAX_RETRIES must not be negative, got %d", c.DB.TxMaxRetries)

	return errors.Join(problems...)
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889", // Test port
			GinMode: "test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
			Migrate:  true,

			TxMaxRetries: 3,
			TxRetryBase:  10 * time.Millisecond,
		},
		Redis: RedisConfig{
			Addr:      "localhost:16379",
			KeyPrefix: "test",
		},
		Cache: CacheConfig{
			TTL: time.Minute,
		},
		Booking: BookingConfig{
			RatePerNightCents: 10000,
			TaxRateBps:        1000,
			ServiceFeeBps:     500,
			ReferencePrefix:   "HRS",
		},
		Sync: SyncConfig{
			BatchSize:      10,
			Timeout:        time.Minute,
			Interval:       time.Hour,
			OnStartup:      false,
			PagesPerSecond: 1000,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
