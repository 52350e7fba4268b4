package bootstrap

import (
	"hotel-booking/internal/pkg/config"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the settings that shape booking and sync behaviour; credentials are left out.
func logEffectiveConfig(cfg config.Config, logger zerolog.Logger) {
	logger.Info().
		Str("db_host", cfg.DB.Host).
		Str("db_name", cfg.DB.DBName).
		Str("redis_addr", cfg.Redis.Addr).
		Str("key_prefix", cfg.Redis.KeyPrefix).
		Str("reference_prefix", cfg.Booking.ReferencePrefix).
		Int("sync_batch_size", cfg.Sync.BatchSize).
		Dur("sync_interval", cfg.Sync.Interval).
		Bool("sync_on_startup", cfg.Sync.OnStartup).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("configuration loaded")
}
