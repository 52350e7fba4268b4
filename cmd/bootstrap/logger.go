package bootstrap

import (
	"os"
	"strings"
	"time"

	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) zerolog.Logger {
			return NewLogger(cfg.Log)
		},
	),
)

// NewLogger writes JSON in release mode and a console format otherwise, and
// installs the result as the global zerolog logger.
func NewLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var logger zerolog.Logger
	if gin.Mode() == gin.ReleaseMode {
		logger = zerolog.New(os.Stdout)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: cfg.TimeFormat})
	}
	logger = logger.Level(level).With().Timestamp().Str("service", "hotel-booking").Logger()

	log.Logger = logger
	return logger
}
