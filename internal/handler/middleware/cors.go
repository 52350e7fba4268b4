package middleware

import (
	"slices"

	"hotel-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewCORSMiddleware always lets browsers send the actor and request id
// headers and read Location from a created booking.
func NewCORSMiddleware(cfg config.CORSConfig, logger zerolog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeaders(cfg.AllowHeaders, ActorHeader, RequestIDHeader),
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, RequestIDHeader, "Location"),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		// Credentialed requests cannot be combined with a wildcard origin
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	logger.Info().
		Strs("allow_origins", cfg.AllowOrigins).
		Bool("allow_credentials", corsCfg.AllowCredentials).
		Msg("CORS middleware initialized")
	return cors.New(corsCfg)
}

func withHeaders(configured []string, required ...string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
