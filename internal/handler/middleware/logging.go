package middleware

import (
	"time"

	"hotel-booking/internal/infra/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// LoggingMiddleware logs request start and completion and records HTTP metrics.
// An incoming X-Request-ID is kept, otherwise a fresh one is issued.
func LoggingMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	logger = logger.With().Str("component", "http").Logger()
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		reqLog := logger.With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Str("actor", c.GetHeader(ActorHeader)).
			Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))

		reqLog.Debug().Msg("request started")

		c.Next()

		duration := time.Since(startTime)
		statusCode := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.ObserveHTTP(route, c.Request.Method, statusCode, duration)

		var ev *zerolog.Event
		switch {
		case statusCode >= 500:
			ev = reqLog.Error()
		case statusCode >= 400:
			ev = reqLog.Warn()
		default:
			ev = reqLog.Info()
		}
		ev = ev.Int("status_code", statusCode).Dur("duration", duration)
		if size := c.Writer.Size(); size > 0 {
			ev = ev.Int("response_size", size)
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Msg("request completed")
	}
}

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
