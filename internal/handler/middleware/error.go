package middleware

import (
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorHandler renders the last public error left by a handler. Private errors
// never reach the client; they are logged with a short stack and become a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			logPrivateErrors(c)
		}
		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func logPrivateErrors(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())
	for _, err := range c.Errors.ByType(gin.ErrorTypePrivate) {
		logger.Error().
			Err(err.Err).
			Strs("stack", errs.ExtractStackLines(err.Err, 5)).
			Msg("unhandled handler error")
	}
}

// CustomRecovery turns a panic into a 500 carrying the request id.
func CustomRecovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Newf("panic: %v", rec)
				logger.Error().
					Err(err).
					Str("request_id", GetRequestID(c)).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Strs("stack", errs.ExtractStackLines(err, 8)).
					Msg("recovered from panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
