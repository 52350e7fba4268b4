//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(register func(r *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := zerolog.Nop()
	r.Use(middleware.CustomRecovery(logger))
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.ActorMiddleware())
	register(r)
	return r
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error.Message
}

func TestRecoveryAndErrorHandler(t *testing.T) {
	r := newEngine(func(r *gin.Engine) {
		r.GET("/panic", func(c *gin.Context) { panic("kaboom") })
		r.GET("/private", func(c *gin.Context) { _ = c.Error(errors.New("db down")) })
		r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	})

	t.Run("panic becomes 500 with request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", errorMessage(t, w.Body.Bytes()))
	})

	t.Run("private error is hidden behind a 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
	})

	t.Run("request id is generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestActorMiddleware(t *testing.T) {
	r := newEngine(func(r *gin.Engine) {
		r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetActor(c)) })
	})

	testCases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "explicit actor", header: "front-desk", want: "front-desk"},
		{name: "blank header", header: "   ", want: middleware.DefaultActor},
		{name: "no header", want: middleware.DefaultActor},
		{name: "truncated", header: strings.Repeat("a", 150), want: strings.Repeat("a", 100)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set(middleware.ActorHeader, tc.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	preflight := func(cfg config.CORSConfig, origin string) http.Header {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg, zerolog.Nop()))
		r.POST("/api/bookings", func(c *gin.Context) { c.Status(http.StatusCreated) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		r.ServeHTTP(w, req)
		return w.Header()
	}

	cfg := config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	t.Run("actor header always allowed", func(t *testing.T) {
		h := preflight(cfg, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", h.Get("Access-Control-Allow-Origin"))
		assert.Contains(t, h.Get("Access-Control-Allow-Headers"), middleware.ActorHeader)
		assert.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("wildcard origin drops credentials", func(t *testing.T) {
		wildcard := cfg
		wildcard.AllowOrigins = []string{"*"}
		h := preflight(wildcard, "http://elsewhere.example")
		assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
		assert.Empty(t, h.Get("Access-Control-Allow-Credentials"))
	})
}
