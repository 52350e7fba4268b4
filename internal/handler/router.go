package handler

import (
	"net/http"

	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Bookings *api.BookingHandler
	Search   *api.SearchHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger zerolog.Logger, reg *prometheus.Registry, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, reg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger zerolog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.ActorMiddleware())
}

func setupRoutes(engine *gin.Engine, reg *prometheus.Registry, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(observability.MetricsHandler(reg)))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Bookings.Update},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Bookings.Cancel},
			{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Bookings.CheckIn},
			{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Bookings.CheckOut},
			{Method: http.MethodGet, Path: "/:id/refund", Handler: h.Bookings.RefundQuote},
			{Method: http.MethodGet, Path: "/reference/:reference", Handler: h.Bookings.GetByReference},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/users/:id/bookings", Handler: h.Bookings.ListByUser},
			{Method: http.MethodGet, Path: "/hotels/:id/bookings", Handler: h.Bookings.ListByHotel},
		})

		search := apiGroup.Group("/search")
		addRoutes(search, []route{
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Search.Search},
			{Method: http.MethodGet, Path: "/bookings/reference/:reference", Handler: h.Search.FindByReference},
			{Method: http.MethodGet, Path: "/bookings/recent", Handler: h.Search.Recent},
			{Method: http.MethodGet, Path: "/users/:id/bookings", Handler: h.Search.UserBookings},
			{Method: http.MethodGet, Path: "/hotels/:id/upcoming", Handler: h.Search.UpcomingHotelBookings},
			{Method: http.MethodGet, Path: "/hotels/:id/overlapping", Handler: h.Search.Overlapping},
			{Method: http.MethodGet, Path: "/stats/status", Handler: h.Search.StatusHistogram},
			{Method: http.MethodGet, Path: "/stats/destinations", Handler: h.Search.TopDestinations},
		})

		admin := apiGroup.Group("/admin/search")
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/resync", Handler: h.Admin.Resync},
			{Method: http.MethodPost, Path: "/bookings/:id/reindex", Handler: h.Admin.Reindex},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Admin.Remove},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
