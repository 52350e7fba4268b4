package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/infra/observability"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewSearchHandler,
		api.NewAdminHandler,
		observability.InitRegistry,
		func(b *api.BookingHandler, s *api.SearchHandler, a *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Bookings: b, Search: s, Admin: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
