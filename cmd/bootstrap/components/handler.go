package components

import (
	"loft-booking/internal/handler"
	"loft-booking/internal/handler/api"
	"loft-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLoftHandler,
		api.NewStayHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(l *api.LoftHandler, s *api.StayHandler, b *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Loft: l, Stay: s, Booking: b}
		},
	),
	fx.Invoke(handler.NewRouter),
)
