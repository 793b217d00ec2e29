package components

import (
	"hotel-board/internal/handler"
	"hotel-board/internal/handler/api"
	"hotel-board/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPriceHandler,
		api.NewReservationHandler,
		api.NewCalendarHandler,
		middleware.NewAuthMiddleware,
		func(price *api.PriceHandler, res *api.ReservationHandler, calendar *api.CalendarHandler) handler.Handlers {
			return handler.Handlers{
				Price:       price,
				Reservation: res,
				Calendar:    calendar,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
