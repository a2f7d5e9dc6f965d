package components

import (
	"komani-booking/internal/handler"
	"komani-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTourHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
