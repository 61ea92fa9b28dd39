package components

import (
	"meetingsync/internal/handler"
	"meetingsync/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewValidationHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewAccountHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
