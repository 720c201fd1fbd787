package components

import (
	"petstay-bff/internal/handler"
	"petstay-bff/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewCountdownHandler,
	),
	fx.Invoke(handler.NewRouter),
)
