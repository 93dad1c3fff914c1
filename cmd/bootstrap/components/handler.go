package components

import (
	"reservation-service/internal/handler"
	"reservation-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewPromotionHandler,
		api.NewCatalogHandler,
		api.NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)
