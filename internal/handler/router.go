package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservation-service/internal/handler/api"
	"reservation-service/internal/handler/middleware"
	"reservation-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	promotionHandler *api.PromotionHandler,
	catalogHandler *api.CatalogHandler,
	healthHandler *api.HealthHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, reservationHandler, reviewHandler, promotionHandler, catalogHandler, healthHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

// Paths mirror the wire contract the allocator already speaks: flat,
// no /api prefix.
func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	promotionHandler *api.PromotionHandler,
	catalogHandler *api.CatalogHandler,
	healthHandler *api.HealthHandler,
) {
	addRoutes(engine, []route{
		{Method: http.MethodGet, Path: "/health", Handler: healthHandler.Health},
		{Method: http.MethodGet, Path: "/db-health", Handler: healthHandler.DBHealth},

		{Method: http.MethodPost, Path: "/reservation", Handler: reservationHandler.Create},
		{Method: http.MethodGet, Path: "/all-reservations", Handler: reservationHandler.List},
		{Method: http.MethodGet, Path: "/reservation/:id", Handler: reservationHandler.Get},
		{Method: http.MethodPut, Path: "/reservation/:id/cancel", Handler: reservationHandler.Cancel},

		// Three reconciliation surfaces for one semantic event: the allocator
		// told us something changed. They converge on ApplyConfirmation.
		{Method: http.MethodPost, Path: "/reservation-status", Handler: reservationHandler.UpdateStatus},
		{Method: http.MethodPost, Path: "/reservation/:id/approved", Handler: reservationHandler.Approve},
		{Method: http.MethodPost, Path: "/notify-reservation", Handler: reservationHandler.Notify},

		{Method: http.MethodPost, Path: "/review", Handler: reviewHandler.Create},
		{Method: http.MethodGet, Path: "/reviews", Handler: reviewHandler.List},

		{Method: http.MethodPost, Path: "/promotions", Handler: promotionHandler.Create},
		{Method: http.MethodGet, Path: "/promotions", Handler: promotionHandler.List},

		{Method: http.MethodGet, Path: "/menu", Handler: catalogHandler.Menu},
		{Method: http.MethodGet, Path: "/tables", Handler: catalogHandler.Tables},
	})
}

func addRoutes(engine *gin.Engine, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			engine.GET(r.Path, r.Handler)
		case http.MethodPost:
			engine.POST(r.Path, r.Handler)
		case http.MethodPut:
			engine.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			engine.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			engine.DELETE(r.Path, r.Handler)
		default:
			engine.Any(r.Path, r.Handler)
		}
	}
}
