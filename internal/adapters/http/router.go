// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coldflow/planboard/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	boardHandler *handlers.BoardHandler,
	ordersHandler *handlers.OrdersHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Board windows and day details.
		r.Get("/board", boardHandler.GetBoard)
		r.Get("/board/days/{date}", boardHandler.GetDay)
		r.Get("/board/feed.ics", boardHandler.Feed)

		// Board mutations.
		r.Post("/board/moves", boardHandler.Move)
		r.Post("/board/undo", boardHandler.Undo)

		// Order creation and deletion.
		r.Post("/orders/dry-ice", ordersHandler.CreateDryIceSeries)
		r.Delete("/orders/dry-ice/{id}", ordersHandler.DeleteDryIceOrder)
	})

	return r
}
