// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/robot-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	robotHandler *handlers.RobotHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api", func(r chi.Router) {
		r.Post("/robots", robotHandler.CreateRobot)
		r.Put("/robots", robotHandler.UpdateRobot)
		r.Get("/robots", robotHandler.ListRobots)
		r.Get("/robots/{id}", robotHandler.GetRobot)
		r.Delete("/robots/{id}", robotHandler.DeleteRobot)
	})

	return r
}
