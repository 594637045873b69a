// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	categoryHandler *handlers.CategoryHandler,
	sessionHandler *handlers.SessionHandler,
	documentHandler *handlers.DocumentHandler,
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

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", categoryHandler.ListCategories)
		r.Get("/categories/{id}", categoryHandler.GetCategory)

		// Session lifecycle. All other routes read the session from the
		// X-Session-ID header.
		r.Post("/sessions", sessionHandler.StartSession)
		r.Delete("/sessions/current", sessionHandler.EndSession)

		r.Get("/state", sessionHandler.GetState)
		r.Delete("/state", sessionHandler.ResetState)
		r.Put("/state/category", sessionHandler.SelectCategory)
		r.Patch("/state/form-data", sessionHandler.UpdateFormData)

		r.Get("/forms/{id}", documentHandler.GetForm)
		r.Post("/forms/{id}/submit", documentHandler.SubmitForm)

		r.Get("/previews/{id}", documentHandler.Preview)
		r.Post("/exports/{id}", documentHandler.Export)
		r.Get("/prints/{id}", documentHandler.Print)
	})

	return r
}
