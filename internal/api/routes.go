package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes. metricsHandler may be nil, in
// which case no /metrics endpoint is mounted.
func SetupRoutes(h *Handlers, allowedOrigins []string, metricsHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}

	// Health check (no auth required)
	r.Get("/health", h.HealthCheck)

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/banned-list", func(r chi.Router) {
			r.Get("/", h.HandleList)
			r.Get("/check/{email}", h.HandleCheck)
			r.Post("/ban", h.HandleBan)
			r.Delete("/{email}", h.HandleUnban)
			r.Post("/clear", h.HandleClear)
		})

		r.Post("/identity/validate", h.HandleValidate)
	})

	return r
}
