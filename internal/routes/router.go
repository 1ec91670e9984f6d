package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"notion-roadmap/roadmap/internal/api"
	"notion-roadmap/roadmap/internal/logging"
	"notion-roadmap/roadmap/internal/middleware"
)

// AllowedHeaders are the request headers browsers may send cross-origin.
var AllowedHeaders = []string{
	"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version", "Content-Length",
	"Content-MD5", "Content-Type", "Date", "X-Api-Version",
}

// RegisterRoutes builds the HTTP handler for the API, the UI and the
// health endpoint. metricsHandler is mounted at /metrics when not nil.
func RegisterRoutes(deps *api.Dependencies, metricsHandler http.Handler) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: AllowedHeaders,
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps.Config, deps.UpSince))

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	RegisterAPIRoutes(r, deps)
	RegisterUIRoutes(r, deps)

	return r
}
