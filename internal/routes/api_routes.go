package routes

import (
	"github.com/go-chi/chi/v5"

	"notion-roadmap/roadmap/internal/api"
	"notion-roadmap/roadmap/internal/middleware"
)

// RegisterAPIRoutes registers the JSON roadmap routes
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	limiter := middleware.NewRateLimiter(deps.Config.RateLimitRPS, deps.Config.RateLimitBurst, deps.Metrics)

	r.Route("/api", func(apiRouter chi.Router) {
		// Preflight and bare OPTIONS requests answer 200 with no body
		apiRouter.Options("/*", api.PreflightHandler)

		apiRouter.Group(func(limited chi.Router) {
			limited.Use(limiter.Middleware)

			limited.Get("/roadmap", api.GetRoadmapHandler(deps))
			limited.Get("/roadmap/items", api.GetRoadmapItemsHandler(deps))
			limited.Get("/roadmap/schema", api.GetRoadmapSchemaHandler(deps))
		})
	})
}
