package routes

import (
	"github.com/go-chi/chi/v5"

	"notion-roadmap/roadmap/internal/api"
	roadviewUI "notion-roadmap/roadmap/roadview/ui"
)

// RegisterUIRoutes registers all UI-related routes
func RegisterUIRoutes(r chi.Router, deps *api.Dependencies) {
	uiHandler := roadviewUI.NewUIHandler(deps.Services.Roadmap)

	// Page shells
	r.Get("/", uiHandler.RoadmapPageHandler)
	r.Get("/project/{id}", uiHandler.ProjectPageHandler)

	// HTMX partials
	r.Route("/ui", func(ui chi.Router) {
		ui.Get("/roadmap/items", uiHandler.RoadmapItemsHandler)
		ui.Get("/project/{id}", uiHandler.ProjectDetailHandler)

		// UI API routes
		ui.Get("/api/health", uiHandler.HealthCheckHandler)
	})
}
