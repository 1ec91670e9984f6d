package ui

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notion-roadmap/roadmap/internal/constants"
	"notion-roadmap/roadmap/internal/logging"
	"notion-roadmap/roadmap/internal/normalize"
	"notion-roadmap/roadmap/internal/services"
)

const appName = "Roadmap"

// RoadmapReader is the part of the roadmap service the UI needs
type RoadmapReader interface {
	Items(ctx context.Context, id string) ([]normalize.Item, error)
	Item(ctx context.Context, id string) (*normalize.Item, error)
}

// UIHandler manages all UI routes
type UIHandler struct {
	roadmap RoadmapReader
}

// NewUIHandler creates a new UI handler
func NewUIHandler(roadmap RoadmapReader) *UIHandler {
	return &UIHandler{roadmap: roadmap}
}

// RoadmapPageHandler renders the list page shell; items load via HTMX
func (h *UIHandler) RoadmapPageHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"AppName": appName,
		"Title":   "Product Roadmap",
	}
	RenderTemplate(w, "roadmap.html", data)
}

// RoadmapItemsHandler returns the roadmap list as HTML (for HTMX)
func (h *UIHandler) RoadmapItemsHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"EmptyMessage": constants.MsgNoRoadmapItems,
	}

	items, err := h.roadmap.Items(r.Context(), "")
	if err != nil {
		logging.Warn("Roadmap list failed to load", "error", err)
		data["Error"] = services.ErrorMessage(err)
	} else {
		data["Items"] = items
	}

	// Errors render as markup with 200 so HTMX swaps them in
	RenderPartial(w, "roadmap_items.html", data)
}

// ProjectPageHandler renders the detail page shell; the item loads via HTMX
func (h *UIHandler) ProjectPageHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"AppName": appName,
		"Title":   "Project",
		"ID":      chi.URLParam(r, "id"),
	}
	RenderTemplate(w, "project.html", data)
}

// ProjectDetailHandler returns one item as HTML (for HTMX)
func (h *UIHandler) ProjectDetailHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"NotFoundMessage": constants.MsgProjectNotFound,
	}

	item, err := h.roadmap.Item(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		data["NotFound"] = true
	case err != nil:
		logging.Warn("Project failed to load", "id", chi.URLParam(r, "id"), "error", err)
		data["Error"] = services.ErrorMessage(err)
	default:
		data["Item"] = item
	}

	RenderPartial(w, "project_detail.html", data)
}

// HealthCheckHandler is a simple health check for the UI service
func (h *UIHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
