package api

import (
	"net/http"

	"notion-roadmap/roadmap/internal/models/dtos/responses"
)

// GetRoadmapHandler handles GET /api/roadmap
//
// @Summary Raw roadmap rows
// @Description Returns the upstream pages unchanged, or the single page named by ?id=.
// @Tags Roadmap
// @Success 200 {object} responses.RoadmapResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/roadmap [get]
func GetRoadmapHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := deps.Services.Roadmap.Load(r.Context(), r.URL.Query().Get("id"))
		if err != nil {
			respondWithError(w, r, deps, err)
			return
		}

		respondWithJSON(w, http.StatusOK, responses.RoadmapResponse{
			Success:       true,
			Results:       result.Pages,
			PropertyNames: result.PropertyNames,
			SampleItem:    result.Sample(),
			HasMore:       result.HasMore,
		})
	}
}

// GetRoadmapItemsHandler handles GET /api/roadmap/items
//
// @Summary Normalized roadmap items
// @Tags Roadmap
// @Success 200 {object} responses.RoadmapItemsResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/roadmap/items [get]
func GetRoadmapItemsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := deps.Services.Roadmap.Items(r.Context(), r.URL.Query().Get("id"))
		if err != nil {
			respondWithError(w, r, deps, err)
			return
		}

		respondWithJSON(w, http.StatusOK, responses.RoadmapItemsResponse{
			Success: true,
			Items:   items,
		})
	}
}

// GetRoadmapSchemaHandler handles GET /api/roadmap/schema
//
// @Summary Database schema
// @Tags Roadmap
// @Success 200 {object} responses.RoadmapSchemaResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /api/roadmap/schema [get]
func GetRoadmapSchemaHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schema, err := deps.Services.Roadmap.Schema(r.Context())
		if err != nil {
			respondWithError(w, r, deps, err)
			return
		}

		props := make([]responses.SchemaProperty, 0, len(schema.Properties))
		for _, p := range schema.Properties {
			props = append(props, responses.SchemaProperty{Name: p.Name, Type: p.Type})
		}

		respondWithJSON(w, http.StatusOK, responses.RoadmapSchemaResponse{
			Success:    true,
			DatabaseID: schema.DatabaseID,
			Title:      schema.Title,
			Properties: props,
		})
	}
}

// PreflightHandler answers OPTIONS with 200 and an empty body. CORS headers
// are added by the router's cors middleware.
func PreflightHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
