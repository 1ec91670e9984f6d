package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"notion-roadmap/roadmap/internal/constants"
	reqctx "notion-roadmap/roadmap/internal/context"
	"notion-roadmap/roadmap/internal/logging"
	"notion-roadmap/roadmap/internal/models/dtos/responses"
	"notion-roadmap/roadmap/internal/providers"
	"notion-roadmap/roadmap/internal/services"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondWithError logs err with the request and configuration context and
// writes the 500 error body.
func respondWithError(w http.ResponseWriter, r *http.Request, deps *Dependencies, err error) {
	fields := []interface{}{
		"error", err,
		"type", services.ErrorCode(err),
		"timestamp", time.Now().UTC().Format(time.RFC3339),
		"request_id", reqctx.GetRequestID(r.Context()),
		"request_method", r.Method,
		"request_url", r.URL.String(),
	}
	fields = append(fields, deps.Config.Redacted()...)
	logging.Error("Roadmap request failed", fields...)

	resp := responses.ErrorResponse{
		Error:   constants.StatusInternalError,
		Message: services.ErrorMessage(err),
		Type:    services.ErrorCode(err),
	}

	var perr *providers.ProviderError
	if deps.Config.AppEnv == "development" && errors.As(err, &perr) {
		resp.Details = perr.Details
	}

	respondWithJSON(w, http.StatusInternalServerError, resp)
}
