package api

import (
	"net/http"
	"time"

	"notion-roadmap/roadmap/internal/config"
	"notion-roadmap/roadmap/internal/constants"
	"notion-roadmap/roadmap/internal/models/dtos/responses"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server is running and configured.
// @Tags Misc
// @Success 200 {object} responses.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(cfg config.Config, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := map[string]responses.ServiceStatus{
			"notion_api_key":     settingStatus(cfg.NotionAPIKey, config.EnvNotionAPIKey),
			"notion_database_id": settingStatus(cfg.NotionDatabaseID, config.EnvNotionDatabaseID),
		}

		overallStatus := string(constants.APIStatusOk)
		for _, svc := range services {
			if svc.Status != string(constants.APIStatusOk) {
				overallStatus = "degraded"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		respondWithJSON(w, http.StatusOK, responses.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince.UTC(),
			Uptime:   uptime,
		})
	}
}

func settingStatus(value, name string) responses.ServiceStatus {
	if value == "" {
		return responses.ServiceStatus{
			Status:  "missing",
			Details: name + " environment variable is not set",
		}
	}
	return responses.ServiceStatus{
		Status:  string(constants.APIStatusOk),
		Details: name + " is set",
	}
}
