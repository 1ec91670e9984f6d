package api

import (
	"time"

	"notion-roadmap/roadmap/internal/config"
	"notion-roadmap/roadmap/internal/metrics"
	"notion-roadmap/roadmap/internal/providers"
	"notion-roadmap/roadmap/internal/services"
)

type Services struct {
	Roadmap *services.RoadmapService
}

type Dependencies struct {
	Config   config.Config
	Services *Services
	Metrics  *metrics.MetricsRegistry
	UpSince  time.Time
}

// InitDependencies wires the Notion provider and the roadmap service from
// cfg. It does not validate cfg; handlers report missing settings per
// request.
func InitDependencies(cfg config.Config, m *metrics.MetricsRegistry) *Dependencies {
	return NewDependencies(cfg, providers.NewNotionProvider(cfg), m)
}

// NewDependencies is InitDependencies with an explicit data provider.
func NewDependencies(cfg config.Config, provider providers.DataProvider, m *metrics.MetricsRegistry) *Dependencies {
	return &Dependencies{
		Config: cfg,
		Services: &Services{
			Roadmap: services.NewRoadmapService(cfg, provider, m),
		},
		Metrics: m,
		UpSince: time.Now(),
	}
}
