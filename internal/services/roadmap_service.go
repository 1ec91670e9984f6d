package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"notion-roadmap/roadmap/internal/config"
	"notion-roadmap/roadmap/internal/constants"
	"notion-roadmap/roadmap/internal/logging"
	"notion-roadmap/roadmap/internal/metrics"
	"notion-roadmap/roadmap/internal/models/dtos/responses"
	"notion-roadmap/roadmap/internal/models/notion"
	"notion-roadmap/roadmap/internal/normalize"
	"notion-roadmap/roadmap/internal/providers"
)

// ErrItemNotFound is returned by Item when no row matches the id.
var ErrItemNotFound = errors.New(constants.MsgProjectNotFound)

// RoadmapService loads roadmap rows from the upstream database and shapes
// them for the API and the UI.
type RoadmapService struct {
	cfg        config.Config
	provider   providers.DataProvider
	normalizer *normalize.Normalizer
	metrics    *metrics.MetricsRegistry
}

func NewRoadmapService(cfg config.Config, provider providers.DataProvider, m *metrics.MetricsRegistry) *RoadmapService {
	return &RoadmapService{
		cfg:        cfg,
		provider:   provider,
		normalizer: normalize.New(cfg.DefaultStatus),
		metrics:    m,
	}
}

// RoadmapResult is the raw outcome of one load.
type RoadmapResult struct {
	Pages         []notion.Page
	PropertyNames []string
	HasMore       bool
}

// Sample returns the first page's id and properties as received, or nil
// when there are no results.
func (r *RoadmapResult) Sample() *responses.SampleItem {
	if len(r.Pages) == 0 {
		return nil
	}
	first := r.Pages[0]
	sample := &responses.SampleItem{ID: first.ID}

	var wire struct {
		Properties json.RawMessage `json:"properties"`
	}
	if len(first.Raw) > 0 && json.Unmarshal(first.Raw, &wire) == nil && len(wire.Properties) > 0 {
		sample.Properties = wire.Properties
	} else {
		sample.Properties = json.RawMessage(`{}`)
	}
	return sample
}

// SchemaResult describes the upstream database.
type SchemaResult struct {
	DatabaseID string                  `json:"databaseId"`
	Title      string                  `json:"title"`
	Properties []notion.SchemaProperty `json:"properties"`
}

// Load fetches every row, or only the row identified by id when id is not
// empty. Configuration is checked before any upstream call.
func (s *RoadmapService) Load(ctx context.Context, id string) (*RoadmapResult, error) {
	if err := s.checkConfig(); err != nil {
		return nil, err
	}

	id = strings.TrimSpace(id)
	var (
		pages   []notion.Page
		hasMore bool
		err     error
	)

	switch {
	case id == "":
		pages, hasMore, err = s.query(ctx, &providers.QueryOptions{PageSize: s.cfg.PageSize})
	case s.cfg.NotionIDProperty != "":
		pages, hasMore, err = s.query(ctx, &providers.QueryOptions{
			PageSize: 1,
			Filter:   providers.RichTextEquals(s.cfg.NotionIDProperty, id),
		})
	default:
		pages, err = s.retrieve(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	return &RoadmapResult{
		Pages:         pages,
		PropertyNames: propertyNames(pages),
		HasMore:       hasMore,
	}, nil
}

// Items loads and normalizes rows in upstream order.
func (s *RoadmapService) Items(ctx context.Context, id string) ([]normalize.Item, error) {
	result, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	items := s.normalizer.NormalizeAll(result.Pages)
	if s.metrics != nil {
		s.metrics.ItemsNormalizedTotal.Add(float64(len(items)))
	}
	return items, nil
}

// Item loads a single normalized row. It returns ErrItemNotFound when
// nothing matches.
func (s *RoadmapService) Item(ctx context.Context, id string) (*normalize.Item, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrItemNotFound
	}

	items, err := s.Items(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemNotFound
	}
	return &items[0], nil
}

// Schema returns the database title and its properties in schema order.
func (s *RoadmapService) Schema(ctx context.Context) (*SchemaResult, error) {
	if err := s.checkConfig(); err != nil {
		return nil, err
	}

	start := time.Now()
	db, err := s.provider.RetrieveDatabase(ctx, s.cfg.NotionDatabaseID)
	s.observe(constants.OpRetrieveDatabase, start, err)
	if err != nil {
		s.logFailure(constants.OpRetrieveDatabase, err)
		return nil, err
	}

	props := db.Properties
	if props == nil {
		props = []notion.SchemaProperty{}
	}
	return &SchemaResult{
		DatabaseID: s.cfg.NotionDatabaseID,
		Title:      db.Title,
		Properties: props,
	}, nil
}

// DefaultStatus is the status shown for rows without one.
func (s *RoadmapService) DefaultStatus() string {
	return s.normalizer.DefaultStatus()
}

func (s *RoadmapService) checkConfig() error {
	if err := s.cfg.Validate(); err != nil {
		logging.Error("Roadmap configuration incomplete", append([]interface{}{"error", err}, s.cfg.Redacted()...)...)
		return &providers.ProviderError{
			Code:    constants.ErrCodeConfigMissing,
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}

func (s *RoadmapService) query(ctx context.Context, opts *providers.QueryOptions) ([]notion.Page, bool, error) {
	start := time.Now()
	set, err := s.provider.QueryDatabase(ctx, s.cfg.NotionDatabaseID, opts)
	s.observe(constants.OpQueryDatabase, start, err)
	if err != nil {
		s.logFailure(constants.OpQueryDatabase, err)
		return nil, false, err
	}

	logging.Debug("Queried roadmap database", "database_id", s.cfg.NotionDatabaseID, "count", len(set.Pages))
	pages := set.Pages
	if pages == nil {
		pages = []notion.Page{}
	}
	return pages, set.HasMore, nil
}

// retrieve fetches one page by id. Unknown ids and pages from other
// databases produce an empty list.
func (s *RoadmapService) retrieve(ctx context.Context, pageID string) ([]notion.Page, error) {
	start := time.Now()
	page, err := s.provider.RetrievePage(ctx, pageID)
	s.observe(constants.OpRetrievePage, start, err)
	if err != nil {
		if isMissingPage(err) {
			logging.Debug("Roadmap page not found", "page_id", pageID, "error", err)
			return []notion.Page{}, nil
		}
		s.logFailure(constants.OpRetrievePage, err)
		return nil, err
	}

	if !page.BelongsTo(s.cfg.NotionDatabaseID) {
		logging.Warn("Page belongs to another database", "page_id", pageID, "parent", page.Parent.DatabaseID)
		return []notion.Page{}, nil
	}
	return []notion.Page{*page}, nil
}

func (s *RoadmapService) observe(operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.UpstreamRequestsTotal.WithLabelValues(operation, outcome(err)).Inc()
	s.metrics.UpstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (s *RoadmapService) logFailure(operation string, err error) {
	fields := []interface{}{
		"operation", operation,
		"error", err,
		"timestamp", time.Now().UTC().Format(time.RFC3339),
	}
	var perr *providers.ProviderError
	if errors.As(err, &perr) {
		fields = append(fields, "code", perr.Code, "upstream_status", perr.Status)
		if perr.Details != "" {
			fields = append(fields, "details", perr.Details)
		}
	}
	fields = append(fields, s.cfg.Redacted()...)
	logging.Error("Notion request failed", fields...)
}

// ErrorCode returns the error code carried by err, or "Error" for errors
// that did not come from the provider.
func ErrorCode(err error) string {
	var perr *providers.ProviderError
	if errors.As(err, &perr) && perr.Code != "" {
		return perr.Code
	}
	return "Error"
}

// ErrorMessage returns a non-empty, user-facing message for err.
func ErrorMessage(err error) string {
	var perr *providers.ProviderError
	if errors.As(err, &perr) && perr.Message != "" {
		return perr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return constants.MsgGenericLoadFailure
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return ErrorCode(err)
}

func isMissingPage(err error) bool {
	var perr *providers.ProviderError
	if !errors.As(err, &perr) {
		return false
	}
	return perr.Code == constants.ErrCodeDatabaseNotFound || perr.Code == constants.ErrCodeInvalidRequest
}

// propertyNames lists property names across pages in first-seen order.
func propertyNames(pages []notion.Page) []string {
	names := []string{}
	seen := make(map[string]struct{})
	for _, p := range pages {
		for _, name := range p.Properties.Names() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
