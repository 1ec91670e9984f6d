package providers

import (
	"context"
	"fmt"

	"notion-roadmap/roadmap/internal/models/notion"
)

// DataProvider defines the interface for the upstream document database
type DataProvider interface {
	// QueryDatabase fetches one page of rows, optionally filtered
	QueryDatabase(ctx context.Context, databaseID string, opts *QueryOptions) (*RecordSet, error)

	// RetrievePage fetches a single row by its page id
	RetrievePage(ctx context.Context, pageID string) (*notion.Page, error)

	// RetrieveDatabase fetches the database title and property schema
	RetrieveDatabase(ctx context.Context, databaseID string) (*notion.Database, error)

	// GetProviderType returns the provider type identifier
	GetProviderType() string
}

// QueryOptions narrows a database query
type QueryOptions struct {
	PageSize    int // Max rows to return, capped at 100 by the API
	Filter      any // Notion filter object, sent as-is
	StartCursor string
}

// RecordSet represents one page of query results
type RecordSet struct {
	Pages      []notion.Page
	HasMore    bool
	NextCursor string
}

// RichTextEquals builds a filter matching rows whose rich text property
// equals value exactly.
func RichTextEquals(property, value string) map[string]any {
	return map[string]any{
		"property": property,
		"rich_text": map[string]any{
			"equals": value,
		},
	}
}

// ProviderError represents a provider-specific error
type ProviderError struct {
	Code    string
	Message string
	Details string
	Status  int // upstream HTTP status, 0 when no response was received
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
