package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"notion-roadmap/roadmap/internal/config"
	"notion-roadmap/roadmap/internal/constants"
	"notion-roadmap/roadmap/internal/models/notion"
)

// NotionProvider implements DataProvider for the Notion REST API
type NotionProvider struct {
	BaseURL string
	APIKey  string
	Version string
	Client  *http.Client
}

// NewNotionProvider creates a provider from the service configuration
func NewNotionProvider(cfg config.Config) *NotionProvider {
	timeout := time.Duration(cfg.HTTPTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &NotionProvider{
		BaseURL: cfg.NotionBaseURL,
		APIKey:  cfg.NotionAPIKey,
		Version: cfg.NotionVersion,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetProviderType returns the provider type identifier
func (p *NotionProvider) GetProviderType() string {
	return "notion"
}

// QueryDatabase runs POST /databases/{id}/query
func (p *NotionProvider) QueryDatabase(ctx context.Context, databaseID string, opts *QueryOptions) (*RecordSet, error) {
	payload := map[string]any{}
	pageSize := constants.MaxPageSize
	if opts != nil {
		if opts.PageSize > 0 && opts.PageSize < constants.MaxPageSize {
			pageSize = opts.PageSize
		}
		if opts.Filter != nil {
			payload["filter"] = opts.Filter
		}
		if opts.StartCursor != "" {
			payload["start_cursor"] = opts.StartCursor
		}
	}
	payload["page_size"] = pageSize

	var resp notion.QueryResponse
	endpoint := "/databases/" + url.PathEscape(databaseID) + "/query"
	if err := p.do(ctx, http.MethodPost, endpoint, payload, &resp); err != nil {
		return nil, err
	}

	if resp.Results == nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeMalformedResponse,
			Message: constants.GetErrorMessage(constants.ErrCodeMalformedResponse),
			Details: "response has no results field",
			Status:  http.StatusOK,
		}
	}

	set := &RecordSet{
		Pages:   *resp.Results,
		HasMore: resp.HasMore,
	}
	if resp.NextCursor != nil {
		set.NextCursor = *resp.NextCursor
	}
	return set, nil
}

// RetrievePage runs GET /pages/{id}
func (p *NotionProvider) RetrievePage(ctx context.Context, pageID string) (*notion.Page, error) {
	if strings.TrimSpace(pageID) == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidRequest,
			Message: "Page ID cannot be empty",
		}
	}

	var page notion.Page
	if err := p.do(ctx, http.MethodGet, "/pages/"+url.PathEscape(pageID), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// RetrieveDatabase runs GET /databases/{id}
func (p *NotionProvider) RetrieveDatabase(ctx context.Context, databaseID string) (*notion.Database, error) {
	var db notion.Database
	if err := p.do(ctx, http.MethodGet, "/databases/"+url.PathEscape(databaseID), nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// do performs an authenticated request and decodes a JSON response
func (p *NotionProvider) do(ctx context.Context, method, endpoint string, payload any, result any) error {
	if p.APIKey == "" {
		return &ProviderError{
			Code:    constants.ErrCodeConfigMissing,
			Message: config.EnvNotionAPIKey + " environment variable is not set",
		}
	}

	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return &ProviderError{
				Code:    constants.ErrCodeInvalidRequest,
				Message: "Failed to marshal request body",
				Err:     err,
			}
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.BaseURL+endpoint, body)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Notion-Version", p.Version)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to read response body",
			Status:  resp.StatusCode,
			Err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return buildHTTPError(resp.StatusCode, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeMalformedResponse,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Status:  resp.StatusCode,
			Err:     err,
		}
	}
	return nil
}

// buildHTTPError converts a non-2xx response to a ProviderError, keeping
// Notion's own message when the body carries one
func buildHTTPError(statusCode int, body []byte) error {
	var apiErr notion.APIError
	_ = json.Unmarshal(body, &apiErr)

	code := constants.ErrCodeUpstreamError
	switch statusCode {
	case http.StatusBadRequest:
		code = constants.ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		code = constants.ErrCodeInvalidAPIKey
	case http.StatusForbidden:
		code = constants.ErrCodeAccessDenied
	case http.StatusNotFound:
		code = constants.ErrCodeDatabaseNotFound
	case http.StatusTooManyRequests:
		code = constants.ErrCodeRateLimited
	}

	message := strings.TrimSpace(apiErr.Message)
	if message == "" {
		message = fmt.Sprintf("%s (HTTP %d)", constants.GetErrorMessage(code), statusCode)
	}

	return &ProviderError{
		Code:    code,
		Message: message,
		Details: string(body),
		Status:  statusCode,
	}
}
