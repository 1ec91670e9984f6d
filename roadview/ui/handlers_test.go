package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"notion-roadmap/roadmap/internal/constants"
	"notion-roadmap/roadmap/internal/logging"
	"notion-roadmap/roadmap/internal/normalize"
	"notion-roadmap/roadmap/internal/providers"
	"notion-roadmap/roadmap/internal/services"
)

// Mock RoadmapReader
type mockReader struct {
	itemsFunc func(ctx context.Context, id string) ([]normalize.Item, error)
	itemFunc  func(ctx context.Context, id string) (*normalize.Item, error)
}

func (m *mockReader) Items(ctx context.Context, id string) ([]normalize.Item, error) {
	return m.itemsFunc(ctx, id)
}

func (m *mockReader) Item(ctx context.Context, id string) (*normalize.Item, error) {
	return m.itemFunc(ctx, id)
}

func init() {
	logging.SetLogger(zap.NewNop().Sugar())
}

func newTestRouter(reader RoadmapReader) http.Handler {
	h := NewUIHandler(reader)
	r := chi.NewRouter()
	r.Get("/", h.RoadmapPageHandler)
	r.Get("/ui/roadmap/items", h.RoadmapItemsHandler)
	r.Get("/project/{id}", h.ProjectPageHandler)
	r.Get("/ui/project/{id}", h.ProjectDetailHandler)
	return r
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestRoadmapPage_RendersLoadingShell(t *testing.T) {
	rr := get(t, newTestRouter(&mockReader{}), "/")

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `hx-get="/ui/roadmap/items"`) || !strings.Contains(body, `hx-trigger="load"`) {
		t.Error("Expected HTMX load trigger for the item list")
	}
	if !strings.Contains(body, "Loading roadmap...") {
		t.Error("Expected loading state")
	}
	if !strings.Contains(body, `hx-swap="innerHTML"`) {
		t.Error("Expected whole-list swap")
	}
}

func TestRoadmapItems_Populated(t *testing.T) {
	reader := &mockReader{
		itemsFunc: func(ctx context.Context, id string) ([]normalize.Item, error) {
			return []normalize.Item{
				{ID: "abc123", Title: "Ship v1", Status: "In Progress", DueDate: "2024-05-01"},
				{ID: "def456", Title: "Plan v2", Status: "Cancelled"},
			}, nil
		},
	}

	rr := get(t, newTestRouter(reader), "/ui/roadmap/items")

	body := rr.Body.String()
	if !strings.Contains(body, "Ship v1") || !strings.Contains(body, "Plan v2") {
		t.Error("Expected both item titles")
	}
	if !strings.Contains(body, `href="/project/abc123"`) {
		t.Error("Expected link to detail page")
	}
	if !strings.Contains(body, "bg-blue-100") {
		t.Error("Expected In Progress badge style")
	}
	if !strings.Contains(body, "line-through") {
		t.Error("Expected Cancelled badge style")
	}
	if !strings.Contains(body, "May 1, 2024") {
		t.Error("Expected formatted due date")
	}
	if strings.Index(body, "Ship v1") > strings.Index(body, "Plan v2") {
		t.Error("Expected upstream order preserved")
	}
}

func TestRoadmapItems_Empty(t *testing.T) {
	reader := &mockReader{
		itemsFunc: func(ctx context.Context, id string) ([]normalize.Item, error) {
			return []normalize.Item{}, nil
		},
	}

	rr := get(t, newTestRouter(reader), "/ui/roadmap/items")

	if !strings.Contains(rr.Body.String(), constants.MsgNoRoadmapItems) {
		t.Errorf("Expected empty message, got %s", rr.Body.String())
	}
}

func TestRoadmapItems_Error(t *testing.T) {
	reader := &mockReader{
		itemsFunc: func(ctx context.Context, id string) ([]normalize.Item, error) {
			return nil, &providers.ProviderError{Code: constants.ErrCodeInvalidAPIKey, Message: "API token is invalid."}
		},
	}

	rr := get(t, newTestRouter(reader), "/ui/roadmap/items")

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200 so HTMX swaps the error in, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "API token is invalid.") {
		t.Error("Expected upstream message in error state")
	}
	if strings.Contains(body, constants.MsgNoRoadmapItems) {
		t.Error("Expected error state, not empty state")
	}
}

func TestProjectPage_RendersShell(t *testing.T) {
	rr := get(t, newTestRouter(&mockReader{}), "/project/abc123")

	body := rr.Body.String()
	if !strings.Contains(body, `hx-get="/ui/project/abc123"`) {
		t.Errorf("Expected detail partial trigger, got %s", body)
	}
	if !strings.Contains(body, "Back to all projects") {
		t.Error("Expected back link")
	}
}

func TestProjectDetail_States(t *testing.T) {
	tests := []struct {
		name     string
		item     *normalize.Item
		err      error
		contains []string
		absent   []string
	}{
		{
			name: "found",
			item: &normalize.Item{
				ID:     "abc123",
				Title:  "Ship v1",
				Status: "On Hold",
				Images: []string{"https://example.com/shot.png"},
				ExtraFields: normalize.Fields{
					{Name: "Owner", Value: "Ada"},
					{Name: "Estimate", Value: ""},
				},
			},
			contains: []string{"Ship v1", "bg-red-100", `src="https://example.com/shot.png"`, "Owner", "Ada", "—"},
			absent:   []string{constants.MsgProjectNotFound},
		},
		{
			name:     "not found",
			err:      services.ErrItemNotFound,
			contains: []string{constants.MsgProjectNotFound},
			absent:   []string{"Error loading project"},
		},
		{
			name:     "upstream error",
			err:      &providers.ProviderError{Code: constants.ErrCodeNetworkError, Message: "Unable to connect"},
			contains: []string{"Error loading project", "Unable to connect"},
			absent:   []string{constants.MsgProjectNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &mockReader{
				itemFunc: func(ctx context.Context, id string) (*normalize.Item, error) {
					if id != "abc123" {
						t.Errorf("Expected abc123, got %s", id)
					}
					return tt.item, tt.err
				},
			}

			body := get(t, newTestRouter(reader), "/ui/project/abc123").Body.String()
			for _, s := range tt.contains {
				if !strings.Contains(body, s) {
					t.Errorf("Expected body to contain %q", s)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(body, s) {
					t.Errorf("Expected body not to contain %q", s)
				}
			}
		})
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Done", "bg-green-100 text-green-800"},
		{" in progress ", "bg-blue-100 text-blue-800"},
		{"Backlog", "bg-purple-100 text-purple-800"},
		{"In Review", "bg-yellow-100 text-yellow-800"},
		{"Something Else", defaultStatusClass},
		{"", defaultStatusClass},
	}

	for _, tt := range tests {
		if got := StatusClass(tt.status); got != tt.want {
			t.Errorf("StatusClass(%q): expected %q, got %q", tt.status, tt.want, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-05-01", "May 1, 2024"},
		{"2024-05-01T10:00:00.000+00:00", "May 1, 2024"},
		{"next quarter", "next quarter"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
