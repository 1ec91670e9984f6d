package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notion-roadmap/roadmap/internal/config"
	"notion-roadmap/roadmap/internal/services"
)

func testOptions(t *testing.T, handler http.HandlerFunc) (*Options, *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	out := &bytes.Buffer{}
	return &Options{
		Out: out,
		LoadConfig: func() config.Config {
			return config.Config{
				NotionAPIKey:     "secret_test",
				NotionDatabaseID: "db-1",
				NotionBaseURL:    server.URL,
				NotionVersion:    config.DefaultNotionVersion,
				PageSize:         100,
				DefaultStatus:    config.DefaultStatus,
			}
		},
	}, out
}

func run(opts *Options, args ...string) error {
	cmd := NewWithOptions(opts)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestNew(t *testing.T) {
	cmd := New()
	if cmd.Use != "roadmapctl" {
		t.Errorf("expected Use to be 'roadmapctl', got %q", cmd.Use)
	}

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"list", "show", "schema"} {
		if !names[want] {
			t.Errorf("expected subcommand %q", want)
		}
	}
}

func TestList_PrintsNormalizedItems(t *testing.T) {
	opts, out := testOptions(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"object":"list","results":[{"object":"page","id":"abc123","properties":{"Name":{"type":"title","title":[{"plain_text":"Ship v1"}]},"Status":{"type":"select","select":{"name":"Done"}}}}],"has_more":false}`)
	})

	if err := run(opts, "list"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var items []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(out.Bytes(), &items); err != nil {
		t.Fatalf("Expected JSON output, got %q", out.String())
	}
	if len(items) != 1 || items[0].Title != "Ship v1" || items[0].Status != "Done" {
		t.Errorf("Unexpected items: %+v", items)
	}
}

func TestList_Raw(t *testing.T) {
	opts, out := testOptions(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"object":"list","results":[{"object":"page","id":"abc123","properties":{}}],"has_more":false}`)
	})

	if err := run(opts, "list", "--raw"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), `"object": "page"`) {
		t.Errorf("Expected raw page output, got %q", out.String())
	}
}

func TestShow_NotFound(t *testing.T) {
	opts, _ := testOptions(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"object":"error","status":404,"code":"object_not_found","message":"Could not find page"}`)
	})

	err := run(opts, "show", "missing")
	if !errors.Is(err, services.ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestShow_RequiresID(t *testing.T) {
	opts, _ := testOptions(t, func(w http.ResponseWriter, r *http.Request) {})

	if err := run(opts, "show"); err == nil {
		t.Error("Expected error without id argument")
	}
}

func TestSchema(t *testing.T) {
	opts, out := testOptions(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"object":"database","id":"db-1","title":[{"plain_text":"Roadmap"}],"properties":{"Name":{"id":"title","name":"Name","type":"title"}}}`)
	})

	if err := run(opts, "schema"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), `"title": "Roadmap"`) {
		t.Errorf("Expected schema title, got %q", out.String())
	}
}

func TestMissingConfigFailsBeforeRequest(t *testing.T) {
	called := false
	opts, _ := testOptions(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	opts.LoadConfig = func() config.Config {
		return config.Config{NotionDatabaseID: "db-1"}
	}

	err := run(opts, "list")
	var missing *config.MissingVarError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingVarError, got %v", err)
	}
	if called {
		t.Error("Expected no upstream request")
	}
}
