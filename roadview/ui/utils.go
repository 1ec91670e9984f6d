package ui

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"notion-roadmap/roadmap/internal/logging"
)

//go:embed templates
var templatesFS embed.FS

const emptyValue = "—"

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"statusClass": StatusClass,
		"formatDate":  FormatDate,
		"orDash": func(s string) string {
			if strings.TrimSpace(s) == "" {
				return emptyValue
			}
			return s
		},
		"pathEscape": url.PathEscape,
	}
}

// RenderTemplate renders a template with the base layout
func RenderTemplate(w http.ResponseWriter, templateName string, data map[string]interface{}) error {
	t, err := template.New("base.html").Funcs(templateFuncs()).ParseFS(templatesFS,
		"templates/layouts/base.html",
		"templates/"+templateName,
	)
	if err != nil {
		logging.Error("Failed to load template", "template", templateName, "error", err)
		http.Error(w, "Error loading template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		logging.Error("Failed to render template", "template", templateName, "error", err)
		return err
	}

	return nil
}

// RenderPartial renders just the content portion of a template (for HTMX responses)
func RenderPartial(w http.ResponseWriter, templateName string, data map[string]interface{}) error {
	t, err := template.New("partial").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/"+templateName)
	if err != nil {
		logging.Error("Failed to load partial", "template", templateName, "error", err)
		http.Error(w, "Error loading template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Execute the "content" template defined in the partial file
	if err := t.ExecuteTemplate(w, "content", data); err != nil {
		logging.Error("Failed to render partial", "template", templateName, "error", err)
		return err
	}

	return nil
}

// FormatDate renders an ISO date or timestamp as "Jan 2, 2006". Values that
// do not parse are returned unchanged.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z07:00"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return value
}
