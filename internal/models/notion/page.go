package notion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Property is one named value on a page.
type Property struct {
	Name  string
	Value Value
}

// Properties keeps page properties in the order the API returned them.
type Properties []Property

// Get looks a property up by exact name.
func (ps Properties) Get(name string) (Value, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Lookup looks a property up by name, ignoring case. An exact match wins
// over a case-insensitive one.
func (ps Properties) Lookup(name string) (Property, bool) {
	if v, ok := ps.Get(name); ok {
		return Property{Name: name, Value: v}, true
	}
	for _, p := range ps {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Property{}, false
}

// Names returns property names in upstream order.
func (ps Properties) Names() []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name)
	}
	return names
}

// UnmarshalJSON decodes a JSON object while preserving key order.
func (ps *Properties) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*ps = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode properties: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode properties: expected object, got %v", tok)
	}

	out := Properties{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode properties: %w", err)
		}
		name, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode property %q: %w", name, err)
		}
		out = append(out, Property{Name: name, Value: DecodeValue(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode properties: %w", err)
	}

	*ps = out
	return nil
}

// Parent identifies the container a page belongs to.
type Parent struct {
	Type       string `json:"type"`
	DatabaseID string `json:"database_id,omitempty"`
	PageID     string `json:"page_id,omitempty"`
}

// Page is one row of a Notion database.
type Page struct {
	ID             string     `json:"id"`
	Object         string     `json:"object"`
	URL            string     `json:"url"`
	CreatedTime    string     `json:"created_time"`
	LastEditedTime string     `json:"last_edited_time"`
	Archived       bool       `json:"archived"`
	Parent         Parent     `json:"parent"`
	Properties     Properties `json:"properties"`

	// Raw is the page object exactly as received.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the original JSON while decoding known fields.
func (p *Page) UnmarshalJSON(data []byte) error {
	type alias Page
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("unmarshal page: %w", err)
	}
	*p = Page(tmp)
	p.Raw = append(p.Raw[:0], data...)
	return nil
}

// MarshalJSON re-emits the page as it was received when possible.
func (p Page) MarshalJSON() ([]byte, error) {
	if len(p.Raw) > 0 {
		return p.Raw, nil
	}
	props := make(map[string]json.RawMessage, len(p.Properties))
	for _, prop := range p.Properties {
		props[prop.Name] = json.RawMessage(`{"type":"` + string(prop.Value.Tag()) + `"}`)
	}
	return json.Marshal(struct {
		ID         string                     `json:"id"`
		Object     string                     `json:"object,omitempty"`
		URL        string                     `json:"url,omitempty"`
		Properties map[string]json.RawMessage `json:"properties"`
	}{p.ID, p.Object, p.URL, props})
}

// BelongsTo reports whether the page lives in the given database. Notion
// ids compare equal with or without dashes.
func (p Page) BelongsTo(databaseID string) bool {
	return NormalizeID(p.Parent.DatabaseID) == NormalizeID(databaseID)
}

// NormalizeID strips dashes and lowercases a Notion id.
func NormalizeID(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "-", ""))
}

// QueryResponse is the body of POST /databases/{id}/query.
type QueryResponse struct {
	Object     string  `json:"object"`
	Results    *[]Page `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// SchemaProperty describes one column of a database.
type SchemaProperty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Database is the subset of GET /databases/{id} used here.
type Database struct {
	ID         string
	Title      string
	Properties []SchemaProperty
}

// UnmarshalJSON flattens the title and keeps schema order.
func (d *Database) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID         string          `json:"id"`
		Title      []wireSpan      `json:"title"`
		Properties json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("unmarshal database: %w", err)
	}

	d.ID = wire.ID
	var title []string
	for _, s := range wire.Title {
		if s.PlainText != nil {
			title = append(title, *s.PlainText)
		}
	}
	d.Title = strings.TrimSpace(strings.Join(title, " "))

	d.Properties = nil
	if len(wire.Properties) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(wire.Properties))
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("unmarshal database properties: %w", err)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("unmarshal database properties: %w", err)
		}
		var sp SchemaProperty
		if err := dec.Decode(&sp); err != nil {
			return fmt.Errorf("unmarshal database property: %w", err)
		}
		if sp.Name == "" {
			sp.Name, _ = keyTok.(string)
		}
		d.Properties = append(d.Properties, sp)
	}
	return nil
}

// APIError is the error object Notion returns with non-2xx responses.
type APIError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
