// Package normalize flattens Notion pages into display-ready roadmap items.
// Every function here is total: malformed or missing data degrades to
// defaults instead of producing errors.
package normalize

import (
	"bytes"
	"encoding/json"

	"notion-roadmap/roadmap/internal/models/notion"
)

const (
	DefaultStatus  = "Not Started"
	untitled       = "Untitled"
	syntheticIDLen = 6
)

// Field is one non-promoted property rendered as text.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered name -> text mapping. It encodes as a JSON object
// whose keys keep upstream property order.
type Fields []Field

func (fs Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the text for a property name.
func (fs Fields) Get(name string) (string, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Item is the flattened projection of one page.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    string   `json:"priority"`
	Images      []string `json:"images"`
	ExtraFields Fields   `json:"extraFields"`
	URL         string   `json:"url,omitempty"`
}

// Normalizer holds the settings that vary per deployment.
type Normalizer struct {
	defaultStatus string
}

// New returns a Normalizer that falls back to defaultStatus, or to
// DefaultStatus when that is blank.
func New(defaultStatus string) *Normalizer {
	if defaultStatus == "" {
		defaultStatus = DefaultStatus
	}
	return &Normalizer{defaultStatus: defaultStatus}
}

// DefaultStatus is the label used when a page has no usable status.
func (n *Normalizer) DefaultStatus() string {
	return n.defaultStatus
}

// Normalize flattens a page. It always succeeds.
func (n *Normalizer) Normalize(page notion.Page) Item {
	promoted := map[string]bool{}
	resolve := func(rules []Rule) string {
		text, name := ResolveField(page, rules)
		if name != "" {
			promoted[name] = true
		}
		return text
	}

	title := resolve(TitleRules)
	if title == "" {
		var name string
		title, name = firstNonEmpty(page.Properties)
		if name != "" {
			promoted[name] = true
		}
	}
	if title == "" {
		title = syntheticTitle(page.ID)
	}

	status := resolve(StatusRules)
	if status == "" {
		status = n.defaultStatus
	}

	item := Item{
		ID:          page.ID,
		Title:       title,
		Status:      status,
		Description: resolve(DescriptionRules),
		DueDate:     resolve(DueDateRules),
		Priority:    resolve(PriorityRules),
		Images:      CollectImageURLs(page),
		ExtraFields: Fields{},
		URL:         page.URL,
	}

	for _, p := range page.Properties {
		if promoted[p.Name] || IsImageProperty(p.Name) {
			continue
		}
		item.ExtraFields = append(item.ExtraFields, Field{Name: p.Name, Value: ExtractDisplayText(p.Value)})
	}

	return item
}

// NormalizeAll flattens pages, keeping their order.
func (n *Normalizer) NormalizeAll(pages []notion.Page) []Item {
	items := make([]Item, 0, len(pages))
	for _, p := range pages {
		items = append(items, n.Normalize(p))
	}
	return items
}

func syntheticTitle(id string) string {
	if id == "" {
		return untitled
	}
	r := []rune(id)
	if len(r) > syntheticIDLen {
		r = r[:syntheticIDLen]
	}
	return "Item " + string(r)
}
