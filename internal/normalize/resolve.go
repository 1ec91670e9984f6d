package normalize

import (
	"strings"

	"notion-roadmap/roadmap/internal/models/notion"
)

// Rule is one candidate in a field's resolution table. An empty Name matches
// any property carrying Tag; an empty Tag accepts the named property whatever
// its type. Names compare case-insensitively.
type Rule struct {
	Name string
	Tag  notion.Tag
}

func byName(names ...string) []Rule {
	rules := make([]Rule, 0, len(names))
	for _, n := range names {
		rules = append(rules, Rule{Name: n})
	}
	return rules
}

func concat(parts ...[]Rule) []Rule {
	var out []Rule
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Resolution tables, tried top to bottom.
var (
	TitleRules = concat(
		[]Rule{{Tag: notion.TagTitle}},
		byName("Name", "Title", "Feature", "Project", "Task", "Item", "Description"),
	)
	StatusRules = concat(
		byName("Status"),
		[]Rule{{Tag: notion.TagStatus}},
		byName("State", "Stage", "Progress"),
	)
	DescriptionRules = byName("Description", "Summary", "Details", "Notes", "Overview")
	DueDateRules     = byName("Due Date", "due_date", "dueDate", "Due", "Deadline", "Target Date", "Date")
	PriorityRules    = byName("Priority", "Importance", "Severity")
)

// ResolveField returns the first non-empty display text produced by rules,
// along with the name of the property that supplied it. Both are empty when
// nothing matches.
func ResolveField(page notion.Page, rules []Rule) (string, string) {
	for _, rule := range rules {
		for _, prop := range candidates(page.Properties, rule) {
			if text := ExtractDisplayText(prop.Value); text != "" {
				return text, prop.Name
			}
		}
	}
	return "", ""
}

// ResolveByName tries every property carrying preferTag (when given) and
// then candidateNames in order.
func ResolveByName(page notion.Page, candidateNames []string, preferTag notion.Tag) string {
	var rules []Rule
	if preferTag != "" {
		rules = append(rules, Rule{Tag: preferTag})
	}
	rules = append(rules, byName(candidateNames...)...)
	text, _ := ResolveField(page, rules)
	return text
}

func candidates(props notion.Properties, rule Rule) []notion.Property {
	if rule.Name == "" {
		var out []notion.Property
		for _, p := range props {
			if p.Value != nil && p.Value.Tag() == rule.Tag {
				out = append(out, p)
			}
		}
		return out
	}

	prop, ok := props.Lookup(rule.Name)
	if !ok {
		return nil
	}
	if rule.Tag != "" && (prop.Value == nil || prop.Value.Tag() != rule.Tag) {
		return nil
	}
	return []notion.Property{prop}
}

// firstNonEmpty is the last-resort scan used for titles.
func firstNonEmpty(props notion.Properties) (string, string) {
	for _, p := range props {
		if text := ExtractDisplayText(p.Value); text != "" {
			return text, p.Name
		}
	}
	return "", ""
}

var imageMarkers = []string{"image", "screenshot", "snapshot", "cover", "thumbnail"}

// IsImageProperty reports whether a property name marks it as holding images.
func IsImageProperty(name string) bool {
	lower := strings.ToLower(name)
	for _, m := range imageMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// CollectImageURLs gathers image URLs from every property whose name marks
// it as an image holder, in property order. Files contribute each file URL;
// other values contribute their display text. No dedup, no URL validation.
func CollectImageURLs(page notion.Page) []string {
	urls := []string{}
	for _, p := range page.Properties {
		if !IsImageProperty(p.Name) {
			continue
		}
		urls = append(urls, imageSources(p.Value)...)
	}
	return urls
}

func imageSources(v notion.Value) []string {
	if files, ok := v.(notion.FilesValue); ok {
		var out []string
		for _, f := range files.Files {
			if f.URL != "" {
				out = append(out, f.URL)
			}
		}
		return out
	}
	if text := ExtractDisplayText(v); text != "" {
		return []string{text}
	}
	return nil
}
