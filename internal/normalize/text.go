package normalize

import (
	"strconv"
	"strings"

	"notion-roadmap/roadmap/internal/models/notion"
)

const (
	fileFallback     = "File"
	personFallback   = "Unknown"
	relationNotEmpty = "Related"
)

// ExtractDisplayText renders a property value as a human-readable string.
// It is total: nil, unknown and opaque values render as "".
func ExtractDisplayText(v notion.Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case notion.TitleValue:
		return joinSpans(val.Spans)
	case notion.RichTextValue:
		return joinSpans(val.Spans)
	case notion.SelectValue:
		if val.Option == nil {
			return ""
		}
		return val.Option.Name
	case notion.MultiSelectValue:
		names := make([]string, 0, len(val.Options))
		for _, o := range val.Options {
			names = append(names, o.Name)
		}
		return strings.Join(names, ", ")
	case notion.DateValue:
		return dateStart(val.Date)
	case notion.NumberValue:
		return formatNumber(val.Number)
	case notion.CheckboxValue:
		return yesNo(val.Checked)
	case notion.StringValue:
		if val.Value == nil {
			return ""
		}
		return *val.Value
	case notion.FilesValue:
		names := make([]string, 0, len(val.Files))
		for _, f := range val.Files {
			names = append(names, orDefault(f.Name, fileFallback))
		}
		return strings.Join(names, ", ")
	case notion.PeopleValue:
		names := make([]string, 0, len(val.People))
		for _, p := range val.People {
			names = append(names, orDefault(p.Name, personFallback))
		}
		return strings.Join(names, ", ")
	case notion.RelationValue:
		if len(val.IDs) == 0 {
			return ""
		}
		return relationNotEmpty
	case notion.FormulaValue:
		return formulaText(val)
	case notion.TimestampValue:
		return val.Time
	case notion.ActorValue:
		if val.User.ID == "" && val.User.Name == "" {
			return ""
		}
		return orDefault(val.User.Name, personFallback)
	case notion.UniqueIDValue:
		if val.Number == nil {
			return ""
		}
		n := strconv.FormatInt(*val.Number, 10)
		if val.Prefix == "" {
			return n
		}
		return val.Prefix + "-" + n
	case notion.RollupValue, notion.UnknownValue:
		return ""
	}
	return ""
}

func formulaText(f notion.FormulaValue) string {
	switch {
	case f.String != nil:
		return *f.String
	case f.Number != nil:
		return formatNumber(f.Number)
	case f.Boolean != nil:
		return yesNo(*f.Boolean)
	case f.Date != nil:
		return dateStart(f.Date)
	}
	return ""
}

func joinSpans(spans []notion.Span) string {
	parts := make([]string, 0, len(spans))
	for _, s := range spans {
		parts = append(parts, s.PlainText)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func dateStart(d *notion.DateRange) string {
	if d == nil {
		return ""
	}
	return d.Start
}

func formatNumber(n *float64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatFloat(*n, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
