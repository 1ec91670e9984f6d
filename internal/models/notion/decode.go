package notion

import (
	"bytes"
	"encoding/json"
)

// inferOrder is consulted when a property value arrives without a "type"
// field: the first of these keys present in the object decides the variant.
var inferOrder = []Tag{
	TagTitle, TagRichText, TagStatus, TagSelect, TagMultiSelect, TagDate,
	TagNumber, TagCheckbox, TagURL, TagEmail, TagPhoneNumber, TagFiles,
	TagPeople, TagFormula, TagRelation, TagRollup, TagCreatedTime,
	TagLastEditedTime, TagCreatedBy, TagLastEditedBy, TagUniqueID,
}

type wireSpan struct {
	PlainText *string `json:"plain_text"`
	Href      *string `json:"href"`
	Text      *struct {
		Content string `json:"content"`
	} `json:"text"`
}

type wireFile struct {
	Name string `json:"name"`
	File *struct {
		URL string `json:"url"`
	} `json:"file"`
	External *struct {
		URL string `json:"url"`
	} `json:"external"`
}

type wireUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type wireFormula struct {
	Type    string     `json:"type"`
	String  *string    `json:"string"`
	Number  *float64   `json:"number"`
	Boolean *bool      `json:"boolean"`
	Date    *DateRange `json:"date"`
}

type wireUniqueID struct {
	Prefix *string `json:"prefix"`
	Number *int64  `json:"number"`
}

// DecodeValue turns one raw property value object into a Value. It never
// fails: anything it cannot make sense of becomes an UnknownValue.
func DecodeValue(raw json.RawMessage) Value {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return UnknownValue{}
	}

	// A bare string is treated as plain text.
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return RichTextValue{Spans: []Span{{PlainText: s}}}
		}
		return UnknownValue{Raw: raw}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return UnknownValue{Raw: raw}
	}

	var typ string
	if t, ok := fields["type"]; ok {
		_ = json.Unmarshal(t, &typ)
	}
	if typ == "" {
		for _, tag := range inferOrder {
			if _, ok := fields[string(tag)]; ok {
				typ = string(tag)
				break
			}
		}
	}

	payload, ok := fields[typ]
	if !ok {
		payload = json.RawMessage("null")
	}

	v, err := decodeTagged(Tag(typ), payload)
	if err != nil {
		return UnknownValue{Type: typ, Raw: raw}
	}
	return v
}

func decodeTagged(tag Tag, payload json.RawMessage) (Value, error) {
	switch tag {
	case TagTitle:
		spans, err := decodeSpans(payload)
		return TitleValue{Spans: spans}, err
	case TagRichText:
		spans, err := decodeSpans(payload)
		return RichTextValue{Spans: spans}, err
	case TagSelect, TagStatus:
		var opt *Option
		err := json.Unmarshal(payload, &opt)
		return SelectValue{Kind: tag, Option: opt}, err
	case TagMultiSelect:
		var opts []Option
		err := json.Unmarshal(payload, &opts)
		return MultiSelectValue{Options: opts}, err
	case TagDate:
		var d *DateRange
		err := json.Unmarshal(payload, &d)
		return DateValue{Date: d}, err
	case TagNumber:
		var n *float64
		err := json.Unmarshal(payload, &n)
		return NumberValue{Number: n}, err
	case TagCheckbox:
		var b *bool
		err := json.Unmarshal(payload, &b)
		return CheckboxValue{Checked: b != nil && *b}, err
	case TagURL, TagEmail, TagPhoneNumber:
		var s *string
		err := json.Unmarshal(payload, &s)
		return StringValue{Kind: tag, Value: s}, err
	case TagFiles:
		var files []wireFile
		if err := json.Unmarshal(payload, &files); err != nil {
			return nil, err
		}
		refs := make([]FileRef, 0, len(files))
		for _, f := range files {
			ref := FileRef{Name: f.Name}
			switch {
			case f.File != nil:
				ref.URL = f.File.URL
			case f.External != nil:
				ref.URL = f.External.URL
			}
			refs = append(refs, ref)
		}
		return FilesValue{Files: refs}, nil
	case TagPeople:
		var users []wireUser
		if err := json.Unmarshal(payload, &users); err != nil {
			return nil, err
		}
		people := make([]UserRef, 0, len(users))
		for _, u := range users {
			people = append(people, UserRef(u))
		}
		return PeopleValue{People: people}, nil
	case TagRelation:
		var refs []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(payload, &refs); err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(refs))
		for _, r := range refs {
			ids = append(ids, r.ID)
		}
		return RelationValue{IDs: ids}, nil
	case TagFormula:
		var f *wireFormula
		if err := json.Unmarshal(payload, &f); err != nil {
			return nil, err
		}
		if f == nil {
			return FormulaValue{}, nil
		}
		return formulaFromWire(f), nil
	case TagRollup:
		return RollupValue{Raw: payload}, nil
	case TagCreatedTime, TagLastEditedTime:
		var s *string
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, err
		}
		v := TimestampValue{Kind: tag}
		if s != nil {
			v.Time = *s
		}
		return v, nil
	case TagCreatedBy, TagLastEditedBy:
		var u *wireUser
		if err := json.Unmarshal(payload, &u); err != nil {
			return nil, err
		}
		v := ActorValue{Kind: tag}
		if u != nil {
			v.User = UserRef(*u)
		}
		return v, nil
	case TagUniqueID:
		var u *wireUniqueID
		if err := json.Unmarshal(payload, &u); err != nil {
			return nil, err
		}
		v := UniqueIDValue{}
		if u != nil {
			if u.Prefix != nil {
				v.Prefix = *u.Prefix
			}
			v.Number = u.Number
		}
		return v, nil
	}
	return UnknownValue{Type: string(tag), Raw: payload}, nil
}

func decodeSpans(payload json.RawMessage) ([]Span, error) {
	var wire []wireSpan
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, err
	}
	spans := make([]Span, 0, len(wire))
	for _, w := range wire {
		var s Span
		switch {
		case w.PlainText != nil:
			s.PlainText = *w.PlainText
		case w.Text != nil:
			s.PlainText = w.Text.Content
		}
		if w.Href != nil {
			s.Href = *w.Href
		}
		spans = append(spans, s)
	}
	return spans, nil
}

func formulaFromWire(f *wireFormula) FormulaValue {
	switch f.Type {
	case "string":
		return FormulaValue{String: f.String}
	case "number":
		return FormulaValue{Number: f.Number}
	case "boolean":
		return FormulaValue{Boolean: f.Boolean}
	case "date":
		return FormulaValue{Date: f.Date}
	}
	return FormulaValue{String: f.String, Number: f.Number, Boolean: f.Boolean, Date: f.Date}
}
