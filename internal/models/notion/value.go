package notion

import "encoding/json"

// Tag identifies which variant of Value a property carries. The values
// mirror the "type" field of the Notion property value object.
type Tag string

const (
	TagTitle          Tag = "title"
	TagRichText       Tag = "rich_text"
	TagSelect         Tag = "select"
	TagStatus         Tag = "status"
	TagMultiSelect    Tag = "multi_select"
	TagDate           Tag = "date"
	TagNumber         Tag = "number"
	TagCheckbox       Tag = "checkbox"
	TagURL            Tag = "url"
	TagEmail          Tag = "email"
	TagPhoneNumber    Tag = "phone_number"
	TagFiles          Tag = "files"
	TagPeople         Tag = "people"
	TagFormula        Tag = "formula"
	TagRelation       Tag = "relation"
	TagRollup         Tag = "rollup"
	TagCreatedTime    Tag = "created_time"
	TagLastEditedTime Tag = "last_edited_time"
	TagCreatedBy      Tag = "created_by"
	TagLastEditedBy   Tag = "last_edited_by"
	TagUniqueID       Tag = "unique_id"
)

// Value is a decoded property value. The set of implementations is closed:
// only the variants declared in this file satisfy it.
type Value interface {
	Tag() Tag
	isValue()
}

// Span is one rich text run.
type Span struct {
	PlainText string `json:"plain_text"`
	Href      string `json:"href,omitempty"`
}

// Option is a select, status or multi-select choice.
type Option struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateRange is the payload of a date property. End is optional.
type DateRange struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// FileRef references an uploaded ("file") or linked ("external") file.
type FileRef struct {
	Name string
	URL  string
}

// UserRef references a Notion user.
type UserRef struct {
	ID   string
	Name string
}

type TitleValue struct{ Spans []Span }

type RichTextValue struct{ Spans []Span }

// SelectValue covers both "select" and "status" properties; Kind records which.
type SelectValue struct {
	Kind   Tag
	Option *Option
}

type MultiSelectValue struct{ Options []Option }

type DateValue struct{ Date *DateRange }

type NumberValue struct{ Number *float64 }

type CheckboxValue struct{ Checked bool }

// StringValue covers url, email and phone_number properties.
type StringValue struct {
	Kind  Tag
	Value *string
}

type FilesValue struct{ Files []FileRef }

type PeopleValue struct{ People []UserRef }

type RelationValue struct{ IDs []string }

// FormulaValue holds the resolved formula result. At most one field is set.
type FormulaValue struct {
	String  *string
	Number  *float64
	Boolean *bool
	Date    *DateRange
}

// RollupValue is kept opaque.
type RollupValue struct{ Raw json.RawMessage }

// TimestampValue covers created_time and last_edited_time.
type TimestampValue struct {
	Kind Tag
	Time string
}

// ActorValue covers created_by and last_edited_by.
type ActorValue struct {
	Kind Tag
	User UserRef
}

type UniqueIDValue struct {
	Prefix string
	Number *int64
}

// UnknownValue is produced for property types this package does not model
// and for payloads that could not be decoded.
type UnknownValue struct {
	Type string
	Raw  json.RawMessage
}

func (TitleValue) Tag() Tag       { return TagTitle }
func (RichTextValue) Tag() Tag    { return TagRichText }
func (v SelectValue) Tag() Tag    { return v.Kind }
func (MultiSelectValue) Tag() Tag { return TagMultiSelect }
func (DateValue) Tag() Tag        { return TagDate }
func (NumberValue) Tag() Tag      { return TagNumber }
func (CheckboxValue) Tag() Tag    { return TagCheckbox }
func (v StringValue) Tag() Tag    { return v.Kind }
func (FilesValue) Tag() Tag       { return TagFiles }
func (PeopleValue) Tag() Tag      { return TagPeople }
func (RelationValue) Tag() Tag    { return TagRelation }
func (FormulaValue) Tag() Tag     { return TagFormula }
func (RollupValue) Tag() Tag      { return TagRollup }
func (v TimestampValue) Tag() Tag { return v.Kind }
func (v ActorValue) Tag() Tag     { return v.Kind }
func (UniqueIDValue) Tag() Tag    { return TagUniqueID }
func (v UnknownValue) Tag() Tag   { return Tag(v.Type) }

func (TitleValue) isValue()       {}
func (RichTextValue) isValue()    {}
func (SelectValue) isValue()      {}
func (MultiSelectValue) isValue() {}
func (DateValue) isValue()        {}
func (NumberValue) isValue()      {}
func (CheckboxValue) isValue()    {}
func (StringValue) isValue()      {}
func (FilesValue) isValue()       {}
func (PeopleValue) isValue()      {}
func (RelationValue) isValue()    {}
func (FormulaValue) isValue()     {}
func (RollupValue) isValue()      {}
func (TimestampValue) isValue()   {}
func (ActorValue) isValue()       {}
func (UniqueIDValue) isValue()    {}
func (UnknownValue) isValue()     {}
