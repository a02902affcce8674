package domain

import "encoding/json"

// FieldType enumerates the controls an admin can put on a product form.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldColor    FieldType = "color"
	FieldSize     FieldType = "size"
	FieldDate     FieldType = "date"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldImage    FieldType = "image"
)

// ColorOption pairs a display name with its hex swatch.
type ColorOption struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// FormField is one admin-authored field of a category's product form.
// ID is a stable identifier token; values submitted for the field are
// keyed by it.
type FormField struct {
	ID           string        `json:"id"`
	Label        string        `json:"label"`
	Type         FieldType     `json:"type"`
	Required     bool          `json:"required"`
	Options      []string      `json:"options,omitempty"`
	ColorOptions []ColorOption `json:"colorOptions,omitempty"`
	Placeholder  string        `json:"placeholder,omitempty"`
	Min          *float64      `json:"min,omitempty"`
	Max          *float64      `json:"max,omitempty"`
}

// MultiValued reports whether the field collects a list of values.
func (f FormField) MultiValued() bool { return f.Type == FieldCheckbox }

// FormSchema is the ordered field list attached to a category.
type FormSchema struct {
	Fields []FormField `json:"fields"`
}

// ParseFormSchema decodes the schema blob stored on a category. An
// empty blob means "no custom options" and yields an empty schema.
func ParseFormSchema(blob string) (FormSchema, error) {
	if blob == "" {
		return FormSchema{}, nil
	}
	var s FormSchema
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return FormSchema{}, err
	}
	return s, nil
}
