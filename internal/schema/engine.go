// Package schema interprets admin-authored product-form field lists:
// validating submitted option values and formatting a completed
// options map for compact display. Rendering is the client's job; the
// engine only defines the field.id keyed value contract it binds to.
package schema

import (
	"strconv"
	"strings"
	"unicode"

	"dunestore/internal/domain"
	"dunestore/internal/i18n"
)

// Result carries the outcome of validating one submitted options map.
// Errors is keyed by field id.
type Result struct {
	Valid  bool              `json:"isValid"`
	Errors map[string]string `json:"errors"`
}

// Validate checks values against the field list: required fields must
// carry a non-empty value, and provided number values must sit inside
// the field's min/max bounds when set. Rules are strictly per-field.
// Neither input is mutated.
func Validate(fields []domain.FormField, values domain.Options, lang i18n.Lang) Result {
	errs := make(map[string]string)
	for _, f := range fields {
		v, ok := values.Get(f.ID)
		if !ok || v.Empty() {
			if f.Required {
				errs[f.ID] = i18n.T(lang, "field_required", f.Label)
			}
			continue
		}
		if f.Type == domain.FieldNumber && v.Kind() == domain.KindNumber {
			n := v.NumberValue()
			if f.Min != nil && n < *f.Min {
				errs[f.ID] = i18n.T(lang, "number_below_min", f.Label, *f.Min)
			} else if f.Max != nil && n > *f.Max {
				errs[f.ID] = i18n.T(lang, "number_above_max", f.Label, *f.Max)
			}
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Coerce reshapes submitted values to match their field's declared
// type where the client sent a compatible shape: single strings for a
// checkbox become one-element lists, and numeric strings for a number
// field become numbers (so min/max bounds apply regardless of value
// shape). Unknown keys and non-numeric strings pass through untouched;
// the input is not mutated.
func Coerce(fields []domain.FormField, values domain.Options) domain.Options {
	byID := make(map[string]domain.FormField, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}
	var out domain.Options
	for _, k := range values.Keys() {
		v, _ := values.Get(k)
		if f, ok := byID[k]; ok && v.Kind() == domain.KindText {
			switch {
			case f.MultiValued():
				if v.Empty() {
					out.Set(k, domain.Multi(nil))
				} else {
					out.Set(k, domain.Multi([]string{v.TextValue()}))
				}
				continue
			case f.Type == domain.FieldNumber:
				if n, err := strconv.ParseFloat(strings.TrimSpace(v.TextValue()), 64); err == nil {
					out.Set(k, domain.Number(n))
					continue
				}
			}
		}
		out.Set(k, v)
	}
	return out
}

// FormatForDisplay renders each non-empty option entry as
// "Humanized Label: value" in the map's own order, for cart lines and
// order views. Empty strings and empty lists are skipped.
func FormatForDisplay(values domain.Options) []string {
	var out []string
	for _, k := range values.Keys() {
		v, _ := values.Get(k)
		if v.Empty() {
			continue
		}
		out = append(out, Humanize(k)+": "+v.Display())
	}
	return out
}

// Humanize turns an identifier-style token into a title-cased label:
// "engraving_text" becomes "Engraving Text".
func Humanize(token string) string {
	parts := strings.FieldsFunc(token, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, p := range parts {
		runes := []rune(p)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
