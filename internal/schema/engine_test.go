package schema_test

import (
	"testing"

	"dunestore/internal/domain"
	"dunestore/internal/i18n"
	"dunestore/internal/schema"
)

func fptr(f float64) *float64 { return &f }

func TestValidateRequiredSelect(t *testing.T) {
	fields := []domain.FormField{
		{ID: "size", Label: "المقاس", Type: domain.FieldSelect, Required: true, Options: []string{"S", "M", "L"}},
	}

	var empty domain.Options
	empty.Set("size", domain.Text(""))
	res := schema.Validate(fields, empty, i18n.Arabic)
	if res.Valid {
		t.Fatal("empty required select must fail")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("want exactly one error, got %v", res.Errors)
	}
	if _, ok := res.Errors["size"]; !ok {
		t.Fatalf("error must be keyed by field id, got %v", res.Errors)
	}

	var filled domain.Options
	filled.Set("size", domain.Text("M"))
	if res := schema.Validate(fields, filled, i18n.Arabic); !res.Valid {
		t.Fatalf("non-empty value must pass, got %v", res.Errors)
	}
}

func TestValidateMissingAndEmptyList(t *testing.T) {
	fields := []domain.FormField{
		{ID: "extras", Label: "Extras", Type: domain.FieldCheckbox, Required: true},
		{ID: "note", Label: "Note", Type: domain.FieldText, Required: false},
	}

	var vals domain.Options
	vals.Set("extras", domain.Multi(nil))
	res := schema.Validate(fields, vals, i18n.French)
	if res.Valid || res.Errors["extras"] == "" {
		t.Fatalf("empty list must fail required check: %v", res.Errors)
	}
	// Optional field absent: no error.
	if _, ok := res.Errors["note"]; ok {
		t.Fatal("optional missing field must not produce an error")
	}
}

func TestValidateNumberBounds(t *testing.T) {
	fields := []domain.FormField{
		{ID: "qty_engraved", Label: "Quantité", Type: domain.FieldNumber, Min: fptr(1), Max: fptr(10)},
	}

	var low domain.Options
	low.Set("qty_engraved", domain.Number(0))
	if res := schema.Validate(fields, low, i18n.French); res.Valid {
		t.Fatal("below min must fail")
	}

	var high domain.Options
	high.Set("qty_engraved", domain.Number(11))
	if res := schema.Validate(fields, high, i18n.French); res.Valid {
		t.Fatal("above max must fail")
	}

	var ok domain.Options
	ok.Set("qty_engraved", domain.Number(5))
	if res := schema.Validate(fields, ok, i18n.French); !res.Valid {
		t.Fatalf("in-bounds must pass: %v", res.Errors)
	}
}

func TestFormatForDisplay(t *testing.T) {
	var opts domain.Options
	opts.Set("engraving_text", domain.Text("Hi"))
	opts.Set("sizes", domain.Multi([]string{"S", "M"}))
	opts.Set("skipped", domain.Text(""))

	got := schema.FormatForDisplay(opts)
	want := []string{"Engraving Text: Hi", "Sizes: S, M"}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"engraving_text": "Engraving Text",
		"color":          "Color",
		"gift-wrap":      "Gift Wrap",
	}
	for in, want := range cases {
		if got := schema.Humanize(in); got != want {
			t.Fatalf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCoerceCheckboxSingleValue(t *testing.T) {
	fields := []domain.FormField{
		{ID: "extras", Label: "Extras", Type: domain.FieldCheckbox},
	}
	var vals domain.Options
	vals.Set("extras", domain.Text("gift"))
	out := schema.Coerce(fields, vals)
	v, _ := out.Get("extras")
	if v.Kind() != domain.KindMulti || len(v.ListValue()) != 1 || v.ListValue()[0] != "gift" {
		t.Fatalf("single checkbox value must become a one-element list, got %+v", v)
	}
	// original untouched
	orig, _ := vals.Get("extras")
	if orig.Kind() != domain.KindText {
		t.Fatal("Coerce must not mutate its input")
	}
}

func TestCoerceNumberStringsEnforcesBounds(t *testing.T) {
	fields := []domain.FormField{
		{ID: "qty_engraved", Label: "Quantité", Type: domain.FieldNumber, Max: fptr(10)},
	}

	// A number arriving as text still hits the max bound.
	var vals domain.Options
	vals.Set("qty_engraved", domain.Text("11"))
	out := schema.Coerce(fields, vals)
	v, _ := out.Get("qty_engraved")
	if v.Kind() != domain.KindNumber || v.NumberValue() != 11 {
		t.Fatalf("numeric string must coerce to a number, got %+v", v)
	}
	if res := schema.Validate(fields, out, i18n.French); res.Valid {
		t.Fatal("out-of-bounds string-shaped number must fail validation")
	}

	var ok domain.Options
	ok.Set("qty_engraved", domain.Text(" 7 "))
	if res := schema.Validate(fields, schema.Coerce(fields, ok), i18n.French); !res.Valid {
		t.Fatalf("in-bounds string-shaped number must pass: %v", res.Errors)
	}

	// Non-numeric text passes through unchanged.
	var junk domain.Options
	junk.Set("qty_engraved", domain.Text("lots"))
	jv, _ := schema.Coerce(fields, junk).Get("qty_engraved")
	if jv.Kind() != domain.KindText {
		t.Fatalf("non-numeric text must pass through, got %+v", jv)
	}
}
