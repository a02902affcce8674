package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueKind discriminates the shapes an option value can take.
type ValueKind int

const (
	KindText ValueKind = iota
	KindNumber
	KindBool
	KindMulti
)

// Value is a tagged variant over the option value shapes: free text,
// numbers, booleans and multi-choice string lists. Using a closed set
// lets validation and display formatting switch exhaustively instead of
// sniffing runtime types.
type Value struct {
	kind ValueKind
	text string
	num  float64
	flag bool
	list []string
}

func Text(s string) Value     { return Value{kind: KindText, text: s} }
func Number(n float64) Value  { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value       { return Value{kind: KindBool, flag: b} }
func Multi(ss []string) Value { return Value{kind: KindMulti, list: ss} }

func (v Value) Kind() ValueKind      { return v.kind }
func (v Value) TextValue() string    { return v.text }
func (v Value) NumberValue() float64 { return v.num }
func (v Value) BoolValue() bool      { return v.flag }
func (v Value) ListValue() []string  { return v.list }

// Empty reports whether the value counts as "not provided" for
// required-field checks: empty or whitespace-only text, or an empty
// list. Trimming is deliberate: a required field filled with spaces is
// treated as missing. Numbers and booleans are always considered
// provided.
func (v Value) Empty() bool {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindMulti:
		return len(v.list) == 0
	default:
		return false
	}
}

// String renders the canonical identity form: lists join on "," and
// numbers drop trailing zeros, so two values that stringify alike are
// the same value for cart-identity purposes.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindMulti:
		return strings.Join(v.list, ",")
	default:
		return v.text
	}
}

// Display renders the human-readable form; lists join on ", ".
func (v Value) Display() string {
	if v.kind == KindMulti {
		return strings.Join(v.list, ", ")
	}
	return v.String()
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.flag)
	case KindMulti:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	default:
		return json.Marshal(v.text)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch t := tok.(type) {
	case string:
		*v = Text(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return err
		}
		*v = Number(f)
	case bool:
		*v = Bool(t)
	case json.Delim:
		if t != '[' {
			return fmt.Errorf("option value: unsupported JSON shape %q", t)
		}
		var ss []string
		if err := json.Unmarshal(data, &ss); err != nil {
			return err
		}
		*v = Multi(ss)
	default:
		return fmt.Errorf("option value: unsupported JSON token %v", tok)
	}
	return nil
}

// Options maps field ids to chosen values while preserving insertion
// order, which keeps display formatting deterministic and lets it track
// the schema's field order. The zero value is ready to use.
type Options struct {
	keys   []string
	values map[string]Value
}

func (o *Options) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o Options) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o Options) Len() int { return len(o.keys) }

// Keys returns field ids in insertion order.
func (o Options) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// MarshalJSON emits a JSON object with keys in insertion order.
func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object via the token stream so key order
// survives the round trip (encoding/json maps would lose it).
func (o *Options) UnmarshalJSON(data []byte) error {
	*o = Options{}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil // JSON null: empty options
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("options: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return err
		}
		o.Set(key, v)
	}
	_, err = dec.Token() // closing brace
	return err
}

// OptionsKey derives the stable identity of a product + options
// combination. Entries are sorted by field id so enumeration order
// never changes the key; differing values (including the stringified
// form of lists and numbers) always do.
func OptionsKey(productID string, opts Options) string {
	if opts.Len() == 0 {
		return productID
	}
	keys := opts.Keys()
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v, _ := opts.Get(k)
		pairs = append(pairs, k+":"+v.String())
	}
	return productID + "|" + strings.Join(pairs, "|")
}

// CartLine is one distinct product + options combination in the cart.
// Price is the unit price at the time of adding.
type CartLine struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image"`
	Options    Options `json:"options"`
	OptionsKey string  `json:"optionsKey"`
}
