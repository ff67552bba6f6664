package annotate

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PayloadKind discriminates the payload variants.
type PayloadKind int

// Payload kinds.
const (
	PayloadScalar PayloadKind = iota
	PayloadSequence
	PayloadMapping
)

// Payload is the content attached to an item: a primitive scalar, an ordered
// sequence, or a keyed mapping of JSON-compatible values. It is opaque to the
// session beyond display and flattening.
type Payload struct {
	Kind   PayloadKind
	Scalar any            // When Kind == PayloadScalar
	Items  []any          // When Kind == PayloadSequence
	Fields map[string]any // When Kind == PayloadMapping
}

// PayloadOf wraps a decoded JSON value in the matching variant.
func PayloadOf(v any) Payload {
	switch t := v.(type) {
	case []any:
		return Payload{Kind: PayloadSequence, Items: t}
	case map[string]any:
		return Payload{Kind: PayloadMapping, Fields: t}
	default:
		return Payload{Kind: PayloadScalar, Scalar: v}
	}
}

// ScalarPayload wraps a primitive value.
func ScalarPayload(v any) Payload {
	return Payload{Kind: PayloadScalar, Scalar: v}
}

// Value returns the payload as a plain JSON-compatible value.
func (p Payload) Value() any {
	switch p.Kind {
	case PayloadSequence:
		return p.Items
	case PayloadMapping:
		return p.Fields
	default:
		return p.Scalar
	}
}

// Display returns the payload rendered for presentation: scalars as their
// string form, sequences and mappings as indented JSON.
func (p Payload) Display() string {
	if p.Kind == PayloadScalar {
		return formatScalar(p.Scalar)
	}
	data, err := json.MarshalIndent(p.Value(), "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", p.Value())
	}
	return string(data)
}

// Field returns the string form of a mapping field, or empty if the payload
// is not a mapping or the field is absent.
func (p Payload) Field(name string) string {
	if p.Kind != PayloadMapping {
		return ""
	}
	v, ok := p.Fields[name]
	if !ok || v == nil {
		return ""
	}
	return formatScalar(v)
}

// MarshalJSON writes the underlying value, so payloads embed in export
// documents exactly as they appeared in the input.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value())
}

// UnmarshalJSON reconstructs the variant from the underlying value.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PayloadOf(raw)
	return nil
}

// isScalar reports whether a decoded JSON value is a primitive.
func isScalar(v any) bool {
	switch v.(type) {
	case string, float64, int, bool, json.Number:
		return true
	}
	return false
}

// formatScalar renders a primitive for use as an id or display text. Numbers
// use the shortest decimal form, matching Value canonicalization.
func formatScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
