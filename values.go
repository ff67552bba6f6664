package annotate

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Value is a single judgment value in canonical string form: numeric scores
// use the shortest decimal representation ("0", "0.5", "1"), labels are kept
// verbatim ("A", "B").
type Value string

// MarshalJSON writes numeric values as JSON numbers and labels as strings, so
// exports stay readable by tools that expect plain scores.
func (v Value) MarshalJSON() ([]byte, error) {
	if f, err := strconv.ParseFloat(string(v), 64); err == nil {
		return json.Marshal(f)
	}
	return json.Marshal(string(v))
}

// UnmarshalJSON accepts numbers, strings, and booleans. Unsupported shapes
// decode to the empty value rather than failing the enclosing document;
// validation against the allowed set happens at merge time.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, ok := valueOf(raw)
	if !ok {
		*v = ""
		return nil
	}
	*v = parsed
	return nil
}

// valueOf converts a decoded JSON value to canonical form.
func valueOf(raw any) (Value, bool) {
	switch t := raw.(type) {
	case Value:
		return t, true
	case string:
		return Value(strings.TrimSpace(t)), true
	case float64:
		return Value(strconv.FormatFloat(t, 'g', -1, 64)), true
	case int:
		return Value(strconv.Itoa(t)), true
	case json.Number:
		return Value(t.String()), true
	case bool:
		return Value(strconv.FormatBool(t)), true
	}
	return "", false
}

// ValueSet is the fixed finite set of judgment values allowed in a session.
type ValueSet struct {
	members []Value
}

// Allowed value sets for the built-in session variants.
var (
	ScoreValues  = NewValueSet("0", "0.5", "1")
	ChoiceValues = NewValueSet("A", "B")
)

// NewValueSet creates a ValueSet from the given members.
func NewValueSet(members ...Value) ValueSet {
	return ValueSet{members: slices.Clone(members)}
}

// Contains reports whether v is a member of the set.
func (s ValueSet) Contains(v Value) bool {
	return slices.Contains(s.members, v)
}

// Canonical converts raw to canonical form and checks membership. Numeric
// inputs that format differently from their canonical member ("1.0" vs "1")
// still match via float comparison.
func (s ValueSet) Canonical(raw any) (Value, bool) {
	v, ok := valueOf(raw)
	if !ok {
		return "", false
	}
	if s.Contains(v) {
		return v, true
	}
	if f, err := strconv.ParseFloat(string(v), 64); err == nil {
		for _, m := range s.members {
			mf, err := strconv.ParseFloat(string(m), 64)
			if err == nil && mf == f {
				return m, true
			}
		}
	}
	return "", false
}

// Values returns a copy of the members in declaration order.
func (s ValueSet) Values() []Value {
	return slices.Clone(s.members)
}
