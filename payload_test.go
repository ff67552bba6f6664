package annotate_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/annotate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		kind annotate.PayloadKind
	}{
		{name: "string scalar", in: "hello", kind: annotate.PayloadScalar},
		{name: "number scalar", in: 3.5, kind: annotate.PayloadScalar},
		{name: "sequence", in: []any{"a", "b"}, kind: annotate.PayloadSequence},
		{name: "mapping", in: map[string]any{"id": "x"}, kind: annotate.PayloadMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := annotate.PayloadOf(tt.in)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, tt.in, p.Value())
		})
	}
}

func TestPayload_Display(t *testing.T) {
	t.Parallel()

	t.Run("scalar uses string form", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello", annotate.PayloadOf("hello").Display())
		assert.Equal(t, "2.5", annotate.PayloadOf(2.5).Display())
	})

	t.Run("mapping renders as indented JSON", func(t *testing.T) {
		t.Parallel()

		p := annotate.PayloadOf(map[string]any{"id": "x", "content": "body"})
		display := p.Display()

		assert.Contains(t, display, `"id": "x"`)
		assert.Contains(t, display, `"content": "body"`)
	})

	t.Run("sequence renders as indented JSON", func(t *testing.T) {
		t.Parallel()

		display := annotate.PayloadOf([]any{"a", "b"}).Display()
		assert.Contains(t, display, `"a"`)
		assert.Contains(t, display, `"b"`)
	})
}

func TestPayload_Field(t *testing.T) {
	t.Parallel()

	p := annotate.PayloadOf(map[string]any{"id": "x17", "count": 3.0, "gone": nil})

	assert.Equal(t, "x17", p.Field("id"))
	assert.Equal(t, "3", p.Field("count"))
	assert.Equal(t, "", p.Field("gone"))
	assert.Equal(t, "", p.Field("missing"))
	assert.Equal(t, "", annotate.PayloadOf("scalar").Field("id"))
}

func TestPayload_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	// Payloads embed in export documents as the raw value they wrapped.
	original := annotate.PayloadOf(map[string]any{"id": "x", "n": 2.0})

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored annotate.Payload
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, annotate.PayloadMapping, restored.Kind)
	assert.Equal(t, original.Value(), restored.Value())
}
