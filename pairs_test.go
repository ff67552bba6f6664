package annotate_test

import (
	"testing"
	"time"

	"github.com/fwojciec/annotate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want annotate.Side
		ok   bool
	}{
		{name: "basic", raw: "gpt4[0]", want: annotate.Side{Model: "gpt4", Index: 0}, ok: true},
		{name: "multi-digit index", raw: "claude[12]", want: annotate.Side{Model: "claude", Index: 12}, ok: true},
		{name: "surrounding whitespace", raw: "  m1[3]  ", want: annotate.Side{Model: "m1", Index: 3}, ok: true},
		{name: "missing index", raw: "gpt4", ok: false},
		{name: "missing brackets", raw: "gpt4 0", ok: false},
		{name: "negative index", raw: "m[-1]", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := annotate.ParseSide(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSide_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "gpt4[2]", annotate.Side{Model: "gpt4", Index: 2}.String())
}

func TestParseComparisonsText(t *testing.T) {
	t.Parallel()

	text := `Session transcript follows.

RANDOMIZED ORDER: A: model_one[0], B: model-two[3]
... discussion ...
randomized order: A: model_one[1], B: model-two[4]
trailing notes`

	pairs := annotate.ParseComparisonsText(text)

	require.Len(t, pairs, 2)

	assert.Equal(t, 0, pairs[0].ID)
	assert.Equal(t, annotate.Side{Model: "model_one", Index: 0}, pairs[0].A)
	assert.Equal(t, annotate.Side{Model: "model-two", Index: 3}, pairs[0].B)

	// Matching is case-insensitive; ids follow first-seen order.
	assert.Equal(t, 1, pairs[1].ID)
	assert.Equal(t, annotate.Side{Model: "model_one", Index: 1}, pairs[1].A)
	assert.Equal(t, annotate.Side{Model: "model-two", Index: 4}, pairs[1].B)
}

func TestParseComparisonsText_NoMarkers(t *testing.T) {
	t.Parallel()

	assert.Empty(t, annotate.ParseComparisonsText("nothing to see here"))
}

func TestAttachText(t *testing.T) {
	t.Parallel()

	pairs := []annotate.Pair{
		{
			ID:       0,
			A:        annotate.Side{Model: "m1", Index: 0},
			B:        annotate.Side{Model: "m2", Index: 0},
			ASummary: "inline summary wins",
		},
		{
			ID: 1,
			A:  annotate.Side{Model: "m1", Index: 1},
			B:  annotate.Side{Model: "missing", Index: 9},
		},
	}
	prompts := annotate.PromptTable{
		{Model: "m1", Index: 0}: "table summary for m1[0]",
		{Model: "m2", Index: 0}: "table summary for m2[0]",
		{Model: "m1", Index: 1}: "table summary for m1[1]",
	}

	out := annotate.AttachText(pairs, prompts)

	// Inline summary beats the table.
	assert.Equal(t, "inline summary wins", out[0].AText)
	assert.True(t, out[0].AResolved)
	assert.Equal(t, "table summary for m2[0]", out[0].BText)
	assert.True(t, out[0].BResolved)

	// Table fallback resolves; a missing reference stays unresolved.
	assert.Equal(t, "table summary for m1[1]", out[1].AText)
	assert.True(t, out[1].AResolved)
	assert.False(t, out[1].BResolved)
	assert.Empty(t, out[1].BText)
}

func TestMergeChoices(t *testing.T) {
	t.Parallel()

	pairs := []annotate.Pair{
		{ID: 0, A: annotate.Side{Model: "m1", Index: 0}, B: annotate.Side{Model: "m2", Index: 0}},
		{ID: 1, A: annotate.Side{Model: "m1", Index: 1}, B: annotate.Side{Model: "m2", Index: 1}},
		{ID: 2, A: annotate.Side{Model: "m1", Index: 2}, B: annotate.Side{Model: "m2", Index: 2}},
	}
	at := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	prior := []annotate.Choice{
		// Exact id match.
		{PairID: 0, A: pairs[0].A, B: pairs[0].B, Value: "A", Timestamp: at},
		// Id shifted; matches pair 1 by signature.
		{PairID: 7, A: pairs[1].A, B: pairs[1].B, Value: "B", Timestamp: at},
		// Invalid value, dropped.
		{PairID: 2, A: pairs[2].A, B: pairs[2].B, Value: "C", Timestamp: at},
	}

	merged := annotate.MergeChoices(pairs, prior)

	require.Len(t, merged, 2)
	assert.Equal(t, annotate.Value("A"), merged[0].Value)

	// The signature match is rewritten to the current pair id.
	assert.Equal(t, annotate.Value("B"), merged[1].Value)
	assert.Equal(t, 1, merged[1].PairID)

	assert.NotContains(t, merged, 2)
}

func TestFirstUnanswered(t *testing.T) {
	t.Parallel()

	pairs := []annotate.Pair{{ID: 0}, {ID: 1}, {ID: 2}}

	assert.Equal(t, 0, annotate.FirstUnanswered(pairs, nil))

	choices := map[int]annotate.Choice{
		0: {PairID: 0, Value: "A"},
		1: {PairID: 1, Value: ""}, // empty value counts as unanswered
	}
	assert.Equal(t, 1, annotate.FirstUnanswered(pairs, choices))

	choices[1] = annotate.Choice{PairID: 1, Value: "B"}
	choices[2] = annotate.Choice{PairID: 2, Value: "A"}
	assert.Equal(t, len(pairs), annotate.FirstUnanswered(pairs, choices))
}
