package csvfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/annotate"
	"github.com/fwojciec/annotate/csvfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run-choices.csv")
	at := time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC)

	pairs := []annotate.Pair{
		{
			ID: 0,
			A:  annotate.Side{Model: "m1", Index: 0},
			B:  annotate.Side{Model: "m2", Index: 0},
			AText: "text a", BText: "text b",
		},
		{
			ID: 1,
			A:  annotate.Side{Model: "m1", Index: 1},
			B:  annotate.Side{Model: "m2", Index: 1},
		},
	}
	choices := map[int]annotate.Choice{
		0: {PairID: 0, A: pairs[0].A, B: pairs[0].B, Value: "A", Timestamp: at},
	}

	store := csvfile.NewChoiceStore()
	require.NoError(t, store.Save(path, pairs, choices))

	restored, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, restored, 2)

	assert.Equal(t, 0, restored[0].PairID)
	assert.Equal(t, annotate.Side{Model: "m1", Index: 0}, restored[0].A)
	assert.Equal(t, annotate.Value("A"), restored[0].Value)
	assert.Equal(t, at, restored[0].Timestamp)

	// The unanswered pair still has a row, with no choice or timestamp.
	assert.Equal(t, 1, restored[1].PairID)
	assert.Equal(t, annotate.Value(""), restored[1].Value)
	assert.True(t, restored[1].Timestamp.IsZero())
}

func TestChoiceStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store := csvfile.NewChoiceStore()
	choices, err := store.Load(filepath.Join(t.TempDir(), "nope.csv"))

	require.NoError(t, err)
	assert.Nil(t, choices)
}

func TestParseChoices_MissingPairID(t *testing.T) {
	t.Parallel()

	input := `a_model,a_index,b_model,b_index,choice,timestamp
m1,0,m2,0,B,2026-08-01T14:00:00Z
`

	choices, err := csvfile.ParseChoices(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, choices, 1)

	// Without a pair_id column only the signature identifies the row.
	assert.Equal(t, -1, choices[0].PairID)
	assert.Equal(t, annotate.Side{Model: "m1", Index: 0}, choices[0].A)
	assert.Equal(t, annotate.Value("B"), choices[0].Value)
}

func TestChoiceStore_SaveIncludesTexts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "choices.csv")
	pairs := []annotate.Pair{
		{
			ID: 0,
			A:  annotate.Side{Model: "m1", Index: 0},
			B:  annotate.Side{Model: "m2", Index: 0},
			AText: "alpha text", BText: "beta text",
		},
	}

	store := csvfile.NewChoiceStore()
	require.NoError(t, store.Save(path, pairs, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "alpha text")
	assert.Contains(t, string(data), "beta text")
}
