package jsonfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/annotate"
	"github.com/fwojciec/annotate/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scores", "run-scores.json")
	at := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

	original := &annotate.Export{
		Judgments: map[string]annotate.Value{"a": "1", "b": "0.5"},
		JudgedAt:  map[string]time.Time{"a": at, "b": at},
		Order:     []string{"b", "a"},
		Payloads: map[string]annotate.Payload{
			"a": annotate.PayloadOf("first"),
			"b": annotate.PayloadOf(map[string]any{"id": "b", "content": "second"}),
		},
		Meta: annotate.ExportMeta{
			SessionID:   "session-1",
			GeneratedAt: at,
			Count:       2,
			ValidValues: annotate.ScoreValues.Values(),
		},
	}

	store := jsonfile.NewStore()
	require.NoError(t, store.Save(path, original))

	restored, err := store.Load(path)
	require.NoError(t, err)
	require.NotNil(t, restored)

	assert.Equal(t, original.Judgments, restored.Judgments)
	assert.Equal(t, original.Order, restored.Order)
	assert.Equal(t, at, restored.JudgedAt["a"])
	assert.Equal(t, "session-1", restored.Meta.SessionID)
	assert.Equal(t, 2, restored.Meta.Count)
	assert.Equal(t, "second", restored.Payloads["b"].Field("content"))
}

func TestStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	store := jsonfile.NewStore()
	exp, err := store.Load(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.Nil(t, exp)
}

func TestStore_LoadMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))

	store := jsonfile.NewStore()
	_, err := store.Load(path)

	var parseErr *annotate.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestStore_SaveCreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deep", "nested", "out.json")

	store := jsonfile.NewStore()
	require.NoError(t, store.Save(path, &annotate.Export{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
