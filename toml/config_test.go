package toml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/annotate/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := toml.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, toml.Default(), cfg)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.False(t, cfg.UI.HideCompleted)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotate.toml")
	content := `
[paths]
items = "items.json"
prompts = "prompts.csv"
comparisons = "comparisons.csv"
progress = "progress.csv"

[ui]
theme = "light"
hide_completed = true
categories = ["relevance", "fluency"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := toml.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "items.json", cfg.Paths.Items)
	assert.Equal(t, "prompts.csv", cfg.Paths.Prompts)
	assert.Equal(t, "comparisons.csv", cfg.Paths.Comparisons)
	assert.Equal(t, "progress.csv", cfg.Paths.Progress)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.HideCompleted)
	assert.Equal(t, []string{"relevance", "fluency"}, cfg.UI.Categories)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[[["), 0o644))

	_, err := toml.Load(path)
	assert.Error(t, err)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0o644))
	t.Setenv("ANNOTATE_CONFIG", path)

	cfg, err := toml.Load("")
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoad_CategoriesEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotate.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ncategories = [\"from file\"]\n"), 0o644))
	t.Setenv("CATEGORIES", `["from env", "second"]`)

	cfg, err := toml.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"from env", "second"}, cfg.UI.Categories)
}

func TestLoad_CategoriesEnvMalformed(t *testing.T) {
	t.Setenv("CATEGORIES", "not json")

	_, err := toml.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
