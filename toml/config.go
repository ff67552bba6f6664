// Package toml loads annotation session configuration from TOML files.
package toml

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	tomllib "github.com/pelletier/go-toml/v2"
)

// DefaultConfigPath is the config file location used when no explicit path is
// given and ANNOTATE_CONFIG is unset.
const DefaultConfigPath = "annotate.toml"

// Paths contains input and output file locations.
type Paths struct {
	Items       string `toml:"items"`
	Prompts     string `toml:"prompts"`
	Comparisons string `toml:"comparisons"`
	Progress    string `toml:"progress"`
}

// UI contains terminal UI preferences.
type UI struct {
	Theme         string   `toml:"theme"`
	HideCompleted bool     `toml:"hide_completed"`
	Categories    []string `toml:"categories"`
}

// Config is the root configuration document.
type Config struct {
	Paths Paths `toml:"paths"`
	UI    UI    `toml:"ui"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		UI: UI{
			Theme: "dark",
		},
	}
}

// Load reads the configuration file at path, falling back to ANNOTATE_CONFIG
// and then DefaultConfigPath when path is empty. A missing file is not an
// error: defaults are returned. The CATEGORIES environment variable (a JSON
// array of strings) overrides ui.categories.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("ANNOTATE_CONFIG")
	}
	if path == "" {
		path = DefaultConfigPath
	}

	file, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("open config: %w", err)
		}
	} else {
		defer file.Close()
		decoder := tomllib.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if raw := os.Getenv("CATEGORIES"); raw != "" {
		var categories []string
		if err := json.Unmarshal([]byte(raw), &categories); err != nil {
			return cfg, fmt.Errorf("parse CATEGORIES: %w", err)
		}
		cfg.UI.Categories = categories
	}

	return cfg, nil
}
