package jsonfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/annotate"
)

// Compile-time interface verification.
var _ annotate.ExportStore = (*Store)(nil)

// Store persists and retrieves export documents as indented JSON.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads an export document. Returns nil without error if the file
// doesn't exist, so a fresh session starts cleanly.
func (s *Store) Load(path string) (*annotate.Export, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var exp annotate.Export
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, &annotate.ParseError{Source: path, Err: err}
	}
	return &exp, nil
}

// Save writes an export document, creating parent directories if needed.
func (s *Store) Save(path string, exp *annotate.Export) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
