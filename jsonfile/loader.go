// Package jsonfile provides JSON file handling for item sources and export
// documents.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/annotate"
)

// Compile-time interface verification.
var _ annotate.ItemLoader = (*Loader)(nil)

// Loader reads an item source (array, object, or prior export) as decoded
// JSON for normalization.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes a JSON document.
func (l *Loader) Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, annotate.ErrInputNotFound)
	}
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &annotate.ParseError{Source: path, Err: err}
	}
	return raw, nil
}
