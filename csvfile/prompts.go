// Package csvfile provides CSV file handling for prompt tables, comparisons
// sources, choice progress, and flattened item exports.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/annotate"
)

// Compile-time interface verification.
var _ annotate.PromptLoader = (*PromptLoader)(nil)

// PromptLoader reads the 4+ column prompt table: index, model, prompt,
// summary. The summary column is the text attached to pairs; the prompt
// column is ignored.
type PromptLoader struct{}

// NewPromptLoader creates a new PromptLoader.
func NewPromptLoader() *PromptLoader {
	return &PromptLoader{}
}

// Load reads a prompt table from a CSV file.
func (l *PromptLoader) Load(path string) (annotate.PromptTable, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, annotate.ErrInputNotFound)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := ParsePrompts(f)
	if err != nil {
		return nil, &annotate.ParseError{Source: path, Err: err}
	}
	return table, nil
}

// ParsePrompts parses prompt table rows. A header row is detected when the
// first cell is empty or non-numeric; short rows and rows with non-numeric
// indices are skipped rather than failing the whole table.
func ParsePrompts(r io.Reader) (annotate.PromptTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("prompt table is empty")
	}

	data := rows
	if first := strings.TrimSpace(rows[0][0]); first == "" || !allDigits(first) {
		data = rows[1:]
	}

	table := make(annotate.PromptTable)
	for _, row := range data {
		if len(row) < 4 {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			continue
		}
		model := strings.TrimSpace(row[1])
		table[annotate.PromptKey{Model: model, Index: idx}] = row[3]
	}
	return table, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// normalizeHeader folds case, spaces, dashes, and underscores so header
// spellings like "A_Index", "a index", and "a-index" all match.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, cut := range []string{" ", "-", "_"} {
		name = strings.ReplaceAll(name, cut, "")
	}
	return name
}
