package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/annotate"
)

// Compile-time interface verification.
var _ annotate.ComparisonsLoader = (*ComparisonsLoader)(nil)

// ComparisonsLoader reads A/B pairs from a comparisons source: free text with
// RANDOMIZED ORDER markers, or a CSV with tolerant header spellings.
type ComparisonsLoader struct{}

// NewComparisonsLoader creates a new ComparisonsLoader.
func NewComparisonsLoader() *ComparisonsLoader {
	return &ComparisonsLoader{}
}

// Load parses a comparisons file. A .csv extension tries the tabular form
// first; either way the text form is the fallback, and vice versa, so a
// mislabeled file still loads.
func (l *ComparisonsLoader) Load(path string) ([]annotate.Pair, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, annotate.ErrInputNotFound)
	}
	if err != nil {
		return nil, err
	}
	text := string(data)

	var pairs []annotate.Pair
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		pairs, _ = ParseComparisonsCSV(strings.NewReader(text))
	}
	if len(pairs) == 0 {
		pairs = annotate.ParseComparisonsText(text)
	}
	if len(pairs) == 0 {
		pairs, _ = ParseComparisonsCSV(strings.NewReader(text))
	}
	if len(pairs) == 0 {
		return nil, &annotate.ParseError{Source: path, Err: errors.New("no pairs found")}
	}
	return pairs, nil
}

// ParseComparisonsCSV parses the tabular comparisons form. Two row encodings
// are accepted: item_a/item_b columns holding "model[index]" (with optional
// summary_a/summary_b text), and the older a_model/a_index/b_model/b_index
// split. Rows that fit neither encoding are skipped.
func ParseComparisonsCSV(r io.Reader) ([]annotate.Pair, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("comparisons CSV missing header row")
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		key := normalizeHeader(name)
		if _, taken := cols[key]; !taken {
			cols[key] = i
		}
	}
	get := func(row []string, names ...string) string {
		for _, name := range names {
			if i, ok := cols[name]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	var pairs []annotate.Pair
	for _, row := range rows[1:] {
		itemA := get(row, "itema")
		itemB := get(row, "itemb")
		if itemA != "" && itemB != "" {
			a, okA := annotate.ParseSide(itemA)
			b, okB := annotate.ParseSide(itemB)
			if okA && okB {
				pairs = append(pairs, annotate.Pair{
					ID:       len(pairs),
					A:        a,
					B:        b,
					ASummary: get(row, "summarya"),
					BSummary: get(row, "summaryb"),
				})
			}
			continue
		}

		aModel := get(row, "amodel", "a", "amodelname")
		bModel := get(row, "bmodel", "b", "bmodelname")
		aIdx := get(row, "aindex", "aidx")
		bIdx := get(row, "bindex", "bidx")
		if aModel == "" || bModel == "" || aIdx == "" || bIdx == "" {
			continue
		}
		ai, errA := strconv.Atoi(aIdx)
		bi, errB := strconv.Atoi(bIdx)
		if errA != nil || errB != nil {
			continue
		}
		pairs = append(pairs, annotate.Pair{
			ID: len(pairs),
			A:  annotate.Side{Model: aModel, Index: ai},
			B:  annotate.Side{Model: bModel, Index: bi},
		})
	}
	return pairs, nil
}
