package csvfile

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/annotate"
)

// Compile-time interface verification.
var _ annotate.ChoiceStore = (*ChoiceStore)(nil)

// choiceHeader is the column layout of the choice progress file.
var choiceHeader = []string{
	"pair_id", "a_model", "a_index", "b_model", "b_index",
	"choice", "timestamp", "a_prompt", "b_prompt",
}

// ChoiceStore persists and retrieves A/B choices as a flat CSV keyed by
// pair_id with the side signature alongside, so history survives a reordered
// comparisons source.
type ChoiceStore struct{}

// NewChoiceStore creates a new ChoiceStore.
func NewChoiceStore() *ChoiceStore {
	return &ChoiceStore{}
}

// Load reads prior choices. Returns nil without error if the file doesn't
// exist.
func (s *ChoiceStore) Load(path string) ([]annotate.Choice, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	choices, err := ParseChoices(f)
	if err != nil {
		return nil, &annotate.ParseError{Source: path, Err: err}
	}
	return choices, nil
}

// ParseChoices parses progress rows. A missing or unparsable pair_id becomes
// -1, leaving only the signature for matching.
func ParseChoices(r io.Reader) ([]annotate.Choice, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		key := normalizeHeader(name)
		if _, taken := cols[key]; !taken {
			cols[key] = i
		}
	}
	get := func(row []string, name string) string {
		if i, ok := cols[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var choices []annotate.Choice
	for _, row := range rows[1:] {
		pairID := -1
		if v, err := strconv.Atoi(get(row, "pairid")); err == nil {
			pairID = v
		}
		c := annotate.Choice{
			PairID: pairID,
			A:      annotate.Side{Model: get(row, "amodel"), Index: atoiOrZero(get(row, "aindex"))},
			B:      annotate.Side{Model: get(row, "bmodel"), Index: atoiOrZero(get(row, "bindex"))},
			Value:  annotate.Value(get(row, "choice")),
		}
		if ts, err := time.Parse(time.RFC3339, get(row, "timestamp")); err == nil {
			c.Timestamp = ts
		}
		choices = append(choices, c)
	}
	return choices, nil
}

// Save writes one row per pair in pair order, answered or not, so the file
// doubles as a complete session snapshot.
func (s *ChoiceStore) Save(path string, pairs []annotate.Pair, choices map[int]annotate.Choice) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(choiceHeader); err != nil {
		return err
	}
	for _, p := range pairs {
		c := choices[p.ID]
		ts := ""
		if !c.Timestamp.IsZero() {
			ts = c.Timestamp.UTC().Format(time.RFC3339)
		}
		row := []string{
			strconv.Itoa(p.ID),
			p.A.Model, strconv.Itoa(p.A.Index),
			p.B.Model, strconv.Itoa(p.B.Index),
			string(c.Value), ts,
			p.AText, p.BText,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
