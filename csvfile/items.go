package csvfile

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/annotate"
)

// WriteItems flattens an export document to item,id,content,score rows for
// downstream tabular analysis. Items follow the export's order; exports
// without one fall back to sorted judgment keys.
func WriteItems(path string, exp *annotate.Export) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	items := exp.Order
	if len(items) == 0 {
		for id := range exp.Judgments {
			items = append(items, id)
		}
		sort.Strings(items)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"item", "id", "content", "score"}); err != nil {
		return err
	}
	for _, key := range items {
		payload := exp.Payloads[key]
		score := ""
		if v, ok := exp.Judgments[key]; ok {
			score = string(v)
		}
		row := []string{key, payload.Field("id"), payload.Field("content"), score}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
