package annotate

import (
	"fmt"
	"sort"
	"time"
)

// Normalized is the canonical form of an item source: stable ids, payloads
// keyed by id, and any judgments or ordering recovered from a prior export.
type Normalized struct {
	IDs           []string
	Payloads      map[string]Payload
	Prefilled     map[string]Value
	JudgedAt      map[string]time.Time
	RestoredOrder []string
}

// Keys recognized when detecting a prior export. Judgment values live under
// the first matching key whose value is itself a mapping.
var (
	judgmentKeys = []string{"judgments_by_id", "judgments", "scores"}
	payloadKeys  = []string{"item_payloads", "items_payloads"}
	metaKeys     = []string{"metadata", "meta"}
)

// Normalize converts arbitrary decoded JSON into the canonical item
// collection. It never fails: malformed sub-fields degrade (judgments outside
// the allowed set are dropped, missing payloads fall back to the id string).
//
// Rules, in priority order: prior export, keyed mapping, sequence of scalars,
// sequence of structured values, single wrapped value.
func Normalize(input any, allowed ValueSet) Normalized {
	switch v := input.(type) {
	case map[string]any:
		if n, ok := normalizePriorExport(v, allowed); ok {
			return n
		}
		return normalizeMapping(v)
	case []any:
		if allScalars(v) {
			return normalizeScalars(v)
		}
		return normalizeSequence(v)
	default:
		return normalizeSingle(input)
	}
}

// normalizePriorExport handles inputs shaped like a previous export document.
func normalizePriorExport(m map[string]any, allowed ValueSet) (Normalized, bool) {
	var judgments map[string]any
	for _, key := range judgmentKeys {
		if jm, ok := m[key].(map[string]any); ok {
			judgments = jm
			break
		}
	}
	if judgments == nil {
		return Normalized{}, false
	}

	n := Normalized{
		Payloads:  make(map[string]Payload),
		Prefilled: make(map[string]Value),
		JudgedAt:  make(map[string]time.Time),
	}

	for id, raw := range judgments {
		if v, ok := allowed.Canonical(raw); ok {
			n.Prefilled[id] = v
		}
	}

	var payloads map[string]any
	for _, key := range payloadKeys {
		if pm, ok := m[key].(map[string]any); ok {
			payloads = pm
			break
		}
	}
	if payloads != nil {
		n.IDs = sortedKeys(payloads)
		for id, v := range payloads {
			n.Payloads[id] = PayloadOf(v)
		}
	} else {
		// Judgment keys alone; payloads degrade to the id itself.
		n.IDs = sortedKeys(judgments)
		for _, id := range n.IDs {
			n.Payloads[id] = ScalarPayload(id)
		}
	}

	n.RestoredOrder = stringSlice(m["order"])
	if n.RestoredOrder == nil {
		for _, key := range metaKeys {
			if meta, ok := m[key].(map[string]any); ok {
				if order := stringSlice(meta["order"]); order != nil {
					n.RestoredOrder = order
					break
				}
			}
		}
	}

	if stamps, ok := m["judged_at_by_id"].(map[string]any); ok {
		for id, raw := range stamps {
			s, ok := raw.(string)
			if !ok {
				continue
			}
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				n.JudgedAt[id] = ts
			}
		}
	}

	return n, true
}

// normalizeMapping treats each key as an id and each value as its payload.
// Keys are sorted for deterministic ids; presentation order is the session
// shuffle, not map iteration.
func normalizeMapping(m map[string]any) Normalized {
	n := Normalized{
		IDs:      sortedKeys(m),
		Payloads: make(map[string]Payload, len(m)),
	}
	for id, v := range m {
		if v == nil {
			n.Payloads[id] = ScalarPayload(id)
			continue
		}
		n.Payloads[id] = PayloadOf(v)
	}
	return n
}

// normalizeScalars maps each scalar's string form to an id. Duplicates
// collapse to one id: first occurrence keeps its position, last payload wins.
func normalizeScalars(seq []any) Normalized {
	n := Normalized{Payloads: make(map[string]Payload, len(seq))}
	for _, v := range seq {
		id := formatScalar(v)
		if _, seen := n.Payloads[id]; !seen {
			n.IDs = append(n.IDs, id)
		}
		n.Payloads[id] = ScalarPayload(v)
	}
	return n
}

// normalizeSequence synthesizes positional ids for structured elements. A
// mapping element carrying a string "id" field keeps that id instead.
func normalizeSequence(seq []any) Normalized {
	n := Normalized{Payloads: make(map[string]Payload, len(seq))}
	for i, v := range seq {
		id := fmt.Sprintf("item_%d", i)
		if m, ok := v.(map[string]any); ok {
			if custom, ok := m["id"].(string); ok && custom != "" {
				id = custom
			}
		}
		if _, seen := n.Payloads[id]; !seen {
			n.IDs = append(n.IDs, id)
		}
		n.Payloads[id] = PayloadOf(v)
	}
	return n
}

// normalizeSingle wraps the whole input as one item.
func normalizeSingle(v any) Normalized {
	return Normalized{
		IDs:      []string{"item_0"},
		Payloads: map[string]Payload{"item_0": PayloadOf(v)},
	}
}

func allScalars(seq []any) bool {
	if len(seq) == 0 {
		return false
	}
	for _, v := range seq {
		if !isScalar(v) {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stringSlice converts a decoded JSON array of strings, or nil if raw is not
// one.
func stringSlice(raw any) []string {
	seq, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(seq))
	for _, v := range seq {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}
