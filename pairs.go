package annotate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Side identifies one side of an A/B pair: a model name plus the output index
// within that model's run.
type Side struct {
	Model string
	Index int
}

// String renders the side in "model[index]" form.
func (s Side) String() string {
	return fmt.Sprintf("%s[%d]", s.Model, s.Index)
}

var sidePattern = regexp.MustCompile(`^([^\[\]]+)\[(\d+)\]$`)

// ParseSide parses the "model[index]" encoding.
func ParseSide(raw string) (Side, bool) {
	m := sidePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Side{}, false
	}
	idx, err := strconv.Atoi(m[2])
	if err != nil {
		return Side{}, false
	}
	return Side{Model: strings.TrimSpace(m[1]), Index: idx}, true
}

// Pair is one A/B comparison. ID is the pair's 0-based position in the parsed
// comparisons source; it is stable across re-parses of the same source but
// does not survive reordering or filtering of that source (the signature
// fallback in MergeChoices covers that case).
type Pair struct {
	ID   int
	A, B Side

	// Inline summaries carried by the comparisons source itself; they win
	// over prompt-table lookups.
	ASummary, BSummary string

	// Resolved display text. A false Resolved flag means the reference had no
	// match anywhere and must surface as an explicit error, never a blank.
	AText, BText         string
	AResolved, BResolved bool
}

// Signature is the order-independent identity of a pair, used to match
// history when pair ids have shifted.
type Signature struct {
	AModel string
	AIndex int
	BModel string
	BIndex int
}

// Signature returns the pair's side signature.
func (p Pair) Signature() Signature {
	return Signature{AModel: p.A.Model, AIndex: p.A.Index, BModel: p.B.Model, BIndex: p.B.Index}
}

var pairPattern = regexp.MustCompile(
	`(?i)RANDOMIZED ORDER:\s*A:\s*([A-Za-z0-9_\-]+)\[(\d+)\]\s*,\s*B:\s*([A-Za-z0-9_\-]+)\[(\d+)\]`,
)

// ParseComparisonsText extracts pairs from free text containing repeated
// "RANDOMIZED ORDER: A: model[idx], B: model[idx]" markers, in first-seen
// order.
func ParseComparisonsText(text string) []Pair {
	var pairs []Pair
	for _, m := range pairPattern.FindAllStringSubmatch(text, -1) {
		aIdx, _ := strconv.Atoi(m[2])
		bIdx, _ := strconv.Atoi(m[4])
		pairs = append(pairs, Pair{
			ID: len(pairs),
			A:  Side{Model: m[1], Index: aIdx},
			B:  Side{Model: m[3], Index: bIdx},
		})
	}
	return pairs
}

// PromptKey addresses one entry in the prompt table.
type PromptKey struct {
	Model string
	Index int
}

// PromptTable maps (model, index) to the display text attached to pairs.
type PromptTable map[PromptKey]string

// AttachText resolves each pair's display text: inline summaries first, then
// the prompt table. Unresolved sides keep Resolved false so the UI shows an
// explicit missing-reference banner.
func AttachText(pairs []Pair, prompts PromptTable) []Pair {
	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		if p.ASummary != "" {
			p.AText, p.AResolved = p.ASummary, true
		} else if text, ok := prompts[PromptKey{Model: p.A.Model, Index: p.A.Index}]; ok {
			p.AText, p.AResolved = text, true
		}
		if p.BSummary != "" {
			p.BText, p.BResolved = p.BSummary, true
		} else if text, ok := prompts[PromptKey{Model: p.B.Model, Index: p.B.Index}]; ok {
			p.BText, p.BResolved = text, true
		}
		out[i] = p
	}
	return out
}

// Choice is one recorded A/B decision together with the pair identity it was
// recorded against.
type Choice struct {
	PairID    int
	A, B      Side
	Value     Value
	Timestamp time.Time
}

// Signature returns the choice's side signature.
func (c Choice) Signature() Signature {
	return Signature{AModel: c.A.Model, AIndex: c.A.Index, BModel: c.B.Model, BIndex: c.B.Index}
}

// MergeChoices reconciles prior choices with the current pair list. Each pair
// matches first by exact pair id, then by side signature (so a reordered
// comparisons source keeps its history). Prior entries without a valid choice
// value, and entries matching no current pair, are dropped.
func MergeChoices(pairs []Pair, prior []Choice) map[int]Choice {
	byID := make(map[int]Choice)
	bySig := make(map[Signature]Choice)
	for _, c := range prior {
		if !ChoiceValues.Contains(c.Value) {
			continue
		}
		if c.PairID >= 0 {
			byID[c.PairID] = c
		}
		bySig[c.Signature()] = c
	}

	merged := make(map[int]Choice)
	for _, p := range pairs {
		if c, ok := byID[p.ID]; ok {
			merged[p.ID] = c
			continue
		}
		if c, ok := bySig[p.Signature()]; ok {
			c.PairID = p.ID
			merged[p.ID] = c
		}
	}
	return merged
}

// FirstUnanswered returns the position of the first pair without a choice, or
// len(pairs) when every pair is answered.
func FirstUnanswered(pairs []Pair, choices map[int]Choice) int {
	for i, p := range pairs {
		if c, ok := choices[p.ID]; !ok || c.Value == "" {
			return i
		}
	}
	return len(pairs)
}
