package annotate

import (
	"math/rand"
	"slices"
	"time"
)

// ResolveOrder establishes the presentation order for ids. A restored order
// is accepted only if it is a permutation of exactly ids; anything else (size
// drift, membership drift, duplicates) regenerates a uniformly random
// permutation. A nil rng seeds from the clock.
func ResolveOrder(ids, restored []string, rng *rand.Rand) []string {
	if isPermutation(restored, ids) {
		return slices.Clone(restored)
	}
	return ShuffleOrder(ids, rng)
}

// ShuffleOrder returns a random permutation of ids without mutating the
// input.
func ShuffleOrder(ids []string, rng *rand.Rand) []string {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	order := slices.Clone(ids)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// isPermutation reports whether order contains exactly the same multiset of
// ids.
func isPermutation(order, ids []string) bool {
	if len(order) != len(ids) {
		return false
	}
	counts := make(map[string]int, len(ids))
	for _, id := range ids {
		counts[id]++
	}
	for _, id := range order {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}

// VisibleIDs computes the visible subsequence of order. An item is visible if
// hideCompleted is off, or it has no judgment yet, or it is the sticky item
// (the one just judged, kept on screen instead of vanishing mid-interaction).
func VisibleIDs(order []string, judged func(id string) bool, hideCompleted bool, sticky string) []string {
	if !hideCompleted {
		return slices.Clone(order)
	}
	visible := make([]string, 0, len(order))
	for _, id := range order {
		if id == sticky || !judged(id) {
			visible = append(visible, id)
		}
	}
	return visible
}
