package annotate

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Judgment is a recorded operator decision for one item.
type Judgment struct {
	Value    Value
	JudgedAt time.Time
}

// Session holds the complete state of one annotation pass: items, order,
// judgments, and cursor. It is owned by a single operator; every interaction
// is a synchronous method call followed by a re-render.
type Session struct {
	allowed   ValueSet
	id        string
	ids       []string
	payloads  map[string]Payload
	order     []string
	judgments map[string]Judgment

	cursor        int
	hideCompleted bool
	sticky        string

	seen map[[sha256.Size]byte]struct{}
	rng  *rand.Rand
	now  func() time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRand sets the randomness source used for order shuffles. Tests inject a
// seeded source for deterministic orders.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithClock sets the time source used for judgment timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithHideCompleted sets the initial visibility filter.
func WithHideCompleted(hide bool) SessionOption {
	return func(s *Session) { s.hideCompleted = hide }
}

// NewSession creates an empty session accepting judgments from the given
// value set.
func NewSession(allowed ValueSet, opts ...SessionOption) *Session {
	s := &Session{
		allowed:   allowed,
		id:        uuid.NewString(),
		payloads:  make(map[string]Payload),
		judgments: make(map[string]Judgment),
		seen:      make(map[[sha256.Size]byte]struct{}),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier stamped into exports.
func (s *Session) ID() string { return s.id }

// Allowed returns the session's value set.
func (s *Session) Allowed() ValueSet { return s.allowed }

// Load replaces the session's items with a normalized view of input. The
// presentation order is restored from the input when it matches the new id
// set exactly, kept from the previous load when still valid, and regenerated
// otherwise. Judgments carried by the input prefill items that have none; the
// cursor seeks to the first unjudged item.
func (s *Session) Load(input any) {
	n := Normalize(input, s.allowed)
	s.ids = n.IDs
	s.payloads = n.Payloads

	restored := n.RestoredOrder
	if !isPermutation(restored, s.ids) {
		restored = s.order
	}
	s.order = ResolveOrder(s.ids, restored, s.rng)

	s.mergePrefilled(n)
	s.sticky = ""
	s.SeekFirstUnjudged()
}

// mergePrefilled adopts judgments recovered from an export. Ids outside the
// current set are dropped, in-session judgments win over prefills, and values
// are re-validated in case the set changed between sessions.
func (s *Session) mergePrefilled(n Normalized) {
	for id, v := range n.Prefilled {
		if !slices.Contains(s.ids, id) {
			continue
		}
		if _, exists := s.judgments[id]; exists {
			continue
		}
		if !s.allowed.Contains(v) {
			continue
		}
		at := n.JudgedAt[id]
		if at.IsZero() {
			at = s.now()
		}
		s.judgments[id] = Judgment{Value: v, JudgedAt: at}
	}
}

// MergeExport prefills judgments from a prior export document and adopts its
// order when it still matches the current id set.
func (s *Session) MergeExport(exp *Export) {
	if exp == nil {
		return
	}
	n := Normalized{
		Prefilled: make(map[string]Value, len(exp.Judgments)),
		JudgedAt:  exp.JudgedAt,
	}
	for id, v := range exp.Judgments {
		n.Prefilled[id] = v
	}
	s.mergePrefilled(n)
	if isPermutation(exp.Order, s.ids) {
		s.order = slices.Clone(exp.Order)
	}
	s.SeekFirstUnjudged()
}

// ApplyUpload merges a resume document from raw file content. Identical
// content uploaded twice is a no-op on the second call: the returned bool
// reports whether the upload was applied. Malformed content leaves the
// session untouched.
func (s *Session) ApplyUpload(content []byte) (bool, error) {
	sum := sha256.Sum256(content)
	if _, done := s.seen[sum]; done {
		return false, nil
	}

	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return false, &ParseError{Source: "uploaded progress", Err: err}
	}
	s.seen[sum] = struct{}{}

	n := Normalize(raw, s.allowed)
	s.mergePrefilled(n)
	if isPermutation(n.RestoredOrder, s.ids) {
		s.order = slices.Clone(n.RestoredOrder)
	}
	s.SeekFirstUnjudged()
	return true, nil
}

// Record stores the judgment for an item, overwriting any previous value.
// Recording the same value again is a no-op beyond stickiness, so repeated
// keypresses do not churn timestamps. The judged item becomes sticky: it
// stays visible under hide-completed until the filter is toggled.
func (s *Session) Record(id string, raw any) error {
	if !slices.Contains(s.ids, id) {
		return fmt.Errorf("record %q: %w", id, ErrUnknownItem)
	}
	v, ok := s.allowed.Canonical(raw)
	if !ok {
		return &InvalidValueError{Value: raw, Allowed: s.allowed.Values()}
	}
	if existing, exists := s.judgments[id]; !exists || existing.Value != v {
		s.judgments[id] = Judgment{Value: v, JudgedAt: s.now()}
	}
	s.sticky = id
	s.clampCursor()
	return nil
}

// Judgment returns the recorded judgment for id, if any.
func (s *Session) Judgment(id string) (Judgment, bool) {
	j, ok := s.judgments[id]
	return j, ok
}

// Judged reports whether id carries a valid judgment.
func (s *Session) Judged(id string) bool {
	_, ok := s.judgments[id]
	return ok
}

// IDs returns the current item ids in input order.
func (s *Session) IDs() []string { return slices.Clone(s.ids) }

// Order returns the presentation order.
func (s *Session) Order() []string { return slices.Clone(s.order) }

// Payload returns the payload for id.
func (s *Session) Payload(id string) (Payload, bool) {
	p, ok := s.payloads[id]
	return p, ok
}

// Visible returns the currently visible subsequence of the order.
func (s *Session) Visible() []string {
	return VisibleIDs(s.order, s.Judged, s.hideCompleted, s.sticky)
}

// HideCompleted reports whether judged items are filtered out.
func (s *Session) HideCompleted() bool { return s.hideCompleted }

// SetHideCompleted toggles the filter. The sticky exception resets, so a
// previously judged-and-held item disappears on the next derivation.
func (s *Session) SetHideCompleted(hide bool) {
	s.hideCompleted = hide
	s.sticky = ""
	s.clampCursor()
}

// Current returns the item id under the cursor, if any item is visible.
func (s *Session) Current() (string, bool) {
	visible := s.Visible()
	if len(visible) == 0 {
		return "", false
	}
	s.clampCursor()
	return visible[s.cursor], true
}

// Advance moves the cursor to the next visible item; at the last item it is a
// no-op.
func (s *Session) Advance() {
	if s.cursor < len(s.Visible())-1 {
		s.cursor++
	}
}

// Retreat moves the cursor to the previous visible item; at the first item it
// is a no-op.
func (s *Session) Retreat() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Position returns the cursor index within the visible subsequence and the
// visible count.
func (s *Session) Position() (index, total int) {
	visible := s.Visible()
	s.clampCursor()
	return s.cursor, len(visible)
}

// FirstUnjudged returns the position in the order of the first item lacking a
// judgment, or len(order) if none remain.
func (s *Session) FirstUnjudged() int {
	for i, id := range s.order {
		if !s.Judged(id) {
			return i
		}
	}
	return len(s.order)
}

// SeekFirstUnjudged places the cursor on the first visible unjudged item, or
// clamps it when every visible item is judged.
func (s *Session) SeekFirstUnjudged() {
	for i, id := range s.Visible() {
		if !s.Judged(id) {
			s.cursor = i
			return
		}
	}
	s.clampCursor()
}

// Progress returns the judged and total item counts.
func (s *Session) Progress() (judged, total int) {
	for _, id := range s.ids {
		if s.Judged(id) {
			judged++
		}
	}
	return judged, len(s.ids)
}

// Export builds the export document from current state. Every current item
// appears in the order and payload maps; judgments for ids no longer in the
// session are omitted.
func (s *Session) Export() *Export {
	exp := &Export{
		Judgments: make(map[string]Value, len(s.judgments)),
		JudgedAt:  make(map[string]time.Time, len(s.judgments)),
		Order:     slices.Clone(s.order),
		Payloads:  make(map[string]Payload, len(s.payloads)),
		Meta: ExportMeta{
			SessionID:   s.id,
			GeneratedAt: s.now().UTC(),
			Count:       len(s.ids),
			ValidValues: s.allowed.Values(),
		},
	}
	for id, p := range s.payloads {
		exp.Payloads[id] = p
	}
	for id, j := range s.judgments {
		if !slices.Contains(s.ids, id) {
			continue
		}
		exp.Judgments[id] = j.Value
		exp.JudgedAt[id] = j.JudgedAt.UTC()
	}
	return exp
}

func (s *Session) clampCursor() {
	n := len(s.Visible())
	if n == 0 {
		s.cursor = 0
		return
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
