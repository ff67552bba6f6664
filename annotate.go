// Package annotate provides domain types for single-operator annotation
// sessions: presenting a set of items (or A/B pairs) one at a time, recording
// judgments, and round-tripping the accumulated progress through export
// documents.
package annotate

// ItemLoader loads an item source (JSON array, object, or prior export) as
// decoded JSON.
type ItemLoader interface {
	Load(path string) (any, error)
}

// ExportStore persists and retrieves export documents.
type ExportStore interface {
	Load(path string) (*Export, error)
	Save(path string, exp *Export) error
}

// ChoiceStore persists and retrieves A/B choices as flat progress files.
type ChoiceStore interface {
	Load(path string) ([]Choice, error)
	Save(path string, pairs []Pair, choices map[int]Choice) error
}

// PromptLoader loads the (model, index) -> summary lookup table.
type PromptLoader interface {
	Load(path string) (PromptTable, error)
}

// ComparisonsLoader loads A/B pairs from a comparisons source.
type ComparisonsLoader interface {
	Load(path string) ([]Pair, error)
}

// Token is a fragment of display text with an associated style.
type Token struct {
	Text  string
	Style Style
}

// Style describes how a token should be rendered.
type Style struct {
	Foreground string // Hex color, empty for terminal default
	Bold       bool
}

// Tokenizer splits a payload document into styled tokens for display.
type Tokenizer interface {
	Tokenize(source string) []Token
}

// ColorPair holds foreground/background colors for a UI element.
type ColorPair struct {
	Foreground string
	Background string
}

// Styles defines the colors used by the terminal UI.
type Styles struct {
	Title   ColorPair // Panel and item headers
	Accent  ColorPair // Active markers, keybinding hints
	Success ColorPair // Judged indicators
	Error   ColorPair // Missing-reference banners
	Muted   ColorPair // Status bar, unjudged indicators
}

// Palette defines the semantic colors used for payload highlighting.
type Palette struct {
	// Base colors
	Background string
	Foreground string

	// Document highlighting colors
	Key         string
	Keyword     string
	String      string
	Number      string
	Comment     string
	Punctuation string

	// UI colors
	Accent  string
	Error   string
	Success string
	Muted   string
}

// Theme provides styles and a palette as a matched set.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
