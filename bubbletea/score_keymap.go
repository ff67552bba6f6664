package bubbletea

import "github.com/charmbracelet/bubbles/key"

// ScoreKeyMap defines the key bindings for the scoring session.
type ScoreKeyMap struct {
	// Navigation
	NextItem      key.Binding
	PrevItem      key.Binding
	FirstUnjudged key.Binding

	// Scrolling
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Judgment
	ScoreZero key.Binding
	ScoreHalf key.Binding
	ScoreOne  key.Binding

	// Filtering
	ToggleHide key.Binding

	// General
	Quit key.Binding
}

// DefaultScoreKeyMap returns the default key bindings for the scoring
// session.
func DefaultScoreKeyMap() ScoreKeyMap {
	return ScoreKeyMap{
		NextItem: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next item"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "previous item"),
		),
		FirstUnjudged: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "first unscored"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		ScoreZero: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "score 0"),
		),
		ScoreHalf: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "score 0.5"),
		),
		ScoreOne: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "score 1"),
		),
		ToggleHide: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle hide scored"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
