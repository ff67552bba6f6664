package bubbletea

import "github.com/charmbracelet/bubbles/key"

// ChooseKeyMap defines the key bindings for the A/B chooser.
type ChooseKeyMap struct {
	// Judgment
	ChooseA key.Binding
	ChooseB key.Binding

	// Navigation
	NextPair    key.Binding
	PrevPair    key.Binding
	SwitchPanel key.Binding

	// Scrolling
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// General
	Quit key.Binding
}

// DefaultChooseKeyMap returns the default key bindings for the A/B chooser.
func DefaultChooseKeyMap() ChooseKeyMap {
	return ChooseKeyMap{
		ChooseA: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "choose A"),
		),
		ChooseB: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "choose B"),
		),
		NextPair: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next pair"),
		),
		PrevPair: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "previous pair"),
		),
		SwitchPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch panel"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
