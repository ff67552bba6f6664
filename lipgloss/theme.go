// Package lipgloss provides theme implementations using the Lipgloss styling
// library.
package lipgloss

import "github.com/fwojciec/annotate"

// Compile-time interface verification.
var _ annotate.Theme = (*Theme)(nil)

// Theme implements annotate.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  annotate.Styles
	palette annotate.Palette
}

// Styles returns the UI color styles for this theme.
func (t *Theme) Styles() annotate.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() annotate.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: annotate.Styles{
			Title: annotate.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
			Accent: annotate.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Success: annotate.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Error: annotate.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001", // Very dark red so banner text stays readable
			},
			Muted: annotate.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
		},
		palette: annotate.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			// Document highlighting colors
			Key:         "#89b4fa",
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Punctuation: "#9399b2",

			// UI colors
			Accent:  "#89b4fa",
			Error:   "#f38ba8",
			Success: "#a6e3a1",
			Muted:   "#6c7086",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: annotate.Styles{
			Title: annotate.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
			Accent: annotate.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			Success: annotate.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Error: annotate.ColorPair{
				Foreground: "#d20f39", // Red
				Background: "#f4d4d4", // Subtle red background
			},
			Muted: annotate.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
		},
		palette: annotate.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			// Document highlighting colors
			Key:         "#1e66f5",
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Punctuation: "#6c6f85",

			// UI colors
			Accent:  "#1e66f5",
			Error:   "#d20f39",
			Success: "#40a02b",
			Muted:   "#9ca0b0",
		},
	}
}
