package lipgloss_test

import (
	"testing"

	"github.com/fwojciec/annotate/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := lipgloss.DefaultTheme()

	assert.Equal(t, lipgloss.DarkTheme().Styles(), theme.Styles())
	assert.Equal(t, lipgloss.DarkTheme().Palette(), theme.Palette())
}

func TestThemes_PaletteComplete(t *testing.T) {
	t.Parallel()

	themes := map[string]*lipgloss.Theme{
		"dark":  lipgloss.DarkTheme(),
		"light": lipgloss.LightTheme(),
	}

	for name, theme := range themes {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := theme.Palette()
			assert.NotEmpty(t, p.Background)
			assert.NotEmpty(t, p.Foreground)
			assert.NotEmpty(t, p.Key)
			assert.NotEmpty(t, p.Keyword)
			assert.NotEmpty(t, p.String)
			assert.NotEmpty(t, p.Number)
			assert.NotEmpty(t, p.Comment)
			assert.NotEmpty(t, p.Punctuation)
			assert.NotEmpty(t, p.Muted)

			s := theme.Styles()
			assert.NotEmpty(t, s.Title.Foreground)
			assert.NotEmpty(t, s.Error.Foreground)
			assert.NotEmpty(t, s.Muted.Foreground)
		})
	}
}

func TestThemes_Distinct(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, lipgloss.DarkTheme().Palette(), lipgloss.LightTheme().Palette())
}
