package chroma_test

import (
	"strings"
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/annotate"
	"github.com/fwojciec/annotate/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() annotate.Palette {
	return annotate.Palette{
		Key:         "#0000ff",
		Keyword:     "#ff00ff",
		String:      "#00ff00",
		Number:      "#ff8800",
		Comment:     "#888888",
		Punctuation: "#aaaaaa",
	}
}

func TestNewTokenizer_RequiresStyleFunc(t *testing.T) {
	t.Parallel()

	_, err := chroma.NewTokenizer(nil)
	assert.Error(t, err)
}

func TestTokenizer_EmptySource(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette()))
	require.NoError(t, err)

	tokens := tokenizer.Tokenize("")
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette()))
	require.NoError(t, err)

	source := `{"id": "x", "count": 3, "done": true}`
	tokens := tokenizer.Tokenize(source)
	require.NotEmpty(t, tokens)

	// Concatenated token text reproduces the source exactly.
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	assert.Equal(t, source, b.String())

	// At least one token picked up a palette color.
	styled := false
	for _, tok := range tokens {
		if tok.Style.Foreground != "" {
			styled = true
			break
		}
	}
	assert.True(t, styled)
}

func TestStyleFromPalette(t *testing.T) {
	t.Parallel()

	styleFunc := chroma.StyleFromPalette(testPalette())

	tests := []struct {
		name string
		tt   chromalib.TokenType
		want annotate.Style
	}{
		{name: "object key", tt: chromalib.NameTag, want: annotate.Style{Foreground: "#0000ff"}},
		{name: "keyword constant", tt: chromalib.KeywordConstant, want: annotate.Style{Foreground: "#ff00ff", Bold: true}},
		{name: "string", tt: chromalib.StringDouble, want: annotate.Style{Foreground: "#00ff00"}},
		{name: "number", tt: chromalib.NumberInteger, want: annotate.Style{Foreground: "#ff8800"}},
		{name: "punctuation", tt: chromalib.Punctuation, want: annotate.Style{Foreground: "#aaaaaa"}},
		{name: "unmapped type", tt: chromalib.Generic, want: annotate.Style{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, styleFunc(tt.tt))
		})
	}
}
