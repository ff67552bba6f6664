// Package chroma provides payload highlighting using the chroma library.
package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/annotate"
)

// Compile-time interface verification.
var _ annotate.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to annotate styles.
type StyleFunc func(chromalib.TokenType) annotate.Style

// Tokenizer highlights payload documents (the indented-JSON rendering of
// mapping and sequence payloads) using chroma's JSON lexer.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style
// function. Use StyleFromPalette to create one from an annotate.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits source into styled tokens. Returns nil when lexing fails
// (the caller falls back to plain text) and an empty slice for empty source.
func (t *Tokenizer) Tokenize(source string) []annotate.Token {
	if source == "" {
		return []annotate.Token{}
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []annotate.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, annotate.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}
	return tokens
}
