package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/annotate"
)

// StyleFromPalette returns a function that maps chroma token types to
// annotate styles based on the provided palette colors.
func StyleFromPalette(p annotate.Palette) StyleFunc {
	return func(tt chromalib.TokenType) annotate.Style {
		switch tt {
		// Object keys
		case chromalib.NameTag, chromalib.NameProperty:
			return annotate.Style{Foreground: p.Key}

		// Literal keywords (true, false, null)
		case chromalib.Keyword, chromalib.KeywordConstant:
			return annotate.Style{Foreground: p.Keyword, Bold: true}

		// Strings
		case chromalib.String, chromalib.StringDouble, chromalib.StringSingle,
			chromalib.StringEscape:
			return annotate.Style{Foreground: p.String}

		// Numbers
		case chromalib.Number, chromalib.NumberFloat, chromalib.NumberInteger:
			return annotate.Style{Foreground: p.Number}

		// Comments (JSONC inputs pass through the same lexer family)
		case chromalib.Comment, chromalib.CommentSingle, chromalib.CommentMultiline:
			return annotate.Style{Foreground: p.Comment}

		// Punctuation
		case chromalib.Punctuation:
			return annotate.Style{Foreground: p.Punctuation}

		default:
			return annotate.Style{}
		}
	}
}
