// Package mock provides test doubles for annotate interfaces.
package mock

import "github.com/fwojciec/annotate"

// Compile-time interface verification.
var (
	_ annotate.ItemLoader        = (*ItemLoader)(nil)
	_ annotate.ExportStore       = (*ExportStore)(nil)
	_ annotate.ChoiceStore       = (*ChoiceStore)(nil)
	_ annotate.PromptLoader      = (*PromptLoader)(nil)
	_ annotate.ComparisonsLoader = (*ComparisonsLoader)(nil)
	_ annotate.Tokenizer         = (*Tokenizer)(nil)
)

// ItemLoader is a mock implementation of annotate.ItemLoader.
type ItemLoader struct {
	LoadFn func(path string) (any, error)
}

func (l *ItemLoader) Load(path string) (any, error) {
	return l.LoadFn(path)
}

// ExportStore is a mock implementation of annotate.ExportStore.
type ExportStore struct {
	LoadFn func(path string) (*annotate.Export, error)
	SaveFn func(path string, exp *annotate.Export) error
}

func (s *ExportStore) Load(path string) (*annotate.Export, error) {
	return s.LoadFn(path)
}

func (s *ExportStore) Save(path string, exp *annotate.Export) error {
	return s.SaveFn(path, exp)
}

// ChoiceStore is a mock implementation of annotate.ChoiceStore.
type ChoiceStore struct {
	LoadFn func(path string) ([]annotate.Choice, error)
	SaveFn func(path string, pairs []annotate.Pair, choices map[int]annotate.Choice) error
}

func (s *ChoiceStore) Load(path string) ([]annotate.Choice, error) {
	return s.LoadFn(path)
}

func (s *ChoiceStore) Save(path string, pairs []annotate.Pair, choices map[int]annotate.Choice) error {
	return s.SaveFn(path, pairs, choices)
}

// PromptLoader is a mock implementation of annotate.PromptLoader.
type PromptLoader struct {
	LoadFn func(path string) (annotate.PromptTable, error)
}

func (l *PromptLoader) Load(path string) (annotate.PromptTable, error) {
	return l.LoadFn(path)
}

// ComparisonsLoader is a mock implementation of annotate.ComparisonsLoader.
type ComparisonsLoader struct {
	LoadFn func(path string) ([]annotate.Pair, error)
}

func (l *ComparisonsLoader) Load(path string) ([]annotate.Pair, error) {
	return l.LoadFn(path)
}

// Tokenizer is a mock implementation of annotate.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(source string) []annotate.Token
}

func (t *Tokenizer) Tokenize(source string) []annotate.Token {
	return t.TokenizeFn(source)
}
