package mock

import "github.com/fwojciec/deflist"

// Compile-time interface verification.
var _ deflist.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of deflist.Tokenizer.
type Tokenizer struct {
	TokenizeLinesFn func(language, source string) [][]deflist.Token
}

func (t *Tokenizer) TokenizeLines(language, source string) [][]deflist.Token {
	return t.TokenizeLinesFn(language, source)
}
