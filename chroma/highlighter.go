// Package chroma provides fenced-code syntax highlighting using the chroma
// library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/deflist"
)

// Compile-time interface verification.
var _ deflist.Tokenizer = (*Highlighter)(nil)

// StyleFunc maps chroma token types to deflist styles.
type StyleFunc func(chromalib.TokenType) deflist.Style

// Highlighter extracts per-line syntax tokens using chroma. The language is
// the fence info string of the code block being highlighted.
type Highlighter struct {
	styleFunc StyleFunc
}

// NewHighlighter creates a Highlighter with the given style function.
// A nil styleFunc leaves every token unstyled.
func NewHighlighter(styleFunc StyleFunc) *Highlighter {
	if styleFunc == nil {
		styleFunc = func(chromalib.TokenType) deflist.Style { return deflist.Style{} }
	}
	return &Highlighter{styleFunc: styleFunc}
}

// TokenizeLines tokenizes source with full context, then splits the tokens
// at line boundaries so multi-line constructs keep their styling. Returns
// nil when the language is unknown; an empty slice for empty source.
func (h *Highlighter) TokenizeLines(language, source string) [][]deflist.Token {
	if source == "" {
		return [][]deflist.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var all []deflist.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		all = append(all, deflist.Token{
			Text:  token.Value,
			Style: h.styleFunc(token.Type),
		})
	}
	return splitTokensByLine(all)
}

// splitTokensByLine splits a flat token list into per-line slices, cutting
// tokens that span newlines at the boundary.
func splitTokensByLine(tokens []deflist.Token) [][]deflist.Token {
	if len(tokens) == 0 {
		return [][]deflist.Token{}
	}

	var result [][]deflist.Token
	var current []deflist.Token
	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			current = append(current, tok)
			continue
		}
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				current = append(current, deflist.Token{Text: part, Style: tok.Style})
			}
			if i < len(parts)-1 {
				result = append(result, current)
				current = nil
			}
		}
	}
	if len(current) > 0 {
		result = append(result, current)
	}
	return result
}

// DefaultStyle maps broad chroma token categories to a small set of colors
// suitable for the editor preview.
func DefaultStyle(t chromalib.TokenType) deflist.Style {
	switch t.Category() {
	case chromalib.Keyword:
		return deflist.Style{Foreground: "#cba6f7", Bold: true}
	case chromalib.Name:
		return deflist.Style{Foreground: "#89b4fa"}
	case chromalib.Literal:
		return deflist.Style{Foreground: "#a6e3a1"}
	case chromalib.Comment:
		return deflist.Style{Foreground: "#6c7086"}
	case chromalib.Operator, chromalib.Punctuation:
		return deflist.Style{Foreground: "#94e2d5"}
	default:
		return deflist.Style{}
	}
}
