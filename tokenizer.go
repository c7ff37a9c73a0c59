package dictscan

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a half-open [Start, End) byte range in some buffer.
type Span struct {
	Start int
	End   int
}

// Token is a tokenizer-produced fragment with its span in the tokenized
// buffer's own coordinates.
type Token struct {
	Text string
	Span Span
}

// Tokenizer is the tokenization policy consumed by the finder. The same
// policy must be used for building the dictionary trie and for scanning.
type Tokenizer interface {
	// Tokens splits text into tokens with byte-exact spans.
	Tokens(text string) []Token

	// Strings returns just the token texts.
	Strings(text string) []string

	// Spans returns just the token spans.
	Spans(text string) []Span

	// Join reconstructs a canonical single-separator-joined string from a
	// token sequence.
	Join(tokens []Token) string
}

// Separator joins token texts in normalized scanning strings and in surface
// forms.
const Separator = " "

// SimpleTokenizer splits text into maximal runs of Unicode letters and
// digits. Everything else separates tokens.
type SimpleTokenizer struct{}

// NewSimpleTokenizer creates the default tokenization policy.
func NewSimpleTokenizer() *SimpleTokenizer {
	return &SimpleTokenizer{}
}

func (t *SimpleTokenizer) Tokens(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}
		tokens = append(tokens, Token{
			Text: text[start:i],
			Span: Span{Start: start, End: i},
		})
	}
	return tokens
}

func (t *SimpleTokenizer) Strings(text string) []string {
	tokens := t.Tokens(text)
	strs := make([]string, len(tokens))
	for i, token := range tokens {
		strs[i] = token.Text
	}
	return strs
}

func (t *SimpleTokenizer) Spans(text string) []Span {
	tokens := t.Tokens(text)
	spans := make([]Span, len(tokens))
	for i, token := range tokens {
		spans[i] = token.Span
	}
	return spans
}

func (t *SimpleTokenizer) Join(tokens []Token) string {
	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 {
			sb.WriteString(Separator)
		}
		sb.WriteString(token.Text)
	}
	return sb.String()
}

// Combining marks belong to the word they follow, so that decomposed input
// ("Café") tokenizes like its composed form.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
