package dictscan

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer is the text-normalization policy consumed by the finder. The
// same policy must be used for building the dictionary trie and for scanning
// buffers; this is a caller-enforced invariant (LoadEntryReader enforces it
// structurally).
type Normalizer interface {
	// Canonicalize applies the buffer-level transform, e.g. Unicode
	// composition. It is applied to whole buffers before tokenization.
	Canonicalize(buffer string) string

	// Normalize applies the per-token transform, e.g. case folding. The
	// result may be shorter or longer than the input.
	Normalize(token string) string
}

// SimpleNormalizer canonicalizes to NFC and lowercases tokens. Accented
// characters are preserved.
type SimpleNormalizer struct{}

// NewSimpleNormalizer creates the default normalization policy.
func NewSimpleNormalizer() *SimpleNormalizer {
	return &SimpleNormalizer{}
}

func (n *SimpleNormalizer) Canonicalize(buffer string) string {
	return norm.NFC.String(buffer)
}

func (n *SimpleNormalizer) Normalize(token string) string {
	return strings.ToLower(token)
}

// foldMarks decomposes, removes combining marks, and recomposes, collapsing
// multi-codepoint accented characters to their base letters ("Café" => "Cafe").
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldingNormalizer canonicalizes to NFC and normalizes tokens by
// lowercasing and stripping diacritics. Token lengths are not preserved.
type FoldingNormalizer struct{}

// NewFoldingNormalizer creates a diacritic-folding normalization policy.
func NewFoldingNormalizer() *FoldingNormalizer {
	return &FoldingNormalizer{}
}

func (n *FoldingNormalizer) Canonicalize(buffer string) string {
	return norm.NFC.String(buffer)
}

func (n *FoldingNormalizer) Normalize(token string) string {
	folded, _, err := transform.String(foldMarks, strings.ToLower(token))
	if err != nil {
		return strings.ToLower(token) // ill-formed input is passed through
	}
	return folded
}
