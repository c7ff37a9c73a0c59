package dictscan

import (
	"reflect"
	"testing"
)

func TestSimpleTokenizerSpans(t *testing.T) {
	tok := NewSimpleTokenizer()
	text := "Hello, wörld 42!"
	want := []Token{
		{Text: "Hello", Span: Span{0, 5}},
		{Text: "wörld", Span: Span{7, 13}}, // ö is two bytes
		{Text: "42", Span: Span{14, 16}},
	}
	if got := tok.Tokens(text); !reflect.DeepEqual(got, want) {
		t.Fatalf("token mismatch:\ngot  %+v\nwant %+v", got, want)
	}
	if got := tok.Strings(text); !reflect.DeepEqual(got, []string{"Hello", "wörld", "42"}) {
		t.Fatalf("strings mismatch: %v", got)
	}
	if got := tok.Spans(text); !reflect.DeepEqual(got, []Span{{0, 5}, {7, 13}, {14, 16}}) {
		t.Fatalf("spans mismatch: %v", got)
	}
}

func TestSimpleTokenizerKeepsCombiningMarks(t *testing.T) {
	tok := NewSimpleTokenizer()
	got := tok.Strings("Café time")
	if !reflect.DeepEqual(got, []string{"Café", "time"}) {
		t.Fatalf("combining mark split off its word: %q", got)
	}
}

func TestSimpleTokenizerJoin(t *testing.T) {
	tok := NewSimpleTokenizer()
	if got := tok.Join(tok.Tokens(" the \t cat  ")); got != "the cat" {
		t.Fatalf("join mismatch: %q", got)
	}
	if got := tok.Join(nil); got != "" {
		t.Fatalf("joining nothing should be empty, got %q", got)
	}
}

func TestSimpleNormalizer(t *testing.T) {
	n := NewSimpleNormalizer()
	if got := n.Canonicalize("Café"); got != "Café" {
		t.Fatalf("canonicalize should compose: %q", got)
	}
	if got := n.Normalize("CAFÉ"); got != "café" {
		t.Fatalf("normalize should lowercase only: %q", got)
	}
}

func TestFoldingNormalizer(t *testing.T) {
	n := NewFoldingNormalizer()
	if got := n.Normalize("Café"); got != "cafe" {
		t.Fatalf("normalize should fold diacritics: %q", got)
	}
	if got := n.Normalize("Über-Maß"); got != "uber-maß" {
		t.Fatalf("folding should keep non-mark letters: %q", got)
	}
}
