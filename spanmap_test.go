package dictscan

import (
	"testing"
)

func TestProjectionScanningString(t *testing.T) {
	proj := project("THE \t Cat naps", NewSimpleNormalizer(), NewSimpleTokenizer())
	if got := string(proj.scanning); got != "the cat naps" {
		t.Fatalf("scanning string mismatch: %q", got)
	}
}

func TestProjectionBoundaries(t *testing.T) {
	// "Café" normalizes to "cafe": 5 runes in the buffer map to 4 in
	// the scanning string, so translation must go through the table.
	buffer := "Visit the Café today"
	proj := project(buffer, NewFoldingNormalizer(), NewSimpleTokenizer())
	if got := string(proj.scanning); got != "visit the cafe today" {
		t.Fatalf("scanning string mismatch: %q", got)
	}
	cases := []struct {
		startNorm int
		endNorm   int
		want      Span
	}{
		{0, 5, Span{0, 5}},    // visit
		{6, 9, Span{6, 9}},    // the
		{10, 14, Span{10, 16}}, // café token is 6 bytes in the buffer
		{15, 20, Span{17, 22}}, // today
		{0, 9, Span{0, 9}},    // visit the
	}
	for _, c := range cases {
		span, ok := proj.spanFor(c.startNorm, c.endNorm)
		if !ok {
			t.Fatalf("expected boundaries for [%d,%d)", c.startNorm, c.endNorm)
		}
		if span != c.want {
			t.Fatalf("span for [%d,%d): got %+v, want %+v", c.startNorm, c.endNorm, span, c.want)
		}
	}
}

func TestProjectionRejectsMidTokenEdges(t *testing.T) {
	proj := project("category", NewSimpleNormalizer(), NewSimpleTokenizer())
	if _, ok := proj.spanFor(0, 3); ok {
		t.Fatalf("offset 3 is inside the token and must not be a boundary")
	}
	if _, ok := proj.spanFor(3, 8); ok {
		t.Fatalf("offset 3 is inside the token and must not be a boundary")
	}
	if span, ok := proj.spanFor(0, 8); !ok || span != (Span{0, 8}) {
		t.Fatalf("whole-token span should resolve, got %+v ok=%v", span, ok)
	}
}

func TestProjectionEmptyBuffer(t *testing.T) {
	proj := project("", NewSimpleNormalizer(), NewSimpleTokenizer())
	if len(proj.scanning) != 0 || len(proj.bounds) != 0 {
		t.Fatalf("empty buffer should project to nothing: %+v", proj)
	}
}
