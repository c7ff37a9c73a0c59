package suffixarray

import (
	"testing"

	"github.com/npillmayer/dictscan"
)

func testDocuments() []Document {
	return []Document{
		{ID: 1, Fields: map[string]string{
			"title": "To the Lighthouse",
			"body":  "to the beach, to the best of times",
		}},
		{ID: 2, Fields: map[string]string{
			"title": "Best of the Beach",
			"body":  "to the bearnaise",
		}},
		{ID: 3, Fields: map[string]string{
			"title": "Unrelated",
			"body":  "nothing here",
		}},
	}
}

func newTestArray(fields ...string) *SuffixArray {
	return New(testDocuments(), fields,
		dictscan.NewSimpleNormalizer(), dictscan.NewSimpleTokenizer())
}

func TestPhrasePrefixSearch(t *testing.T) {
	sa := newTestArray("title", "body")
	results := sa.Evaluate("to the be", 10)
	if len(results) != 2 {
		t.Fatalf("expected 2 documents, got %+v", results)
	}
	// document 1 contains "to the beach" and "to the best": score 2
	if results[0].Document.ID != 1 || results[0].Score != 2 {
		t.Fatalf("unexpected best hit: %+v", results[0])
	}
	if results[1].Document.ID != 2 || results[1].Score != 1 {
		t.Fatalf("unexpected second hit: %+v", results[1])
	}
}

func TestQueryStartsOnTokenBoundary(t *testing.T) {
	sa := newTestArray("body")
	// "he beach" occurs mid-token only; suffixes start on token boundaries
	if results := sa.Evaluate("he beach", 10); len(results) != 0 {
		t.Fatalf("mid-token phrase must not match, got %+v", results)
	}
	// but the phrase may end mid-token
	if results := sa.Evaluate("the bea", 10); len(results) != 2 {
		t.Fatalf("expected both beach/bearnaise documents, got %+v", results)
	}
}

func TestQueryIsNormalized(t *testing.T) {
	sa := newTestArray("title")
	results := sa.Evaluate("  To THE  lighthouse ", 10)
	if len(results) != 1 || results[0].Document.ID != 1 {
		t.Fatalf("normalized query should match, got %+v", results)
	}
}

func TestHitCountCutoff(t *testing.T) {
	sa := newTestArray("title", "body")
	if results := sa.Evaluate("the", 1); len(results) != 1 {
		t.Fatalf("expected cutoff to 1 result, got %+v", results)
	}
	if results := sa.Evaluate("the", 0); results != nil {
		t.Fatalf("non-positive hit count should yield nothing, got %+v", results)
	}
}

func TestNoMatches(t *testing.T) {
	sa := newTestArray("title", "body")
	if results := sa.Evaluate("zebra crossing", 10); len(results) != 0 {
		t.Fatalf("expected no results, got %+v", results)
	}
	if results := sa.Evaluate("", 10); len(results) != 0 {
		t.Fatalf("empty query should yield nothing, got %+v", results)
	}
}
