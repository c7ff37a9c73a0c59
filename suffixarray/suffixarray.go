// Package suffixarray provides phrase-prefix search over a small document
// collection. The prefix of a suffix is an infix: querying "to the be"
// returns documents containing phrases like "to the bearnaise" or "to the
// best". The query must start on a token boundary in the document, but need
// not end on one.
//
// Documents and queries are normalized through the same dictscan policies,
// so the package composes with whatever normalizer/tokenizer a dictionary
// was built with.
package suffixarray

import (
	"sort"
	"strings"

	"github.com/npillmayer/dictscan"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictscan.suffixarray'
func tracer() tracing.Trace {
	return tracing.Select("dictscan.suffixarray")
}

// Document is one searchable item of the collection.
type Document struct {
	ID     int
	Fields map[string]string
}

// Result is one ranked hit. Score is the number of times the query substring
// occurs in the document's searchable content.
type Result struct {
	Score    int
	Document Document
}

type haystackEntry struct {
	doc     int // index into documents
	content string
}

type suffix struct {
	entry  int // index into haystack
	offset int // byte offset of a token start in the entry's content
}

// SuffixArray indexes the named fields of a document collection for
// phrase-prefix lookups. Construction normalizes all field content and sorts
// one suffix per token start; lookups are then binary searches.
//
// A built SuffixArray is read-only and safe for concurrent searches.
type SuffixArray struct {
	normalizer dictscan.Normalizer
	tokenizer  dictscan.Tokenizer
	documents  []Document
	haystack   []haystackEntry
	suffixes   []suffix
}

// New builds a suffix array over the given fields of the document
// collection. The same normalizer and tokenizer are applied to queries
// later, so both sides stay identically processed.
func New(documents []Document, fields []string, normalizer dictscan.Normalizer, tokenizer dictscan.Tokenizer) *SuffixArray {
	sa := &SuffixArray{
		normalizer: normalizer,
		tokenizer:  tokenizer,
		documents:  documents,
	}
	sa.build(fields)
	return sa
}

func (sa *SuffixArray) build(fields []string) {
	for d, document := range sa.documents {
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			normalized := dictscan.NormalizeBuffer(document.Fields[field], sa.normalizer, sa.tokenizer)
			if normalized != "" {
				parts = append(parts, normalized)
			}
		}
		content := strings.Join(parts, dictscan.Separator)
		sa.haystack = append(sa.haystack, haystackEntry{doc: d, content: content})
		entry := len(sa.haystack) - 1
		for _, span := range sa.tokenizer.Spans(content) {
			sa.suffixes = append(sa.suffixes, suffix{entry: entry, offset: span.Start})
		}
	}
	sort.Slice(sa.suffixes, func(i, j int) bool {
		return sa.suffixString(i) < sa.suffixString(j)
	})
	tracer().Infof("suffix array over %d documents: %d suffixes", len(sa.documents), len(sa.suffixes))
}

func (sa *SuffixArray) suffixString(i int) string {
	s := sa.suffixes[i]
	return sa.haystack[s.entry].content[s.offset:]
}

// Evaluate does a phrase-prefix search for query and returns at most
// hitCount documents, best first. Documents are ranked by how many times the
// query substring occurs in their content; ties are resolved by document
// order. A non-positive hitCount yields no results.
func (sa *SuffixArray) Evaluate(query string, hitCount int) []Result {
	if hitCount <= 0 {
		return nil
	}
	needle := dictscan.NormalizeBuffer(query, sa.normalizer, sa.tokenizer)
	if needle == "" || len(sa.suffixes) == 0 {
		return nil
	}
	// Lower bound of the run of suffixes that start with the needle.
	first := sort.Search(len(sa.suffixes), func(i int) bool {
		return sa.suffixString(i) >= needle
	})
	counts := make(map[int]int) // haystack entry -> occurrence count
	for i := first; i < len(sa.suffixes); i++ {
		if !strings.HasPrefix(sa.suffixString(i), needle) {
			break
		}
		counts[sa.suffixes[i].entry]++
	}
	if len(counts) == 0 {
		return nil
	}
	results := make([]Result, 0, len(counts))
	for entry, count := range counts {
		results = append(results, Result{
			Score:    count,
			Document: sa.documents[sa.haystack[entry].doc],
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Document.ID < results[j].Document.ID
	})
	if len(results) > hitCount {
		results = results[:hitCount]
	}
	return results
}
