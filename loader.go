package dictscan

import (
	"fmt"
	"io"
	"iter"
)

// Entry is a format-agnostic dictionary entry representation.
//
// Term is the entry as written in the source dictionary; it gets normalized
// on load. Meta is an arbitrary payload carried along into match records.
type Entry struct {
	Term string
	Meta any
}

// EntryReader yields dictionary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (term string, meta any, err error)
}

// Dictionary is a loaded, frozen dictionary ready for scanning.
//
// A dictionary owns:
//   - the compiled trie over the normalized entries
//   - the finder (output + failure functions) built on top of it.
type Dictionary struct {
	trie       *RuneTrie
	finder     *Finder
	Identifier string // Identifies the dictionary
}

// LoadEntryReader compiles dictionary entries from a streaming,
// format-agnostic source.
//
// Entries are passed through the same canonicalize/tokenize/normalize/join
// pipeline that scanning applies to buffers, so trie contents and scanning
// input are normalized consistently by construction. Entries that normalize
// to the empty string are skipped.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package wordlists to parse concrete formats and feed this
// API.
func LoadEntryReader(name string, reader EntryReader, normalizer Normalizer, tokenizer Tokenizer) (*Dictionary, error) {
	trie := NewRuneTrie()
	dict := &Dictionary{
		trie:       trie,
		Identifier: fmt.Sprintf("dictionary: %s", name),
	}
	count := 0
	for {
		term, meta, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		key := NormalizeBuffer(term, normalizer, tokenizer)
		if key == "" {
			continue // simply skip entries without token content
		}
		if err := trie.Add(key, meta); err != nil {
			return nil, err
		}
		count++
	}
	trie.Freeze()
	dict.finder = NewFinder(trie, normalizer, tokenizer)
	tracer().Infof("loaded %s: %d entries", dict.Identifier, count)
	return dict, nil
}

// LoadEntries compiles an in-memory entry list into a dictionary.
func LoadEntries(name string, entries []Entry, normalizer Normalizer, tokenizer Tokenizer) (*Dictionary, error) {
	return LoadEntryReader(name, &sliceEntryReader{entries: entries}, normalizer, tokenizer)
}

type sliceEntryReader struct {
	entries []Entry
	index   int
}

func (r *sliceEntryReader) Next() (string, any, error) {
	if r.index >= len(r.entries) {
		return "", nil, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.Term, entry.Meta, nil
}

// NormalizeBuffer projects arbitrary text the way Scan projects buffer
// content: canonicalize, tokenize, normalize each token, join. Queries,
// documents, and dictionary terms must be identically processed for lookups
// to succeed.
func NormalizeBuffer(text string, normalizer Normalizer, tokenizer Tokenizer) string {
	tokens := tokenizer.Tokens(normalizer.Canonicalize(text))
	normalized := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		normalized = append(normalized, Token{Text: normalizer.Normalize(token.Text), Span: token.Span})
	}
	return tokenizer.Join(normalized)
}

// Scan finds all dictionary entries in buffer. See Finder.Scan.
func (dict *Dictionary) Scan(buffer string) iter.Seq[Match] {
	return dict.finder.Scan(buffer)
}

// TrieStats reports density metrics for the underlying compiled trie.
func (dict *Dictionary) TrieStats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if dict == nil || dict.trie == nil {
		return "", 0, 0, 0, 0
	}
	stats := dict.trie.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}
