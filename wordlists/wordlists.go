// Package wordlists parses plain-text dictionary files and feeds them into
// dictscan's streaming loader API.
//
// The accepted format is one entry per line. An optional payload string may
// follow the entry, separated by a TAB:
//
//	New York	GPE
//	Oslo	GPE
//	coffee
//
// Blank lines and lines starting with '#' are skipped.
package wordlists

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/dictscan"
)

// EntryReader streams dictionary entries from a word-list source.
type EntryReader struct {
	scanner *bufio.Scanner
}

// NewEntryReader wraps a word-list source in a streaming entry reader.
func NewEntryReader(reader io.Reader) *EntryReader {
	return &EntryReader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next entry as (term, meta). meta is nil for lines without
// a payload column. It returns io.EOF when exhausted.
func (r *EntryReader) Next() (string, any, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		term, payload, found := strings.Cut(line, "\t")
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if !found {
			return term, nil, nil
		}
		return term, strings.TrimSpace(payload), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	return "", nil, io.EOF
}

// LoadEntries parses word-list data and returns a ready-to-scan dictionary.
func LoadEntries(name string, reader io.Reader, normalizer dictscan.Normalizer, tokenizer dictscan.Tokenizer) (*dictscan.Dictionary, error) {
	r := NewEntryReader(reader)
	return dictscan.LoadEntryReader(name, r, normalizer, tokenizer)
}
