package wordlists

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/dictscan"
)

func TestEntryReaderFormat(t *testing.T) {
	src := `# gazetteer sample
New York	GPE

Oslo	GPE
coffee
`
	r := NewEntryReader(strings.NewReader(src))
	type entry struct {
		term string
		meta any
	}
	var got []entry
	for {
		term, meta, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, entry{term, meta})
	}
	want := []entry{
		{"New York", "GPE"},
		{"Oslo", "GPE"},
		{"coffee", nil},
	}
	if len(got) != len(want) {
		t.Fatalf("entry count mismatch: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadEntries(t *testing.T) {
	src := "New York\tGPE\nOslo\tGPE\ncoffee\n"
	dict, err := LoadEntries("cities", strings.NewReader(src),
		dictscan.NewSimpleNormalizer(), dictscan.NewSimpleTokenizer())
	if err != nil {
		t.Fatal(err)
	}
	var matches []dictscan.Match
	for m := range dict.Scan("Coffee in New York or Oslo") {
		matches = append(matches, m)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %+v", matches)
	}
	if matches[0].Match != "coffee" || matches[0].Meta != nil {
		t.Fatalf("unexpected first match: %+v", matches[0])
	}
	if matches[1].Match != "new york" || matches[1].Meta != "GPE" {
		t.Fatalf("unexpected second match: %+v", matches[1])
	}
	if matches[2].Match != "oslo" || matches[2].Meta != "GPE" {
		t.Fatalf("unexpected third match: %+v", matches[2])
	}
}
