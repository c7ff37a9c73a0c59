package dictscan

import (
	"iter"
)

// Match is one located dictionary entry.
//
// Match is the matching dictionary entry (in normalized form). Surface is a
// canonicalized, space-normalized reconstruction of the buffer content that
// triggered the match; depending on the normalizer, Match and Surface may or
// may not differ. Clients that need the exact, un-normalized surface form
// can reconstruct it from Span. Span holds half-open [Start, End) byte
// offsets into the original buffer.
type Match struct {
	Match   string
	Surface string
	Meta    any
	Span    Span
}

type outputEntry struct {
	text  string
	width int // rune count
}

// Finder locates dictionary entries in text buffers.
//
// A Finder is built once over a frozen trie: a breadth-first pass records
// which entry ends at which trie state (the output function), and a second
// breadth-first pass computes, per state, where to resume matching on a
// mismatch (the failure function), merging the fail target's outputs into
// each state on the way. Both tables remain valid as long as the trie is not
// mutated, and a Finder may then serve any number of concurrent Scans.
//
// The normalizer and tokenizer must be the same policies that were used when
// the dictionary entries were added to the trie.
type Finder struct {
	trie       Trie
	normalizer Normalizer
	tokenizer  Tokenizer
	output     map[Node][]outputEntry
	failure    map[Node]Node
}

// NewFinder computes the output and failure functions over trie and returns
// a ready-to-scan Finder.
func NewFinder(trie Trie, normalizer Normalizer, tokenizer Tokenizer) *Finder {
	assert(trie != nil, "finder needs a trie")
	assert(normalizer != nil, "finder needs a normalizer")
	assert(tokenizer != nil, "finder needs a tokenizer")
	f := &Finder{
		trie:       trie,
		normalizer: normalizer,
		tokenizer:  tokenizer,
		output:     make(map[Node][]outputEntry),
		failure:    make(map[Node]Node),
	}
	f.buildOutput()
	f.buildFailure()
	tracer().Debugf("finder ready: %d states carry output", len(f.output))
	return f
}

// buildOutput walks the trie breadth-first, accumulating the symbol sequence
// leading to each state. Terminal states record the joined sequence as the
// literal dictionary entry recognized there.
func (f *Finder) buildOutput() {
	type item struct {
		node   Node
		prefix []rune
	}
	queue := []item{{node: f.trie.Root()}}
	for q := 0; q < len(queue); q++ {
		node, prefix := queue[q].node, queue[q].prefix
		if f.trie.IsFinal(node) {
			f.output[node] = []outputEntry{{text: string(prefix), width: len(prefix)}}
		}
		for _, symbol := range f.trie.Transitions(node) {
			child := f.trie.Child(node, symbol)
			assert(child != NoNode, "trie enumerated a transition without a child")
			next := make([]rune, len(prefix)+1)
			copy(next, prefix)
			next[len(prefix)] = symbol
			queue = append(queue, item{node: child, prefix: next})
		}
	}
}

// buildFailure is the classic Aho-Corasick construction, breadth-first by
// depth. Every fail target has strictly smaller depth than its state, so the
// inner chain walks terminate and each target's output list is already
// complete when it gets merged.
func (f *Finder) buildFailure() {
	root := f.trie.Root()
	f.failure[root] = root // sentinel: already at root, skip the symbol
	var queue []Node
	for _, symbol := range f.trie.Transitions(root) {
		child := f.trie.Child(root, symbol)
		f.failure[child] = root
		queue = append(queue, child)
	}
	for q := 0; q < len(queue); q++ {
		node := queue[q]
		for _, symbol := range f.trie.Transitions(node) {
			child := f.trie.Child(node, symbol)
			queue = append(queue, child)

			fail := f.failure[node]
			for f.trie.Child(fail, symbol) == NoNode && fail != root {
				fail = f.failure[fail]
			}
			target := f.trie.Child(fail, symbol)
			if target == NoNode {
				target = root
			}
			f.failure[child] = target

			// Inherit the fail target's entries: suffixes of the current
			// path that are themselves dictionary entries end here too.
			if inherited := f.output[target]; len(inherited) > 0 {
				f.output[child] = append(f.output[child], inherited...)
			}
		}
	}
}

// Scan finds all dictionary entries in buffer that begin and end on token
// boundaries. Matches are produced lazily in non-decreasing order of their
// end position in the normalized buffer; several matches ending at the same
// position come out in output-list order, literal entry before
// failure-inherited suffix entries.
//
// Every call produces an independent sequence over a private projection of
// buffer; stopping early stops the underlying work. An empty buffer, or one
// sharing nothing with the dictionary, yields an empty sequence.
func (f *Finder) Scan(buffer string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		proj := project(buffer, f.normalizer, f.tokenizer)
		root := f.trie.Root()
		node := root
		for i, symbol := range proj.scanning {
			for f.trie.Child(node, symbol) == NoNode && node != root {
				node = f.failure[node]
			}
			next := f.trie.Child(node, symbol)
			if next == NoNode {
				continue // at root with no transition: skip the symbol
			}
			node = next
			for _, entry := range f.output[node] {
				match, ok := f.emit(entry, i, buffer, &proj, f.trie.Meta(node))
				if !ok {
					continue // does not align to token boundaries
				}
				if !yield(match) {
					return
				}
			}
		}
	}
}

// emit turns a recognized entry ending at normalized rune offset end into a
// match record, or reports ok == false when the candidate span does not
// align to token boundaries.
func (f *Finder) emit(entry outputEntry, end int, buffer string, proj *projection, meta any) (Match, bool) {
	span, ok := proj.spanFor(end-entry.width+1, end+1)
	if !ok {
		return Match{}, false
	}
	surface := buffer[span.Start:span.End]
	surface = f.tokenizer.Join(f.tokenizer.Tokens(f.normalizer.Canonicalize(surface)))
	return Match{
		Match:   entry.text,
		Surface: surface,
		Meta:    meta,
		Span:    span,
	}, true
}
