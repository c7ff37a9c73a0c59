/*
Package dictscan locates dictionary entries in natural-language text.

Given a trie encoding a (possibly very large) dictionary of strings, the
package finds every entry that also occurs in an input buffer, in a sense
computing the overlap between the dictionary and the buffer. Matching runs
over a normalized projection of the buffer (case folding, diacritic
stripping; the normalization policy is pluggable), while reported spans
refer to the original buffer. Matches must begin and end on token boundaries.

The scan uses a trie walk in the style of the Aho-Corasick algorithm: an
output function and a failure function are computed once over a frozen trie,
after which scanning is a single left-to-right pass whose running time is
virtually independent of the dictionary size.

The default trie implementation is compiled into a frozen double-array trie
(DAT) on Freeze. Entry metadata is stored separately in a compact payload
store and referenced by trie state IDs. The lookup path is Unicode-aware for
BMP characters.

Further Reading

	Aho, Corasick: Efficient String Matching: An Aid to Bibliographic Search
	https://dl.acm.org/doi/10.1145/360825.360855
	https://nedbatchelder.com/text/aho-corasick.html

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package dictscan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictscan'
func tracer() tracing.Trace {
	return tracing.Select("dictscan")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
