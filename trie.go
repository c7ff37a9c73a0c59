package dictscan

// Node identifies a trie state. Handles are stable small-integer IDs issued
// by the trie that owns them; two handles obtained from the same trie refer
// to the same state iff they compare equal. Handles from different tries, or
// handles issued before a trie was frozen, must not be mixed; doing so
// violates the contract and produces undefined matches.
type Node uint32

// NoNode is the sentinel for "no such state".
const NoNode Node = 0

// Trie is the dictionary contract consumed by the finder. A trie is a
// labeled tree over the normalized alphabet; each state is optionally
// terminal and optionally carries an opaque payload.
//
// The finder never mutates a trie. Implementations must be read-only (and
// therefore safe for concurrent readers) for the whole lifetime of any
// Finder built on top of them.
type Trie interface {
	// Root returns the distinguished root state.
	Root() Node

	// Child returns the state reached from node via symbol, or NoNode.
	Child(node Node, symbol rune) Node

	// IsFinal reports whether a dictionary entry ends at node.
	IsFinal(node Node) bool

	// Meta returns the payload attached to node, or nil.
	Meta(node Node) any

	// Transitions enumerates the outgoing symbols of node in increasing
	// rune order. Only used during automaton construction.
	Transitions(node Node) []rune
}
