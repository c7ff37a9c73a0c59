package dictscan

import "fmt"

const initialMetaStoreSlots = 2 // include slot 0 + root slot

// metaStore keeps terminal flags and entry payloads directly indexed by trie
// state ID. Terminality is tracked separately from the payload value so that
// an entry with a nil payload is still recognized as a dictionary entry.
type metaStore struct {
	terminal []bool // will grow with demand
	payload  []any  // will grow with demand
}

func newMetaStore() *metaStore {
	return &metaStore{
		terminal: make([]bool, initialMetaStoreSlots),
		payload:  make([]any, initialMetaStoreSlots),
	}
}

func (s *metaStore) ensure(pos int) {
	if pos < len(s.terminal) {
		return
	}
	grow := pos + 1 - len(s.terminal)
	s.terminal = append(s.terminal, make([]bool, grow)...)
	s.payload = append(s.payload, make([]any, grow)...)
}

// Put marks trie state pos as terminal and stores its payload.
func (s *metaStore) Put(pos int, meta any) error {
	if pos < 0 {
		return fmt.Errorf("negative trie position: %d", pos)
	}
	s.ensure(pos)
	s.terminal[pos] = true
	s.payload[pos] = meta
	return nil
}

// IsTerminal reports whether a dictionary entry ends at trie state pos.
func (s *metaStore) IsTerminal(pos int) bool {
	return pos >= 0 && pos < len(s.terminal) && s.terminal[pos]
}

// Get returns the payload for a trie state.
func (s *metaStore) Get(pos int) any {
	if pos < 0 || pos >= len(s.payload) {
		return nil
	}
	return s.payload[pos]
}
