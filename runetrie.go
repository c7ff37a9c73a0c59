package dictscan

import (
	"fmt"
	"sort"

	"github.com/npillmayer/dictscan/dat"
)

type buildNode struct {
	id       uint32
	state    uint32
	final    bool
	meta     any
	children map[uint16]*buildNode
}

// RuneTrie is the default dictionary trie. While mutable it is a plain arena
// of build nodes; Freeze compiles it into a frozen double-array trie with a
// dense BMP alphabet mapping and moves terminal flags and payloads into a
// compact store keyed by DAT state IDs.
//
// Node handles issued before Freeze are invalidated by Freeze. A Finder must
// only be built on a frozen trie.
type RuneTrie struct {
	frozen      bool
	root        *buildNode
	arena       []*buildNode // indexed by build-node ID, slot 0 unused
	runeToDense map[rune]uint16
	denseToRune []rune // indexed by dense ID, slot 0 unused
	nextDenseID uint16
	compiled    *dat.DAT
	metas       *metaStore
}

// NewRuneTrie creates an empty, mutable dictionary trie.
func NewRuneTrie() *RuneTrie {
	root := &buildNode{id: 1, children: make(map[uint16]*buildNode)}
	return &RuneTrie{
		root:        root,
		arena:       []*buildNode{nil, root},
		runeToDense: make(map[rune]uint16),
		denseToRune: []rune{0},
		compiled: &dat.DAT{
			Root: 1,
		},
	}
}

// Add inserts a dictionary entry with an optional payload. Entries are added
// verbatim; normalizing them consistently with the scanning side is the
// caller's concern (LoadEntryReader does this for you).
func (t *RuneTrie) Add(entry string, meta any) error {
	if t.frozen {
		return fmt.Errorf("cannot add entry %q to frozen trie", entry)
	}
	if entry == "" {
		return fmt.Errorf("cannot add empty dictionary entry")
	}
	key, ok := t.encodeKey(entry)
	if !ok {
		return fmt.Errorf("entry %q contains characters outside the BMP", entry)
	}
	n := t.root
	for _, c := range key {
		child := n.children[c]
		if child == nil {
			child = &buildNode{
				id:       uint32(len(t.arena)),
				children: make(map[uint16]*buildNode),
			}
			t.arena = append(t.arena, child)
			n.children[c] = child
		}
		n = child
	}
	n.final = true
	n.meta = meta
	return nil
}

// encodeKey maps entry runes to dense alphabet IDs. While mutable, unseen
// runes are assigned fresh IDs; on a frozen trie the compiled mapping is
// consulted and unseen runes yield ok == false.
func (t *RuneTrie) encodeKey(entry string) ([]uint16, bool) {
	key := make([]uint16, 0, len(entry))
	if t.frozen {
		for _, r := range entry {
			if r > 0xFFFF {
				return nil, false
			}
			dense := t.compiled.Dense(uint16(r))
			if dense == 0 {
				return nil, false
			}
			key = append(key, dense)
		}
		return key, true
	}
	for _, r := range entry {
		if r > 0xFFFF {
			return nil, false
		}
		dense, ok := t.runeToDense[r]
		if !ok {
			if t.nextDenseID == ^uint16(0) {
				return nil, false
			}
			t.nextDenseID++
			dense = t.nextDenseID
			t.runeToDense[r] = dense
			t.denseToRune = append(t.denseToRune, r)
			t.compiled.MapPaged.Set(uint16(r), dense)
		}
		key = append(key, dense)
	}
	return key, true
}

// Freeze compiles the trie into its frozen double-array form and drops the
// construction arena. After Freeze the trie is read-only and all previously
// issued node handles are invalid.
func (t *RuneTrie) Freeze() {
	if t.frozen {
		return
	}
	t.compiled.Sigma = t.nextDenseID
	t.compiled.Base = make([]int32, int(t.compiled.Root)+1)
	t.compiled.Check = make([]int32, int(t.compiled.Root)+1)
	symbols := make([]uint16, len(t.denseToRune))
	for dense, r := range t.denseToRune {
		symbols[dense] = uint16(r)
	}
	t.compiled.Symbols = symbols
	t.metas = newMetaStore()
	t.root.state = t.compiled.Root
	queue := []*buildNode{t.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if n.final {
			if err := t.metas.Put(int(n.state), n.meta); err != nil {
				panic(err) // states are non-negative by construction
			}
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(t.compiled.Check, labels)
		ensureDATIndex(t.compiled, base+int(labels[len(labels)-1]))
		t.compiled.Base[n.state] = int32(base)
		for _, label := range labels {
			s := base + int(label)
			ensureDATIndex(t.compiled, s)
			child := n.children[label]
			child.state = uint32(s)
			t.compiled.Check[s] = int32(n.state)
			queue = append(queue, child)
		}
	}
	t.root = nil
	t.arena = nil
	t.runeToDense = nil
	t.frozen = true
	stats := t.Stats()
	tracer().Infof("dictionary trie stats backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.FillRatio(), stats.MaxStateID)
}

// Frozen reports whether Freeze has been called.
func (t *RuneTrie) Frozen() bool { return t.frozen }

// --- Trie interface --------------------------------------------------------

// Root returns the root state handle.
func (t *RuneTrie) Root() Node {
	if t.frozen {
		return Node(t.compiled.Root)
	}
	return Node(t.root.id)
}

// Child returns the state reached from node via symbol, or NoNode.
func (t *RuneTrie) Child(node Node, symbol rune) Node {
	if node == NoNode || symbol > 0xFFFF {
		return NoNode
	}
	if t.frozen {
		dense := t.compiled.Dense(uint16(symbol))
		if dense == 0 {
			return NoNode
		}
		next, ok := t.compiled.Transition(uint32(node), dense)
		if !ok {
			return NoNode
		}
		return Node(next)
	}
	n := t.build(node)
	if n == nil {
		return NoNode
	}
	dense, ok := t.runeToDense[symbol]
	if !ok {
		return NoNode
	}
	child := n.children[dense]
	if child == nil {
		return NoNode
	}
	return Node(child.id)
}

// IsFinal reports whether a dictionary entry ends at node.
func (t *RuneTrie) IsFinal(node Node) bool {
	if t.frozen {
		return t.metas.IsTerminal(int(node))
	}
	n := t.build(node)
	return n != nil && n.final
}

// Meta returns the payload attached to node, or nil.
func (t *RuneTrie) Meta(node Node) any {
	if t.frozen {
		return t.metas.Get(int(node))
	}
	n := t.build(node)
	if n == nil {
		return nil
	}
	return n.meta
}

// Transitions enumerates the outgoing symbols of node in increasing rune order.
func (t *RuneTrie) Transitions(node Node) []rune {
	if node == NoNode {
		return nil
	}
	var runes []rune
	if t.frozen {
		for _, dense := range t.compiled.Outgoing(uint32(node)) {
			runes = append(runes, rune(t.compiled.Symbol(dense)))
		}
	} else {
		n := t.build(node)
		if n == nil {
			return nil
		}
		for dense := range n.children {
			runes = append(runes, t.denseToRune[dense])
		}
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

func (t *RuneTrie) build(node Node) *buildNode {
	if int(node) <= 0 || int(node) >= len(t.arena) {
		return nil
	}
	return t.arena[node]
}

func (t *RuneTrie) String() string {
	return fmt.Sprintf("RuneTrie(states=%d,sigma=%d,frozen=%v)",
		t.compiled.NStates(), t.compiled.Sigma, t.frozen)
}

// --- Statistics ------------------------------------------------------------

// TrieStats reports density metrics for a frozen trie.
type TrieStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s TrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats returns slot usage of the compiled double-array.
func (t *RuneTrie) Stats() TrieStats {
	stats := TrieStats{
		Backend:    "dat",
		TotalSlots: t.compiled.NStates(),
		MaxStateID: int(t.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(t.compiled.Root)
	for i := range t.compiled.Check {
		if i == int(t.compiled.Root) || t.compiled.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}

// --- DAT construction helpers ----------------------------------------------

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			s := base + int(label)
			if s < len(check) && check[s] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}
