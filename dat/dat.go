package dat

// DAT is a frozen double-array trie over a dense alphabet.
// - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
// - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
// - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// The DAT stores pure trie structure. Terminal flags and per-entry payloads
// are kept out-of-band by the owner, keyed by state index, so that the same
// frozen structure can back dictionaries with arbitrary metadata.
//
// Mapping:
//   - MapPaged is a BMP mapping from UTF-16 code unit (0..65535) to dense
//     alphabet ID. 0 means "not part of the dictionary alphabet".
//   - Symbols maps dense IDs back to code units (index 0 unused). The reverse
//     direction is needed to enumerate the outgoing transitions of a state.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// MapPaged maps BMP code units to dense IDs [0..Sigma].
	// Memory: two-level page table, ~512 bytes per touched high-byte block.
	MapPaged PagedMapBMP

	// Symbols is the reverse alphabet table: Symbols[dense] = code unit.
	// len == Sigma+1, entry 0 unused.
	Symbols []uint16
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := int32(d.Base[state]) + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a BMP code unit to a dense alphabet ID.
// Returns 0 if the code unit is not in the alphabet.
func (d *DAT) Dense(bmp uint16) uint16 { return d.MapPaged.Dense(bmp) }

// Symbol maps a dense alphabet ID back to its BMP code unit.
// Returns 0 for IDs outside [1..Sigma].
func (d *DAT) Symbol(dense uint16) uint16 {
	if int(dense) >= len(d.Symbols) {
		return 0
	}
	return d.Symbols[dense]
}

// Outgoing enumerates the dense labels with a defined transition from state,
// in increasing dense-ID order. Linear in Sigma; intended for construction
// passes, not for the scanning hot path.
func (d *DAT) Outgoing(state uint32) []uint16 {
	var labels []uint16
	for c := uint16(1); c <= d.Sigma; c++ {
		if _, ok := d.Transition(state, c); ok {
			labels = append(labels, c)
		}
	}
	return labels
}
