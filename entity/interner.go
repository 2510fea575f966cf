package entity

// interner maintains the bijective id↔code mapping for one level.
// Codes are assigned in first-seen order and never change for the lifetime
// of the store, so encoded rows stay valid across additions.
type interner struct {
	labels []string       // code → id
	codes  map[string]int // id → code
}

func newInterner() *interner {
	return &interner{codes: make(map[string]int)}
}

// intern returns the code for id, assigning the next free code on first
// sight. Complexity: O(1) amortized.
func (in *interner) intern(id string) int {
	if c, ok := in.codes[id]; ok {
		return c
	}
	c := len(in.labels)
	in.labels = append(in.labels, id)
	in.codes[id] = c

	return c
}

// lookup returns the code for id without interning.
func (in *interner) lookup(id string) (int, bool) {
	c, ok := in.codes[id]
	return c, ok
}

// label translates a code back to its id. The caller guarantees range.
func (in *interner) label(code int) string { return in.labels[code] }

// snapshot returns a copy of the ordered label list.
func (in *interner) snapshot() []string {
	out := make([]string, len(in.labels))
	copy(out, in.labels)

	return out
}
