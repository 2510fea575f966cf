package entity

import "strings"

// tupleKeySep joins level ids into map keys; the unit separator keeps
// composite keys collision-free for any printable id.
const tupleKeySep = "\x1f"

func tupleKey(ids []string) string { return strings.Join(ids, tupleKeySep) }

// levelPair keys the grouping cache by (group level, value level).
type levelPair struct {
	by, values int
}

// derived memoizes every artifact computed from rows, labels, and weights.
// One named field per artifact: an entry is either zero (absent) or
// consistent with the current rows — invalidate wipes all of them at once,
// and every mutation must call it before returning.
type derived struct {
	dims     []int
	uidsets  map[int][]string
	uidIndex map[int]map[string]struct{}
	groups   map[levelPair]map[string][]string
	weights  map[string]float64
}

// invalidate drops every cached artifact. Complexity: O(1).
func (d *derived) invalidate() { *d = derived{} }
