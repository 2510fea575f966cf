package entity

import (
	"fmt"
	"sort"
)

// Entity is the incidence store: one row per relation tuple, one column per
// level, ids interned to small non-negative codes. Level 0 conventionally
// holds edge ids and level 1 node ids when the store backs a hypergraph.
//
// Entity is a single-owner, single-writer structure: it performs no internal
// locking, and concurrent mutation is undefined behavior by contract.
type Entity struct {
	uid        string
	static     bool
	dimsize    int
	rows       [][]int     // encoded rows; rows[r][lvl] indexes levels[lvl]
	levels     []*interner // one per level; append-only
	weights    []float64   // effective weight per row, aligned with rows
	hasWeights bool        // false when aggregation was disabled
	aggregate  AggregateBy // method reused when AddRows meets a duplicate

	cache derived
}

// New constructs a store from a raw input shape.
//
// The pipeline is fixed: normalize the shape to the canonical table, resolve
// the weight column, collapse duplicate level tuples, intern level ids.
// Returns ErrSchema for malformed input and ErrOptionViolation for invalid
// options; no partial store is returned on error.
//
// Complexity: O(rows · dimsize).
func New(src Source, opts ...Option) (*Entity, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrSchema)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t, err := src.normalize()
	if err != nil {
		return nil, err
	}

	weights, levelCols := resolveWeights(t, &o)
	if len(levelCols) < 1 {
		return nil, fmt.Errorf("%w: no level columns remain", ErrSchema)
	}

	tuples := make([][]string, t.rowCount())
	for r := range tuples {
		row := make([]string, len(levelCols))
		for i, c := range levelCols {
			row[i] = t.columns[c][r]
		}
		tuples[r] = row
	}
	tuples, weights, hasWeights := aggregateDuplicates(tuples, weights, o.Aggregate)

	e := &Entity{
		uid:        o.UID,
		static:     o.Static,
		dimsize:    len(levelCols),
		levels:     make([]*interner, len(levelCols)),
		weights:    weights,
		hasWeights: hasWeights,
		aggregate:  o.Aggregate,
	}
	for lvl := range e.levels {
		e.levels[lvl] = newInterner()
	}
	e.rows = make([][]int, len(tuples))
	for r, row := range tuples {
		enc := make([]int, e.dimsize)
		for lvl, id := range row {
			enc[lvl] = e.levels[lvl].intern(id)
		}
		e.rows[r] = enc
	}

	return e, nil
}

// UID returns the identifier assigned at construction, if any.
func (e *Entity) UID() string { return e.uid }

// IsStatic reports whether the store forbids mutation.
func (e *Entity) IsStatic() bool { return e.static }

// Dimsize returns the number of levels.
func (e *Entity) Dimsize() int { return e.dimsize }

// NumRows returns the number of relation tuples.
func (e *Entity) NumRows() int { return len(e.rows) }

// Data returns a copy of the encoded rows. Codes are positions into the
// corresponding Labels slice, never user-facing identifiers.
// Complexity: O(rows · dimsize) per call.
func (e *Entity) Data() [][]int {
	out := make([][]int, len(e.rows))
	for r, row := range e.rows {
		out[r] = append([]int(nil), row...)
	}

	return out
}

// Labels returns a copy of the ordered label list per level; the id at
// position c of level lvl encodes to code c.
func (e *Entity) Labels() [][]string {
	out := make([][]string, e.dimsize)
	for lvl, in := range e.levels {
		out[lvl] = in.snapshot()
	}

	return out
}

// Dimensions returns the number of distinct ids present per level.
// Cached after first access.
func (e *Entity) Dimensions() []int {
	e.ensureDims()
	return append([]int(nil), e.cache.dims...)
}

// Size returns the number of distinct ids present at the given level.
func (e *Entity) Size(level int) (int, error) {
	if level < 0 || level >= e.dimsize {
		return 0, fmt.Errorf("%w: %d (dimsize %d)", ErrLevel, level, e.dimsize)
	}
	e.ensureDims()

	return e.cache.dims[level], nil
}

// IsEmpty reports whether no ids are present at the given level.
func (e *Entity) IsEmpty(level int) bool {
	n, err := e.Size(level)
	return err != nil || n == 0
}

// UIDSet returns the sorted distinct ids present at the given level.
// Cached per level.
func (e *Entity) UIDSet(level int) ([]string, error) {
	if level < 0 || level >= e.dimsize {
		return nil, fmt.Errorf("%w: %d (dimsize %d)", ErrLevel, level, e.dimsize)
	}
	e.ensureUIDSet(level)

	return append([]string(nil), e.cache.uidsets[level]...), nil
}

// Contains reports whether id is present at the given level.
func (e *Entity) Contains(level int, id string) bool {
	if level < 0 || level >= e.dimsize {
		return false
	}
	e.ensureUIDSet(level)
	_, ok := e.cache.uidIndex[level][id]

	return ok
}

// Elements maps each level-0 id to the ordered level-1 ids of its rows
// ("members per edge"). Empty for stores with fewer than two levels.
func (e *Entity) Elements() map[string][]string {
	if e.dimsize < 2 {
		return map[string][]string{}
	}
	m, _ := e.ElementsByLevel(0, 1)

	return m
}

// Memberships maps each level-1 id to the ordered level-0 ids of its rows
// ("edges per node"). Empty for stores with fewer than two levels.
func (e *Entity) Memberships() map[string][]string {
	if e.dimsize < 2 {
		return map[string][]string{}
	}
	m, _ := e.ElementsByLevel(1, 0)

	return m
}

// ElementsByLevel groups rows by the id at level by and lists, in row order,
// the ids at level values. This one grouping primitive backs both Elements
// and Memberships — they are the same operation with levels swapped.
// Cached per (by, values) pair; the returned map is a copy.
func (e *Entity) ElementsByLevel(by, values int) (map[string][]string, error) {
	if by < 0 || by >= e.dimsize {
		return nil, fmt.Errorf("%w: %d (dimsize %d)", ErrLevel, by, e.dimsize)
	}
	if values < 0 || values >= e.dimsize {
		return nil, fmt.Errorf("%w: %d (dimsize %d)", ErrLevel, values, e.dimsize)
	}
	e.ensureGroup(by, values)

	cached := e.cache.groups[levelPair{by, values}]
	out := make(map[string][]string, len(cached))
	for k, v := range cached {
		out[k] = append([]string(nil), v...)
	}

	return out, nil
}

// CellWeight returns the effective weight of the row with the given level
// ids and whether such a row exists. Rows without a weight column weigh 1.
// Complexity: O(1) after the weight index is cached.
func (e *Entity) CellWeight(ids ...string) (float64, bool) {
	if len(ids) != e.dimsize {
		return 0, false
	}
	e.ensureWeights()
	w, ok := e.cache.weights[tupleKey(ids)]
	if !ok {
		return 0, false
	}

	return w, true
}

// RowWeights returns a copy of the per-row effective weights, aligned with
// Data().
func (e *Entity) RowWeights() []float64 {
	return append([]float64(nil), e.weights...)
}

// HasWeights reports whether a meaningful weight column exists (false when
// duplicates were dropped with AggregateNone or the store is empty).
func (e *Entity) HasWeights() bool { return e.hasWeights }

// RowsWhere returns the sorted indices of rows whose id at the given level
// is one of ids. Complexity: O(rows + |ids|).
func (e *Entity) RowsWhere(level int, ids []string) ([]int, error) {
	if level < 0 || level >= e.dimsize {
		return nil, fmt.Errorf("%w: %d (dimsize %d)", ErrLevel, level, e.dimsize)
	}
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if c, ok := e.levels[level].lookup(id); ok {
			want[c] = struct{}{}
		}
	}
	var idx []int
	for r, row := range e.rows {
		if _, ok := want[row[level]]; ok {
			idx = append(idx, r)
		}
	}

	return idx, nil
}

// decode translates row r back to its level ids.
func (e *Entity) decode(r int) []string {
	out := make([]string, e.dimsize)
	for lvl, code := range e.rows[r] {
		out[lvl] = e.levels[lvl].label(code)
	}

	return out
}

// ---------- get-or-compute internals ----------

func (e *Entity) ensureDims() {
	if e.cache.dims != nil {
		return
	}
	dims := make([]int, e.dimsize)
	for lvl := 0; lvl < e.dimsize; lvl++ {
		seen := make(map[int]struct{})
		for _, row := range e.rows {
			seen[row[lvl]] = struct{}{}
		}
		dims[lvl] = len(seen)
	}
	e.cache.dims = dims
}

func (e *Entity) ensureUIDSet(level int) {
	if e.cache.uidsets == nil {
		e.cache.uidsets = make(map[int][]string)
		e.cache.uidIndex = make(map[int]map[string]struct{})
	}
	if _, ok := e.cache.uidsets[level]; ok {
		return
	}
	index := make(map[string]struct{})
	var ids []string
	for _, row := range e.rows {
		id := e.levels[level].label(row[level])
		if _, seen := index[id]; !seen {
			index[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	e.cache.uidsets[level] = ids
	e.cache.uidIndex[level] = index
}

func (e *Entity) ensureGroup(by, values int) {
	if e.cache.groups == nil {
		e.cache.groups = make(map[levelPair]map[string][]string)
	}
	key := levelPair{by, values}
	if _, ok := e.cache.groups[key]; ok {
		return
	}
	group := make(map[string][]string)
	for _, row := range e.rows {
		k := e.levels[by].label(row[by])
		group[k] = append(group[k], e.levels[values].label(row[values]))
	}
	e.cache.groups[key] = group
}

func (e *Entity) ensureWeights() {
	if e.cache.weights != nil {
		return
	}
	index := make(map[string]float64, len(e.rows))
	for r := range e.rows {
		w := defaultWeight
		if e.hasWeights {
			w = e.weights[r]
		}
		index[tupleKey(e.decode(r))] = w
	}
	e.cache.weights = index
}
