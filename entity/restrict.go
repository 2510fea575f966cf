package entity

import "fmt"

// RestrictToLevels projects the store onto a subset or reordering of its
// levels, returning a brand-new store sharing no mutable state with the
// receiver.
//
// When levels is a permutation of all levels (e.g. (1,0) for the dual),
// row weights carry over unchanged — the tuples stay unique. When levels is
// a proper subset, the projection creates duplicate tuples: those collapse
// with AggregateNone and the weight column is dropped, matching how a node
// view is derived from an edge view.
//
// Complexity: O(rows · len(levels)).
func (e *Entity) RestrictToLevels(levels []int, opts ...Option) (*Entity, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: empty level selection", ErrLevel)
	}
	seen := make(map[int]struct{}, len(levels))
	for _, lvl := range levels {
		if lvl < 0 || lvl >= e.dimsize {
			return nil, fmt.Errorf("%w: %d (dimsize %d)", ErrLevel, lvl, e.dimsize)
		}
		if _, dup := seen[lvl]; dup {
			return nil, fmt.Errorf("%w: level %d selected twice", ErrLevel, lvl)
		}
		seen[lvl] = struct{}{}
	}

	permutation := len(levels) == e.dimsize

	names := make([]string, len(levels))
	cols := make([][]string, len(levels))
	for i, lvl := range levels {
		names[i] = fmt.Sprintf("%d", i)
		col := make([]string, len(e.rows))
		for r, row := range e.rows {
			col[r] = e.levels[lvl].label(row[lvl])
		}
		cols[i] = col
	}

	base := []Option{WithUID(e.uid)}
	if e.static {
		base = append(base, WithStatic())
	}
	if permutation {
		base = append(base, WithWeights(e.RowWeights()), WithAggregateBy(e.aggregate))
	} else {
		base = append(base, WithAggregateBy(AggregateNone))
	}
	base = append(base, opts...)

	src := Source(FromTable(names, cols))
	if len(levels) == 1 {
		src = singleLevelSource{names: names, columns: cols}
	}

	return New(src, base...)
}

// RestrictToRows returns a brand-new store containing only the selected
// rows, in the given order, with label sets and weights re-derived for the
// subset. Duplicate indices are ignored after their first occurrence.
//
// Restriction composes: restricting twice equals restricting once by the
// composed index list.
//
// Complexity: O(len(indices) · dimsize).
func (e *Entity) RestrictToRows(indices []int, opts ...Option) (*Entity, error) {
	picked := make(map[int]struct{}, len(indices))
	names := make([]string, e.dimsize)
	cols := make([][]string, e.dimsize)
	for lvl := range cols {
		names[lvl] = fmt.Sprintf("%d", lvl)
	}
	var weights []float64
	for _, r := range indices {
		if r < 0 || r >= len(e.rows) {
			return nil, fmt.Errorf("%w: %d (rows %d)", ErrRowIndex, r, len(e.rows))
		}
		if _, dup := picked[r]; dup {
			continue
		}
		picked[r] = struct{}{}
		row := e.decode(r)
		for lvl, id := range row {
			cols[lvl] = append(cols[lvl], id)
		}
		weights = append(weights, e.weights[r])
	}
	for lvl := range cols {
		if cols[lvl] == nil {
			cols[lvl] = []string{}
		}
	}

	base := []Option{WithUID(e.uid), WithWeights(weights), WithAggregateBy(e.aggregate)}
	if e.static {
		base = append(base, WithStatic())
	}
	base = append(base, opts...)

	src := Source(FromTable(names, cols))
	if e.dimsize == 1 {
		src = singleLevelSource{names: names, columns: cols}
	}

	return New(src, base...)
}

// singleLevelSource relaxes FromTable's two-column minimum for internal
// restrictions of one-level stores (isolated-node containers).
type singleLevelSource struct {
	names   []string
	columns [][]string
}

func (s singleLevelSource) normalize() (*table, error) {
	return &table{names: s.names, columns: s.columns}, nil
}
