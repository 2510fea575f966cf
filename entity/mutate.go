package entity

import "fmt"

// AddRows appends relation tuples, interning any new ids, and clears the
// entire derived cache on success. weights may be nil (every new row then
// weighs 1) or must match len(rows).
//
// A tuple that already exists in the store is combined with the existing row
// using the store's aggregation method instead of violating row uniqueness;
// under AggregateNone the duplicate is dropped.
//
// Returns ErrImmutable on a static store and ErrSchema on arity mismatches;
// the store is left untouched on error.
//
// Complexity: O((existing + new rows) · dimsize).
func (e *Entity) AddRows(rows [][]string, weights []float64) error {
	if e.static {
		return ErrImmutable
	}
	if weights != nil && len(weights) != len(rows) {
		return fmt.Errorf("%w: %d weights for %d rows", ErrSchema, len(weights), len(rows))
	}
	for _, row := range rows {
		if len(row) != e.dimsize {
			return fmt.Errorf("%w: row arity %d, dimsize %d", ErrSchema, len(row), e.dimsize)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	index := make(map[string]int, len(e.rows))
	for r := range e.rows {
		index[tupleKey(e.decode(r))] = r
	}

	for i, row := range rows {
		w := defaultWeight
		if weights != nil {
			w = weights[i]
		}
		at, exists := index[tupleKey(row)]
		if !exists {
			enc := make([]int, e.dimsize)
			for lvl, id := range row {
				enc[lvl] = e.levels[lvl].intern(id)
			}
			index[tupleKey(row)] = len(e.rows)
			e.rows = append(e.rows, enc)
			e.weights = append(e.weights, w)

			continue
		}
		switch e.aggregate {
		case AggregateNone, AggregateFirst:
		case AggregateSum:
			e.weights[at] += w
		case AggregateLast:
			e.weights[at] = w
		case AggregateMax:
			if w > e.weights[at] {
				e.weights[at] = w
			}
		case AggregateMin:
			if w < e.weights[at] {
				e.weights[at] = w
			}
		case AggregateCount:
			e.weights[at]++
		case AggregateMean:
			// exact at construction; later duplicates average pairwise
			e.weights[at] = (e.weights[at] + w) / 2
		}
	}
	e.cache.invalidate()

	return nil
}

// RemoveRows deletes every row the predicate matches, handing it the decoded
// level-id tuple. The derived cache is cleared whenever at least one row was
// removed. Returns the number of rows removed, or ErrImmutable on a static
// store.
//
// Label lists are append-only: removing the last row naming an id keeps the
// id's code reserved, so surviving encoded rows stay valid. Presence queries
// (UIDSet, Dimensions, Contains) always reflect rows, not label lists.
//
// Complexity: O(rows · dimsize).
func (e *Entity) RemoveRows(pred func(row []string) bool) (int, error) {
	if e.static {
		return 0, ErrImmutable
	}
	if pred == nil {
		return 0, nil
	}

	kept := e.rows[:0]
	keptWeights := e.weights[:0]
	removed := 0
	for r, row := range e.rows {
		if pred(e.decode(r)) {
			removed++
			continue
		}
		kept = append(kept, row)
		keptWeights = append(keptWeights, e.weights[r])
	}
	e.rows = kept
	e.weights = keptWeights
	if removed > 0 {
		e.cache.invalidate()
	}

	return removed, nil
}
