package entity

import (
	"fmt"
	"sort"
	"strconv"
)

// Source is one of the raw input shapes a store can be constructed from.
// Every shape normalizes once, at the construction boundary, into the same
// canonical tabular form; the rest of the pipeline is shape-agnostic.
type Source interface {
	normalize() (*table, error)
}

// table is the canonical tabular form: equal-length named columns, the
// first Dimsize of which (after weight-column resolution) are level columns.
type table struct {
	names   []string
	columns [][]string
}

func (t *table) rowCount() int {
	if len(t.columns) == 0 {
		return 0
	}

	return len(t.columns[0])
}

func (t *table) columnIndex(name string) (int, bool) {
	for i, n := range t.names {
		if n == name {
			return i, true
		}
	}

	return 0, false
}

// ---------- named-column table ----------

type tableSource struct {
	names   []string
	columns [][]string
}

// FromTable builds a Source from named columns. At least two columns are
// required (edge ids, node ids); additional columns are further levels unless
// one of them is designated the weight column via WithWeightColumn.
// All columns must have equal length.
func FromTable(names []string, columns [][]string) Source {
	return &tableSource{names: names, columns: columns}
}

func (s *tableSource) normalize() (*table, error) {
	if len(s.columns) < 2 {
		return nil, fmt.Errorf("%w: table needs at least 2 columns, got %d", ErrSchema, len(s.columns))
	}
	if len(s.names) != len(s.columns) {
		return nil, fmt.Errorf("%w: %d column names for %d columns", ErrSchema, len(s.names), len(s.columns))
	}
	n := len(s.columns[0])
	for i, col := range s.columns {
		if len(col) != n {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d", ErrSchema, s.names[i], len(col), n)
		}
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	cols := make([][]string, len(s.columns))
	for i, col := range s.columns {
		cols[i] = append([]string(nil), col...)
	}

	return &table{names: names, columns: cols}, nil
}

// ---------- explicit (edge, node) pairs ----------

type pairSource struct {
	pairs [][2]string
}

// FromPairs builds a Source from explicit (edge id, node id) rows.
func FromPairs(pairs [][2]string) Source {
	return &pairSource{pairs: pairs}
}

func (s *pairSource) normalize() (*table, error) {
	edges := make([]string, len(s.pairs))
	nodes := make([]string, len(s.pairs))
	for i, p := range s.pairs {
		edges[i], nodes[i] = p[0], p[1]
	}

	return &table{names: []string{"0", "1"}, columns: [][]string{edges, nodes}}, nil
}

// ---------- map of id → members ----------

type mapSource struct {
	members map[string][]string
}

// FromMap builds a Source from a mapping of edge id → member node ids.
// Keys are visited in sorted order so construction is deterministic.
func FromMap(members map[string][]string) Source {
	return &mapSource{members: members}
}

func (s *mapSource) normalize() (*table, error) {
	keys := make([]string, 0, len(s.members))
	for k := range s.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var edges, nodes []string
	for _, k := range keys {
		for _, v := range s.members[k] {
			edges = append(edges, k)
			nodes = append(nodes, v)
		}
	}

	return &table{names: []string{"0", "1"}, columns: [][]string{edges, nodes}}, nil
}

// ---------- list of member lists ----------

type listSource struct {
	lists [][]string
}

// FromLists builds a Source from a list of member lists; the first level is
// auto-numbered "0".."N-1" in list order.
func FromLists(lists [][]string) Source {
	return &listSource{lists: lists}
}

func (s *listSource) normalize() (*table, error) {
	var edges, nodes []string
	for i, members := range s.lists {
		id := strconv.Itoa(i)
		for _, v := range members {
			edges = append(edges, id)
			nodes = append(nodes, v)
		}
	}

	return &table{names: []string{"0", "1"}, columns: [][]string{edges, nodes}}, nil
}

// ---------- pre-encoded array + labels ----------

type arraySource struct {
	data   [][]int
	labels [][]string
}

// FromArray builds a Source from an already-encoded 2-D array of codes plus
// one ordered label list per column; data[r][lvl] indexes labels[lvl].
// Normalization fails with ErrSchema when the array is ragged, when the
// number of label lists does not match the column count, when any code is
// outside its label range, or when a label repeats within its level (the
// id↔code mapping must stay a bijection).
func FromArray(data [][]int, labels [][]string) Source {
	return &arraySource{data: data, labels: labels}
}

func (s *arraySource) normalize() (*table, error) {
	width := len(s.labels)
	if width < 1 {
		return nil, fmt.Errorf("%w: array input needs at least one label level", ErrSchema)
	}
	for r, row := range s.data {
		if len(row) != width {
			return nil, fmt.Errorf("%w: array row %d has %d columns, labels describe %d", ErrSchema, r, len(row), width)
		}
	}
	for lvl, lbls := range s.labels {
		seen := make(map[string]struct{}, len(lbls))
		for _, id := range lbls {
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("%w: duplicate label %q at level %d", ErrSchema, id, lvl)
			}
			seen[id] = struct{}{}
		}
	}

	names := make([]string, width)
	cols := make([][]string, width)
	for lvl := 0; lvl < width; lvl++ {
		names[lvl] = strconv.Itoa(lvl)
		col := make([]string, len(s.data))
		for r, row := range s.data {
			code := row[lvl]
			if code < 0 || code >= len(s.labels[lvl]) {
				return nil, fmt.Errorf("%w: code %d at row %d exceeds %d labels at level %d",
					ErrSchema, code, r, len(s.labels[lvl]), lvl)
			}
			col[r] = s.labels[lvl][code]
		}
		cols[lvl] = col
	}

	return &table{names: names, columns: cols}, nil
}
