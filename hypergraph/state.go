package hypergraph

import (
	"github.com/james-bowman/sparse"

	"github.com/katalvlaran/hygra/linegraph"
)

// incidenceView pairs a cached incidence matrix with its index maps:
// rows[i] is the node id of matrix row i, cols[j] the edge id of column j.
type incidenceView struct {
	m    *sparse.CSR
	rows []string
	cols []string
}

// stateCache memoizes facade-level artifacts derived from the edge store.
// One named field per artifact; reading an absent entry computes it, and
// Refresh replaces the whole cache, so entries can never outlive the rows
// they were computed from.
type stateCache struct {
	// raw triples of the full relation: (edge code, node code, weight) per
	// row of the edge store; rebuilt eagerly by Refresh.
	rows    []int
	cols    []int
	weights []float64

	// per-s line graphs, one map per view
	nodeLG map[int]*linegraph.Graph
	edgeLG map[int]*linegraph.Graph

	// incidence matrices keyed by the weighted flag
	incidence map[bool]*incidenceView

	// scalar aggregates
	edgeSizeDist []int
}

func newStateCache() *stateCache {
	return &stateCache{
		nodeLG:    make(map[int]*linegraph.Graph),
		edgeLG:    make(map[int]*linegraph.Graph),
		incidence: make(map[bool]*incidenceView),
	}
}

// Refresh recomputes the raw triple view from the edge store and drops every
// other cached artifact — line graphs, incidence matrices, size
// distributions. It is the only safe way to guarantee consistency after a
// structural change, and the only invalidation trigger in the package.
//
// Complexity: O(rows).
func (h *Hypergraph) Refresh() {
	s := newStateCache()
	data := h.edges.Data()
	weights := h.edges.RowWeights()
	s.rows = make([]int, len(data))
	s.cols = make([]int, len(data))
	s.weights = make([]float64, len(data))
	for r, row := range data {
		s.rows[r] = row[0]
		s.cols[r] = row[1]
		s.weights[r] = weights[r]
	}
	h.state = s
}

// Triples returns copies of the raw (row, col, weight) triples of the full
// relation: row r of the edge store contributes (edge code, node code,
// effective weight). Codes index the Labels of the edge store.
func (h *Hypergraph) Triples() (rows, cols []int, weights []float64) {
	rows = append([]int(nil), h.state.rows...)
	cols = append([]int(nil), h.state.cols...)
	weights = append([]float64(nil), h.state.weights...)

	return rows, cols, weights
}
