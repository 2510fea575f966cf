package hypergraph

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// IncidenceMatrix returns the sparse node×edge incidence matrix together
// with its index maps: rows[i] is the node id of row i, cols[j] the edge id
// of column j (both sorted). An entry is 1 where the node belongs to the
// edge — or the incidence weight when weighted is set — and 0 elsewhere.
//
// Cached per weighted flag; invalidated only by Refresh. The returned
// matrix and label slices are the caller's copies: mutating them never
// reaches the cache.
// Complexity: O(rows) to build, O(nonzeros) per call for the copy.
func (h *Hypergraph) IncidenceMatrix(weighted bool) (*sparse.CSR, []string, []string) {
	m, rows, cols := h.incidenceMatrix(weighted)
	return cloneCSR(m), copyStrings(rows), copyStrings(cols)
}

// incidenceMatrix returns the cached master matrix and its index slices;
// callers must not mutate them.
func (h *Hypergraph) incidenceMatrix(weighted bool) (*sparse.CSR, []string, []string) {
	if view, ok := h.state.incidence[weighted]; ok {
		return view.m, view.rows, view.cols
	}

	nodeIDs := h.NodeList()
	edgeIDs := h.EdgeList()
	rowIndex := make(map[string]int, len(nodeIDs))
	for i, id := range nodeIDs {
		rowIndex[id] = i
	}
	colIndex := make(map[string]int, len(edgeIDs))
	for j, id := range edgeIDs {
		colIndex[id] = j
	}

	m := emptyCSR(len(nodeIDs), len(edgeIDs))
	if len(nodeIDs) > 0 && len(edgeIDs) > 0 {
		dok := sparse.NewDOK(len(nodeIDs), len(edgeIDs))
		data := h.edges.Data()
		weights := h.edges.RowWeights()
		labels := h.edges.Labels()
		for r, row := range data {
			i := rowIndex[labels[1][row[1]]]
			j := colIndex[labels[0][row[0]]]
			if weighted {
				// deeper levels can repeat an (edge, node) pair; weights add up
				dok.Set(i, j, dok.At(i, j)+weights[r])
			} else {
				dok.Set(i, j, 1)
			}
		}
		m = dok.ToCSR()
	}

	h.state.incidence[weighted] = &incidenceView{m: m, rows: nodeIDs, cols: edgeIDs}

	return m, nodeIDs, edgeIDs
}

// AdjacencyMatrix returns the sparse s-adjacency matrix over nodes together
// with its row index map: entry (i,j) is 1 when nodes i and j co-occur in
// at least s edges, 0 otherwise. Symmetric with zero diagonal by
// construction. Thresholding always operates on unweighted co-occurrence
// counts; weighted s-adjacency is not supported.
//
// Complexity: dominated by the sparse product M·Mᵗ.
func (h *Hypergraph) AdjacencyMatrix(s int) (*sparse.CSR, []string, error) {
	if s < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrSValue, s)
	}
	m, nodeIDs, _ := h.incidenceMatrix(false)

	return adjacencyFrom(m, s), copyStrings(nodeIDs), nil
}

// EdgeAdjacencyMatrix returns the sparse s-adjacency matrix for the dual:
// entry (i,j) is 1 when edges i and j share at least s nodes. This is the
// adjacency matrix of the s-line graph over edges.
func (h *Hypergraph) EdgeAdjacencyMatrix(s int) (*sparse.CSR, []string, error) {
	if s < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrSValue, s)
	}
	m, _, edgeIDs := h.incidenceMatrix(false)

	return adjacencyFrom(m.T(), s), copyStrings(edgeIDs), nil
}

// AuxiliaryMatrix restricts the hypergraph to edges of size at least s and
// returns the s-edge-adjacency matrix of that restriction together with its
// edge index map. Building block for motif queries over non-trivial edges.
func (h *Hypergraph) AuxiliaryMatrix(s int) (*sparse.CSR, []string, error) {
	if s < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrSValue, s)
	}
	elements := h.edges.Elements()
	var keep []string
	for _, id := range h.EdgeList() {
		if len(elements[id]) >= s {
			keep = append(keep, id)
		}
	}
	sub, err := h.RestrictToEdges(keep)
	if err != nil {
		return nil, nil, err
	}

	return sub.EdgeAdjacencyMatrix(s)
}

// adjacencyFrom realizes incidence→adjacency for s-metrics: A = m·mᵗ with
// the diagonal zeroed (no self-loops), then each remaining count compared
// against the threshold — entry 1 iff count ≥ s.
func adjacencyFrom(m mat.Matrix, s int) *sparse.CSR {
	n, _ := m.Dims()
	if n == 0 {
		return emptyCSR(0, 0)
	}

	var prod sparse.CSR
	prod.Mul(m, m.T())

	out := sparse.NewDOK(n, n)
	prod.DoNonZero(func(i, j int, v float64) {
		if i != j && v >= float64(s) {
			out.Set(i, j, 1)
		}
	})

	return out.ToCSR()
}

// emptyCSR builds an r×c CSR with no stored entries; sparse constructors
// reject zero dimensions, so the raw form is assembled directly.
func emptyCSR(r, c int) *sparse.CSR {
	return sparse.NewCSR(r, c, make([]int, r+1), []int{}, []float64{})
}

// cloneCSR returns an independent copy of m, so cached matrices stay
// pristine whatever the caller does with the returned handle.
func cloneCSR(m *sparse.CSR) *sparse.CSR {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return emptyCSR(r, c)
	}
	dok := sparse.NewDOK(r, c)
	m.DoNonZero(func(i, j int, v float64) { dok.Set(i, j, v) })

	return dok.ToCSR()
}

func copyStrings(s []string) []string { return append([]string(nil), s...) }
