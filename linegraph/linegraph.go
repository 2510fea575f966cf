package linegraph

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for line-graph construction and queries.
var (
	// ErrNotConnected is returned by Diameter on a disconnected or empty graph.
	ErrNotConnected = errors.New("linegraph: graph is not connected")

	// ErrLabelCount indicates the label list does not match the matrix order.
	ErrLabelCount = errors.New("linegraph: label count does not match matrix order")

	// ErrDuplicateLabel indicates two vertices share one label.
	ErrDuplicateLabel = errors.New("linegraph: duplicate vertex label")

	// ErrNonSquare indicates a non-square adjacency matrix.
	ErrNonSquare = errors.New("linegraph: adjacency matrix is not square")
)

// nonZeroDoer is the sparse fast path: CSR and friends expose their
// populated entries without a full O(n²) scan.
type nonZeroDoer interface {
	DoNonZero(fn func(i, j int, v float64))
}

// Graph is an undirected graph whose vertices carry user labels.
// Single-owner, no internal locking.
type Graph struct {
	g      *simple.UndirectedGraph
	labels []string
	index  map[string]int64
}

// New creates a graph with one vertex per label and no edges.
// Returns ErrDuplicateLabel when labels repeat.
// Complexity: O(n).
func New(labels []string) (*Graph, error) {
	g := &Graph{
		g:      simple.NewUndirectedGraph(),
		labels: append([]string(nil), labels...),
		index:  make(map[string]int64, len(labels)),
	}
	for i, l := range g.labels {
		if _, dup := g.index[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		g.index[l] = int64(i)
		g.g.AddNode(simple.Node(int64(i)))
	}

	return g, nil
}

// FromAdjacency builds a graph from a symmetric adjacency matrix: every
// nonzero off-diagonal entry becomes an undirected edge. labels[i] names
// vertex i. Diagonal entries are ignored (no self-loops).
//
// Sparse matrices that expose DoNonZero are consumed without densifying;
// anything else falls back to an O(n²) scan of the upper triangle.
func FromAdjacency(adj mat.Matrix, labels []string) (*Graph, error) {
	r, c := adj.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %d×%d", ErrNonSquare, r, c)
	}
	if len(labels) != r {
		return nil, fmt.Errorf("%w: %d labels for order %d", ErrLabelCount, len(labels), r)
	}
	g, err := New(labels)
	if err != nil {
		return nil, err
	}

	if nz, ok := adj.(nonZeroDoer); ok {
		nz.DoNonZero(func(i, j int, v float64) {
			if i < j && v != 0 {
				g.setEdge(int64(i), int64(j))
			}
		})

		return g, nil
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if adj.At(i, j) != 0 {
				g.setEdge(int64(i), int64(j))
			}
		}
	}

	return g, nil
}

func (g *Graph) setEdge(i, j int64) {
	g.g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
}

// SetEdge connects two labeled vertices; unknown labels and self-edges are
// no-ops reported as false.
func (g *Graph) SetEdge(a, b string) bool {
	i, ok := g.index[a]
	j, ok2 := g.index[b]
	if !ok || !ok2 || i == j {
		return false
	}
	g.setEdge(i, j)

	return true
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.labels) }

// Has reports whether a vertex with the given label exists.
func (g *Graph) Has(label string) bool {
	_, ok := g.index[label]
	return ok
}

// Labels returns the vertex labels in construction order.
func (g *Graph) Labels() []string {
	return append([]string(nil), g.labels...)
}

// Clone returns an independent copy of the graph: same labels, same edges,
// no shared storage. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out, _ := New(g.labels) // labels are unique by construction
	for i, l := range g.labels {
		for it := g.g.From(int64(i)); it.Next(); {
			j := it.Node().ID()
			if int64(i) < j {
				out.SetEdge(l, g.labels[j])
			}
		}
	}

	return out
}

// Neighbors returns the sorted labels adjacent to the given vertex, and
// ok=false when the label is unknown. A known, isolated vertex yields an
// empty slice with ok=true.
// Complexity: O(deg · log deg).
func (g *Graph) Neighbors(label string) ([]string, bool) {
	id, ok := g.index[label]
	if !ok {
		return nil, false
	}
	var out []string
	for it := g.g.From(id); it.Next(); {
		out = append(out, g.labels[it.Node().ID()])
	}
	sort.Strings(out)

	return out, true
}

// Degree returns the number of neighbors of the given vertex, and ok=false
// when the label is unknown.
func (g *Graph) Degree(label string) (int, bool) {
	id, ok := g.index[label]
	if !ok {
		return 0, false
	}

	return g.g.From(id).Len(), true
}

// ConnectedComponents partitions vertices into maximal mutually reachable
// sets. Singleton components are excluded unless includeSingletons is set.
// Components are sorted by their smallest label, labels sorted within.
// Complexity: O(V + E) plus sorting.
func (g *Graph) ConnectedComponents(includeSingletons bool) [][]string {
	comps := topo.ConnectedComponents(g.g)
	out := make([][]string, 0, len(comps))
	for _, comp := range comps {
		if len(comp) == 1 && !includeSingletons {
			continue
		}
		labels := make([]string, len(comp))
		for i, n := range comp {
			labels[i] = g.labels[n.ID()]
		}
		sort.Strings(labels)
		out = append(out, labels)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// IsConnected reports whether every pair of vertices is mutually reachable.
// The empty graph is not connected.
func (g *Graph) IsConnected() bool {
	if len(g.labels) == 0 {
		return false
	}

	return len(topo.ConnectedComponents(g.g)) == 1
}

// Diameter returns the longest shortest-path length over all vertex pairs.
// Fails with ErrNotConnected when the graph is disconnected or empty —
// the diameter is undefined there, not infinite.
// Complexity: O(V · (V + E)) via one BFS per vertex.
func (g *Graph) Diameter() (int, error) {
	if !g.IsConnected() {
		return 0, ErrNotConnected
	}

	diam := 0
	var bfs traverse.BreadthFirst
	for id := range g.labels {
		bfs.Reset()
		bfs.Walk(g.g, simple.Node(int64(id)), func(_ graph.Node, d int) bool {
			if d > diam {
				diam = d
			}

			return false
		})
	}

	return diam, nil
}

// Eccentricity returns the longest shortest path from the given vertex to
// any vertex reachable from it, with ok=false for unknown labels.
func (g *Graph) Eccentricity(label string) (int, bool) {
	id, ok := g.index[label]
	if !ok {
		return 0, false
	}
	ecc := 0
	var bfs traverse.BreadthFirst
	bfs.Walk(g.g, simple.Node(id), func(_ graph.Node, d int) bool {
		if d > ecc {
			ecc = d
		}

		return false
	})

	return ecc, true
}

// Distance returns the shortest-path length between two labeled vertices.
// Unreachable pairs — and unknown labels — report +Inf: a missing path is
// an expected outcome, not a failure.
// Complexity: O(V + E).
func (g *Graph) Distance(source, target string) float64 {
	si, ok := g.index[source]
	ti, ok2 := g.index[target]
	if !ok || !ok2 {
		return math.Inf(1)
	}
	if si == ti {
		return 0
	}

	dist := math.Inf(1)
	var bfs traverse.BreadthFirst
	bfs.Walk(g.g, simple.Node(si), func(n graph.Node, d int) bool {
		if n.ID() == ti {
			dist = float64(d)
			return true
		}

		return false
	})

	return dist
}

// Subgraph returns a new graph induced by the given labels: the selected
// vertices plus every edge with both endpoints selected. Unknown labels are
// ignored.
func (g *Graph) Subgraph(labels []string) *Graph {
	selected := make(map[string]struct{}, len(labels))
	keep := make([]string, 0, len(labels))
	for _, l := range labels {
		if !g.Has(l) {
			continue
		}
		if _, dup := selected[l]; dup {
			continue
		}
		selected[l] = struct{}{}
		keep = append(keep, l)
	}
	sort.Strings(keep)
	sub, _ := New(keep) // keep is deduplicated above
	for _, l := range keep {
		nbrs, _ := g.Neighbors(l)
		for _, n := range nbrs {
			if _, ok := selected[n]; ok {
				sub.SetEdge(l, n)
			}
		}
	}

	return sub
}
