package hypergraph

import (
	"math"

	"github.com/katalvlaran/hygra/linegraph"
)

// LineGraph returns the s-line graph of the hypergraph. With edgeView set
// the vertices are the hyperedges, connected when they share at least s
// nodes; otherwise the vertices are the nodes, connected when they co-occur
// in at least s edges.
//
// Cached per (s, edgeView) in the state cache; invalidated only by Refresh.
// The returned graph is the caller's copy: mutating it never reaches the
// cache.
func (h *Hypergraph) LineGraph(s int, edgeView bool) (*linegraph.Graph, error) {
	g, err := h.lineGraph(s, edgeView)
	if err != nil {
		return nil, err
	}

	return g.Clone(), nil
}

// lineGraph returns the cached master graph; callers must not mutate it.
func (h *Hypergraph) lineGraph(s int, edgeView bool) (*linegraph.Graph, error) {
	cache := h.state.nodeLG
	if edgeView {
		cache = h.state.edgeLG
	}
	if g, ok := cache[s]; ok {
		return g, nil
	}

	var (
		g   *linegraph.Graph
		err error
	)
	if edgeView {
		adj, labels, aerr := h.EdgeAdjacencyMatrix(s)
		if aerr != nil {
			return nil, aerr
		}
		g, err = linegraph.FromAdjacency(adj, labels)
	} else {
		adj, labels, aerr := h.AdjacencyMatrix(s)
		if aerr != nil {
			return nil, aerr
		}
		g, err = linegraph.FromAdjacency(adj, labels)
	}
	if err != nil {
		return nil, err
	}
	cache[s] = g

	return g, nil
}

// Neighbors returns the nodes sharing at least s edges with node, sorted.
// ok=false signals an unknown node or an s below 1 — a non-fatal condition,
// not an error.
func (h *Hypergraph) Neighbors(node string, s int) ([]string, bool) {
	if s < 1 || !h.HasNode(node) {
		return nil, false
	}
	g, err := h.lineGraph(s, false)
	if err != nil {
		return nil, false
	}

	return g.Neighbors(node)
}

// EdgeNeighbors returns the edges sharing at least s nodes with edge,
// sorted; ok=false for unknown edges.
func (h *Hypergraph) EdgeNeighbors(edge string, s int) ([]string, bool) {
	if s < 1 || !h.HasEdge(edge) {
		return nil, false
	}
	g, err := h.lineGraph(s, true)
	if err != nil {
		return nil, false
	}

	return g.Neighbors(edge)
}

// SConnectedComponents partitions the s-line graph vertices into maximal
// sets pairwise reachable via s-adjacency. Singleton components are
// excluded unless includeSingletons is set. Components are sorted by their
// smallest member.
func (h *Hypergraph) SConnectedComponents(s int, edgeView, includeSingletons bool) ([][]string, error) {
	g, err := h.lineGraph(s, edgeView)
	if err != nil {
		return nil, err
	}

	return g.ConnectedComponents(includeSingletons), nil
}

// ConnectedComponents is SConnectedComponents at s=1 with singletons
// included.
func (h *Hypergraph) ConnectedComponents(edgeView bool) ([][]string, error) {
	return h.SConnectedComponents(1, edgeView, true)
}

// SComponentSubgraphs returns the sub-hypergraphs induced by each
// s-connected component, in component order.
func (h *Hypergraph) SComponentSubgraphs(s int, edgeView, includeSingletons bool) ([]*Hypergraph, error) {
	comps, err := h.SConnectedComponents(s, edgeView, includeSingletons)
	if err != nil {
		return nil, err
	}
	subs := make([]*Hypergraph, 0, len(comps))
	for _, comp := range comps {
		var (
			sub  *Hypergraph
			rerr error
		)
		if edgeView {
			sub, rerr = h.RestrictToEdges(comp)
		} else {
			sub, rerr = h.RestrictToNodes(comp)
		}
		if rerr != nil {
			return nil, rerr
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

// IsConnected reports whether the s-line graph is connected: every pair of
// nodes (or edges, with edgeView) is joined by an s-walk.
func (h *Hypergraph) IsConnected(s int, edgeView bool) (bool, error) {
	g, err := h.lineGraph(s, edgeView)
	if err != nil {
		return false, err
	}

	return g.IsConnected(), nil
}

// Diameter returns the length of the longest shortest s-walk between nodes.
// Fails with linegraph.ErrNotConnected when the node s-line graph is
// disconnected — the diameter is undefined there.
func (h *Hypergraph) Diameter(s int) (int, error) {
	g, err := h.lineGraph(s, false)
	if err != nil {
		return 0, err
	}

	return g.Diameter()
}

// EdgeDiameter returns the length of the longest shortest s-walk between
// edges; linegraph.ErrNotConnected when the edge s-line graph is
// disconnected.
func (h *Hypergraph) EdgeDiameter(s int) (int, error) {
	g, err := h.lineGraph(s, true)
	if err != nil {
		return 0, err
	}

	return g.Diameter()
}

// NodeDiameters returns the maximum component diameter of the node s-line
// graph, the per-component diameters, and the components themselves
// (sorted by smallest member, singletons included).
func (h *Hypergraph) NodeDiameters(s int) (int, []int, [][]string, error) {
	return h.componentDiameters(s, false)
}

// EdgeDiameters is NodeDiameters for the edge view.
func (h *Hypergraph) EdgeDiameters(s int) (int, []int, [][]string, error) {
	return h.componentDiameters(s, true)
}

func (h *Hypergraph) componentDiameters(s int, edgeView bool) (int, []int, [][]string, error) {
	g, err := h.lineGraph(s, edgeView)
	if err != nil {
		return 0, nil, nil, err
	}
	comps := g.ConnectedComponents(true)
	maxDiam := 0
	diams := make([]int, len(comps))
	for i, comp := range comps {
		diam, derr := g.Subgraph(comp).Diameter()
		if derr != nil {
			return 0, nil, nil, derr
		}
		diams[i] = diam
		if diam > maxDiam {
			maxDiam = diam
		}
	}

	return maxDiam, diams, comps, nil
}

// Distance returns the shortest s-walk length between two nodes. An
// unreachable pair — or an unknown id, or s below 1 — reports +Inf: a
// missing path between two specific nodes is an expected outcome, not a
// structural failure.
func (h *Hypergraph) Distance(source, target string, s int) float64 {
	if s < 1 {
		return math.Inf(1)
	}
	g, err := h.lineGraph(s, false)
	if err != nil {
		return math.Inf(1)
	}

	return g.Distance(source, target)
}

// EdgeDistance is Distance on the edge view: the shortest sequence of
// edges, consecutive ones sharing at least s nodes.
func (h *Hypergraph) EdgeDistance(source, target string, s int) float64 {
	if s < 1 {
		return math.Inf(1)
	}
	g, err := h.lineGraph(s, true)
	if err != nil {
		return math.Inf(1)
	}

	return g.Distance(source, target)
}
