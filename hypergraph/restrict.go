package hypergraph

import (
	"sort"

	"github.com/katalvlaran/hygra/linegraph"
)

// RestrictToEdges constructs a new hypergraph from the subset of edges in
// edgeset; unknown ids are ignored. The receiver is never mutated.
func (h *Hypergraph) RestrictToEdges(edgeset []string, opts ...Option) (*Hypergraph, error) {
	indices, err := h.edges.RowsWhere(0, edgeset)
	if err != nil {
		return nil, err
	}

	return h.restrictRows(indices, opts)
}

// RestrictToNodes constructs a new hypergraph by restricting every edge to
// the nodes in nodeset; edges left empty disappear. The receiver is never
// mutated.
func (h *Hypergraph) RestrictToNodes(nodeset []string, opts ...Option) (*Hypergraph, error) {
	indices, err := h.edges.RowsWhere(1, nodeset)
	if err != nil {
		return nil, err
	}

	return h.restrictRows(indices, opts)
}

func (h *Hypergraph) restrictRows(indices []int, opts []Option) (*Hypergraph, error) {
	sub, err := h.edges.RestrictToRows(indices)
	if err != nil {
		return nil, err
	}
	base := []Option{WithName(h.name)}
	if h.static {
		base = append(base, WithStatic())
	}

	return FromEntity(sub, append(base, opts...)...)
}

// Dual constructs a new hypergraph with the roles of edges and nodes
// reversed, carrying cell weights over.
func (h *Hypergraph) Dual(opts ...Option) (*Hypergraph, error) {
	flipped, err := h.edges.RestrictToLevels([]int{1, 0})
	if err != nil {
		return nil, err
	}
	base := []Option{WithName(h.name)}
	if h.static {
		base = append(base, WithStatic())
	}

	return FromEntity(flipped, append(base, opts...)...)
}

// Bipartite returns the bipartite graph associated with the hypergraph:
// vertices are the nodes and the hyperedges, with an edge (n, e) for every
// node n belonging to hyperedge e. Fails with ErrBipartiteClash when an
// edge id equals a node id.
func (h *Hypergraph) Bipartite() (*linegraph.Graph, error) {
	nodeIDs := h.NodeList()
	edgeIDs := h.EdgeList()
	labels := make([]string, 0, len(nodeIDs)+len(edgeIDs))
	labels = append(labels, nodeIDs...)
	labels = append(labels, edgeIDs...)

	g, err := linegraph.New(labels)
	if err != nil {
		return nil, ErrBipartiteClash
	}
	for edge, members := range h.edges.Elements() {
		for _, node := range members {
			g.SetEdge(node, edge)
		}
	}

	return g, nil
}

// Singletons returns the sorted ids of singleton edges: edges of size 1
// whose only node has degree 1.
func (h *Hypergraph) Singletons() []string {
	elements := h.edges.Elements()
	memberships := h.edges.Memberships()
	var singles []string
	for edge, members := range elements {
		if len(members) == 1 && len(memberships[members[0]]) == 1 {
			singles = append(singles, edge)
		}
	}
	sort.Strings(singles)

	return singles
}

// RemoveSingletons constructs a clone with singleton edges removed.
func (h *Hypergraph) RemoveSingletons(opts ...Option) (*Hypergraph, error) {
	drop := make(map[string]struct{})
	for _, e := range h.Singletons() {
		drop[e] = struct{}{}
	}
	var keep []string
	for _, e := range h.EdgeList() {
		if _, gone := drop[e]; !gone {
			keep = append(keep, e)
		}
	}

	return h.RestrictToEdges(keep, opts...)
}

// Toplexes constructs the simple hypergraph of maximal edges: every edge
// whose node set is not a subset of another edge's. Ties between equal
// sets keep the lexicographically smallest edge id.
func (h *Hypergraph) Toplexes(opts ...Option) (*Hypergraph, error) {
	elements := h.edges.Elements()
	ids := h.EdgeList()
	sets := make(map[string]map[string]struct{}, len(ids))
	for _, e := range ids {
		set := make(map[string]struct{}, len(elements[e]))
		for _, n := range elements[e] {
			set[n] = struct{}{}
		}
		sets[e] = set
	}

	var tops []string
	for _, e := range ids {
		maximal := true
		kept := make([]string, 0, len(tops))
		for _, top := range tops {
			if subset(sets[e], sets[top]) {
				maximal = false
				break
			}
			if !subset(sets[top], sets[e]) {
				kept = append(kept, top) // top absorbed by e otherwise
			}
		}
		if maximal {
			tops = append(kept, e)
		}
	}

	return h.RestrictToEdges(tops, opts...)
}

func subset(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}

	return true
}
