package hypergraph

import (
	"fmt"

	"github.com/katalvlaran/hygra/entity"
)

// Hypergraph is the facade over two incidence stores: the edge view (edge
// ids at level 0, node ids at level 1) and the node view derived from it
// (an isolated-node container tracking the node universe). All queries
// delegate to the stores and to the state cache; all mutations write through
// the stores and end in Refresh.
type Hypergraph struct {
	name   string
	static bool
	edges  *entity.Entity
	nodes  *entity.Entity
	state  *stateCache
}

// New constructs a hypergraph from a raw set system. A nil src yields an
// empty hypergraph. The edge store keeps the levels as given; the node
// store is derived by restricting to level 1 with weights dropped and no
// aggregation. Refresh runs once before returning.
//
// Returns entity.ErrSchema for malformed input (including fewer than two
// levels) and ErrOptionViolation for invalid options.
func New(src entity.Source, opts ...Option) (*Hypergraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if src == nil {
		src = entity.FromPairs(nil)
	}

	edges, err := entity.New(src, o.entityOptions("Edges")...)
	if err != nil {
		return nil, err
	}

	return fromEdgeStore(edges, o.Name, o.Static)
}

// FromEntity wraps an existing edge store (level 0 = edges, level 1 =
// nodes) into a hypergraph, deriving the node store from it. Used by Dual
// and the restriction operations. The store is not copied: the hypergraph
// takes ownership.
func FromEntity(edges *entity.Entity, opts ...Option) (*Hypergraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return fromEdgeStore(edges, o.Name, o.Static || edges.IsStatic())
}

func fromEdgeStore(edges *entity.Entity, name string, static bool) (*Hypergraph, error) {
	if edges.Dimsize() < 2 {
		return nil, fmt.Errorf("%w: hypergraph needs at least 2 levels, got %d", entity.ErrSchema, edges.Dimsize())
	}
	nodes, err := edges.RestrictToLevels([]int{1}, entity.WithUID("Nodes"))
	if err != nil {
		return nil, err
	}
	h := &Hypergraph{name: name, static: static, edges: edges, nodes: nodes}
	h.Refresh()

	return h, nil
}

// Name returns the display name given at construction.
func (h *Hypergraph) Name() string { return h.name }

// IsStatic reports whether mutation is forbidden.
func (h *Hypergraph) IsStatic() bool { return h.static }

// Edges returns the underlying edge store. Treat it as read-only: mutating
// it directly bypasses Refresh.
func (h *Hypergraph) Edges() *entity.Entity { return h.edges }

// Nodes returns the underlying node store. Treat it as read-only.
func (h *Hypergraph) Nodes() *entity.Entity { return h.nodes }

// EdgeList returns the sorted edge ids.
func (h *Hypergraph) EdgeList() []string {
	ids, _ := h.edges.UIDSet(0)
	return ids
}

// NodeList returns the sorted node ids.
func (h *Hypergraph) NodeList() []string {
	ids, _ := h.nodes.UIDSet(0)
	return ids
}

// HasEdge reports whether id names an edge.
func (h *Hypergraph) HasEdge(id string) bool { return h.edges.Contains(0, id) }

// HasNode reports whether id names a node.
func (h *Hypergraph) HasNode(id string) bool { return h.nodes.Contains(0, id) }

// IncidenceDict maps every edge id to the node ids it contains, in row
// order.
func (h *Hypergraph) IncidenceDict() map[string][]string {
	return h.edges.Elements()
}

// Shape returns (number of nodes, number of edges).
func (h *Hypergraph) Shape() (nodes, edges int) {
	n, _ := h.nodes.Size(0)
	e, _ := h.edges.Size(0)

	return n, e
}

// Order returns the number of nodes.
func (h *Hypergraph) Order() int {
	n, _ := h.nodes.Size(0)
	return n
}

// NumberOfNodes returns the number of hypergraph nodes in subset, or the
// total node count when subset is nil.
func (h *Hypergraph) NumberOfNodes(subset []string) int {
	if subset == nil {
		return h.Order()
	}
	count := 0
	for _, id := range subset {
		if h.HasNode(id) {
			count++
		}
	}

	return count
}

// NumberOfEdges returns the number of hypergraph edges in subset, or the
// total edge count when subset is nil.
func (h *Hypergraph) NumberOfEdges(subset []string) int {
	if subset == nil {
		e, _ := h.edges.Size(0)
		return e
	}
	count := 0
	for _, id := range subset {
		if h.HasEdge(id) {
			count++
		}
	}

	return count
}

// Degree returns the number of edges of size at least s containing node,
// with ok=false for unknown nodes. Degree(node, 1) is the plain degree.
func (h *Hypergraph) Degree(node string, s int) (int, bool) {
	return h.DegreeBounded(node, s, 0)
}

// DegreeBounded is Degree with an additional upper size bound; maxSize <= 0
// disables the bound.
func (h *Hypergraph) DegreeBounded(node string, s, maxSize int) (int, bool) {
	if !h.HasNode(node) {
		return 0, false
	}
	memberships := h.edges.Memberships()
	elements := h.edges.Elements()
	count := 0
	seen := make(map[string]struct{})
	for _, edge := range memberships[node] {
		if _, dup := seen[edge]; dup {
			continue
		}
		seen[edge] = struct{}{}
		size := len(elements[edge])
		if size >= s && (maxSize <= 0 || size <= maxSize) {
			count++
		}
	}

	return count, true
}

// Size returns the number of nodes in edge, with ok=false for unknown
// edges.
func (h *Hypergraph) Size(edge string) (int, bool) {
	if !h.HasEdge(edge) {
		return 0, false
	}

	return len(h.edges.Elements()[edge]), true
}

// SizeWithin returns the number of nodes of edge that are also in nodeset.
func (h *Hypergraph) SizeWithin(edge string, nodeset []string) (int, bool) {
	if !h.HasEdge(edge) {
		return 0, false
	}
	want := make(map[string]struct{}, len(nodeset))
	for _, n := range nodeset {
		want[n] = struct{}{}
	}
	count := 0
	for _, n := range h.edges.Elements()[edge] {
		if _, ok := want[n]; ok {
			count++
		}
	}

	return count, true
}

// Dim returns Size(edge)-1, the dimension of the edge as a simplex.
func (h *Hypergraph) Dim(edge string) (int, bool) {
	size, ok := h.Size(edge)
	if !ok {
		return 0, false
	}

	return size - 1, true
}

// EdgeSizeDist returns the size of each edge, ordered by sorted edge id.
// Cached until the next Refresh.
func (h *Hypergraph) EdgeSizeDist() []int {
	if h.state.edgeSizeDist == nil {
		elements := h.edges.Elements()
		ids := h.EdgeList()
		dist := make([]int, len(ids))
		for i, id := range ids {
			dist[i] = len(elements[id])
		}
		h.state.edgeSizeDist = dist
	}

	return append([]int(nil), h.state.edgeSizeDist...)
}

// String renders the hypergraph as Hypergraph(name, nodes×edges).
func (h *Hypergraph) String() string {
	n, e := h.Shape()
	return fmt.Sprintf("Hypergraph(%s, %d nodes × %d edges)", h.name, n, e)
}
