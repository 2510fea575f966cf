package hypergraph

import "sort"

// AddEdge inserts a new edge with the given member nodes, instantiating any
// node ids not yet present, then refreshes the state cache.
//
// The add is skipped — reported as false, never an error — when the
// hypergraph is static, when members is empty, or when id collides with an
// existing edge or node id.
func (h *Hypergraph) AddEdge(id string, members []string) bool {
	if !h.addEdgeDeferred(id, members) {
		return false
	}
	h.Refresh()

	return true
}

// addEdgeDeferred performs the insertion without refreshing.
func (h *Hypergraph) addEdgeDeferred(id string, members []string) bool {
	if h.static || len(members) == 0 {
		return false
	}
	if h.HasEdge(id) || h.HasNode(id) {
		return false
	}

	rows := make([][]string, 0, len(members))
	nodeRows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{id, m})
		nodeRows = append(nodeRows, []string{m})
	}
	if err := h.edges.AddRows(rows, nil); err != nil {
		return false
	}
	// node store aggregates with none, so repeated ids collapse silently
	if err := h.nodes.AddRows(nodeRows, nil); err != nil {
		return false
	}

	return true
}

// AddEdgesFrom inserts every edge of the set (keys visited in sorted order)
// with one deferred Refresh at the end of the batch. Returns the number of
// edges actually added.
func (h *Hypergraph) AddEdgesFrom(edges map[string][]string) int {
	ids := make([]string, 0, len(edges))
	for id := range edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	added := 0
	for _, id := range ids {
		if h.addEdgeDeferred(id, edges[id]) {
			added++
		}
	}
	if added > 0 {
		h.Refresh()
	}

	return added
}

// AddNodeToEdge adds one node to an existing edge, instantiating the node
// if needed. Reports false when the hypergraph is static, the edge is
// unknown, or the node already belongs to the edge.
func (h *Hypergraph) AddNodeToEdge(node, edge string) bool {
	if h.static || !h.HasEdge(edge) {
		return false
	}
	for _, m := range h.edges.Elements()[edge] {
		if m == node {
			return false
		}
	}
	if err := h.edges.AddRows([][]string{{edge, node}}, nil); err != nil {
		return false
	}
	if err := h.nodes.AddRows([][]string{{node}}, nil); err != nil {
		return false
	}
	h.Refresh()

	return true
}

// RemoveEdge deletes an edge and every node left with no remaining edge
// membership, then refreshes. Reports false when the hypergraph is static
// or the edge is unknown.
func (h *Hypergraph) RemoveEdge(id string) bool {
	if !h.removeEdgeDeferred(id) {
		return false
	}
	h.Refresh()

	return true
}

func (h *Hypergraph) removeEdgeDeferred(id string) bool {
	if h.static || !h.HasEdge(id) {
		return false
	}
	members := h.edges.Elements()[id]
	if _, err := h.edges.RemoveRows(func(row []string) bool { return row[0] == id }); err != nil {
		return false
	}
	// drop nodes orphaned by the removal
	for _, m := range members {
		if !h.edges.Contains(1, m) {
			_, _ = h.nodes.RemoveRows(func(row []string) bool { return row[0] == m })
		}
	}

	return true
}

// RemoveEdges deletes every named edge with one deferred Refresh. Returns
// the number of edges actually removed.
func (h *Hypergraph) RemoveEdges(ids []string) int {
	removed := 0
	for _, id := range ids {
		if h.removeEdgeDeferred(id) {
			removed++
		}
	}
	if removed > 0 {
		h.Refresh()
	}

	return removed
}

// RemoveNode deletes a node from every edge containing it and from the node
// universe, then refreshes. Edges reduced to zero members disappear with
// it. Reports false when the hypergraph is static or the node is unknown.
func (h *Hypergraph) RemoveNode(id string) bool {
	if !h.removeNodeDeferred(id) {
		return false
	}
	h.Refresh()

	return true
}

func (h *Hypergraph) removeNodeDeferred(id string) bool {
	if h.static || !h.HasNode(id) {
		return false
	}
	if _, err := h.edges.RemoveRows(func(row []string) bool { return row[1] == id }); err != nil {
		return false
	}
	_, _ = h.nodes.RemoveRows(func(row []string) bool { return row[0] == id })

	return true
}

// RemoveNodes deletes every named node with one deferred Refresh. Returns
// the number of nodes actually removed.
func (h *Hypergraph) RemoveNodes(ids []string) int {
	removed := 0
	for _, id := range ids {
		if h.removeNodeDeferred(id) {
			removed++
		}
	}
	if removed > 0 {
		h.Refresh()
	}

	return removed
}
