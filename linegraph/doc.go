// Package linegraph provides a plain undirected graph with user-facing
// string labels for vertices, built on gonum's graph stack.
//
// It is the engine behind hypergraph s-connectivity: a Graph is typically
// constructed from an s-adjacency matrix (FromAdjacency), with vertices
// labeled by the original hyperedge or node ids, and then queried for
// neighbors, connected components, diameters, and shortest-path distances.
//
// Conventions:
//
//   - Vertex order is fixed at construction; all query results are sorted
//     by label, so every operation is deterministic.
//   - A missing label is a non-fatal condition: Neighbors reports ok=false,
//     Distance reports +Inf.
//   - Diameter on a disconnected (or empty) graph fails with
//     ErrNotConnected — the quantity is undefined there. An unreachable
//     pair in Distance is an expected outcome and reports +Inf instead.
//
// The heavy lifting delegates to gonum: simple.UndirectedGraph for storage,
// topo.ConnectedComponents for components, traverse.BreadthFirst for
// unweighted distances.
package linegraph
