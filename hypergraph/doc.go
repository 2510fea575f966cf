// Package hypergraph provides the hypergraph facade: construction from raw
// set systems, structural mutation, sparse incidence/adjacency matrices, and
// the s-parameterized connectivity family (line graphs, components,
// diameters, distances).
//
// A Hypergraph owns two incidence stores — the edge view (levels as given,
// edge ids at level 0, node ids at level 1) and a node view derived by
// restricting the edge view to level 1 — plus a typed state cache of derived
// artifacts: the raw (row, col, weight) triples, per-s line graphs for both
// views, incidence matrices, and the edge size distribution.
//
// Cache discipline:
//
//	Every artifact is computed lazily on first query and memoized. Refresh
//	rebuilds the raw triples and drops every other entry; it runs once at
//	construction and after every structural mutation, and is the only
//	invalidation trigger. Bulk mutations (AddEdgesFrom, RemoveNodes, …)
//	defer the refresh to the end of the batch.
//
// s-metrics:
//
//	Two nodes are s-adjacent when they co-occur in at least s edges; two
//	edges are s-adjacent when they share at least s nodes. Adjacency is
//	computed sparsely as M·Mᵗ (resp. Mᵗ·M) with the diagonal zeroed and
//	entries thresholded at s. Thresholding always operates on unweighted
//	co-occurrence counts: weighted s-adjacency is intentionally not part of
//	the surface.
//
// Failure modes follow the severity of the condition:
//
//   - malformed construction input → entity.ErrSchema (fatal, no partial
//     hypergraph);
//   - diameter of a disconnected structure → linegraph.ErrNotConnected
//     (fatal to that call);
//   - id collisions on AddEdge, unknown ids on Neighbors, missing s-paths →
//     non-fatal signals (false, ok=false, +Inf) and execution continues.
//
// Hypergraphs are single-owner, single-writer: no internal locking, callers
// serialize access externally, and concurrent mutation is undefined
// behavior by contract.
package hypergraph
