// Package hygra is an in-memory toolkit for building, exploring, and
// analyzing hypergraphs — set systems in which one (hyper)edge may contain
// any number of nodes.
//
// 🚀 What is hygra?
//
//	A sparse-first hypergraph library that brings together:
//		• Incidence stores: compact categorical encoding of (edge, node, …) relations
//		• Flexible construction: tables, maps, lists, pairs, or pre-encoded arrays
//		• Cell weights: per-incidence weights with configurable duplicate aggregation
//		• Sparse matrices: node×edge incidence and s-adjacency via CSR products
//		• s-line graphs: neighbors, connected components, diameters, distances
//		• Restriction & duality: sub-hypergraphs, dual hypergraphs, bipartite views
//		• Snapshots: save and recover a hypergraph state as one atomic file
//
// ✨ Why choose hygra?
//
//   - One canonical pipeline — every input shape normalizes to the same tabular
//     form before weights, aggregation and encoding are applied
//   - Cache you can trust — every derived artifact is memoized behind a typed
//     cache that is cleared, in full, by every structural mutation
//   - Deterministic — all iteration orders are sorted, all encodings stable
//   - Sparse by default — adjacency is computed as M·Mᵗ on CSR matrices,
//     never densified
//
// Everything is organized under three subpackages:
//
//	entity/     — the incidence store: encoding, weights, grouping, restriction
//	linegraph/  — plain undirected graphs with label vertices (built on gonum)
//	hypergraph/ — the facade: mutation, matrices, s-connectivity, persistence
//
// Quick ASCII example:
//
//	    e1 = {1,2}   e2 = {1,2}   e3 = {1,2,3}
//
//	represents a hypergraph with 3 edges over 3 nodes; at s=2 the nodes 1 and 2
//	are adjacent (they co-occur in 3 edges), while node 3 is isolated.
//
//	go get github.com/katalvlaran/hygra/hypergraph
package hygra
