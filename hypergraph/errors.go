package hypergraph

import "errors"

// Sentinel errors for hypergraph operations. Structural errors from store
// construction surface as entity.ErrSchema / entity.ErrImmutable, and
// disconnected-diameter failures as linegraph.ErrNotConnected.
var (
	// ErrSValue indicates an adjacency threshold below 1.
	ErrSValue = errors.New("hypergraph: s must be at least 1")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("hypergraph: invalid option supplied")

	// ErrSnapshot indicates a snapshot file that was not produced by Save
	// (bad magic, wrong version, or truncated payload).
	ErrSnapshot = errors.New("hypergraph: unrecognized snapshot")

	// ErrBipartiteClash indicates an edge id and a node id share one label,
	// so the bipartite view cannot name its vertices unambiguously.
	ErrBipartiteClash = errors.New("hypergraph: edge and node ids overlap")
)
