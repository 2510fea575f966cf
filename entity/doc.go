// Package entity implements the incidence store underlying hypergraphs:
// a canonical, categorically encoded representation of an n-level relation
// (edges × nodes, optionally more levels) with per-row cell weights and a
// typed cache of derived artifacts.
//
// Overview:
//
//   - Construction accepts five raw shapes — a named-column table, a slice of
//     (edge, node) pairs, a map of id → members, a list of member lists, and a
//     pre-encoded integer array with explicit labels — and normalizes all of
//     them into one canonical tabular form before anything else happens.
//   - The canonical table flows through the weight resolver (install a given
//     sequence, reuse a named column, or default every row to weight 1) and
//     the duplicate aggregator (group by the level tuple, combine weights).
//   - Level identifiers are interned per level into small non-negative codes;
//     the id↔code mapping is a bijection that is stable for the lifetime of
//     the store.
//
// Derived artifacts (unique-id sets per level, level-pair grouping maps,
// dimension counts, the cell-weight index) are computed on first access and
// memoized behind a single typed cache. Every mutation (AddRows, RemoveRows)
// clears the entire cache before returning, so a cache entry is always either
// absent or consistent with the current rows. Accessors return copies, never
// handles into the cache.
//
// A store built with WithStatic is immutable: mutation returns ErrImmutable
// and callers may rely on cached artifacts never going stale.
//
// Error handling (sentinel errors):
//
//   - ErrSchema: malformed construction input (ragged array, label arity
//     mismatch, out-of-range codes). No partial store is ever returned.
//   - ErrImmutable: mutation attempted on a static store.
//   - ErrLevel / ErrRowIndex: out-of-range level or row references.
//   - ErrOptionViolation: an invalid functional option was supplied.
package entity
