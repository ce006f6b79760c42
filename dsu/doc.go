// Package dsu implements a fixed-size Disjoint-Set (Union-Find) over the dense
// integer ids 0..n-1.
//
// What & Why
//
//   - A DisjointSet tracks a partition of {0, …, n-1} into disjoint trees, each
//     rooted at a representative. Kruskal's algorithm asks one question per edge:
//     "are the endpoints already connected?". Find answers it, Union records
//     the new connection.
//
//   - Path compression (every node visited by Find is re-pointed at the root)
//     combined with union by size keeps each operation amortized O(α(n)), so the
//     O(E log E) edge sort stays the dominant cost of Kruskal.
//
// Contract
//
//   - New(n)          : n singleton sets; n < 0 → ErrNegativeSize.
//   - Find(x)         : representative of x; x ∉ [0,n) → ErrOutOfRange.
//   - Union(rx, ry)   : rx, ry must be representatives (results of Find).
//     Equal roots are a no-op; otherwise the smaller tree is attached under
//     the larger, ties attach ry under rx.
//
// Out-of-range ids are always reported, never clamped: the parent/size arrays
// are sized once at construction and are never indexed outside [0,n).
//
// A DisjointSet is not safe for concurrent use.
package dsu
