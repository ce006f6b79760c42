// Package prim_kruskal computes a minimum spanning forest of an undirected,
// weighted graph given as a vertex count and a slice of core.Edge values over
// the dense ids [0, vertexCount).
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     When G is not connected the same procedure yields a minimum spanning forest: one MST per component.
//
//   - Why MST matters: cheapest road / cable / pipe network joining a set of cities,
//     single-linkage clustering, and as a subroutine of TSP approximations.
//
// Algorithms Provided
//
//   - Kruskal(vertexCount int, edges []core.Edge) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort a copy of the edges by weight, then scan them from lightest to heaviest.
//     A dsu.DisjointSet tells whether the endpoints are already connected; an edge joining two
//     different components is accepted and the components are merged, every other edge would
//     close a cycle and is discarded. The scan stops early once vertexCount−1 edges are accepted.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: equal weights keep their input order (sort.SliceStable), so the
//     accepted sequence depends only on (vertexCount, edges).
//
//   - Prim(vertexCount int, edges []core.Edge, root int) ([]core.Edge, int64, error)
//
//   - Strategy: grow a tree from root with a min-heap of frontier edges; when the heap runs dry
//     restart from the lowest-id vertex not yet reached, so disconnected inputs also yield a forest.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Use-Case: cross-checking Kruskal, or when a tree grown outward from a known hub reads better.
//
// Results
//
//	Both functions return the accepted edges in acceptance order and their total weight.
//	For a connected graph exactly vertexCount−1 edges are returned; for k components, vertexCount−k.
//	An empty input (vertexCount == 0, or no edges) returns an empty slice and 0. Neither function
//	ever mutates the caller's edge slice.
//
// Error Conditions
//
//	- ErrInvalidVertexCount : vertexCount < 0.
//	- core.ErrVertexOutOfRange : an edge endpoint lies outside [0, vertexCount). Reported before any
//	  selection happens; ids are never clamped.
//	- ErrInvalidRoot (Prim only) : root outside [0, vertexCount) while vertexCount > 0.
//	- ErrUnknownMethod (Compute only) : MSTOptions.Method is neither MethodKruskal nor MethodPrim.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
