package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/kruskals/core"
	"github.com/katalvlaran/kruskals/dsu"
)

// Kruskal computes the minimum spanning forest of an undirected, weighted graph
// with vertices [0, vertexCount) and the given edges.
//
// Error Conditions:
//   - ErrInvalidVertexCount    : vertexCount < 0.
//   - core.ErrVertexOutOfRange : an endpoint outside [0, vertexCount).
//
// Steps:
//  1. Validate vertexCount and every endpoint.
//  2. Copy the edges and stable-sort the copy by ascending Weight, so equal weights keep input order.
//  3. Initialize a dsu.DisjointSet over vertexCount singletons.
//  4. For each edge (u,v,w): ru = Find(u), rv = Find(v); if ru != rv accept the edge,
//     add w to the total and Union(ru, rv); otherwise discard it (it would close a cycle).
//  5. Stop once vertexCount−1 edges are accepted.
//
// A disconnected graph is not an error: the result simply has fewer than vertexCount−1 edges.
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(vertexCount int, edges []core.Edge) ([]core.Edge, int64, error) {
	// 1. Validate.
	if err := validateInput(vertexCount, edges); err != nil {
		return nil, 0, err
	}
	mst := make([]core.Edge, 0, maxTreeEdges(vertexCount, len(edges)))
	if vertexCount == 0 || len(edges) == 0 {
		return mst, 0, nil
	}

	// 2. Sort a copy; the caller's slice keeps its order.
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. One singleton set per vertex.
	set, err := dsu.New(vertexCount)
	if err != nil {
		return nil, 0, err
	}

	// 4. Scan lightest first.
	var totalWeight int64
	for _, e := range sorted {
		// Endpoints were validated above, Find cannot fail.
		ru, _ := set.Find(e.From)
		rv, _ := set.Find(e.To)
		if ru == rv {
			continue
		}
		if err := set.Union(ru, rv); err != nil {
			return nil, 0, err
		}
		mst = append(mst, e)
		totalWeight += e.Weight

		// 5. A spanning tree is complete; the rest can only close cycles.
		if len(mst) == vertexCount-1 {
			break
		}
	}

	return mst, totalWeight, nil
}

// maxTreeEdges bounds the result size: a forest on n vertices has at most n−1 edges.
func maxTreeEdges(vertexCount, edgeCount int) int {
	if vertexCount <= 1 {
		return 0
	}
	if edgeCount < vertexCount-1 {
		return edgeCount
	}

	return vertexCount - 1
}
