package prim_kruskal_test

import (
	"math/rand"

	"github.com/katalvlaran/kruskals/core"
)

// e is shorthand for core.NewEdge in table-driven tests.
func e(u, v int, w int64) core.Edge { return core.NewEdge(u, v, w) }

// buildRandomGraph creates n vertices and edgesCount edges with weights in [1, maxWeight].
// When connected is true the first n−1 edges form a chain V0—V1—…—V(n−1).
// Parallel edges and self-loops may occur; both algorithms must cope with them.
func buildRandomGraph(r *rand.Rand, n, edgesCount int, maxWeight int64, connected bool) []core.Edge {
	edges := make([]core.Edge, 0, edgesCount)
	if connected {
		for i := 1; i < n && len(edges) < edgesCount; i++ {
			edges = append(edges, e(i-1, i, 1+r.Int63n(maxWeight)))
		}
	}
	for len(edges) < edgesCount {
		edges = append(edges, e(r.Intn(n), r.Intn(n), 1+r.Int63n(maxWeight)))
	}
	r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	return edges
}

// componentsOf counts connected components by BFS, independently of package dsu.
func componentsOf(n int, edges []core.Edge) int {
	adj := make([][]int, n)
	for _, ed := range edges {
		adj[ed.From] = append(adj[ed.From], ed.To)
		adj[ed.To] = append(adj[ed.To], ed.From)
	}
	seen := make([]bool, n)
	count := 0
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		count++
		seen[s] = true
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
	}

	return count
}

// isForest reports whether edges contain no cycle: a graph on n vertices with
// m edges and c components is acyclic iff m == n − c.
func isForest(n int, edges []core.Edge) bool {
	return len(edges) == n-componentsOf(n, edges)
}

// bruteForceMST enumerates every (n−1)-edge subset and returns the minimum total
// weight of those forming a spanning tree, or false when none exists.
// Only for tiny graphs.
func bruteForceMST(n int, edges []core.Edge) (int64, bool) {
	if n <= 1 {
		return 0, true
	}
	k := n - 1
	best, found := int64(0), false
	pick := make([]core.Edge, 0, k)

	var rec func(start int)
	rec = func(start int) {
		if len(pick) == k {
			if componentsOf(n, pick) == 1 {
				w := core.TotalWeight(pick)
				if !found || w < best {
					best, found = w, true
				}
			}
			return
		}
		for i := start; i <= len(edges)-(k-len(pick)); i++ {
			pick = append(pick, edges[i])
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)

	return best, found
}
