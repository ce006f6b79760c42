package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/kruskals/core"
)

// Prim computes the minimum spanning forest by growing trees with a min-heap.
//
// Error Conditions:
//   - ErrInvalidVertexCount    : vertexCount < 0.
//   - core.ErrVertexOutOfRange : an endpoint outside [0, vertexCount).
//   - ErrInvalidRoot           : vertexCount > 0 and root ∉ [0, vertexCount).
//
// Steps:
//  1. Validate; build adjacency lists of edge positions (self-loops dropped).
//  2. Start at root: mark it visited and push its incident edges.
//  3. While the heap is not empty: pop the lightest edge; skip it if its far end is visited,
//     otherwise accept it (oriented from the tree outwards), mark the far end and push its edges.
//  4. When the heap empties before every vertex is visited, restart from the lowest-id
//     unvisited vertex. Each restart begins a new tree of the forest.
//
// Heap ties are broken by input position, so the result is deterministic.
// The total weight always equals Kruskal's; the edge order generally differs.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(vertexCount int, edges []core.Edge, root int) ([]core.Edge, int64, error) {
	// 1. Validate.
	if err := validateInput(vertexCount, edges); err != nil {
		return nil, 0, err
	}
	mst := make([]core.Edge, 0, maxTreeEdges(vertexCount, len(edges)))
	if vertexCount == 0 {
		return mst, 0, nil
	}
	if root < 0 || root >= vertexCount {
		return nil, 0, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidRoot, root, vertexCount)
	}

	// adj[v] lists the positions in edges incident to v.
	adj := make([][]int, vertexCount)
	for i, e := range edges {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], i)
		adj[e.To] = append(adj[e.To], i)
	}

	var (
		visited     = make([]bool, vertexCount)
		pq          = &edgePQ{}
		totalWeight int64
		next        = 0 // lowest id that may still be unvisited
	)
	visit := func(v int) {
		visited[v] = true
		for _, pos := range adj[v] {
			e := edges[pos]
			far := e.To
			if far == v {
				far = e.From
			}
			if !visited[far] {
				heap.Push(pq, frontierEdge{edge: core.NewEdge(v, far, e.Weight), pos: pos})
			}
		}
	}

	// 2. Seed the first tree.
	visit(root)
	for len(mst) < vertexCount-1 {
		// 4. Restart on the next unreached vertex.
		if pq.Len() == 0 {
			for next < vertexCount && visited[next] {
				next++
			}
			if next == vertexCount {
				break
			}
			visit(next)
			continue
		}

		// 3. Expand.
		fe := heap.Pop(pq).(frontierEdge)
		if visited[fe.edge.To] {
			continue
		}
		mst = append(mst, fe.edge)
		totalWeight += fe.edge.Weight
		visit(fe.edge.To)
	}

	return mst, totalWeight, nil
}

// frontierEdge is a heap entry: the edge oriented from the tree outward and
// its position in the caller's slice, used as a tie-breaker.
type frontierEdge struct {
	edge core.Edge
	pos  int
}

// edgePQ implements heap.Interface for a min-heap of frontierEdge, ordered by
// Weight, then input position.
type edgePQ []frontierEdge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].pos < pq[j].pos
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be a frontierEdge. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	fe := old[n-1]
	*pq = old[:n-1]

	return fe
}
