package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrEmptyLabel indicates that an empty vertex label was supplied.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrVertexNotFound indicates a lookup referenced an id the Index never assigned.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, vertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")
)

// Edge is an undirected weighted connection between two vertex ids.
//
// Edges are plain values: copying one never aliases another.
type Edge struct {
	// From is one endpoint id.
	From int

	// To is the other endpoint id.
	To int

	// Weight is the distance between the endpoints.
	Weight int64
}

// NewEdge returns the edge (from, to, weight).
func NewEdge(from, to int, weight int64) Edge {
	return Edge{From: from, To: to, Weight: weight}
}

// Endpoints returns the ids ordered so that the first is not greater than the second.
// Useful for comparing edges regardless of orientation.
func (e Edge) Endpoints() (int, int) {
	if e.From > e.To {
		return e.To, e.From
	}

	return e.From, e.To
}

// String implements fmt.Stringer as "from-to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.From, e.To, e.Weight)
}

// ValidateEdges checks that every endpoint of every edge lies in [0, vertexCount).
// The first offending edge is reported, wrapped around ErrVertexOutOfRange.
// Complexity: O(E).
func ValidateEdges(vertexCount int, edges []Edge) error {
	for i, e := range edges {
		for _, id := range [2]int{e.From, e.To} {
			if id < 0 || id >= vertexCount {
				return fmt.Errorf("%w: edge #%d %s references %d, want [0,%d)",
					ErrVertexOutOfRange, i, e, id, vertexCount)
			}
		}
	}

	return nil
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
