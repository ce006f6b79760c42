package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kruskals/core"
	"github.com/katalvlaran/kruskals/dsu"
)

// ErrInvalidVertexCount indicates a negative vertex count.
var ErrInvalidVertexCount = errors.New("prim_kruskal: vertex count must be non-negative")

// ErrInvalidRoot indicates that Prim's start vertex is outside [0, vertexCount).
var ErrInvalidRoot = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — start vertex id for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, Root = 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(vertexCount, edges).
//	– MethodPrim:    Prim(vertexCount, edges, opts.Root).
//	– otherwise:     ErrUnknownMethod.
func Compute(vertexCount int, edges []core.Edge, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(vertexCount, edges)
	case MethodPrim:
		return Prim(vertexCount, edges, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// Components returns the number of trees in the forest formed by vertexCount
// vertices and the given edges. For an acyclic result of Kruskal or Prim
// this equals vertexCount − len(forest).
// Complexity: O(V + E·α(V)).
func Components(vertexCount int, forest []core.Edge) (int, error) {
	if vertexCount < 0 {
		return 0, ErrInvalidVertexCount
	}
	if err := core.ValidateEdges(vertexCount, forest); err != nil {
		return 0, err
	}
	set, err := dsu.New(vertexCount)
	if err != nil {
		return 0, err
	}
	for _, e := range forest {
		ru, _ := set.Find(e.From)
		rv, _ := set.Find(e.To)
		if err := set.Union(ru, rv); err != nil {
			return 0, err
		}
	}

	return set.Count(), nil
}

// validateInput is the shared precondition check of Kruskal and Prim.
func validateInput(vertexCount int, edges []core.Edge) error {
	if vertexCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVertexCount, vertexCount)
	}

	return core.ValidateEdges(vertexCount, edges)
}
