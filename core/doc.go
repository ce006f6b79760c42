// Package core defines the value types shared by every other package: the
// weighted undirected Edge over dense integer vertex ids, and the Index that
// maps external labels (city names) to those ids.
//
// Identity vs. label
//
//   - A vertex is identified by a dense int in [0, n). Algorithms (dsu,
//     prim_kruskal) only ever see these ints.
//   - A label is the display string a caller reads from its input. The Index
//     owns the label↔id mapping and is passed around explicitly; there is no
//     package-level registry.
//
// Index assigns ids in first-seen order starting at 0, so after interning k
// distinct labels the ids are exactly 0..k-1, which is what dsu.New expects.
// Index is safe for concurrent use (a single sync.RWMutex guards both
// directions of the mapping).
//
// Edge:
//
//	From   int   // endpoint id
//	To     int   // endpoint id
//	Weight int64 // distance; (a,b,w) and (b,a,w) denote the same edge
//
// Errors:
//
//	ErrEmptyLabel        – zero-length (or all-space) label passed to Intern
//	ErrVertexNotFound    – Label called with an unknown id
//	ErrVertexOutOfRange  – ValidateEdges found an endpoint outside [0, n)
package core
