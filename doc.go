// Package kruskals computes minimum spanning trees of city-distance graphs
// with Kruskal's algorithm on top of a union-find structure.
//
// 🚀 What is inside?
//
//	dsu/          — fixed-size Disjoint-Set: Find with path compression, Union by size
//	core/         — Edge over dense int ids, and the caller-owned label ↔ id Index
//	prim_kruskal/ — Kruskal (sort + union-find) and Prim (min-heap) spanning forests
//	edgelist/     — parser for "city,neighbour,distance[,neighbour,distance]..." files
//	report/       — City / City / Distance table and the sum of all distances
//	cmd/kruskals  — command-line front end (cobra, TOML config, zerolog)
//
// The algorithm packages are pure: they take (vertexCount, edges) and return
// (acceptedEdges, totalWeight), never read files, never log, and keep no
// package-level state. Labels stay with the caller in a core.Index.
//
// Quick ASCII example:
//
//	    A───1───B
//	     ╲      │
//	      3     2
//	       ╲    │
//	        ╲── C───4───D
//
// Kruskal accepts A–B (1), B–C (2), skips A–C (3, would close a cycle) and
// accepts C–D (4): total 7.
//
//	go install github.com/katalvlaran/kruskals/cmd/kruskals@latest
package kruskals
