// Package core provides the weighted graph model shared by every engine in
// lvlsearch: dense zero-based node ids, an edge list, and adjacency views.
//
// The Graph G = (V,E) is built once from a node count and an edge list and is
// read-only afterwards, so no locking is involved:
//
//   - Undirected (default) graphs mirror every edge in both adjacency lists.
//   - Directed graphs (WithDirected) store only from→to.
//   - Parallel edges are preserved unless WithKeepMinParallel is given, in
//     which case only the cheapest edge per pair survives, at the position of
//     its first occurrence.
//   - Self-loops are stored once.
//
// Construction:
//
//	g, err := core.NewGraph(4, []core.Edge{
//	    {From: 0, To: 1, Weight: 2},
//	    {From: 1, To: 2, Weight: 3},
//	}, core.WithDirected())
//
// Query methods:
//
//	NodeCount() int                        // O(1)
//	EdgeCount() int                        // O(1), undirected edges counted once
//	Edges() []Edge                         // O(E) copy, insertion order
//	Neighbors(u int) ([]Neighbor, error)   // O(1), shared slice
//	Weight(u, v int) (float64, bool)       // O(deg(u))
//	HasNegativeWeight() (Edge, bool)       // O(E)
//
// Errors:
//
//	ErrNegativeNodeCount – n < 0
//	ErrOutOfRange        – node id outside [0, n)
//	ErrInvalidEdge       – endpoint out of range or NaN weight
//	ErrDisconnected      – shared kind wrapped by engines that need reachability
package core
