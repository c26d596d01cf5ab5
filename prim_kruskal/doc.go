// Package prim_kruskal computes minimum spanning trees of undirected weighted
// *core.Graph values with two classic strategies.
//
// What & Why
//
// Given an undirected, connected, weighted graph G = (V, E), a minimum spanning
// tree is a subset T ⊆ E of |V|−1 edges that connects every node and whose
// total weight is minimal. Both algorithms below return the same total; the
// chosen edges may differ only when weights tie.
//
// Algorithms Provided
//
//   - Prim(g, root) grows a single tree from root. A min-heap holds every edge
//     that crosses from the tree to the outside, ordered by
//     (weight, destination id, source id, insertion order). Entries whose
//     destination was absorbed in the meantime are discarded on pop (lazy
//     deletion). This selects exactly the edge a full scan would pick when
//     ties go to the lower destination id.
//     Time O(E log E), space O(V + E).
//
//   - Kruskal(g) sorts all non-loop edges by weight with a stable sort (ties
//     keep insertion order) and accepts each edge whose endpoints lie in
//     different disjoint.Set components, stopping at |V|−1 edges.
//     Time O(E log E + E·α(V)), space O(V + E).
//
//   - Compute(g, opts...) dispatches on WithMethod and is what the CLI calls.
//
// Edge Cases
//
//   - |V| == 0: ErrDisconnected (there is nothing to span).
//   - |V| == 1: empty tree, total 0.
//   - Self-loops never enter a tree; parallel edges compete like any others.
//
// Errors
//
//	ErrInvalidGraph   – nil or directed graph
//	ErrRootOutOfRange – Prim root outside [0, n) (wraps core.ErrOutOfRange)
//	ErrDisconnected   – no spanning tree exists (wraps core.ErrDisconnected)
//	ErrUnknownMethod  – Compute called with an unsupported method name
package prim_kruskal
