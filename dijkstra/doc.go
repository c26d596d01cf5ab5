// Package dijkstra implements single-source shortest paths on a core.Graph
// with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source node to every
//     reachable node in O((V + E) log V) time.
//   - The frontier is a binary min-heap of (tentativeDistance, node) entries
//     ordered by distance, then by node id, so runs are reproducible.
//   - Lazy deletion: when a shorter path to v is found a new entry is pushed
//     and the old one stays in the heap; entries for already-finalized nodes
//     are discarded on extraction.
//
// Key features:
//
//   - Result.Dist[v] is math.Inf(1) for unreachable nodes, Result.Prev[v] is -1
//     for the source and for unreachable nodes.
//   - Result.PathTo(v) rebuilds source→…→v or fails with ErrUnreachable.
//   - WithMaxDistance(d): nodes farther than d are not explored.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are treated as walls.
//   - WithLogger(l): debug summary of the run through log/slog.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap may hold up to E stale entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          nil *core.Graph.
//   - ErrSourceOutOfRange:  source outside [0, n); wraps core.ErrOutOfRange.
//   - ErrNegativeWeight:    any negative edge weight, detected by an O(E)
//     pre-scan before the search starts; wraps core.ErrInvalidEdge.
//   - ErrUnreachable:       PathTo on a node the search never reached; wraps
//     core.ErrDisconnected.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised (via panic) by the option
//     constructors on invalid arguments.
package dijkstra
