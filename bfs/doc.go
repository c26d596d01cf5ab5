// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//     Edge weights are ignored; only adjacency matters.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: Depth[v] is the hop count from start, Unreached if never reached
//   - Parent: Parent[v] is v's predecessor in the BFS tree, NoParent for the
//     start and for unreached nodes
//   - Hooks at two stages: OnEnqueue (before a node is queued) and OnVisit
//     (when visiting; may abort with an error).
//   - Filtering of individual edges via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbors are queued in adjacency (edge insertion) order, so the visit
//	sequence is reproducible. Parallel edges and self-loops never queue a
//	node twice.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation,
//	    // context errors, or a wrapped OnVisit error
//	}
//	path, err := res.PathTo(5) // ErrUnreachable wraps core.ErrDisconnected
//
// The Hamiltonian cycle search uses BFS as a cheap pre-check: a node that
// is unreachable from start rules a cycle out before any backtracking.
package bfs
