// Package dfs implements depth-first traversal and topological sort on a
// core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Neighbor filtering
//   - Forest traversal over every component (WithFullTraversal)
//   - TopologicalSort: a linear order of a directed graph's nodes such that
//     every edge u→v has u before v. A cycle fails with ErrCycleDetected and
//     the error message names the nodes of one cycle.
//
// Both walks keep an explicit stack of (node, next-neighbor) frames, so
// depth is not limited by the goroutine stack. Roots are tried in ascending
// id and neighbors in adjacency order, which makes every result reproducible.
//
// Node states follow the usual coloring: White (unvisited), Gray (on the
// stack), Black (finished).
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartOutOfRange      start node not in [0, n)
//   - ErrNotDirected          TopologicalSort on an undirected graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
