// Package knapsack solves the 0/1 knapsack problem: choose a subset of items
// whose total weight fits the capacity and whose total value is maximal.
//
// Solve runs branch-and-bound on top of backtrack.Optimize:
//
//   - Items are stably sorted by value density (value/weight, descending).
//   - A decision is the sorted position of the next item to include, so the
//     positions along a path are strictly increasing and every node is itself
//     a feasible selection.
//   - The bound is the fractional relaxation: fill the remaining capacity
//     greedily from the items after the last decision, taking a fraction of
//     the first item that does not fit.
//   - WithGreedySeed starts the search from the Greedy selection instead of
//     the empty knapsack, which tightens pruning from the first node.
//
// SolveDP is the classic O(n·C) table, useful as a cross-check for moderate
// integer capacities. Greedy is the density heuristic on its own.
//
// Result.Items always lists original item indices in ascending order.
//
// Values are summed as int64; the search compares them as float64, which is
// exact up to 2^53.
package knapsack
