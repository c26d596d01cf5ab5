// Package tsp finds minimum-cost tours: Hamiltonian cycles of least total
// weight over a core.Graph.
//
// Two exact solvers share one input model. The graph is read into a dense
// n×n table holding the cheapest u→v edge, +Inf where none exists, so
// parallel edges collapse to their minimum and self-loops are ignored.
// Negative weights are rejected.
//
//   - Solve: depth-first branch-and-bound on backtrack.Optimize.
//     Branching tries the next node in ascending w[last→v] (index tiebreak).
//     The lower bound is the degree-1 relaxation: every node whose outgoing
//     edge is not fixed yet still pays at least minOut[v], and every node
//     whose incoming edge is not fixed pays at least minIn[v], so
//     LB = cost so far + max(Σ minOut, Σ minIn). The incumbent is seeded
//     with the nearest-neighbor tour when that tour closes.
//   - HeldKarp: the O(n²·2ⁿ) subset dynamic program, limited to
//     MaxHeldKarpNodes nodes.
//
// A tour is returned as n+1 node ids beginning and ending at start. One node
// gives the tour [start start] of cost 0; on two nodes the tour goes out and
// back. Only strictly cheaper tours replace the incumbent, so the first
// optimum in branching order is reported.
//
// Errors:
//
//	ErrNilGraph         – nil graph
//	ErrStartOutOfRange  – start outside [0, n) (wraps core.ErrOutOfRange)
//	ErrNegativeWeight   – a negative edge (wraps core.ErrInvalidEdge)
//	ErrNoTour           – no Hamiltonian cycle (wraps backtrack.ErrNoSolution)
//	ErrTooLarge         – HeldKarp on more than MaxHeldKarpNodes nodes
package tsp
