// Package backtrack is a generic depth-first search engine over problem states
// that can apply and undo one decision at a time.
//
// A problem plugs in by implementing State[D] for its decision type D:
//
//	Candidates(dst []D) []D  // decisions available at the current node, appended to dst
//	Feasible(d D) bool       // whether d may be applied now
//	Push(d D)                // apply d
//	Pop(d D)                 // undo d (always the most recently pushed decision)
//	IsGoal() bool            // whether the current node is a solution
//
// Branch-and-bound problems additionally implement Bounded[D]:
//
//	Objective() float64      // value of the current node as a solution (higher is better)
//	Bound() float64          // optimistic value of any node in the current subtree
//
// Modes
//
//   - First: stop at the first goal node in depth-first order; ErrNoSolution
//     when the tree is exhausted.
//   - Enumerate / All: report every goal node (the root and inner nodes
//     included) in depth-first pre-order.
//   - Optimize: at every node, a goal whose Objective is strictly greater than
//     the Incumbent replaces it; a node whose Bound does not exceed the
//     incumbent value is not expanded.
//
// Mechanics
//
// The search is an explicit stack loop, so depth is limited by memory rather
// than by the goroutine stack. Each depth owns a reusable candidate buffer.
// Every Push is matched by exactly one Pop, also on the First early exit and
// when the node limit trips, so the caller's state is back at the root when
// any entry point returns.
//
// Options
//
//	WithNodeLimit(n) – stop with ErrNodeLimit after n visited nodes
//	WithLogger(l)    – debug summary of each run via log/slog
package backtrack
