// Package disjoint implements a union-find (disjoint-set) structure over the
// dense node range [0, n).
//
// Find performs full path compression: every node visited on the way to the
// root is re-pointed directly at it, so repeated queries trend toward O(1)
// amortized. Union is deterministic: the root of a is always attached under
// the root of b, which keeps Kruskal runs reproducible.
//
// Complexity:
//
//   - New:       O(n)
//   - Find:      O(α(n)) amortized under mixed workloads, O(log n) worst case
//   - Union:     two Finds + O(1)
//   - Count/Len: O(1)
//
// Errors:
//
//	ErrNegativeSize – New called with n < 0
//	ErrOutOfRange   – node outside [0, n); wraps core.ErrOutOfRange
package disjoint
