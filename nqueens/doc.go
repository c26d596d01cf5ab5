// Package nqueens places n non-attacking queens on an n×n board.
//
// A placement is a slice p of length n where p[r] is the column of the queen
// in row r. The search fills rows top to bottom; column and both diagonal
// occupancies live in bits-and-blooms bitsets so every feasibility test is
// O(1). Columns are tried in ascending order, so Solve returns the
// lexicographically smallest placement and All lists placements in
// lexicographic order.
//
// Sizes 2 and 3 have no placement and report ErrNoSolution.
package nqueens
