// Package assignment solves the linear assignment problem: given an n×n cost
// matrix, give each row (worker) a distinct column (job) so that the total
// cost is minimal.
//
// Solve is branch-and-bound on backtrack.Optimize, which maximises, so the
// objective is the negated cost:
//
//   - Rows are assigned in order 0..n−1. Candidates for the next row are the
//     free columns by ascending cost (ties by column).
//   - Bound: cost so far plus, for every unassigned row, its cheapest free
//     column. Columns may repeat across rows in the estimate, which keeps it
//     optimistic.
//   - The incumbent starts from the greedy assignment (each row in turn takes
//     its cheapest free column), so the search only accepts strictly cheaper
//     assignments.
package assignment

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlsearch/backtrack"
)

var (
	// ErrNotSquare indicates the matrix is ragged or not n×n.
	ErrNotSquare = errors.New("assignment: cost matrix must be square")

	// ErrInvalidCost indicates a NaN or infinite entry.
	ErrInvalidCost = errors.New("assignment: cost must be finite")
)

// Result is an optimal assignment.
type Result struct {
	Assign []int // Assign[row] = column
	Cost   float64
	Stats  backtrack.Stats
}

// Solve returns a minimum-cost assignment.
func Solve(cost [][]float64, opts ...backtrack.Option) (*Result, error) {
	if err := validate(cost); err != nil {
		return nil, err
	}
	n := len(cost)
	if n == 0 {
		return &Result{Assign: []int{}}, nil
	}

	s := newState(cost)
	inc := backtrack.NewIncumbent[int](math.Inf(-1))
	seed, seedCost := s.greedy()
	inc.Offer(-seedCost, seed)

	stats, err := backtrack.Optimize[int](s, inc, opts...)
	if err != nil {
		return nil, fmt.Errorf("assignment: %w", err)
	}

	return &Result{
		Assign: append([]int(nil), inc.Path...),
		Cost:   -inc.Value,
		Stats:  stats,
	}, nil
}

// Greedy returns the row-by-row cheapest-free-column assignment.
func Greedy(cost [][]float64) (*Result, error) {
	if err := validate(cost); err != nil {
		return nil, err
	}
	if len(cost) == 0 {
		return &Result{Assign: []int{}}, nil
	}
	assign, total := newState(cost).greedy()

	return &Result{Assign: assign, Cost: total}, nil
}

func validate(cost [][]float64) error {
	n := len(cost)
	for i, row := range cost {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("%w: cost[%d][%d]=%v", ErrInvalidCost, i, j, c)
			}
		}
	}

	return nil
}

// state is the backtrack.Bounded implementation.
type state struct {
	cost  [][]float64
	n     int
	taken []bool
	cols  []int     // cols[row] for rows already assigned
	spent []float64 // spent[i]: cost of rows [0, i)
	order [][]int   // order[row]: columns by ascending cost
}

func newState(cost [][]float64) *state {
	n := len(cost)
	s := &state{
		cost:  cost,
		n:     n,
		taken: make([]bool, n),
		cols:  make([]int, 0, n),
		spent: make([]float64, 1, n+1),
		order: make([][]int, n),
	}
	for r := range cost {
		row := make([]int, n)
		for c := range row {
			row[c] = c
		}
		sort.SliceStable(row, func(i, j int) bool { return cost[r][row[i]] < cost[r][row[j]] })
		s.order[r] = row
	}

	return s
}

// cheapestFree returns row r's cheapest untaken column.
func (s *state) cheapestFree(r int) int {
	for _, c := range s.order[r] {
		if !s.taken[c] {
			return c
		}
	}

	return -1
}

func (s *state) Candidates(dst []int) []int {
	r := len(s.cols)
	if r == s.n {
		return dst
	}
	for _, c := range s.order[r] {
		if !s.taken[c] {
			dst = append(dst, c)
		}
	}

	return dst
}

func (s *state) Feasible(c int) bool { return !s.taken[c] }

func (s *state) Push(c int) {
	s.spent = append(s.spent, s.total()+s.cost[len(s.cols)][c])
	s.cols = append(s.cols, c)
	s.taken[c] = true
}

func (s *state) Pop(c int) {
	s.cols = s.cols[:len(s.cols)-1]
	s.spent = s.spent[:len(s.spent)-1]
	s.taken[c] = false
}

func (s *state) IsGoal() bool { return len(s.cols) == s.n }

// total is the cost of the rows assigned so far.
func (s *state) total() float64 { return s.spent[len(s.spent)-1] }

func (s *state) Objective() float64 { return -s.total() }

func (s *state) Bound() float64 {
	est := s.total()
	for r := len(s.cols); r < s.n; r++ {
		est += s.cost[r][s.cheapestFree(r)]
	}

	return -est
}

// greedy assigns rows in order to their cheapest free column.
func (s *state) greedy() ([]int, float64) {
	assign := make([]int, s.n)
	var total float64
	for r := 0; r < s.n; r++ {
		c := s.cheapestFree(r)
		assign[r] = c
		s.taken[c] = true
		total += s.cost[r][c]
	}
	for c := range s.taken {
		s.taken[c] = false
	}

	return assign, total
}
