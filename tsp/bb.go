package tsp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlsearch/backtrack"
	"github.com/katalvlaran/lvlsearch/core"
)

// Solve returns a minimum-cost tour from start by branch-and-bound.
//
// Steps:
//  1. Read g into the cheapest-edge table; reject negative weights.
//  2. Precompute minOut/minIn per node; a node with no finite outgoing or
//     incoming edge rules out any tour (ErrNoTour) before searching.
//  3. Order each node's successors by ascending weight.
//  4. Seed the incumbent with the nearest-neighbor tour if it closes.
//  5. Run backtrack.Optimize, maximising the negated tour cost.
//
// Errors: ErrNilGraph, ErrStartOutOfRange, ErrNegativeWeight, ErrNoTour,
// and backtrack.ErrNodeLimit when WithNodeLimit is reached.
func Solve(g *core.Graph, start int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	t, err := newTable(g, start)
	if err != nil {
		return nil, err
	}
	if t.n == 1 {
		return &Result{Tour: []int{start, start}}, nil
	}

	s := newTour(t, start, !cfg.NoBound)
	if !s.feasible() {
		return nil, fmt.Errorf("%w: a node has no usable edge", ErrNoTour)
	}
	inc := backtrack.NewIncumbent[int](math.Inf(-1))
	if !cfg.NoSeed {
		if path, cost, ok := s.nearestNeighbor(); ok {
			inc.Offer(-cost, path)
		}
	}

	bopts := []backtrack.Option{backtrack.WithLogger(cfg.Logger)}
	if cfg.NodeLimit > 0 {
		bopts = append(bopts, backtrack.WithNodeLimit(cfg.NodeLimit))
	}
	stats, err := backtrack.Optimize[int](s, inc, bopts...)
	if err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}
	if !inc.Found {
		return nil, fmt.Errorf("%w: from %d", ErrNoTour, start)
	}

	res := &Result{Tour: s.close(inc.Path), Cost: -inc.Value, Stats: stats}
	cfg.Logger.Debug("tour solved",
		"nodes", t.n,
		"start", start,
		"cost", res.Cost,
		"searched", stats.Nodes,
		"pruned", stats.Pruned,
	)

	return res, nil
}

// tour is the backtrack.Bounded state: a simple path from start whose
// decisions are the successive nodes.
type tour struct {
	t       *table
	start   int
	bounded bool

	minOut, minIn []float64
	order         [][]int

	path    []int
	costs   []float64 // costs[i] is the weight of path[:i+1]
	visited []bool
}

func newTour(t *table, start int, bounded bool) *tour {
	s := &tour{
		t:       t,
		start:   start,
		bounded: bounded,
		minOut:  make([]float64, t.n),
		minIn:   make([]float64, t.n),
		order:   make([][]int, t.n),
		path:    make([]int, 1, t.n),
		costs:   make([]float64, 1, t.n),
		visited: make([]bool, t.n),
	}
	s.path[0] = start
	s.visited[start] = true

	for v := range t.n {
		s.minOut[v], s.minIn[v] = math.Inf(1), math.Inf(1)
		for u := range t.n {
			s.minOut[v] = math.Min(s.minOut[v], t.at(v, u))
			s.minIn[v] = math.Min(s.minIn[v], t.at(u, v))
		}

		row := make([]int, 0, t.n-1)
		for u := range t.n {
			if !math.IsInf(t.at(v, u), 1) {
				row = append(row, u)
			}
		}
		sort.SliceStable(row, func(i, j int) bool { return t.at(v, row[i]) < t.at(v, row[j]) })
		s.order[v] = row
	}

	return s
}

// feasible reports whether every node has a finite way in and out.
func (s *tour) feasible() bool {
	for v := range s.t.n {
		if math.IsInf(s.minOut[v], 1) || math.IsInf(s.minIn[v], 1) {
			return false
		}
	}

	return true
}

func (s *tour) last() int { return s.path[len(s.path)-1] }

func (s *tour) Candidates(dst []int) []int {
	if len(s.path) == s.t.n {
		return dst
	}
	for _, v := range s.order[s.last()] {
		if !s.visited[v] {
			dst = append(dst, v)
		}
	}

	return dst
}

func (s *tour) Feasible(v int) bool { return !s.visited[v] }

func (s *tour) Push(v int) {
	s.costs = append(s.costs, s.costs[len(s.costs)-1]+s.t.at(s.last(), v))
	s.path = append(s.path, v)
	s.visited[v] = true
}

func (s *tour) Pop(v int) {
	s.path = s.path[:len(s.path)-1]
	s.costs = s.costs[:len(s.costs)-1]
	s.visited[v] = false
}

// IsGoal holds once every node is on the path and the last one returns to start.
func (s *tour) IsGoal() bool {
	return len(s.path) == s.t.n && !math.IsInf(s.t.at(s.last(), s.start), 1)
}

// Objective is the negated cost of the closed tour.
func (s *tour) Objective() float64 {
	return -(s.costs[len(s.costs)-1] + s.t.at(s.last(), s.start))
}

// Bound is the negated degree-1 lower bound. Outgoing edges are fixed for
// every path node but the last; incoming edges for every path node but start.
func (s *tour) Bound() float64 {
	cost := s.costs[len(s.costs)-1]
	if !s.bounded {
		return math.Inf(1)
	}
	sumOut := s.minOut[s.last()]
	sumIn := s.minIn[s.start]
	for v := range s.t.n {
		if !s.visited[v] {
			sumOut += s.minOut[v]
			sumIn += s.minIn[v]
		}
	}

	return -(cost + math.Max(sumOut, sumIn))
}

// nearestNeighbor follows the cheapest unvisited successor from start.
// It returns the decision path and tour cost when the walk closes.
func (s *tour) nearestNeighbor() ([]int, float64, bool) {
	seen := make([]bool, s.t.n)
	seen[s.start] = true
	path := make([]int, 0, s.t.n-1)
	cur, cost := s.start, 0.0
	for len(path) < s.t.n-1 {
		next := -1
		for _, v := range s.order[cur] {
			if !seen[v] {
				next = v
				break
			}
		}
		if next < 0 {
			return nil, 0, false
		}
		cost += s.t.at(cur, next)
		seen[next] = true
		path = append(path, next)
		cur = next
	}
	back := s.t.at(cur, s.start)
	if math.IsInf(back, 1) {
		return nil, 0, false
	}

	return path, cost + back, true
}

// close turns a decision path into a tour that starts and ends at start.
func (s *tour) close(steps []int) []int {
	out := make([]int, 0, len(steps)+2)
	out = append(out, s.start)
	out = append(out, steps...)

	return append(out, s.start)
}
