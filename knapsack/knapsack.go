package knapsack

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlsearch/backtrack"
)

// Solve returns an optimal selection using branch-and-bound.
//
// Steps:
//  1. Validate capacity and items.
//  2. Sort item positions by density (stable, so equal densities keep input order).
//  3. Seed the incumbent with the empty selection, or with Greedy under WithGreedySeed.
//  4. Run backtrack.Optimize over the sorted positions.
//  5. Map the incumbent path back to original indices, ascending.
//
// Complexity: exponential in the worst case; the fractional bound typically
// prunes most of the tree.
func Solve(items []Item, capacity int64, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(items, capacity); err != nil {
		return nil, err
	}

	s := newState(items, capacity)
	inc := backtrack.NewIncumbent[int](math.Inf(-1))
	if cfg.GreedySeed {
		path, value := s.greedy()
		inc.Offer(float64(value), path)
	}

	bopts := []backtrack.Option{backtrack.WithLogger(cfg.Logger)}
	if cfg.NodeLimit > 0 {
		bopts = append(bopts, backtrack.WithNodeLimit(cfg.NodeLimit))
	}
	stats, err := backtrack.Optimize[int](s, inc, bopts...)
	if err != nil {
		return nil, fmt.Errorf("knapsack: %w", err)
	}

	res := s.result(inc.Path)
	res.Stats = stats
	cfg.Logger.Debug("knapsack solved",
		"items", len(items),
		"capacity", capacity,
		"value", res.Value,
		"seeded", cfg.GreedySeed,
		"nodes", stats.Nodes,
		"pruned", stats.Pruned,
	)

	return res, nil
}

// Greedy takes items in descending density, skipping those that no longer fit.
// The result is feasible but not necessarily optimal.
func Greedy(items []Item, capacity int64) (*Result, error) {
	if err := validate(items, capacity); err != nil {
		return nil, err
	}
	s := newState(items, capacity)
	path, _ := s.greedy()

	return s.result(path), nil
}

func validate(items []Item, capacity int64) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	for i, it := range items {
		if it.Weight <= 0 || it.Value < 0 {
			return fmt.Errorf("%w: item #%d weight=%d value=%d", ErrInvalidItem, i, it.Weight, it.Value)
		}
	}

	return nil
}

// state is the backtrack.Bounded implementation. Positions index the
// density-sorted arrays w and v; order maps a position to its original index.
type state struct {
	order    []int
	w, v     []int64
	capacity int64

	chosen []int
	weight int64
	value  int64
}

func newState(items []Item, capacity int64) *state {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	// a.V/a.W > b.V/b.W without division.
	sort.SliceStable(order, func(i, j int) bool {
		a, b := items[order[i]], items[order[j]]
		return float64(a.Value)*float64(b.Weight) > float64(b.Value)*float64(a.Weight)
	})

	s := &state{
		order:    order,
		w:        make([]int64, len(items)),
		v:        make([]int64, len(items)),
		capacity: capacity,
		chosen:   make([]int, 0, len(items)),
	}
	for p, i := range order {
		s.w[p] = items[i].Weight
		s.v[p] = items[i].Value
	}

	return s
}

// next is the first position still open for selection.
func (s *state) next() int {
	if k := len(s.chosen); k > 0 {
		return s.chosen[k-1] + 1
	}

	return 0
}

func (s *state) Candidates(dst []int) []int {
	for p := s.next(); p < len(s.w); p++ {
		dst = append(dst, p)
	}

	return dst
}

func (s *state) Feasible(p int) bool { return s.w[p] <= s.capacity-s.weight }

func (s *state) Push(p int) {
	s.chosen = append(s.chosen, p)
	s.weight += s.w[p]
	s.value += s.v[p]
}

func (s *state) Pop(p int) {
	s.chosen = s.chosen[:len(s.chosen)-1]
	s.weight -= s.w[p]
	s.value -= s.v[p]
}

// IsGoal is always true: every node is a feasible selection.
func (s *state) IsGoal() bool { return true }

func (s *state) Objective() float64 { return float64(s.value) }

// Bound is the fractional-knapsack relaxation over the open positions.
func (s *state) Bound() float64 {
	room := s.capacity - s.weight
	bound := float64(s.value)
	for p := s.next(); p < len(s.w) && room > 0; p++ {
		if s.w[p] <= room {
			room -= s.w[p]
			bound += float64(s.v[p])
			continue
		}
		bound += float64(s.v[p]) * float64(room) / float64(s.w[p])
		break
	}

	return bound
}

// greedy returns the density-greedy selection as ascending positions.
func (s *state) greedy() ([]int, int64) {
	var (
		path  []int
		room  = s.capacity
		value int64
	)
	for p := range s.w {
		if s.w[p] <= room {
			room -= s.w[p]
			value += s.v[p]
			path = append(path, p)
		}
	}

	return path, value
}

// result converts sorted positions to a Result over original indices.
func (s *state) result(path []int) *Result {
	res := &Result{Items: make([]int, 0, len(path))}
	for _, p := range path {
		res.Items = append(res.Items, s.order[p])
		res.Weight += s.w[p]
		res.Value += s.v[p]
	}
	sort.Ints(res.Items)

	return res
}
