// Package subsets enumerates every subset of a slice with the backtrack engine.
//
// Every node of the search tree is a subset, so subsets are produced in
// depth-first pre-order: for {1,2,3} that is
// [] [1] [1 2] [1 2 3] [1 3] [2] [2 3] [3]. Elements keep their input order
// inside each subset, and duplicates in the input are treated as distinct
// positions.
package subsets

import "github.com/katalvlaran/lvlsearch/backtrack"

// All returns all 2^len(items) subsets, each exactly once.
func All[T any](items []T, opts ...backtrack.Option) ([][]T, error) {
	out := make([][]T, 0, 1<<min(len(items), 20))
	err := Each(items, func(subset []T) bool {
		out = append(out, append(make([]T, 0, len(subset)), subset...))
		return true
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Each calls visit with every subset in pre-order until visit returns false.
// The slice passed to visit is reused between calls. A nil visit walks the
// whole power set.
func Each[T any](items []T, visit func(subset []T) bool, opts ...backtrack.Option) error {
	if visit == nil {
		visit = func([]T) bool { return true }
	}
	s := &picker[T]{items: items}
	_, err := backtrack.Enumerate[int](s, func([]int) bool {
		return visit(s.current)
	}, opts...)

	return err
}

// picker chooses ascending positions of items.
type picker[T any] struct {
	items   []T
	chosen  []int
	current []T
}

func (p *picker[T]) Candidates(dst []int) []int {
	start := 0
	if k := len(p.chosen); k > 0 {
		start = p.chosen[k-1] + 1
	}
	for i := start; i < len(p.items); i++ {
		dst = append(dst, i)
	}

	return dst
}

func (p *picker[T]) Feasible(int) bool { return true }

func (p *picker[T]) Push(i int) {
	p.chosen = append(p.chosen, i)
	p.current = append(p.current, p.items[i])
}

func (p *picker[T]) Pop(int) {
	p.chosen = p.chosen[:len(p.chosen)-1]
	p.current = p.current[:len(p.current)-1]
}

func (p *picker[T]) IsGoal() bool { return true }
