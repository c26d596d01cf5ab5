package backtrack

import "fmt"

// First returns the decision path of the first goal node in depth-first order.
// The root counts: a root goal yields an empty, non-nil path.
//
// Errors: ErrNilState, ErrNoSolution when the space is exhausted, ErrNodeLimit.
func First[D any](s State[D], opts ...Option) ([]D, Stats, error) {
	if s == nil {
		return nil, Stats{}, ErrNilState
	}
	e := newEngine(s, modeFirst, opts)
	err := e.run()
	e.logDone(err)
	if err != nil {
		return nil, e.stats, err
	}
	if !e.found {
		return nil, e.stats, fmt.Errorf("%w: %d nodes explored", ErrNoSolution, e.stats.Nodes)
	}

	return e.first, e.stats, nil
}

// Enumerate calls visit with the decision path of every goal node, in
// depth-first pre-order. The slice passed to visit is reused; copy it to keep
// it. Returning false from visit stops the search early without error.
//
// Errors: ErrNilState, ErrNodeLimit.
func Enumerate[D any](s State[D], visit func(path []D) bool, opts ...Option) (Stats, error) {
	if s == nil {
		return Stats{}, ErrNilState
	}
	if visit == nil {
		visit = func([]D) bool { return true }
	}
	e := newEngine(s, modeEnumerate, opts)
	e.visit = visit
	err := e.run()
	e.logDone(err)

	return e.stats, err
}

// All collects a copy of every goal path.
//
// Errors: ErrNilState, ErrNoSolution when no goal exists, ErrNodeLimit (the
// paths found before the limit are still returned).
func All[D any](s State[D], opts ...Option) ([][]D, Stats, error) {
	var out [][]D
	stats, err := Enumerate(s, func(path []D) bool {
		out = append(out, append(make([]D, 0, len(path)), path...))
		return true
	}, opts...)
	if err != nil {
		return out, stats, err
	}
	if len(out) == 0 {
		return nil, stats, fmt.Errorf("%w: %d nodes explored", ErrNoSolution, stats.Nodes)
	}

	return out, stats, nil
}

// Optimize runs branch-and-bound maximisation and leaves the best solution in
// inc. A pre-seeded incumbent is kept unless a strictly better goal appears.
//
// Errors: ErrNilState, ErrNilIncumbent, ErrNodeLimit (inc holds the best
// solution seen so far). Finding nothing better than the seed is not an error;
// check inc.Found.
func Optimize[D any](s Bounded[D], inc *Incumbent[D], opts ...Option) (Stats, error) {
	if s == nil {
		return Stats{}, ErrNilState
	}
	if inc == nil {
		return Stats{}, ErrNilIncumbent
	}
	e := newEngine[D](s, modeOptimize, opts)
	e.b = s
	e.inc = inc
	err := e.run()
	e.logDone(err)

	return e.stats, err
}
