package backtrack

type mode int

const (
	modeFirst mode = iota
	modeEnumerate
	modeOptimize
)

var modeNames = [...]string{"first", "enumerate", "optimize"}

func (m mode) String() string { return modeNames[m] }

// frame is one expanded node on the explicit stack. Frame i (i > 0) was
// entered by path[i-1].
type frame[D any] struct {
	cands []D
	next  int
}

// engine holds the mutable state of one search run.
type engine[D any] struct {
	s     State[D]
	b     Bounded[D] // set in modeOptimize only
	mode  mode
	cfg   Options
	visit func([]D) bool
	inc   *Incumbent[D]

	stack []frame[D]
	bufs  [][]D // bufs[depth] is reused by every node at that depth
	path  []D

	first []D // solution found in modeFirst
	found bool
	stats Stats
}

func newEngine[D any](s State[D], m mode, opts []Option) *engine[D] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &engine[D]{s: s, mode: m, cfg: cfg}
}

// run drives the search to completion, early stop, or the node limit.
//
// Steps:
//  1. Enter the root; expand it unless the mode says stop or prune.
//  2. Take the next candidate of the top frame. When the frame is exhausted,
//     drop it and undo the decision that entered it.
//  3. Skip infeasible candidates. Otherwise Push, enter the child, and either
//     expand it (new frame) or undo it immediately.
//  4. Whenever the mode asks to stop or the node limit trips, undo the whole
//     path before returning.
func (e *engine[D]) run() error {
	expand, stop := e.enter()
	if stop {
		return nil
	}
	if expand {
		e.expand()
	}

	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]
		if top.next == len(top.cands) {
			e.stack = e.stack[:len(e.stack)-1]
			if len(e.stack) > 0 {
				e.undo()
			}
			continue
		}

		d := top.cands[top.next]
		top.next++
		if !e.s.Feasible(d) {
			e.stats.Infeasible++
			continue
		}
		if e.cfg.NodeLimit > 0 && e.stats.Nodes >= e.cfg.NodeLimit {
			e.unwind()
			return ErrNodeLimit
		}

		e.s.Push(d)
		e.path = append(e.path, d)
		if len(e.path) > e.stats.MaxDepth {
			e.stats.MaxDepth = len(e.path)
		}

		expand, stop = e.enter()
		if stop {
			e.unwind()
			return nil
		}
		if expand {
			e.expand()
		} else {
			e.undo()
		}
	}

	return nil
}

// enter visits the current node and reports whether to expand it and whether
// the whole search must stop.
func (e *engine[D]) enter() (expand, stop bool) {
	e.stats.Nodes++
	switch e.mode {
	case modeFirst:
		if e.s.IsGoal() {
			e.first = append(make([]D, 0, len(e.path)), e.path...)
			e.found = true
			e.stats.Solutions++
			return false, true
		}

	case modeEnumerate:
		if e.s.IsGoal() {
			e.stats.Solutions++
			if !e.visit(e.path) {
				return false, true
			}
		}

	case modeOptimize:
		if e.s.IsGoal() && e.inc.Offer(e.b.Objective(), e.path) {
			e.stats.Solutions++
		}
		if e.b.Bound() <= e.inc.Value {
			e.stats.Pruned++
			return false, false
		}
	}

	return true, false
}

// expand pushes a frame with the current node's candidates.
func (e *engine[D]) expand() {
	depth := len(e.path)
	for len(e.bufs) <= depth {
		e.bufs = append(e.bufs, nil)
	}
	e.bufs[depth] = e.s.Candidates(e.bufs[depth][:0])
	e.stack = append(e.stack, frame[D]{cands: e.bufs[depth]})
}

// undo pops the last decision of the path.
func (e *engine[D]) undo() {
	last := len(e.path) - 1
	d := e.path[last]
	e.path = e.path[:last]
	e.s.Pop(d)
}

// unwind undoes every applied decision, innermost first.
func (e *engine[D]) unwind() {
	for len(e.path) > 0 {
		e.undo()
	}
	e.stack = e.stack[:0]
}

func (e *engine[D]) logDone(err error) {
	e.cfg.Logger.Debug("backtrack finished",
		"mode", e.mode.String(),
		"nodes", e.stats.Nodes,
		"pruned", e.stats.Pruned,
		"infeasible", e.stats.Infeasible,
		"solutions", e.stats.Solutions,
		"max_depth", e.stats.MaxDepth,
		"err", err,
	)
}
