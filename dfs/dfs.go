package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/core"
)

// frame is one stack entry: a node and the index of its next neighbor.
type frame struct {
	id    int
	next  int
	depth int
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	state []int
	stack []frame
	res   *Result
}

// DFS performs depth-first search on g from start, or over every component
// with WithFullTraversal.
// On a hook error or cancellation the partial result is returned with the error.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := newWalker(g, o)
	if !o.FullTraversal {
		return w.res, w.walk(start)
	}
	for v := range n {
		if w.state[v] != White {
			continue
		}
		if err := w.walk(v); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func newWalker(g *core.Graph, o Options) *walker {
	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		state: make([]int, n),
		res: &Result{
			PreOrder:  make([]int, 0, n),
			PostOrder: make([]int, 0, n),
			Depth:     make([]int, n),
			Parent:    make([]int, n),
		},
	}
	for i := range n {
		w.res.Depth[i] = -1
		w.res.Parent[i] = NoParent
	}

	return w
}

// discover marks id Gray, records it and pushes its frame.
func (w *walker) discover(id, depth, parent int) error {
	w.state[id] = Gray
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.res.PreOrder = append(w.res.PreOrder, id)
	w.stack = append(w.stack, frame{id: id, depth: depth})
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	return nil
}

// walk explores the tree rooted at root. onGray, if set, is called for
// every edge that reaches a node still on the stack.
func (w *walker) walk(root int) error {
	return w.walkWith(root, nil)
}

func (w *walker) walkWith(root int, onGray func(from, to int) error) error {
	if err := w.discover(root, 0, NoParent); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		nbs, _ := w.graph.Neighbors(top.id) // ids on the stack are in range
		if top.next < len(nbs) {
			cur, nb := top.id, nbs[top.next].To
			top.next++
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(cur, nb) {
				continue
			}
			switch w.state[nb] {
			case White:
				if err := w.discover(nb, top.depth+1, cur); err != nil {
					return err
				}
			case Gray:
				if onGray != nil {
					if err := onGray(cur, nb); err != nil {
						return err
					}
				}
			}
			continue
		}

		w.stack = w.stack[:len(w.stack)-1]
		w.state[top.id] = Black
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(top.id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", top.id, err)
			}
		}
		w.res.PostOrder = append(w.res.PostOrder, top.id)
	}

	return nil
}
