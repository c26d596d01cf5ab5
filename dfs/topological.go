package dfs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlsearch/core"
)

// TopologicalSort returns the nodes of the directed graph g so that every
// edge u→v has u before v: the reverse of the DFS finish order over all
// components. A self-loop counts as a cycle.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrCycleDetected (the message lists
// one cycle), and the context error when WithContext is canceled.
func TopologicalSort(g *core.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := newWalker(g, o)
	for v := range g.NodeCount() {
		if w.state[v] != White {
			continue
		}
		if err := w.walkWith(v, w.cycleError); err != nil {
			return nil, err
		}
	}

	order := w.res.PostOrder
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// cycleError reports the back edge from→to as the cycle to … from → to,
// read off the stack.
func (w *walker) cycleError(from, to int) error {
	i := len(w.stack) - 1
	for w.stack[i].id != to {
		i--
	}
	parts := make([]string, 0, len(w.stack)-i+1)
	for _, f := range w.stack[i:] {
		parts = append(parts, strconv.Itoa(f.id))
	}
	parts = append(parts, strconv.Itoa(to))

	return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(parts, "→"))
}
