// Package hamilton searches for a Hamiltonian cycle: a closed walk that
// visits every node of a core.Graph exactly once before returning to start.
//
// The search extends a path from start one neighbor at a time, trying
// neighbors in ascending id order, and keeps the on-path set in a roaring
// bitmap. A breadth-first reachability check runs first, so a graph with a
// node unreachable from start fails without backtracking. Parallel edges and
// self-loops never add branches. Undirected graphs need at least 3 nodes; a
// directed graph of 1 node needs a self-loop and one of 2 nodes needs both
// arcs.
package hamilton

import (
	"errors"
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/lvlsearch/backtrack"
	"github.com/katalvlaran/lvlsearch/bfs"
	"github.com/katalvlaran/lvlsearch/core"
)

var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("hamilton: graph is nil")

	// ErrStartOutOfRange indicates start is not a node of the graph.
	ErrStartOutOfRange = fmt.Errorf("hamilton: start %w", core.ErrOutOfRange)

	// ErrNoSolution indicates the graph has no Hamiltonian cycle.
	ErrNoSolution = fmt.Errorf("hamilton: %w", backtrack.ErrNoSolution)
)

// Cycle returns a Hamiltonian cycle as n+1 node ids that begin and end at start.
//
// Errors: ErrNilGraph, ErrStartOutOfRange, ErrNoSolution, and
// backtrack.ErrNodeLimit when a node limit is given and reached.
func Cycle(g *core.Graph, start int, opts ...backtrack.Option) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}
	if !g.Directed() && n < 3 {
		return nil, fmt.Errorf("%w: undirected graph with %d nodes", ErrNoSolution, n)
	}
	reach, err := bfs.BFS(g, start)
	if err != nil {
		return nil, err
	}
	if len(reach.Order) < n {
		return nil, fmt.Errorf("%w: only %d of %d nodes reachable from %d", ErrNoSolution, len(reach.Order), n, start)
	}

	w := newWalk(g, start)
	steps, _, err := backtrack.First[int](w, opts...)
	if errors.Is(err, backtrack.ErrNoSolution) {
		return nil, fmt.Errorf("%w: from %d", ErrNoSolution, start)
	}
	if err != nil {
		return nil, err
	}

	cycle := make([]int, 0, n+1)
	cycle = append(cycle, start)
	cycle = append(cycle, steps...)

	return append(cycle, start), nil
}

// walk is the backtrack.State: a simple path from start. Decisions are the
// next node to step to.
type walk struct {
	g      *core.Graph
	n      int
	start  int
	path   []int
	onPath *roaring.Bitmap
}

func newWalk(g *core.Graph, start int) *walk {
	w := &walk{
		g:      g,
		n:      g.NodeCount(),
		start:  start,
		path:   make([]int, 1, g.NodeCount()),
		onPath: roaring.New(),
	}
	w.path[0] = start
	w.onPath.Add(uint32(start))

	return w
}

func (w *walk) last() int { return w.path[len(w.path)-1] }

// Candidates lists distinct off-path neighbors of the last node, ascending.
func (w *walk) Candidates(dst []int) []int {
	if len(w.path) == w.n {
		return dst
	}
	nbs, err := w.g.Neighbors(w.last())
	if err != nil {
		return dst
	}
	base := len(dst)
	for _, nb := range nbs {
		if !w.onPath.Contains(uint32(nb.To)) {
			dst = append(dst, nb.To)
		}
	}
	fresh := dst[base:]
	sort.Ints(fresh)
	out := base
	for i, v := range fresh {
		if i > 0 && v == fresh[i-1] {
			continue
		}
		dst[out] = v
		out++
	}

	return dst[:out]
}

func (w *walk) Feasible(v int) bool { return !w.onPath.Contains(uint32(v)) }

func (w *walk) Push(v int) {
	w.path = append(w.path, v)
	w.onPath.Add(uint32(v))
}

func (w *walk) Pop(v int) {
	w.path = w.path[:len(w.path)-1]
	w.onPath.Remove(uint32(v))
}

// IsGoal holds once every node is on the path and the last one can close the cycle.
func (w *walk) IsGoal() bool {
	if len(w.path) != w.n {
		return false
	}
	_, ok := w.g.Weight(w.last(), w.start)

	return ok
}
