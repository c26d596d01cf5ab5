package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsearch/core"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, n) (ErrSourceOutOfRange).
//  3. No edge in g can have negative weight (ErrNegativeWeight). The whole
//     edge list is scanned before any distance is touched.
//
// Algorithm:
//  1. dist[v] = +Inf for all v, dist[source] = 0; push (0, source).
//  2. Pop the minimum (dist, node) entry. If the node is finalized, discard
//     the stale entry; if its distance exceeds MaxDistance, stop.
//  3. Finalize the node and relax every outgoing edge: when dist[u]+w is
//     strictly smaller than dist[v], update dist[v], prev[v] and push (dist[v], v).
//  4. Repeat until the heap is empty.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	if e, neg := g.HasNegativeWeight(); neg {
		return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		done:    make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("dijkstra finished",
		"source", source,
		"nodes", n,
		"settled", r.settled,
		"pushes", r.pushes,
		"stale", r.stale,
	)

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []float64 // best known distance from the source
	prev    []int     // predecessor on the best known path
	done    []bool    // finalized nodes
	pq      nodePQ    // lazy min-heap

	settled, pushes, stale int
}

// init sets distances to +Inf, predecessors to none, and seeds the heap with (0, source).
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoPredecessor
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

// process is the main extraction loop.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.done[item.node] {
			r.stale++
			continue
		}
		// Everything left in the heap is at least this far: stop exploring.
		if item.dist > r.options.MaxDistance {
			break
		}
		r.done[item.node] = true
		r.settled++
		if err := r.relax(item.node); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the finalized node u.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	var newDist float64
	for _, nb := range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if r.done[nb.To] {
			continue
		}
		newDist = r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly shorter only: equal paths keep the first predecessor found.
		if newDist >= r.dist[nb.To] {
			continue
		}
		r.dist[nb.To] = newDist
		r.prev[nb.To] = u
		r.push(nb.To, newDist)
	}

	return nil
}

func (r *runner) push(v int, d float64) {
	heap.Push(&r.pq, nodeItem{node: v, dist: d})
	r.pushes++
}

// nodeItem is one frontier entry.
type nodeItem struct {
	node int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then node id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
