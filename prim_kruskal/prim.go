package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlsearch/core"
)

// Prim computes a minimum spanning tree by growing outwards from root.
//
// Steps:
//  1. Validate: graph non-nil and undirected (ErrInvalidGraph), at least one
//     node (ErrDisconnected), root in [0, n) (ErrRootOutOfRange).
//  2. A single node yields an empty tree with total 0.
//  3. Mark root in-tree and push every edge leaving it.
//  4. While fewer than n−1 edges are accepted:
//     a. Pop the smallest (weight, to, from, seq) entry.
//     b. Skip it if its far endpoint is already in-tree.
//     c. Otherwise accept it, mark the endpoint, push its outgoing edges
//     towards nodes still outside.
//  5. If the heap drains early the graph is disconnected.
//
// Accepted edges are reported oriented from the tree towards the new node.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root int) (*Result, error) {
	trivial, err := validate(g)
	if err != nil {
		return nil, err
	}
	n := g.NodeCount()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}
	if trivial {
		return &Result{Edges: []core.Edge{}}, nil
	}

	p := &primRunner{
		g:      g,
		inTree: make([]bool, n),
		pq:     make(crossPQ, 0, n),
		tree:   make([]core.Edge, 0, n-1),
	}
	if err = p.absorb(root); err != nil {
		return nil, err
	}

	for p.pq.Len() > 0 && len(p.tree) < n-1 {
		c := heap.Pop(&p.pq).(crossing)
		if p.inTree[c.to] {
			continue
		}
		p.tree = append(p.tree, core.Edge{From: c.from, To: c.to, Weight: c.weight})
		p.total += c.weight
		if err = p.absorb(c.to); err != nil {
			return nil, err
		}
	}

	if len(p.tree) < n-1 {
		return nil, fmt.Errorf("%w: tree from %d reached %d of %d nodes",
			ErrDisconnected, root, len(p.tree)+1, n)
	}

	return &Result{Edges: p.tree, Total: p.total}, nil
}

// primRunner holds the mutable state of one Prim run.
type primRunner struct {
	g      *core.Graph
	inTree []bool
	pq     crossPQ
	seq    int
	tree   []core.Edge
	total  float64
}

// absorb marks u in-tree and pushes every edge from u to an outside node.
func (p *primRunner) absorb(u int) error {
	p.inTree[u] = true
	nbs, err := p.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("prim_kruskal: neighbors of %d: %w", u, err)
	}
	for _, nb := range nbs {
		if p.inTree[nb.To] {
			continue
		}
		heap.Push(&p.pq, crossing{from: u, to: nb.To, weight: nb.Weight, seq: p.seq})
		p.seq++
	}

	return nil
}

// crossing is a candidate edge from the tree to an outside node.
type crossing struct {
	from, to int
	weight   float64
	seq      int
}

// crossPQ is a min-heap of crossing ordered by (weight, to, from, seq).
type crossPQ []crossing

func (pq crossPQ) Len() int { return len(pq) }

func (pq crossPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	switch {
	case a.weight != b.weight:
		return a.weight < b.weight
	case a.to != b.to:
		return a.to < b.to
	case a.from != b.from:
		return a.from < b.from
	default:
		return a.seq < b.seq
	}
}

func (pq crossPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *crossPQ) Push(x any) { *pq = append(*pq, x.(crossing)) }

func (pq *crossPQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
