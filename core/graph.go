package core

import (
	"fmt"
	"math"
)

// pairKey identifies an endpoint pair for parallel-edge collapsing.
type pairKey struct{ u, v int }

// NewGraph builds a Graph with n nodes from the given edge list.
//
// Steps:
//  1. Apply options (directed, keep-min-parallel).
//  2. Validate n ≥ 0 and every edge: endpoints in [0, n), weight not NaN.
//     Validation is complete before any adjacency is built, so a failing call
//     never returns a partial graph.
//  3. Optionally collapse parallel edges to the cheapest one per pair.
//  4. Build adjacency lists in edge order; undirected edges are mirrored,
//     self-loops are stored once.
//
// Complexity: O(V + E) time and memory.
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeNodeCount, n)
	}
	g.n = n

	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge #%d %d→%d outside [0,%d)", ErrInvalidEdge, i, e.From, e.To, n)
		}
		if math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge #%d %d→%d has NaN weight", ErrInvalidEdge, i, e.From, e.To)
		}
	}

	if g.keepMin {
		g.edges = g.collapseParallel(edges)
	} else {
		g.edges = make([]Edge, len(edges))
		copy(g.edges, edges)
	}

	g.adj = make([][]Neighbor, n)
	for _, e := range g.edges {
		g.adj[e.From] = append(g.adj[e.From], Neighbor{To: e.To, Weight: e.Weight})
		if !g.directed && e.From != e.To {
			g.adj[e.To] = append(g.adj[e.To], Neighbor{To: e.From, Weight: e.Weight})
		}
	}

	return g, nil
}

// collapseParallel keeps the minimum-weight edge for each endpoint pair.
// The survivor takes the slot of the pair's first occurrence.
func (g *Graph) collapseParallel(edges []Edge) []Edge {
	slot := make(map[pairKey]int, len(edges))
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		k := g.key(e.From, e.To)
		if i, ok := slot[k]; ok {
			if e.Weight < out[i].Weight {
				out[i] = e
			}
			continue
		}
		slot[k] = len(out)
		out = append(out, e)
	}

	return out
}

// key normalises an endpoint pair; undirected pairs are unordered.
func (g *Graph) key(u, v int) pairKey {
	if !g.directed && v < u {
		u, v = v, u
	}

	return pairKey{u: u, v: v}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of stored edges; undirected edges count once.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Edges returns a copy of the canonical edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the adjacency list of u in insertion order.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	if err := g.check(u); err != nil {
		return nil, err
	}

	return g.adj[u], nil
}

// Weight returns the minimum weight among u→v edges, and whether any exists.
func (g *Graph) Weight(u, v int) (float64, bool) {
	if g.check(u) != nil || g.check(v) != nil {
		return 0, false
	}
	best, found := math.Inf(1), false
	for _, nb := range g.adj[u] {
		if nb.To == v && nb.Weight < best {
			best, found = nb.Weight, true
		}
	}

	return best, found
}

// HasNegativeWeight returns the first edge with a negative weight, if any.
func (g *Graph) HasNegativeWeight() (Edge, bool) {
	for _, e := range g.edges {
		if e.Weight < 0 {
			return e, true
		}
	}

	return Edge{}, false
}

// check validates a node id.
func (g *Graph) check(u int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: node %d not in [0,%d)", ErrOutOfRange, u, g.n)
	}

	return nil
}
