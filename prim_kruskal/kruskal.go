package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/disjoint"
)

// Kruskal computes a minimum spanning tree by scanning edges in ascending weight.
//
// Steps:
//  1. Validate: graph non-nil and undirected (ErrInvalidGraph), at least one
//     node (ErrDisconnected). A single node yields an empty tree.
//  2. Collect the canonical edge list, dropping self-loops.
//  3. Stable-sort by weight; equal weights keep insertion order.
//  4. For each edge whose endpoints are in different components, union them
//     and accept the edge. Stop at n−1 accepted edges.
//  5. Fewer than n−1 accepted edges means the graph is disconnected.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g *core.Graph) (*Result, error) {
	trivial, err := validate(g)
	if err != nil {
		return nil, err
	}
	if trivial {
		return &Result{Edges: []core.Edge{}}, nil
	}
	n := g.NodeCount()

	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds, err := disjoint.New(n)
	if err != nil {
		return nil, err
	}

	res := &Result{Edges: make([]core.Edge, 0, n-1)}
	for _, e := range edges {
		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("prim_kruskal: union %d-%d: %w", e.From, e.To, err)
		}
		if !merged {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Total += e.Weight
		if len(res.Edges) == n-1 {
			break
		}
	}

	if len(res.Edges) < n-1 {
		return nil, fmt.Errorf("%w: %d components remain", ErrDisconnected, ds.Count())
	}

	return res, nil
}
