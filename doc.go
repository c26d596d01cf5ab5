// Package lvlsearch collects deterministic graph-optimisation and
// combinatorial-search engines over small in-memory inputs.
//
// Everything works on dense zero-based ids. Graph engines take a *core.Graph;
// the combinatorial ones take plain slices. Every engine is a pure function of
// its input, so equal inputs give equal outputs, ties included.
//
//	core/           immutable weighted graph (directed or undirected)
//	builder/        deterministic fixtures: path, cycle, star, grid, random
//	disjoint/       union-find with path compression
//	dijkstra/       single-source shortest paths, non-negative weights
//	bellmanford/    shortest paths with negative weights, cycle detection
//	floyd/          all-pairs shortest paths
//	bfs/, dfs/      traversals, topological order
//	prim_kruskal/   minimum spanning trees
//	backtrack/      the generic depth-first search and branch-and-bound engine
//	knapsack/       0/1 knapsack (branch-and-bound, greedy, DP)
//	nqueens/        N-queens placements and counts
//	hamilton/       Hamiltonian cycles
//	tsp/            minimum-cost tours
//	subsetsum/      subsets hitting a target sum
//	subsets/        power-set enumeration
//	assignment/     minimum-cost one-to-one assignment
//	treeshape/      full, perfect and complete binary trees
//
// The lvlsearch command (cmd/lvlsearch) runs each engine on a YAML problem
// file and prints text or JSON.
package lvlsearch
