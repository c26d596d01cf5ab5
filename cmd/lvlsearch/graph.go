package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/bellmanford"
	"github.com/katalvlaran/lvlsearch/bfs"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/dfs"
	"github.com/katalvlaran/lvlsearch/dijkstra"
	"github.com/katalvlaran/lvlsearch/floyd"
	"github.com/katalvlaran/lvlsearch/hamilton"
	"github.com/katalvlaran/lvlsearch/internal/problem"
	"github.com/katalvlaran/lvlsearch/prim_kruskal"
	"github.com/katalvlaran/lvlsearch/tsp"
)

// loadGraph builds the graph in path. A negative node falls back to the file's source.
func loadGraph(path string, node int) (*core.Graph, int, error) {
	f, err := load(path, problem.KindGraph)
	if err != nil {
		return nil, 0, err
	}
	g, err := f.Graph.Build()
	if err != nil {
		return nil, 0, wrapError(ExitInput, "invalid graph", err)
	}
	if node < 0 {
		node = f.Graph.Source
	}

	return g, node, nil
}

// distances is the rendered form of a single-source result.
type distances struct {
	Source int        `json:"source"`
	Dist   []*float64 `json:"dist"`
	Prev   []int      `json:"prev"`
	Path   []int      `json:"path,omitempty"`
}

// emitDistances renders res, plus the path to target when target ≥ 0.
func (a *app) emitDistances(cmd *cobra.Command, res *dijkstra.Result, target int) error {
	view := distances{Source: res.Source, Dist: jsonDists(res.Dist), Prev: res.Prev}
	if target >= 0 {
		p, err := res.PathTo(target)
		if err != nil {
			return err
		}
		view.Path = p
	}

	return a.emit(cmd, view, func(w io.Writer) error {
		fmt.Fprintln(w, "NODE\tDIST\tPREV")
		for v, d := range res.Dist {
			prev := "-"
			if res.Prev[v] != dijkstra.NoPredecessor {
				prev = fmt.Sprint(res.Prev[v])
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", v, formatDist(d), prev)
		}
		if view.Path != nil {
			fmt.Fprintf(w, "path %d→%d: %s\n", res.Source, target, joinInts(view.Path))
		}

		return nil
	})
}

func (a *app) shortestCmd() *cobra.Command {
	var (
		path           string
		source, target int
		maxDist        float64
	)
	cmd := &cobra.Command{
		Use:   "shortest",
		Short: "Single-source shortest paths with Dijkstra",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, src, err := loadGraph(path, source)
			if err != nil {
				return err
			}
			opts := []dijkstra.Option{dijkstra.WithLogger(a.logger)}
			if cmd.Flags().Changed("max-distance") {
				if maxDist < 0 {
					return newCLIError(ExitInput, fmt.Sprintf("--max-distance must be non-negative, got %g", maxDist))
				}
				opts = append(opts, dijkstra.WithMaxDistance(maxDist))
			}
			res, err := dijkstra.Dijkstra(g, src, opts...)
			if err != nil {
				return err
			}

			return a.emitDistances(cmd, res, target)
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().IntVar(&source, "source", -1, "Source node (default: the file's source)")
	cmd.Flags().IntVar(&target, "target", -1, "Also print the path to this node")
	cmd.Flags().Float64Var(&maxDist, "max-distance", 0, "Do not explore beyond this distance")

	return cmd
}

func (a *app) bellmanCmd() *cobra.Command {
	var (
		path           string
		source, target int
	)
	cmd := &cobra.Command{
		Use:   "bellman",
		Short: "Single-source shortest paths with Bellman-Ford (negative weights allowed)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, src, err := loadGraph(path, source)
			if err != nil {
				return err
			}
			res, err := bellmanford.BellmanFord(g, src, bellmanford.WithLogger(a.logger))
			if err != nil {
				return err
			}

			return a.emitDistances(cmd, res, target)
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().IntVar(&source, "source", -1, "Source node (default: the file's source)")
	cmd.Flags().IntVar(&target, "target", -1, "Also print the path to this node")

	return cmd
}

// allPairs is the rendered form of a Floyd-Warshall matrix.
type allPairs struct {
	Dist [][]*float64 `json:"dist"`
	Path []int        `json:"path,omitempty"`
}

func (a *app) apspCmd() *cobra.Command {
	var (
		path     string
		from, to int
	)
	cmd := &cobra.Command{
		Use:   "apsp",
		Short: "All-pairs shortest paths with Floyd-Warshall",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, _, err := loadGraph(path, 0)
			if err != nil {
				return err
			}
			m, err := floyd.AllPairs(g, floyd.WithLogger(a.logger))
			if err != nil {
				return err
			}

			rows := make([][]float64, m.Len())
			view := allPairs{Dist: make([][]*float64, m.Len())}
			for i := range rows {
				if rows[i], err = m.Row(i); err != nil {
					return err
				}
				view.Dist[i] = jsonDists(rows[i])
			}
			if from >= 0 || to >= 0 {
				if view.Path, err = m.Path(from, to); err != nil {
					return err
				}
			}

			return a.emit(cmd, view, func(w io.Writer) error {
				fmt.Fprint(w, "FROM\\TO")
				for j := range rows {
					fmt.Fprintf(w, "\t%d", j)
				}
				fmt.Fprintln(w)
				for i, row := range rows {
					fmt.Fprint(w, i)
					for _, d := range row {
						fmt.Fprintf(w, "\t%s", formatDist(d))
					}
					fmt.Fprintln(w)
				}
				if view.Path != nil {
					fmt.Fprintf(w, "path %d→%d: %s\n", from, to, joinInts(view.Path))
				}

				return nil
			})
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().IntVar(&from, "from", -1, "Path start (with --to)")
	cmd.Flags().IntVar(&to, "to", -1, "Path end (with --from)")

	return cmd
}

// spanningTree is the rendered form of an MST.
type spanningTree struct {
	Method string     `json:"method"`
	Total  float64    `json:"total"`
	Edges  []edgeView `json:"edges"`
}

func (a *app) mstCmd() *cobra.Command {
	var (
		path   string
		method string
		root   int
	)
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree with Kruskal or Prim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, _, err := loadGraph(path, 0)
			if err != nil {
				return err
			}
			res, err := prim_kruskal.Compute(g,
				prim_kruskal.WithMethod(method),
				prim_kruskal.WithRoot(root),
				prim_kruskal.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			view := spanningTree{Method: method, Total: res.Total, Edges: edgeViews(res.Edges)}

			return a.emit(cmd, view, func(w io.Writer) error {
				fmt.Fprintln(w, "FROM\tTO\tWEIGHT")
				for _, e := range res.Edges {
					fmt.Fprintf(w, "%d\t%d\t%s\n", e.From, e.To, formatDist(e.Weight))
				}
				fmt.Fprintf(w, "total: %s\n", formatDist(res.Total))

				return nil
			})
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "Algorithm (kruskal|prim)")
	cmd.Flags().IntVar(&root, "root", 0, "Root node for Prim")

	return cmd
}

func (a *app) hamiltonCmd() *cobra.Command {
	var (
		path         string
		start, limit int
	)
	cmd := &cobra.Command{
		Use:   "hamilton",
		Short: "Find a Hamiltonian cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, s, err := loadGraph(path, start)
			if err != nil {
				return err
			}
			opts, err := a.searchOptions(limit)
			if err != nil {
				return err
			}
			c, err := hamilton.Cycle(g, s, opts...)
			if err != nil {
				return err
			}

			return a.emit(cmd, map[string][]int{"cycle": c}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "cycle: %s\n", joinInts(c))
				return err
			})
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().IntVar(&start, "start", -1, "Start node (default: the file's source)")
	nodeLimitFlag(cmd, &limit)

	return cmd
}

// hops is the rendered form of a breadth-first search.
type hops struct {
	Source int   `json:"source"`
	Order  []int `json:"order"`
	Depth  []int `json:"depth"`
	Path   []int `json:"path,omitempty"`
}

func (a *app) hopsCmd() *cobra.Command {
	var (
		path                     string
		source, target, maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "hops",
		Short: "Fewest-hop distances with breadth-first search (weights ignored)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, src, err := loadGraph(path, source)
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, src, bfs.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			view := hops{Source: src, Order: res.Order, Depth: res.Depth}
			if target >= 0 {
				if view.Path, err = res.PathTo(target); err != nil {
					return err
				}
			}

			return a.emit(cmd, view, func(w io.Writer) error {
				fmt.Fprintln(w, "NODE\tHOPS\tPARENT")
				for _, v := range res.Order {
					parent := "-"
					if res.Parent[v] != bfs.NoParent {
						parent = fmt.Sprint(res.Parent[v])
					}
					fmt.Fprintf(w, "%d\t%d\t%s\n", v, res.Depth[v], parent)
				}
				if view.Path != nil {
					fmt.Fprintf(w, "path %d→%d: %s\n", src, target, joinInts(view.Path))
				}

				return nil
			})
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().IntVar(&source, "source", -1, "Source node (default: the file's source)")
	cmd.Flags().IntVar(&target, "target", -1, "Also print the path to this node")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Do not go beyond this many hops (0 = unlimited)")

	return cmd
}

func (a *app) topoCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "topo",
		Short: "Topological order of a directed graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, _, err := loadGraph(path, 0)
			if err != nil {
				return err
			}
			order, err := dfs.TopologicalSort(g)
			if err != nil {
				return err
			}

			return a.emit(cmd, map[string][]int{"order": order}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "order: %s\n", joinInts(order))
				return err
			})
		},
	}
	fileFlag(cmd, &path)

	return cmd
}

// tour is the rendered form of a minimum-cost tour.
type tour struct {
	Tour  []int      `json:"tour"`
	Cost  float64    `json:"cost"`
	Stats *statsView `json:"stats,omitempty"`
}

func (a *app) tourCmd() *cobra.Command {
	var (
		path         string
		start, limit int
		heldKarp     bool
	)
	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Minimum-cost tour visiting every node (travelling salesman)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return newCLIError(ExitInput, fmt.Sprintf("--node-limit must be non-negative, got %d", limit))
			}
			g, s, err := loadGraph(path, start)
			if err != nil {
				return err
			}

			var res *tsp.Result
			if heldKarp {
				res, err = tsp.HeldKarp(g, s)
			} else {
				res, err = tsp.Solve(g, s, tsp.WithLogger(a.logger), tsp.WithNodeLimit(limit))
			}
			if err != nil {
				return err
			}
			view := tour{Tour: res.Tour, Cost: res.Cost}
			if !heldKarp {
				st := viewStats(res.Stats)
				view.Stats = &st
			}

			return a.emit(cmd, view, func(w io.Writer) error {
				fmt.Fprintf(w, "tour: %s\n", joinInts(res.Tour))
				fmt.Fprintf(w, "cost: %g\n", res.Cost)
				if view.Stats != nil {
					fmt.Fprintf(w, "nodes: %d, pruned: %d\n", view.Stats.Nodes, view.Stats.Pruned)
				}

				return nil
			})
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().IntVar(&start, "start", -1, "Start node (default: the file's source)")
	cmd.Flags().BoolVar(&heldKarp, "held-karp", false, "Use the subset dynamic program instead of branch-and-bound")
	nodeLimitFlag(cmd, &limit)
	cmd.MarkFlagsMutuallyExclusive("held-karp", "node-limit")

	return cmd
}
