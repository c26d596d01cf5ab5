package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/assignment"
	"github.com/katalvlaran/lvlsearch/internal/problem"
	"github.com/katalvlaran/lvlsearch/knapsack"
	"github.com/katalvlaran/lvlsearch/nqueens"
	"github.com/katalvlaran/lvlsearch/subsets"
	"github.com/katalvlaran/lvlsearch/subsetsum"
)

// packing is the rendered form of a knapsack result.
type packing struct {
	Items  []int      `json:"items"`
	Weight int64      `json:"weight"`
	Value  int64      `json:"value"`
	Stats  *statsView `json:"stats,omitempty"`
}

func (a *app) knapsackCmd() *cobra.Command {
	var (
		path             string
		seed, dp, greedy bool
		limit            int
	)
	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "0/1 knapsack by branch and bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := load(path, problem.KindKnapsack)
			if err != nil {
				return err
			}
			if limit < 0 {
				return newCLIError(ExitInput, fmt.Sprintf("--node-limit must be non-negative, got %d", limit))
			}
			items, capacity := f.Knapsack.KnapsackItems(), f.Knapsack.Capacity

			var res *knapsack.Result
			switch {
			case dp:
				res, err = knapsack.SolveDP(items, capacity)
			case greedy:
				res, err = knapsack.Greedy(items, capacity)
			default:
				opts := []knapsack.Option{knapsack.WithLogger(a.logger)}
				if seed {
					opts = append(opts, knapsack.WithGreedySeed())
				}
				if limit > 0 {
					opts = append(opts, knapsack.WithNodeLimit(limit))
				}
				res, err = knapsack.Solve(items, capacity, opts...)
			}
			if err != nil {
				return err
			}

			view := packing{Items: res.Items, Weight: res.Weight, Value: res.Value}
			if !dp && !greedy {
				s := viewStats(res.Stats)
				view.Stats = &s
			}

			return a.emit(cmd, view, func(w io.Writer) error {
				fmt.Fprintln(w, "ITEM\tWEIGHT\tVALUE")
				for _, i := range res.Items {
					fmt.Fprintf(w, "%d\t%d\t%d\n", i, items[i].Weight, items[i].Value)
				}
				fmt.Fprintf(w, "total\t%d\t%d\n", res.Weight, res.Value)
				if view.Stats != nil {
					fmt.Fprintf(w, "nodes: %d, pruned: %d\n", view.Stats.Nodes, view.Stats.Pruned)
				}

				return nil
			})
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().BoolVar(&seed, "greedy-seed", false, "Seed the search with the greedy packing")
	cmd.Flags().BoolVar(&dp, "dp", false, "Use the dynamic-programming solver instead")
	cmd.Flags().BoolVar(&greedy, "greedy", false, "Only run the greedy heuristic")
	cmd.MarkFlagsMutuallyExclusive("dp", "greedy")
	nodeLimitFlag(cmd, &limit)

	return cmd
}

// queens is the rendered form of an N-Queens run; only one of the result fields is set.
type queens struct {
	N         int     `json:"n"`
	Solution  []int   `json:"solution,omitempty"`
	Solutions [][]int `json:"solutions,omitempty"`
	Count     *int    `json:"count,omitempty"`
}

func (a *app) queensCmd() *cobra.Command {
	var (
		path       string
		n, limit   int
		all, count bool
	)
	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Place N non-attacking queens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path != "" {
				f, err := load(path, problem.KindQueens)
				if err != nil {
					return err
				}
				n = f.Queens.N
			}
			if n < 1 {
				return newCLIError(ExitInput, fmt.Sprintf("board size must be at least 1, got %d", n))
			}
			opts, err := a.searchOptions(limit)
			if err != nil {
				return err
			}

			view := queens{N: n}
			switch {
			case count:
				c, err := nqueens.Count(n, opts...)
				if err != nil {
					return err
				}
				view.Count = &c
			case all:
				if view.Solutions, err = nqueens.All(n, opts...); err != nil {
					return err
				}
			default:
				if view.Solution, err = nqueens.Solve(n, opts...); err != nil {
					return err
				}
			}

			return a.emit(cmd, view, func(w io.Writer) error {
				switch {
				case view.Count != nil:
					fmt.Fprintf(w, "%d-queens placements: %d\n", n, *view.Count)
				case view.Solutions != nil:
					for _, s := range view.Solutions {
						fmt.Fprintln(w, joinInts(s))
					}
				default:
					fmt.Fprintf(w, "columns: %s\n", joinInts(view.Solution))
					fmt.Fprint(w, drawBoard(view.Solution))
				}

				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Path to a queens problem file")
	cmd.Flags().IntVarP(&n, "n", "n", 8, "Board size")
	cmd.Flags().BoolVar(&all, "all", false, "Print every placement")
	cmd.Flags().BoolVar(&count, "count", false, "Only count placements")
	cmd.MarkFlagsMutuallyExclusive("all", "count")
	cmd.MarkFlagsMutuallyExclusive("file", "n")
	nodeLimitFlag(cmd, &limit)

	return cmd
}

// drawBoard renders a placement with one row per line.
func drawBoard(cols []int) string {
	var b strings.Builder
	for _, c := range cols {
		for j := range cols {
			if j > 0 {
				b.WriteByte(' ')
			}
			if j == c {
				b.WriteByte('Q')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (a *app) subsetsumCmd() *cobra.Command {
	var (
		path  string
		all   bool
		limit int
	)
	cmd := &cobra.Command{
		Use:   "subsetsum",
		Short: "Find index sets whose numbers add up to a target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := load(path, problem.KindSubsetSum)
			if err != nil {
				return err
			}
			opts, err := a.searchOptions(limit)
			if err != nil {
				return err
			}
			nums, target := f.SubsetSum.Numbers, f.SubsetSum.Target

			var sets [][]int
			if all {
				sets, err = subsetsum.All(nums, target, opts...)
			} else {
				var s []int
				s, err = subsetsum.First(nums, target, opts...)
				sets = [][]int{s}
			}
			if err != nil {
				return err
			}

			return a.emit(cmd, map[string][][]int{"subsets": sets}, func(w io.Writer) error {
				fmt.Fprintln(w, "INDICES\tNUMBERS")
				for _, s := range sets {
					vals := make([]string, len(s))
					for i, idx := range s {
						vals[i] = fmt.Sprint(nums[idx])
					}
					fmt.Fprintf(w, "%s\t%s\n", joinInts(s), strings.Join(vals, " + "))
				}

				return nil
			})
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().BoolVar(&all, "all", false, "Print every matching subset")
	nodeLimitFlag(cmd, &limit)

	return cmd
}

func (a *app) subsetsCmd() *cobra.Command {
	var (
		path  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "subsets [item...]",
		Short: "Enumerate every subset of the given items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := args
			if path != "" {
				if len(args) > 0 {
					return newCLIError(ExitInput, "pass items either as arguments or with --file, not both")
				}
				f, err := load(path, problem.KindSubsets)
				if err != nil {
					return err
				}
				items = f.Subsets.Items
			}
			opts, err := a.searchOptions(limit)
			if err != nil {
				return err
			}
			all, err := subsets.All(items, opts...)
			if err != nil {
				return err
			}

			return a.emit(cmd, map[string][][]string{"subsets": all}, func(w io.Writer) error {
				for _, s := range all {
					fmt.Fprintf(w, "{%s}\n", strings.Join(s, ", "))
				}

				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Path to a subsets problem file")
	nodeLimitFlag(cmd, &limit)

	return cmd
}

// matching is the rendered form of an assignment result.
type matching struct {
	Assign []int      `json:"assign"`
	Cost   float64    `json:"cost"`
	Stats  *statsView `json:"stats,omitempty"`
}

func (a *app) assignCmd() *cobra.Command {
	var (
		path   string
		greedy bool
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Minimum-cost assignment of rows to columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := load(path, problem.KindAssignment)
			if err != nil {
				return err
			}
			opts, err := a.searchOptions(limit)
			if err != nil {
				return err
			}
			cost := f.Assignment.Cost

			var res *assignment.Result
			if greedy {
				res, err = assignment.Greedy(cost)
			} else {
				res, err = assignment.Solve(cost, opts...)
			}
			if err != nil {
				return err
			}

			view := matching{Assign: res.Assign, Cost: res.Cost}
			if !greedy {
				s := viewStats(res.Stats)
				view.Stats = &s
			}

			return a.emit(cmd, view, func(w io.Writer) error {
				fmt.Fprintln(w, "ROW\tCOLUMN\tCOST")
				for r, c := range res.Assign {
					fmt.Fprintf(w, "%d\t%d\t%s\n", r, c, formatDist(cost[r][c]))
				}
				fmt.Fprintf(w, "total\t\t%s\n", formatDist(res.Cost))

				return nil
			})
		},
	}
	fileFlag(cmd, &path)
	cmd.Flags().BoolVar(&greedy, "greedy", false, "Only run the greedy heuristic")
	nodeLimitFlag(cmd, &limit)

	return cmd
}
