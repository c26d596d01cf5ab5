package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/backtrack"
	"github.com/katalvlaran/lvlsearch/internal/problem"
)

// app holds the global flags and the logger shared by every subcommand.
type app struct {
	output  string
	verbose bool
	logger  *slog.Logger
}

// newRootCmd builds a fresh command tree, so tests can run it repeatedly.
func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "lvlsearch",
		Short: "Graph optimisation and backtracking search",
		Long: `lvlsearch solves shortest-path, spanning-tree and combinatorial search
problems described in YAML problem files.

Each file names its kind and carries the matching section:

  kind: graph
  graph:
    nodes: 4
    edges:
      - {from: 0, to: 1, weight: 2}`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.PersistentFlags().StringVarP(&a.output, "output", "o", string(formatText), "Output format (text|json)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log engine summaries to stderr")

	root.AddCommand(
		a.shortestCmd(),
		a.bellmanCmd(),
		a.apspCmd(),
		a.hopsCmd(),
		a.topoCmd(),
		a.mstCmd(),
		a.hamiltonCmd(),
		a.tourCmd(),
		a.knapsackCmd(),
		a.queensCmd(),
		a.subsetsumCmd(),
		a.subsetsCmd(),
		a.assignCmd(),
	)

	return root
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return handleError(root, root.Execute())
}

// setup validates global flags and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch outputFormat(a.output) {
	case formatText, formatJSON:
	default:
		return newCLIError(ExitInput, fmt.Sprintf("unknown output format %q (want text or json)", a.output))
	}

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// load reads the problem file at path and checks its kind.
func load(path string, k problem.Kind) (*problem.File, error) {
	f, err := problem.Load(path)
	if err != nil {
		return nil, wrapError(ExitInput, "cannot load problem", err)
	}
	if err := f.Expect(k); err != nil {
		return nil, wrapError(ExitInput, "cannot load problem", err)
	}

	return f, nil
}

// searchOptions turns the --node-limit flag into backtrack options.
func (a *app) searchOptions(limit int) ([]backtrack.Option, error) {
	if limit < 0 {
		return nil, newCLIError(ExitInput, fmt.Sprintf("--node-limit must be non-negative, got %d", limit))
	}
	opts := []backtrack.Option{backtrack.WithLogger(a.logger)}
	if limit > 0 {
		opts = append(opts, backtrack.WithNodeLimit(limit))
	}

	return opts, nil
}

func fileFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "file", "f", "", "Path to the YAML problem file")
	_ = cmd.MarkFlagRequired("file")
}

func nodeLimitFlag(cmd *cobra.Command, limit *int) {
	cmd.Flags().IntVar(limit, "node-limit", 0, "Stop the search after this many nodes (0 = unlimited)")
}
