package main

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/backtrack"
	"github.com/katalvlaran/lvlsearch/core"
)

// outputFormat is the value of the --output flag.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

// emit writes v as indented JSON, or hands text a tabwriter over stdout.
func (a *app) emit(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	out := cmd.OutOrStdout()
	if outputFormat(a.output) == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if err := text(tw); err != nil {
		return err
	}

	return tw.Flush()
}

// edgeView is the JSON form of a core.Edge.
type edgeView struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

func edgeViews(es []core.Edge) []edgeView {
	out := make([]edgeView, len(es))
	for i, e := range es {
		out[i] = edgeView{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}

// statsView is the JSON form of backtrack.Stats.
type statsView struct {
	Nodes      int `json:"nodes"`
	Pruned     int `json:"pruned"`
	Infeasible int `json:"infeasible"`
	Solutions  int `json:"solutions"`
	MaxDepth   int `json:"max_depth"`
}

func viewStats(s backtrack.Stats) statsView {
	return statsView(s)
}

// jsonDist encodes +Inf as null, which JSON cannot represent.
func jsonDist(d float64) *float64 {
	if math.IsInf(d, 0) {
		return nil
	}

	return &d
}

func jsonDists(ds []float64) []*float64 {
	out := make([]*float64, len(ds))
	for i, d := range ds {
		out[i] = jsonDist(d)
	}

	return out
}

func formatDist(d float64) string {
	switch {
	case math.IsInf(d, 1):
		return "inf"
	case math.IsInf(d, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(d, 'g', -1, 64)
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
