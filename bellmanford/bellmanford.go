// Package bellmanford computes single-source shortest paths on graphs whose
// edges may carry negative weights.
//
// Each round relaxes every edge in canonical order (both directions for an
// undirected edge); rounds stop early once nothing changes. If a further
// round after n−1 still improves a distance, a negative cycle is reachable
// from the source and the call fails with ErrNegativeCycle. On an undirected
// graph any reachable negative edge is such a cycle.
//
// The result has the same shape as dijkstra.Result, so PathTo and Reachable
// work unchanged, and on non-negative graphs the distances are identical.
//
// Complexity: O(V·E) time, O(V) extra memory.
package bellmanford

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/dijkstra"
)

var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrSourceOutOfRange indicates the source node is outside [0, n).
	ErrSourceOutOfRange = fmt.Errorf("bellmanford: source %w", core.ErrOutOfRange)

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// Options configures BellmanFord.
type Options struct {
	Logger *slog.Logger
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// WithLogger routes run summaries to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// BellmanFord returns distances and predecessors from source.
func BellmanFord(g *core.Graph, source int, opts ...Option) (*dijkstra.Result, error) {
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

	dist := make([]float64, n)
	prev := make([]int, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		prev[v] = dijkstra.NoPredecessor
	}
	dist[source] = 0

	edges := g.Edges()
	relax := func(u, v int, w float64) bool {
		if math.IsInf(dist[u], 1) || dist[u]+w >= dist[v] {
			return false
		}
		dist[v] = dist[u] + w
		prev[v] = u

		return true
	}
	round := func() bool {
		changed := false
		for _, e := range edges {
			if relax(e.From, e.To, e.Weight) {
				changed = true
			}
			if !g.Directed() && relax(e.To, e.From, e.Weight) {
				changed = true
			}
		}

		return changed
	}

	rounds := 0
	for rounds < n-1 {
		rounds++
		if !round() {
			break
		}
	}
	if rounds == n-1 && round() {
		return nil, fmt.Errorf("%w: source %d", ErrNegativeCycle, source)
	}

	cfg.Logger.Debug("bellman-ford finished", "source", source, "nodes", n, "edges", len(edges), "rounds", rounds)

	return &dijkstra.Result{Source: source, Dist: dist, Prev: prev}, nil
}
