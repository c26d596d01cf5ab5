package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlsearch/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates the source node is outside [0, n).
	ErrSourceOutOfRange = fmt.Errorf("dijkstra: source %w", core.ErrOutOfRange)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight: %w", core.ErrInvalidEdge)

	// ErrUnreachable indicates that no path from the source reaches the target.
	ErrUnreachable = fmt.Errorf("dijkstra: target unreachable: %w", core.ErrDisconnected)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoPredecessor marks the source and unreachable nodes in Result.Prev.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose distance would exceed this value are not explored.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
// Logger           – receives a debug summary; discarded by default.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	Logger           *slog.Logger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes run summaries to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no distance cap, no impassable edges
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           slog.New(slog.DiscardHandler),
	}
}

// Result holds the distance and predecessor arrays of one run.
type Result struct {
	// Source is the node the search started from.
	Source int

	// Dist[v] is the shortest distance from Source to v, math.Inf(1) if unreachable.
	Dist []float64

	// Prev[v] is v's predecessor on one shortest path, NoPredecessor for the
	// source and for unreachable nodes.
	Prev []int
}

// Reachable reports whether v was reached from the source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// PathTo rebuilds the shortest path Source→…→v by following Prev.
func (r *Result) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(r.Dist) {
		return nil, fmt.Errorf("dijkstra: target %d: %w", v, core.ErrOutOfRange)
	}
	if !r.Reachable(v) {
		return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, r.Source, v)
	}

	var path []int
	for u := v; u != NoPredecessor; u = r.Prev[u] {
		path = append(path, u)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
