package tsp

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlsearch/backtrack"
	"github.com/katalvlaran/lvlsearch/core"
)

var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrStartOutOfRange indicates start is not a node of the graph.
	ErrStartOutOfRange = fmt.Errorf("tsp: start %w", core.ErrOutOfRange)

	// ErrNegativeWeight indicates an edge with negative weight.
	ErrNegativeWeight = fmt.Errorf("tsp: negative edge weight: %w", core.ErrInvalidEdge)

	// ErrNoTour indicates the graph has no Hamiltonian cycle.
	ErrNoTour = fmt.Errorf("tsp: no tour: %w", backtrack.ErrNoSolution)

	// ErrTooLarge indicates HeldKarp was asked for more than MaxHeldKarpNodes nodes.
	ErrTooLarge = errors.New("tsp: too many nodes for Held-Karp")
)

// MaxHeldKarpNodes bounds HeldKarp, whose tables hold n·2ⁿ entries.
const MaxHeldKarpNodes = 16

// Result is an optimal tour.
type Result struct {
	Tour  []int // n+1 ids, Tour[0] == Tour[n] == start
	Cost  float64
	Stats backtrack.Stats // zero for HeldKarp
}

// Options configures Solve.
//
//	NodeLimit – stop with backtrack.ErrNodeLimit after this many nodes; 0 = unlimited.
//	NoBound   – disable the lower bound (exhaustive search, for testing).
//	NoSeed    – do not seed the incumbent with the nearest-neighbor tour.
//	Logger    – receives a debug summary; discarded by default.
type Options struct {
	NodeLimit int
	NoBound   bool
	NoSeed    bool
	Logger    *slog.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithNodeLimit caps the number of search nodes; see backtrack.WithNodeLimit.
func WithNodeLimit(n int) Option {
	return func(o *Options) { o.NodeLimit = n }
}

// WithoutBound turns off lower-bound pruning.
func WithoutBound() Option {
	return func(o *Options) { o.NoBound = true }
}

// WithoutSeed starts the search with no incumbent.
func WithoutSeed() Option {
	return func(o *Options) { o.NoSeed = true }
}

// WithLogger routes run summaries to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns a bounded, seeded, unlimited search with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// table is the dense cheapest-edge view of a graph: w[u*n+v], +Inf if no edge.
type table struct {
	n int
	w []float64
}

func (t *table) at(u, v int) float64 { return t.w[u*t.n+v] }

// newTable validates g and start and reads the cheapest edge per ordered pair.
func newTable(g *core.Graph, start int) (*table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}
	if e, neg := g.HasNegativeWeight(); neg {
		return nil, fmt.Errorf("%w: %d→%d (%g)", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	t := &table{n: n, w: make([]float64, n*n)}
	for i := range t.w {
		t.w[i] = math.Inf(1)
	}
	for u := range n {
		nbs, _ := g.Neighbors(u)
		for _, nb := range nbs {
			if nb.To != u && nb.Weight < t.w[u*n+nb.To] {
				t.w[u*n+nb.To] = nb.Weight
			}
		}
	}

	return t, nil
}
