package backtrack

import (
	"errors"
	"log/slog"
)

var (
	// ErrNoSolution indicates that the search space holds no goal node.
	ErrNoSolution = errors.New("backtrack: no solution")

	// ErrNodeLimit indicates the search stopped after visiting the configured
	// number of nodes. State has been restored to the root.
	ErrNodeLimit = errors.New("backtrack: node limit reached")

	// ErrNilState indicates a nil State was passed to an entry point.
	ErrNilState = errors.New("backtrack: state is nil")

	// ErrNilIncumbent indicates Optimize was called without an Incumbent.
	ErrNilIncumbent = errors.New("backtrack: incumbent is nil")

	// ErrBadNodeLimit indicates WithNodeLimit received a non-positive value.
	ErrBadNodeLimit = errors.New("backtrack: node limit must be positive")
)

// State is a mutable search node that applies and undoes decisions of type D.
type State[D any] interface {
	// Candidates appends the decisions to try at the current node to dst and
	// returns the extended slice. Order defines the search order.
	Candidates(dst []D) []D

	// Feasible reports whether d may be applied at the current node.
	Feasible(d D) bool

	// Push applies d.
	Push(d D)

	// Pop undoes d, which is always the most recent Push.
	Pop(d D)

	// IsGoal reports whether the current node is a solution.
	IsGoal() bool
}

// Bounded is a State that supports branch-and-bound maximisation.
type Bounded[D any] interface {
	State[D]

	// Objective is the value of the current node when it is a goal.
	Objective() float64

	// Bound is an upper bound on Objective over the current subtree.
	Bound() float64
}

// Incumbent is the best solution seen so far by Optimize. Callers create it,
// may seed it with a known solution, and read it back afterwards.
type Incumbent[D any] struct {
	Value float64
	Path  []D
	Found bool
}

// NewIncumbent returns an empty incumbent; only solutions strictly above floor
// will be accepted.
func NewIncumbent[D any](floor float64) *Incumbent[D] {
	return &Incumbent[D]{Value: floor}
}

// Offer records path as the incumbent if value is strictly better.
// The path is copied.
func (inc *Incumbent[D]) Offer(value float64, path []D) bool {
	if value <= inc.Value {
		return false
	}
	inc.Value = value
	inc.Path = append(inc.Path[:0], path...)
	inc.Found = true

	return true
}

// Stats counts what one search did.
type Stats struct {
	Nodes      int // nodes entered, the root included
	Pruned     int // nodes not expanded because of the bound
	Infeasible int // candidates rejected by Feasible
	Solutions  int // goal nodes reported (or incumbent improvements in Optimize)
	MaxDepth   int // deepest decision path reached
}

// Options configures a search run.
type Options struct {
	NodeLimit int // 0 = unlimited
	Logger    *slog.Logger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithNodeLimit stops the search with ErrNodeLimit after n nodes.
// n must be positive; other values panic with ErrBadNodeLimit.
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadNodeLimit.Error())
		}
		o.NodeLimit = n
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

// DefaultOptions returns an unlimited search with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}
