package knapsack

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/lvlsearch/backtrack"
)

var (
	// ErrInvalidItem indicates an item with non-positive weight or negative value.
	ErrInvalidItem = errors.New("knapsack: item weight must be positive and value non-negative")

	// ErrInvalidCapacity indicates a negative capacity.
	ErrInvalidCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrCapacityTooLarge indicates SolveDP was asked for a table above MaxDPCapacity.
	ErrCapacityTooLarge = errors.New("knapsack: capacity too large for the DP table")
)

// MaxDPCapacity bounds the DP table width.
const MaxDPCapacity = 1 << 22

// Item is one candidate for the knapsack.
type Item struct {
	Weight int64
	Value  int64
}

// Result is a chosen selection.
type Result struct {
	Items  []int // original indices, ascending
	Weight int64
	Value  int64
	Stats  backtrack.Stats // zero for SolveDP and Greedy
}

// Options configures Solve.
type Options struct {
	GreedySeed bool
	NodeLimit  int
	Logger     *slog.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithGreedySeed seeds the incumbent with the Greedy selection.
func WithGreedySeed() Option {
	return func(o *Options) { o.GreedySeed = true }
}

// WithNodeLimit caps the number of search nodes; see backtrack.WithNodeLimit.
func WithNodeLimit(n int) Option {
	return func(o *Options) { o.NodeLimit = n }
}

// WithLogger routes run summaries to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an unseeded, unlimited search with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}
