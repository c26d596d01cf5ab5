package prim_kruskal

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlsearch/core"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil undirected graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil undirected graph")

// ErrRootOutOfRange indicates that the Prim root is not a node of the graph.
var ErrRootOutOfRange = fmt.Errorf("prim_kruskal: root %w", core.ErrOutOfRange)

// ErrDisconnected indicates that no spanning tree covers every node.
var ErrDisconnected = fmt.Errorf("prim_kruskal: %w", core.ErrDisconnected)

// ErrUnknownMethod indicates Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is a spanning tree: its edges in acceptance order and their total weight.
type Result struct {
	Edges []core.Edge
	Total float64
}

// MSTOptions configures Compute.
//
//	Method – MethodPrim or MethodKruskal.
//	Root   – start node for Prim; ignored by Kruskal.
//	Logger – receives a debug summary; discarded by default.
type MSTOptions struct {
	Method string
	Root   int
	Logger *slog.Logger
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm. Unknown names surface as ErrUnknownMethod from Compute.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets the starting node for Prim's algorithm.
func WithRoot(root int) Option {
	return func(o *MSTOptions) { o.Root = root }
}

// WithLogger routes run summaries to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *MSTOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Kruskal, root 0, and a discarding logger.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Compute selects and runs the MST algorithm named by the options.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		res *Result
		err error
	)
	switch cfg.Method {
	case MethodKruskal:
		res, err = Kruskal(g)
	case MethodPrim:
		res, err = Prim(g, cfg.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
	if err != nil {
		return nil, err
	}

	cfg.Logger.Debug("spanning tree built",
		"method", cfg.Method,
		"nodes", g.NodeCount(),
		"edges", len(res.Edges),
		"total", res.Total,
	)

	return res, nil
}

// validate applies the checks shared by both algorithms and reports whether
// the graph is trivially spanned (a single node).
func validate(g *core.Graph) (trivial bool, err error) {
	if g == nil || g.Directed() {
		return false, ErrInvalidGraph
	}
	switch g.NodeCount() {
	case 0:
		return false, fmt.Errorf("%w: graph has no nodes", ErrDisconnected)
	case 1:
		return true, nil
	}

	return false, nil
}
