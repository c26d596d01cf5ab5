package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlsearch/core"
)

// Node states during a walk.
const (
	White = iota // not visited yet
	Gray         // on the stack
	Black        // node and all its descendants explored
)

// NoParent marks roots and unvisited nodes in Result.Parent.
const NoParent = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates the start node is not in [0, n).
	ErrStartOutOfRange = fmt.Errorf("dfs: start %w", core.ErrOutOfRange)

	// ErrNotDirected indicates TopologicalSort was given an undirected graph.
	ErrNotDirected = errors.New("dfs: topological sort requires a directed graph")

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id, depth int) error

	// OnExit, if non-nil, is invoked once all descendants of a node have
	// been explored (post-order). Returning an error aborts traversal.
	OnExit func(id int) error

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor.
	// Return false to skip it.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal runs DFS from every unvisited node in ascending id,
	// covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks, no
// filtering and single-source traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for DFS traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal makes DFS cover every component; start is ignored.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result collects the outcome of a traversal.
//
//	PreOrder  – nodes in discovery order
//	PostOrder – nodes in finish order
//	Depth     – tree depth of each visited node, -1 if unvisited
//	Parent    – DFS-tree predecessor, NoParent for roots and unvisited nodes
type Result struct {
	PreOrder  []int
	PostOrder []int
	Depth     []int
	Parent    []int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}
