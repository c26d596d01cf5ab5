package core

import (
	"errors"
)

// Sentinel errors shared by the graph model and the engines built on top of it.
var (
	// ErrNegativeNodeCount indicates NewGraph was called with n < 0.
	ErrNegativeNodeCount = errors.New("core: node count must be non-negative")

	// ErrOutOfRange indicates a node (or item) index outside its valid range.
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrInvalidEdge indicates an edge references a non-existent node or carries
	// a weight the consuming algorithm cannot accept.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrDisconnected indicates that a query cannot reach or span all requested nodes.
	ErrDisconnected = errors.New("core: graph is disconnected")
)

// Edge is a weighted connection between two nodes.
//
// For undirected graphs From/To keep the orientation the caller supplied;
// adjacency mirrors it in both directions.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Neighbor is one adjacency entry: the far endpoint and the edge weight.
type Neighbor struct {
	To     int
	Weight float64
}

// GraphOption configures a Graph before its edges are loaded.
type GraphOption func(*Graph)

// WithDirected stores edges one-way (from→to only).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithKeepMinParallel collapses parallel edges, keeping the minimum weight per pair.
// For undirected graphs the pair is unordered.
func WithKeepMinParallel() GraphOption {
	return func(g *Graph) { g.keepMin = true }
}

// Graph is an immutable weighted graph over nodes [0, n).
type Graph struct {
	directed bool
	keepMin  bool

	n     int
	edges []Edge       // canonical list, insertion order
	adj   [][]Neighbor // adj[u] in edge insertion order
}
