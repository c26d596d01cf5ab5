// Package floyd computes all-pairs shortest paths with the Floyd–Warshall
// algorithm and keeps a next-hop table for path reconstruction.
//
// The distance table starts at 0 on the diagonal, the cheapest direct edge
// off the diagonal (both directions for undirected graphs), and +Inf
// elsewhere. Loop order is fixed (k → i → j) and only strict improvements
// are applied, so results are deterministic. A negative diagonal entry after
// the closure means a negative cycle and fails with ErrNegativeCycle.
//
// Complexity: O(V³) time, O(V²) memory.
package floyd

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvlsearch/core"
)

var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("floyd: graph is nil")

	// ErrNegativeCycle indicates the graph contains a negative-weight cycle.
	ErrNegativeCycle = errors.New("floyd: negative cycle")

	// ErrUnreachable indicates no path between the requested nodes.
	ErrUnreachable = fmt.Errorf("floyd: %w", core.ErrDisconnected)
)

const noHop = -1

// Options configures AllPairs.
type Options struct {
	Logger *slog.Logger
}

// Option represents a functional option for configuring AllPairs.
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

// Matrix is the all-pairs result. Distances are row-major over n×n.
type Matrix struct {
	n    int
	dist []float64
	next []int // first hop on a shortest i→j path, noHop if none
}

// AllPairs runs Floyd–Warshall over g.
func AllPairs(g *core.Graph, opts ...Option) (*Matrix, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	m := newMatrix(g)
	m.close()
	for i := 0; i < m.n; i++ {
		if d := m.dist[i*m.n+i]; d < 0 {
			return nil, fmt.Errorf("%w: through node %d (%g)", ErrNegativeCycle, i, d)
		}
	}
	cfg.Logger.Debug("floyd-warshall finished", "nodes", m.n, "edges", g.EdgeCount())

	return m, nil
}

func newMatrix(g *core.Graph) *Matrix {
	n := g.NodeCount()
	m := &Matrix{n: n, dist: make([]float64, n*n), next: make([]int, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.dist[i*n+j] = math.Inf(1)
			m.next[i*n+j] = noHop
		}
		m.dist[i*n+i] = 0
		m.next[i*n+i] = i
	}
	set := func(u, v int, w float64) {
		if w < m.dist[u*n+v] {
			m.dist[u*n+v] = w
			m.next[u*n+v] = v
		}
	}
	for _, e := range g.Edges() {
		set(e.From, e.To, e.Weight)
		if !g.Directed() {
			set(e.To, e.From, e.Weight)
		}
	}

	return m
}

// close relaxes every pair through every intermediate node.
func (m *Matrix) close() {
	n, d, nx := m.n, m.dist, m.next
	var ik, kj, cand float64
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik = d[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj = d[k*n+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand = ik + kj; cand < d[i*n+j] {
					d[i*n+j] = cand
					nx[i*n+j] = nx[i*n+k]
				}
			}
		}
	}
}

// Len returns the number of nodes.
func (m *Matrix) Len() int { return m.n }

// Dist returns the shortest distance i→j, +Inf if unreachable.
func (m *Matrix) Dist(i, j int) (float64, error) {
	if err := m.check(i, j); err != nil {
		return 0, err
	}

	return m.dist[i*m.n+j], nil
}

// Row returns a copy of the distances from i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if err := m.check(i, i); err != nil {
		return nil, err
	}
	out := make([]float64, m.n)
	copy(out, m.dist[i*m.n:(i+1)*m.n])

	return out, nil
}

// Path returns the node sequence of a shortest i→j path.
func (m *Matrix) Path(i, j int) ([]int, error) {
	if err := m.check(i, j); err != nil {
		return nil, err
	}
	if m.next[i*m.n+j] == noHop {
		return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, i, j)
	}
	path := []int{i}
	for u := i; u != j; {
		u = m.next[u*m.n+j]
		path = append(path, u)
	}

	return path, nil
}

func (m *Matrix) check(i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("floyd: pair (%d,%d) outside [0,%d): %w", i, j, m.n, core.ErrOutOfRange)
	}

	return nil
}
