package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/core"
)

// Fixture is the node count and edge list accumulated by constructors.
type Fixture struct {
	N     int
	Edges []core.Edge
}

// grow raises N to at least n.
func (f *Fixture) grow(n int) {
	if n > f.N {
		f.N = n
	}
}

// add appends one edge.
func (f *Fixture) add(u, v int, w float64) {
	f.Edges = append(f.Edges, core.Edge{From: u, To: v, Weight: w})
}

// Constructor applies a deterministic mutation to a Fixture.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(f *Fixture, cfg builderConfig) error

// Build resolves bopts and runs every constructor in order.
// Any constructor error is wrapped with "Build: %w".
func Build(bopts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	cfg := newBuilderConfig(bopts...)
	f := &Fixture{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return f, nil
}

// BuildGraph runs Build and turns the fixture into a core.Graph with gopts.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	f, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(f.N, f.Edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
