package hamilton_test

import (
	"testing"

	"github.com/katalvlaran/lvlsearch/backtrack"
	"github.com/katalvlaran/lvlsearch/builder"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/hamilton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertCycle checks that c is a Hamiltonian cycle of g from start.
func assertCycle(t *testing.T, g *core.Graph, start int, c []int) {
	t.Helper()
	n := g.NodeCount()
	require.Len(t, c, n+1)
	assert.Equal(t, start, c[0])
	assert.Equal(t, start, c[n])
	seen := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		assert.False(t, seen[c[i]], "node %d repeated", c[i])
		seen[c[i]] = true
		_, ok := g.Weight(c[i], c[i+1])
		assert.True(t, ok, "missing edge %d→%d", c[i], c[i+1])
	}
}

func TestCycle_Ring(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	c, err := hamilton.Cycle(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 0}, c)

	c, err = hamilton.Cycle(g, 3)
	require.NoError(t, err)
	assertCycle(t, g, 3, c)
}

func TestCycle_CompleteGraphIsLexicographic(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	c, err := hamilton.Cycle(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0}, c)
}

func TestCycle_NoSolution(t *testing.T) {
	star, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)
	_, err = hamilton.Cycle(star, 0)
	assert.ErrorIs(t, err, hamilton.ErrNoSolution)
	assert.ErrorIs(t, err, backtrack.ErrNoSolution)

	path, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	_, err = hamilton.Cycle(path, 1)
	assert.ErrorIs(t, err, hamilton.ErrNoSolution)

	// Two nodes joined by parallel edges still form no simple cycle.
	pair, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 0, To: 1, Weight: 2}})
	require.NoError(t, err)
	_, err = hamilton.Cycle(pair, 0)
	assert.ErrorIs(t, err, hamilton.ErrNoSolution)
}

func TestCycle_Directed(t *testing.T) {
	ring, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 0, Weight: 1},
	}, core.WithDirected())
	require.NoError(t, err)
	c, err := hamilton.Cycle(ring, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 1}, c)

	chain, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
	}, core.WithDirected())
	require.NoError(t, err)
	_, err = hamilton.Cycle(chain, 0)
	assert.ErrorIs(t, err, hamilton.ErrNoSolution)

	loop, err := core.NewGraph(1, []core.Edge{{From: 0, To: 0, Weight: 1}}, core.WithDirected())
	require.NoError(t, err)
	c, err = hamilton.Cycle(loop, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, c)
}

func TestCycle_Grid(t *testing.T) {
	// A 3×4 grid has a Hamiltonian cycle (even node count); 3×3 does not.
	even, err := builder.BuildGraph(nil, nil, builder.Grid(3, 4))
	require.NoError(t, err)
	c, err := hamilton.Cycle(even, 0)
	require.NoError(t, err)
	assertCycle(t, even, 0, c)

	odd, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	require.NoError(t, err)
	_, err = hamilton.Cycle(odd, 4)
	assert.ErrorIs(t, err, hamilton.ErrNoSolution)
}

func TestCycle_Validation(t *testing.T) {
	_, err := hamilton.Cycle(nil, 0)
	assert.ErrorIs(t, err, hamilton.ErrNilGraph)

	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	_, err = hamilton.Cycle(g, 4)
	assert.ErrorIs(t, err, hamilton.ErrStartOutOfRange)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	small, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: 1}})
	require.NoError(t, err)
	_, err = hamilton.Cycle(small, 0)
	assert.ErrorIs(t, err, hamilton.ErrNoSolution)
}

func TestCycle_NodeLimit(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(5, 5))
	require.NoError(t, err)
	_, err = hamilton.Cycle(g, 0, backtrack.WithNodeLimit(10))
	assert.ErrorIs(t, err, backtrack.ErrNodeLimit)
}

func TestCycle_WheelThroughHub(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(6))
	require.NoError(t, err)

	for _, start := range []int{0, 5} {
		c, err := hamilton.Cycle(g, start)
		require.NoError(t, err)
		assertCycle(t, g, start, c)
	}
}

func TestCycle_UnreachableNodeFailsBeforeSearch(t *testing.T) {
	// Two disjoint triangles: the search would otherwise explore one of them.
	g, err := core.NewGraph(6, []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 0, Weight: 1},
		{From: 3, To: 4, Weight: 1}, {From: 4, To: 5, Weight: 1}, {From: 5, To: 3, Weight: 1},
	})
	require.NoError(t, err)

	// A node limit of 1 would trip if backtracking started.
	_, err = hamilton.Cycle(g, 0, backtrack.WithNodeLimit(1))
	assert.ErrorIs(t, err, hamilton.ErrNoSolution)
	assert.NotErrorIs(t, err, backtrack.ErrNodeLimit)
}
