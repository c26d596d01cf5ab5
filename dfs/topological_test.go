package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlsearch/builder"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertTopological checks that every edge goes forward in order.
func assertTopological(t *testing.T, g *core.Graph, order []int) {
	t.Helper()
	require.Len(t, order, g.NodeCount())
	pos := make([]int, g.NodeCount())
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %d→%d goes backwards", e.From, e.To)
	}
}

func TestTopologicalSort_DAG(t *testing.T) {
	g, err := core.NewGraph(6, []core.Edge{
		{From: 5, To: 2, Weight: 1},
		{From: 5, To: 0, Weight: 1},
		{From: 4, To: 0, Weight: 1},
		{From: 4, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 1, Weight: 1},
	}, core.WithDirected())
	require.NoError(t, err)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 2, 3, 1, 0}, order)
	assertTopological(t, g, order)
}

func TestTopologicalSort_RandomDAGs(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		f, err := builder.Build([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomDirected(25, 0.15))
		require.NoError(t, err)
		// Keep only forward arcs so the graph is acyclic.
		var edges []core.Edge
		for _, e := range f.Edges {
			if e.From < e.To {
				edges = append(edges, e)
			}
		}
		g, err := core.NewGraph(f.N, edges, core.WithDirected())
		require.NoError(t, err)

		order, err := dfs.TopologicalSort(g)
		require.NoError(t, err)
		assertTopological(t, g, order)
	}
}

func TestTopologicalSort_Cycles(t *testing.T) {
	g, err := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 1, Weight: 1},
	}, core.WithDirected())
	require.NoError(t, err)
	_, err = dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "1→2→3→1")

	loop, err := core.NewGraph(2, []core.Edge{{From: 1, To: 1, Weight: 1}}, core.WithDirected())
	require.NoError(t, err)
	_, err = dfs.TopologicalSort(loop)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "1→1")
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: 1}})
	require.NoError(t, err)
	_, err = dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrNotDirected)

	empty, err := core.NewGraph(0, nil, core.WithDirected())
	require.NoError(t, err)
	order, err := dfs.TopologicalSort(empty)
	require.NoError(t, err)
	assert.Empty(t, order)
}
