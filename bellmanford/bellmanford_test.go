package bellmanford_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvlsearch/bellmanford"
	"github.com/katalvlaran/lvlsearch/builder"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellmanFord_NegativeEdgesDirected(t *testing.T) {
	g, err := core.NewGraph(5, []core.Edge{
		{From: 0, To: 1, Weight: 6},
		{From: 0, To: 2, Weight: 7},
		{From: 1, To: 3, Weight: 5},
		{From: 3, To: 1, Weight: -2},
		{From: 2, To: 3, Weight: -3},
		{From: 2, To: 4, Weight: 9},
		{From: 1, To: 4, Weight: -4},
		{From: 4, To: 0, Weight: 2},
	}, core.WithDirected())
	require.NoError(t, err)

	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 7, 4, -2}, res.Dist)

	p, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 1, 4}, p)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -1},
		{From: 2, To: 1, Weight: -1},
	}, core.WithDirected())
	require.NoError(t, err)
	_, err = bellmanford.BellmanFord(g, 0)
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)

	_, err = bellmanford.BellmanFord(g, 2)
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)

	// Unreachable negative cycles do not matter.
	h, err := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: -1},
		{From: 3, To: 2, Weight: -1},
	}, core.WithDirected())
	require.NoError(t, err)
	res, err := bellmanford.BellmanFord(h, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Dist[2], 1))

	// An undirected negative edge is a two-step negative cycle.
	u, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: -1}})
	require.NoError(t, err)
	_, err = bellmanford.BellmanFord(u, 0)
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestBellmanFord_Validation(t *testing.T) {
	_, err := bellmanford.BellmanFord(nil, 0)
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)

	g, err := core.NewGraph(2, nil)
	require.NoError(t, err)
	_, err = bellmanford.BellmanFord(g, 2)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	res, err := bellmanford.BellmanFord(g, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist[1])
	assert.False(t, res.Reachable(0))
}

func TestBellmanFord_AgreesWithDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		var gopts []core.GraphOption
		cons := builder.RandomSparse(15, 0.25)
		if seed%2 == 1 {
			gopts = append(gopts, core.WithDirected())
			cons = builder.RandomDirected(15, 0.2)
		}
		g, err := builder.BuildGraph(gopts,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 20))},
			cons)
		require.NoError(t, err)

		want, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)
		got, err := bellmanford.BellmanFord(g, 0)
		require.NoError(t, err)
		assert.Equal(t, want.Dist, got.Dist, "seed %d", seed)
	}
}

func ExampleBellmanFord() {
	g, _ := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 5},
		{From: 2, To: 1, Weight: -3},
	}, core.WithDirected())
	res, err := bellmanford.BellmanFord(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist)
	// Output:
	// [0 2 5]
}
