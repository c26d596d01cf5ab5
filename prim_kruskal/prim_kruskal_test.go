package prim_kruskal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlsearch/builder"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/disjoint"
	"github.com/katalvlaran/lvlsearch/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// square is the 4-node cycle (0-1,2),(1-2,3),(2-3,2),(3-0,6).
func square(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 2},
		{From: 3, To: 0, Weight: 6},
	})
	require.NoError(t, err)

	return g
}

// assertSpanningTree checks that edges form an acyclic spanning tree of n nodes
// whose weights add up to total.
func assertSpanningTree(t *testing.T, n int, res *prim_kruskal.Result) {
	t.Helper()
	require.Len(t, res.Edges, n-1)
	ds, err := disjoint.New(n)
	require.NoError(t, err)
	var sum float64
	for _, e := range res.Edges {
		merged, err := ds.Union(e.From, e.To)
		require.NoError(t, err)
		require.True(t, merged, "edge %d-%d closes a cycle", e.From, e.To)
		sum += e.Weight
	}
	assert.Equal(t, 1, ds.Count())
	assert.InDelta(t, res.Total, sum, 1e-9)
}

// ------------------------------------------------------------------------
// 1. Scenarios
// ------------------------------------------------------------------------

func TestSquare_BothMethodsTotalSeven(t *testing.T) {
	g := square(t)

	p, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, p.Total)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 2},
	}, p.Edges)

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 7.0, k.Total)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 2, To: 3, Weight: 2},
		{From: 1, To: 2, Weight: 3},
	}, k.Edges)
}

func TestDisconnected(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{{From: 0, To: 1, Weight: 1}})
	require.NoError(t, err)

	_, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.ErrorIs(t, err, core.ErrDisconnected)

	_, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.ErrorIs(t, err, core.ErrDisconnected)
}

// ------------------------------------------------------------------------
// 2. Edge cases
// ------------------------------------------------------------------------

func TestInvalidGraph(t *testing.T) {
	_, err := prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	g, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: 1}}, core.WithDirected())
	require.NoError(t, err)
	_, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestEmptyAndSingleNode(t *testing.T) {
	empty, err := core.NewGraph(0, nil)
	require.NoError(t, err)
	_, err = prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, err = prim_kruskal.Prim(empty, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	single, err := core.NewGraph(1, []core.Edge{{From: 0, To: 0, Weight: 5}})
	require.NoError(t, err)
	for _, res := range []func() (*prim_kruskal.Result, error){
		func() (*prim_kruskal.Result, error) { return prim_kruskal.Prim(single, 0) },
		func() (*prim_kruskal.Result, error) { return prim_kruskal.Kruskal(single) },
	} {
		r, err := res()
		require.NoError(t, err)
		assert.Empty(t, r.Edges)
		assert.Zero(t, r.Total)
	}
}

func TestPrim_RootOutOfRange(t *testing.T) {
	_, err := prim_kruskal.Prim(square(t), 4)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestPrim_TiesGoToLowerDestination(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 2, Weight: 1},
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
	})
	require.NoError(t, err)

	res, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
	}, res.Edges)
}

func TestSelfLoopsAndParallelEdges(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 0, Weight: -10},
		{From: 0, To: 1, Weight: 8},
		{From: 1, To: 0, Weight: 3},
		{From: 1, To: 2, Weight: 4},
		{From: 2, To: 2, Weight: 0},
	})
	require.NoError(t, err)

	p, err := prim_kruskal.Prim(g, 2)
	require.NoError(t, err)
	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 7.0, p.Total)
	assert.Equal(t, 7.0, k.Total)
	assertSpanningTree(t, 3, p)
	assertSpanningTree(t, 3, k)
}

// ------------------------------------------------------------------------
// 3. Compute dispatcher
// ------------------------------------------------------------------------

func TestCompute(t *testing.T) {
	g := square(t)

	res, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Total)

	res, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(3))
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Total)
	assert.Equal(t, 3, res.Edges[0].From)

	_, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

func TestPrimAndKruskalAgreeWithGonum(t *testing.T) {
	compared := 0
	for seed := int64(1); seed <= 30; seed++ {
		f, err := builder.Build(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 30))},
			builder.RandomSparse(25, 0.2),
		)
		require.NoError(t, err)
		g, err := core.NewGraph(f.N, f.Edges)
		require.NoError(t, err)

		k, kerr := prim_kruskal.Kruskal(g)
		p, perr := prim_kruskal.Prim(g, int(seed)%f.N)
		if errors.Is(kerr, core.ErrDisconnected) {
			assert.ErrorIs(t, perr, core.ErrDisconnected, "seed %d", seed)
			continue
		}
		require.NoError(t, kerr)
		require.NoError(t, perr)
		assertSpanningTree(t, f.N, k)
		assertSpanningTree(t, f.N, p)
		assert.Equal(t, k.Total, p.Total, "seed %d", seed)

		oracle := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		for _, e := range f.Edges {
			oracle.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.From), T: simple.Node(e.To), W: e.Weight})
		}
		dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		assert.Equal(t, path.Kruskal(dst, oracle), k.Total, "seed %d", seed)
		compared++
	}
	assert.Positive(t, compared)
}
