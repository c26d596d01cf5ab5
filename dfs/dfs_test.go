package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/lvlsearch/builder"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g, err := core.NewGraph(3, nil)
	require.NoError(t, err)
	_, err = dfs.DFS(g, 3)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	// FullTraversal ignores start.
	res, err := dfs.DFS(g, -1, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.PreOrder)
}

func TestDFS_Orders(t *testing.T) {
	// 0 ─ 1 ─ 3
	// │
	// 2 ─ 4      5 (isolated)
	g, err := core.NewGraph(6, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 4, Weight: 1},
	})
	require.NoError(t, err)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, res.PreOrder)
	assert.Equal(t, []int{3, 1, 4, 2, 0}, res.PostOrder)
	assert.Equal(t, []int{0, 1, 1, 2, 2, -1}, res.Depth)
	assert.Equal(t, []int{dfs.NoParent, 0, 0, 1, 2, dfs.NoParent}, res.Parent)
	assert.False(t, res.Visited(5))
	assert.True(t, res.Visited(4))

	res, err = dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 4, 5}, res.PreOrder)
	assert.Equal(t, 0, res.Depth[5])
}

func TestDFS_HooksFilterAndCancel(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	var exits []int
	res, err := dfs.DFS(g, 0,
		dfs.WithFilterNeighbor(func(_, nb int) bool { return nb != 3 }),
		dfs.WithOnExit(func(id int) error { exits = append(exits, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.PreOrder)
	assert.Equal(t, []int{2, 1, 0}, exits)

	stop := errors.New("stop")
	_, err = dfs.DFS(g, 0, dfs.WithOnVisit(func(id, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	_, err = dfs.DFS(g, 0, dfs.WithOnExit(func(int) error { return stop }))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_DeepChainUsesExplicitStack(t *testing.T) {
	const n = 200000
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected()}, nil, builder.Path(n))
	require.NoError(t, err)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Len(t, res.PreOrder, n)
	assert.Equal(t, n-1, res.Depth[n-1])
}
