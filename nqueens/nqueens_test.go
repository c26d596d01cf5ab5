package nqueens_test

import (
	"testing"

	"github.com/katalvlaran/lvlsearch/backtrack"
	"github.com/katalvlaran/lvlsearch/nqueens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_FourByFour(t *testing.T) {
	p, err := nqueens.Solve(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 0, 2}, p)
	assert.True(t, nqueens.Valid(p))
}

func TestSolve_NoPlacement(t *testing.T) {
	for _, n := range []int{2, 3} {
		_, err := nqueens.Solve(n)
		assert.ErrorIs(t, err, nqueens.ErrNoSolution, "n=%d", n)
		assert.ErrorIs(t, err, backtrack.ErrNoSolution, "n=%d", n)

		_, err = nqueens.All(n)
		assert.ErrorIs(t, err, nqueens.ErrNoSolution, "n=%d", n)
	}
}

func TestSolve_InvalidSize(t *testing.T) {
	_, err := nqueens.Solve(0)
	assert.ErrorIs(t, err, nqueens.ErrInvalidSize)
	_, err = nqueens.Count(-3)
	assert.ErrorIs(t, err, nqueens.ErrInvalidSize)
}

func TestCount_KnownSequence(t *testing.T) {
	want := []int{1, 0, 0, 2, 10, 4, 40, 92}
	for i, w := range want {
		got, err := nqueens.Count(i + 1)
		require.NoError(t, err)
		assert.Equal(t, w, got, "n=%d", i+1)
	}
}

func TestAll_SixIsLexicographicAndValid(t *testing.T) {
	ps, err := nqueens.All(6)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{1, 3, 5, 0, 2, 4},
		{2, 5, 1, 4, 0, 3},
		{3, 0, 4, 1, 5, 2},
		{4, 2, 0, 5, 3, 1},
	}, ps)
	for _, p := range ps {
		assert.True(t, nqueens.Valid(p))
	}
}

func TestValid(t *testing.T) {
	assert.True(t, nqueens.Valid([]int{0}))
	assert.False(t, nqueens.Valid(nil))
	assert.False(t, nqueens.Valid([]int{0, 2, 1, 3}), "diagonal clash")
	assert.False(t, nqueens.Valid([]int{1, 3, 0, 0}), "column clash")
	assert.False(t, nqueens.Valid([]int{1, 3, 0, 4}), "off board")
}

func BenchmarkCount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = nqueens.Count(9)
	}
}
