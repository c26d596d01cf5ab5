package disjoint_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/disjoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Singletons(t *testing.T) {
	s, err := disjoint.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 5, s.Count())
	for i := 0; i < 5; i++ {
		r, err := s.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r)
	}

	_, err = disjoint.New(-1)
	assert.ErrorIs(t, err, disjoint.ErrNegativeSize)
}

func TestUnion_DetectsCycles(t *testing.T) {
	s, err := disjoint.New(4)
	require.NoError(t, err)

	ok, err := s.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = s.Union(1, 2)
	assert.True(t, ok)

	// 0 and 2 are already connected through 1.
	ok, err = s.Union(2, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Count())

	c, err := s.Connected(0, 2)
	require.NoError(t, err)
	assert.True(t, c)
	c, _ = s.Connected(0, 3)
	assert.False(t, c)
}

func TestUnion_AttachesFirstRootUnderSecond(t *testing.T) {
	s, err := disjoint.New(3)
	require.NoError(t, err)
	_, _ = s.Union(0, 1)
	r, _ := s.Find(0)
	assert.Equal(t, 1, r)
	_, _ = s.Union(2, 0)
	r, _ = s.Find(2)
	assert.Equal(t, 1, r)
}

func TestFind_OutOfRange(t *testing.T) {
	s, err := disjoint.New(2)
	require.NoError(t, err)

	_, err = s.Find(2)
	assert.ErrorIs(t, err, disjoint.ErrOutOfRange)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = s.Union(0, -1)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = s.Connected(5, 0)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestFind_LongChainIsCompressed(t *testing.T) {
	const n = 100000
	s, err := disjoint.New(n)
	require.NoError(t, err)
	// Build a worst-case chain 0→1→2→…→n-1.
	for i := 0; i+1 < n; i++ {
		_, err = s.Union(i, i+1)
		require.NoError(t, err)
	}
	r, err := s.Find(0)
	require.NoError(t, err)
	assert.Equal(t, n-1, r)
	assert.Equal(t, 1, s.Count())
}

// TestUnion_MatchesNaiveLabels checks find(a)==find(b) iff a and b were joined
// by some chain of successful unions, against a relabel-everything model.
func TestUnion_MatchesNaiveLabels(t *testing.T) {
	const n = 40
	r := rand.New(rand.NewSource(7))
	s, err := disjoint.New(n)
	require.NoError(t, err)

	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	sets := n

	for step := 0; step < 200; step++ {
		a, b := r.Intn(n), r.Intn(n)
		merged, err := s.Union(a, b)
		require.NoError(t, err)

		want := label[a] != label[b]
		assert.Equal(t, want, merged, "step %d union(%d,%d)", step, a, b)
		if want {
			old := label[a]
			for i := range label {
				if label[i] == old {
					label[i] = label[b]
				}
			}
			sets--
		}

		x, y := r.Intn(n), r.Intn(n)
		c, err := s.Connected(x, y)
		require.NoError(t, err)
		assert.Equal(t, label[x] == label[y], c)
	}
	assert.Equal(t, sets, s.Count())
}
