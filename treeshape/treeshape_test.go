package treeshape_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlsearch/treeshape"
	"github.com/stretchr/testify/assert"
)

type node = treeshape.Node[int]

func leaf(v int) *node { return &node{Value: v} }

func TestShape(t *testing.T) {
	var empty *node
	assert.Equal(t, treeshape.Empty, empty.Shape())
	assert.Equal(t, treeshape.Leaf, leaf(1).Shape())
	assert.Equal(t, treeshape.OneChild, (&node{Left: leaf(2)}).Shape())
	assert.Equal(t, treeshape.OneChild, (&node{Right: leaf(2)}).Shape())
	assert.Equal(t, treeshape.TwoChildren, (&node{Left: leaf(2), Right: leaf(3)}).Shape())
	assert.Equal(t, "one-child", treeshape.OneChild.String())
}

func TestLevelOrderTrees(t *testing.T) {
	tests := []struct {
		n                       int
		full, perfect, complete bool
		height                  int
	}{
		{n: 0, full: true, perfect: true, complete: true, height: 0},
		{n: 1, full: true, perfect: true, complete: true, height: 1},
		{n: 2, full: false, perfect: false, complete: true, height: 2},
		{n: 3, full: true, perfect: true, complete: true, height: 2},
		{n: 5, full: true, perfect: false, complete: true, height: 3},
		{n: 6, full: false, perfect: false, complete: true, height: 3},
		{n: 7, full: true, perfect: true, complete: true, height: 3},
		{n: 15, full: true, perfect: true, complete: true, height: 4},
	}
	for _, tc := range tests {
		vals := make([]int, tc.n)
		for i := range vals {
			vals[i] = i
		}
		root := treeshape.FromLevelOrder(vals)
		assert.Equal(t, tc.n, treeshape.Size(root), "n=%d", tc.n)
		assert.Equal(t, tc.height, treeshape.Height(root), "n=%d", tc.n)
		assert.Equal(t, tc.full, treeshape.IsFull(root), "full n=%d", tc.n)
		assert.Equal(t, tc.perfect, treeshape.IsPerfect(root), "perfect n=%d", tc.n)
		assert.Equal(t, tc.complete, treeshape.IsComplete(root), "complete n=%d", tc.n)
	}
}

func TestHandBuiltTrees(t *testing.T) {
	// Full but not complete: the right child has the children.
	//     0
	//    / \
	//   1   2
	//      / \
	//     3   4
	rightHeavy := &node{Left: leaf(1), Right: &node{Value: 2, Left: leaf(3), Right: leaf(4)}}
	assert.True(t, treeshape.IsFull(rightHeavy))
	assert.False(t, treeshape.IsPerfect(rightHeavy))
	assert.False(t, treeshape.IsComplete(rightHeavy))

	// Last level not filled from the left.
	gap := &node{
		Left:  &node{Value: 1, Right: leaf(4)},
		Right: leaf(2),
	}
	assert.False(t, treeshape.IsComplete(gap))
	assert.False(t, treeshape.IsFull(gap))

	// A long left chain.
	chain := leaf(0)
	for i := 1; i < 100; i++ {
		chain = &node{Value: i, Left: chain}
	}
	assert.Equal(t, 100, treeshape.Height(chain))
	assert.False(t, treeshape.IsComplete(chain))
}

func TestEveryStopsEarlyAndAnd(t *testing.T) {
	root := treeshape.FromLevelOrder([]int{1, 2, 3, 4, 5, 6, 7})
	visited := 0
	ok := treeshape.Every(root, func(n *node, _ treeshape.Pos) bool {
		visited++
		return n.Value != 2
	})
	assert.False(t, ok)
	assert.Equal(t, 2, visited) // pre-order: 1, 2

	positive := func(n *node, _ treeshape.Pos) bool { return n.Value > 0 }
	shallow := func(_ *node, at treeshape.Pos) bool { return at.Depth < 2 }
	assert.True(t, treeshape.Every(root, treeshape.And(positive)))
	assert.False(t, treeshape.Every(root, treeshape.And(positive, shallow)))
}

func ExampleIsComplete() {
	root := treeshape.FromLevelOrder([]string{"a", "b", "c", "d", "e", "f"})
	fmt.Println(treeshape.IsFull(root), treeshape.IsPerfect(root), treeshape.IsComplete(root))
	// Output:
	// false false true
}
