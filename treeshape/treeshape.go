// Package treeshape classifies binary trees as full, perfect or complete.
//
// Every check is an Every(root, pred) walk: pred sees each node together with
// its Pos (depth, and level-order index where the root is 0 and the children
// of i are 2i+1 and 2i+2) and the tree passes when pred holds everywhere.
// Predicates switch on a node's Shape rather than on nil children.
//
//	full     – no node has exactly one child
//	perfect  – full, and every leaf sits at the deepest level
//	complete – every level-order index is below the node count
//
// The empty tree passes all three checks. Walks use an explicit stack.
package treeshape

// Shape is the child configuration of a node.
type Shape int

// Shapes, as reported by Node.Shape.
const (
	Empty Shape = iota // nil node
	Leaf
	OneChild
	TwoChildren
)

func (s Shape) String() string {
	switch s {
	case Empty:
		return "empty"
	case Leaf:
		return "leaf"
	case OneChild:
		return "one-child"
	case TwoChildren:
		return "two-children"
	default:
		return "unknown"
	}
}

// Node is a binary tree node.
type Node[T any] struct {
	Value       T
	Left, Right *Node[T]
}

// Shape reports how many children n has; a nil node is Empty.
func (n *Node[T]) Shape() Shape {
	switch {
	case n == nil:
		return Empty
	case n.Left == nil && n.Right == nil:
		return Leaf
	case n.Left != nil && n.Right != nil:
		return TwoChildren
	default:
		return OneChild
	}
}

// Pos locates a node in the tree.
type Pos struct {
	Depth int
	Index int // level-order index; meaningful while Depth < maxIndexDepth
}

// maxIndexDepth is the depth from which level-order indices overflow int.
const maxIndexDepth = 62

// Pred is a per-node test.
type Pred[T any] func(n *Node[T], at Pos) bool

// And combines predicates; it holds when all of them do.
func And[T any](ps ...Pred[T]) Pred[T] {
	return func(n *Node[T], at Pos) bool {
		for _, p := range ps {
			if !p(n, at) {
				return false
			}
		}

		return true
	}
}

// Every reports whether p holds at every node of the tree rooted at root.
// Nodes are visited in pre-order and the walk stops at the first failure.
func Every[T any](root *Node[T], p Pred[T]) bool {
	if root == nil {
		return true
	}
	type item struct {
		n  *Node[T]
		at Pos
	}
	stack := []item{{n: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p(it.n, it.at) {
			return false
		}
		child := Pos{Depth: it.at.Depth + 1}
		if right := it.n.Right; right != nil {
			child.Index = 2*it.at.Index + 2
			stack = append(stack, item{n: right, at: child})
		}
		if left := it.n.Left; left != nil {
			child.Index = 2*it.at.Index + 1
			stack = append(stack, item{n: left, at: child})
		}
	}

	return true
}

// Size counts the nodes.
func Size[T any](root *Node[T]) int {
	count := 0
	Every(root, func(*Node[T], Pos) bool {
		count++
		return true
	})

	return count
}

// Height is the depth of the deepest node plus one; 0 for the empty tree.
func Height[T any](root *Node[T]) int {
	h := 0
	Every(root, func(_ *Node[T], at Pos) bool {
		h = max(h, at.Depth+1)
		return true
	})

	return h
}

// noSingleChild rejects nodes with exactly one child.
func noSingleChild[T any](n *Node[T], _ Pos) bool { return n.Shape() != OneChild }

// leavesAt accepts leaves at depth d only.
func leavesAt[T any](d int) Pred[T] {
	return func(n *Node[T], at Pos) bool {
		return n.Shape() != Leaf || at.Depth == d
	}
}

// indexBelow accepts nodes whose level-order index is below count.
func indexBelow[T any](count int) Pred[T] {
	return func(_ *Node[T], at Pos) bool {
		return at.Depth < maxIndexDepth && at.Index < count
	}
}

// IsFull reports whether every node has zero or two children.
func IsFull[T any](root *Node[T]) bool {
	return Every(root, noSingleChild[T])
}

// IsPerfect reports whether the tree is full and all leaves share one depth.
func IsPerfect[T any](root *Node[T]) bool {
	return Every(root, And(noSingleChild[T], leavesAt[T](Height(root)-1)))
}

// IsComplete reports whether every level but the last is filled and the last
// level is filled from the left.
func IsComplete[T any](root *Node[T]) bool {
	return Every(root, indexBelow[T](Size(root)))
}

// FromLevelOrder builds the complete tree whose level-order traversal is vals.
func FromLevelOrder[T any](vals []T) *Node[T] {
	if len(vals) == 0 {
		return nil
	}
	nodes := make([]*Node[T], len(vals))
	for i := range vals {
		nodes[i] = &Node[T]{Value: vals[i]}
	}
	for i, n := range nodes {
		if l := 2*i + 1; l < len(nodes) {
			n.Left = nodes[l]
		}
		if r := 2*i + 2; r < len(nodes) {
			n.Right = nodes[r]
		}
	}

	return nodes[0]
}
