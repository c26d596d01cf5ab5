package disjoint

import "fmt"

// New returns a Set of n singletons: parent[i] = i for every i.
func New(n int) (*Set, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeSize, n)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &Set{parent: parent, sets: n}, nil
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.parent) }

// Count returns the number of disjoint sets.
func (s *Set) Count() int { return s.sets }

// Find returns the representative of x's set.
//
// Two passes: walk up to the root, then walk the same path again re-pointing
// each node at the root. Iterative, so deep chains cannot exhaust the stack.
func (s *Set) Find(x int) (int, error) {
	if x < 0 || x >= len(s.parent) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(s.parent))
	}

	return s.find(x), nil
}

// find is Find without the range check.
func (s *Set) find(x int) int {
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[x] != root {
		x, s.parent[x] = s.parent[x], root
	}

	return root
}

// Union merges the sets of a and b. It returns false if they were already
// connected (callers use this to detect cycles), true otherwise.
// The root of a is attached under the root of b.
func (s *Set) Union(a, b int) (bool, error) {
	ra, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := s.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}
	s.parent[ra] = rb
	s.sets--

	return true, nil
}

// Connected reports whether a and b share a representative.
func (s *Set) Connected(a, b int) (bool, error) {
	ra, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := s.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}
