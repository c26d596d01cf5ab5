// Package subsetsum finds index sets of non-negative integers that add up to
// a target.
//
// Decisions are indices in ascending order, so each subset is produced once.
// A candidate is rejected when it would overshoot the target, and a node is
// not expanded when even all remaining numbers cannot reach it. A node whose
// sum equals the target is a solution; All keeps expanding it so that
// subsets differing only by zeros are reported too.
package subsetsum

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsearch/backtrack"
)

var (
	// ErrNegativeNumber indicates a negative input number or target.
	ErrNegativeNumber = errors.New("subsetsum: numbers and target must be non-negative")

	// ErrNoSolution indicates no subset reaches the target.
	ErrNoSolution = fmt.Errorf("subsetsum: %w", backtrack.ErrNoSolution)
)

// First returns the first index set, in depth-first order, whose numbers sum to target.
// A zero target is met by the empty set.
func First(nums []int64, target int64, opts ...backtrack.Option) ([]int, error) {
	s, err := newSearch(nums, target)
	if err != nil {
		return nil, err
	}
	idx, _, err := backtrack.First[int](s, opts...)
	if errors.Is(err, backtrack.ErrNoSolution) {
		return nil, fmt.Errorf("%w: target %d", ErrNoSolution, target)
	}

	return idx, err
}

// All returns every index set whose numbers sum to target, in depth-first order.
func All(nums []int64, target int64, opts ...backtrack.Option) ([][]int, error) {
	s, err := newSearch(nums, target)
	if err != nil {
		return nil, err
	}
	sets, _, err := backtrack.All[int](s, opts...)
	if errors.Is(err, backtrack.ErrNoSolution) {
		return nil, fmt.Errorf("%w: target %d", ErrNoSolution, target)
	}

	return sets, err
}

// search is the backtrack.State. rest[i] is the sum of nums[i:], saturated
// at math.MaxInt64. Comparisons subtract from target so nothing overflows.
type search struct {
	nums   []int64
	rest   []int64
	target int64

	chosen []int
	sum    int64
}

func newSearch(nums []int64, target int64) (*search, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: target %d", ErrNegativeNumber, target)
	}
	rest := make([]int64, len(nums)+1)
	for i := len(nums) - 1; i >= 0; i-- {
		if nums[i] < 0 {
			return nil, fmt.Errorf("%w: nums[%d]=%d", ErrNegativeNumber, i, nums[i])
		}
		rest[i] = math.MaxInt64
		if rest[i+1] <= math.MaxInt64-nums[i] {
			rest[i] = rest[i+1] + nums[i]
		}
	}

	return &search{nums: nums, rest: rest, target: target}, nil
}

func (s *search) next() int {
	if k := len(s.chosen); k > 0 {
		return s.chosen[k-1] + 1
	}

	return 0
}

func (s *search) Candidates(dst []int) []int {
	start := s.next()
	if s.rest[start] < s.target-s.sum {
		return dst
	}
	for i := start; i < len(s.nums); i++ {
		dst = append(dst, i)
	}

	return dst
}

func (s *search) Feasible(i int) bool { return s.nums[i] <= s.target-s.sum }

func (s *search) Push(i int) {
	s.chosen = append(s.chosen, i)
	s.sum += s.nums[i]
}

func (s *search) Pop(i int) {
	s.chosen = s.chosen[:len(s.chosen)-1]
	s.sum -= s.nums[i]
}

func (s *search) IsGoal() bool { return s.sum == s.target }
