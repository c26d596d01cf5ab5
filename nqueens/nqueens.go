package nqueens

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/lvlsearch/backtrack"
)

var (
	// ErrInvalidSize indicates a board size below 1.
	ErrInvalidSize = errors.New("nqueens: board size must be at least 1")

	// ErrNoSolution indicates the board admits no placement.
	ErrNoSolution = fmt.Errorf("nqueens: %w", backtrack.ErrNoSolution)
)

// Solve returns the first placement in lexicographic order.
func Solve(n int, opts ...backtrack.Option) ([]int, error) {
	b, err := newBoard(n)
	if err != nil {
		return nil, err
	}
	p, _, err := backtrack.First[int](b, opts...)
	if errors.Is(err, backtrack.ErrNoSolution) {
		return nil, fmt.Errorf("%w: n=%d", ErrNoSolution, n)
	}

	return p, err
}

// All returns every placement in lexicographic order.
func All(n int, opts ...backtrack.Option) ([][]int, error) {
	b, err := newBoard(n)
	if err != nil {
		return nil, err
	}
	ps, _, err := backtrack.All[int](b, opts...)
	if errors.Is(err, backtrack.ErrNoSolution) {
		return nil, fmt.Errorf("%w: n=%d", ErrNoSolution, n)
	}

	return ps, err
}

// Count returns the number of placements without materialising them.
// Sizes with no placement return 0 and no error.
func Count(n int, opts ...backtrack.Option) (int, error) {
	b, err := newBoard(n)
	if err != nil {
		return 0, err
	}
	stats, err := backtrack.Enumerate[int](b, nil, opts...)

	return stats.Solutions, err
}

// Valid reports whether p is a complete placement with no two queens sharing
// a row, column or diagonal.
func Valid(p []int) bool {
	n := len(p)
	if n == 0 {
		return false
	}
	b, err := newBoard(n)
	if err != nil {
		return false
	}
	for _, c := range p {
		if c < 0 || c >= n || !b.Feasible(c) {
			return false
		}
		b.Push(c)
	}

	return b.IsGoal()
}

// board is the backtrack.State for the puzzle. Decisions are columns for the
// next free row.
type board struct {
	n    int
	cols []int // cols[r] for rows already placed

	col  *bitset.BitSet // column c
	diag *bitset.BitSet // r + c
	anti *bitset.BitSet // r − c + n − 1
}

func newBoard(n int) (*board, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	return &board{
		n:    n,
		cols: make([]int, 0, n),
		col:  bitset.New(uint(n)),
		diag: bitset.New(uint(2*n - 1)),
		anti: bitset.New(uint(2*n - 1)),
	}, nil
}

func (b *board) Candidates(dst []int) []int {
	if len(b.cols) == b.n {
		return dst
	}
	for c := 0; c < b.n; c++ {
		dst = append(dst, c)
	}

	return dst
}

func (b *board) Feasible(c int) bool {
	r := len(b.cols)
	if r == b.n {
		return false
	}
	d, a := b.diagonals(r, c)

	return !b.col.Test(uint(c)) && !b.diag.Test(d) && !b.anti.Test(a)
}

func (b *board) Push(c int) {
	r := len(b.cols)
	d, a := b.diagonals(r, c)
	b.col.Set(uint(c))
	b.diag.Set(d)
	b.anti.Set(a)
	b.cols = append(b.cols, c)
}

func (b *board) Pop(c int) {
	r := len(b.cols) - 1
	d, a := b.diagonals(r, c)
	b.col.Clear(uint(c))
	b.diag.Clear(d)
	b.anti.Clear(a)
	b.cols = b.cols[:r]
}

func (b *board) IsGoal() bool { return len(b.cols) == b.n }

func (b *board) diagonals(r, c int) (uint, uint) {
	return uint(r + c), uint(r - c + b.n - 1)
}
