package disjoint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlsearch/core"
)

var (
	// ErrNegativeSize indicates New was called with a negative element count.
	ErrNegativeSize = errors.New("disjoint: size must be non-negative")

	// ErrOutOfRange indicates an element outside [0, n).
	ErrOutOfRange = fmt.Errorf("disjoint: %w", core.ErrOutOfRange)
)

// Set is a forest partition of [0, n). The zero value is an empty set.
type Set struct {
	parent []int
	sets   int // number of disjoint sets, maintained by Union
}
