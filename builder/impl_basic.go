package builder

import "fmt"

// Method tags and minima for the simple topologies.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodGrid     = "Grid"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minGridDim       = 1
)

// Path returns a Constructor for the path 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		f.grow(n)
		for i := 0; i+1 < n; i++ {
			f.add(i, i+1, cfg.weight())
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring i→(i+1)%n, i = 0..n-1.
func Cycle(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		f.grow(n)
		for i := 0; i < n; i++ {
			f.add(i, (i+1)%n, cfg.weight())
		}

		return nil
	}
}

// Complete returns a Constructor for K_n: one edge per unordered pair i<j.
func Complete(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		f.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				f.add(i, j, cfg.weight())
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub 0 and leaves 1..n-1.
func Star(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		f.grow(n)
		for i := 1; i < n; i++ {
			f.add(0, i, cfg.weight())
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols orthogonal grid.
// Node (r, c) has id r*cols + c; edges are emitted row-major, right then down.
func Grid(rows, cols int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		f.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					f.add(id, id+1, cfg.weight())
				}
				if r+1 < rows {
					f.add(id, id+cols, cfg.weight())
				}
			}
		}

		return nil
	}
}
