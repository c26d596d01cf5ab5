package builder

import "fmt"

const (
	methodRandomSparse   = "RandomSparse"
	methodRandomDirected = "RandomDirected"
	minRandomNodes       = 1
)

// RandomSparse returns a Constructor that includes each unordered pair {i,j},
// i<j, independently with probability p. Trials run i ascending, then j
// ascending, so a fixed seed yields a fixed edge list.
func RandomSparse(n int, p float64) Constructor {
	return randomPairs(methodRandomSparse, n, p, false)
}

// RandomDirected is RandomSparse over ordered pairs (i,j), i≠j.
func RandomDirected(n int, p float64) Constructor {
	return randomPairs(methodRandomDirected, n, p, true)
}

func randomPairs(method string, n int, p float64, ordered bool) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}
		f.grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!ordered && j < i) {
					continue
				}
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				f.add(i, j, cfg.weight())
			}
		}

		return nil
	}
}
