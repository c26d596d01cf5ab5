package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim is a Cycle(n-1), which needs 3 nodes
)

// Wheel returns a Constructor for W_n: the rim Cycle(n-1) over ids 0..n-2
// plus hub n-1 with a spoke to every rim node in ascending order.
// Rim edges come first, then spokes hub→i.
func Wheel(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(f, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		f.grow(n)
		for i := 0; i < hub; i++ {
			f.add(hub, i, cfg.weight())
		}

		return nil
	}
}
