package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsearch/knapsack"
)

func benchItems(n int) []knapsack.Item {
	rng := rand.New(rand.NewSource(1))
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{Weight: int64(1 + rng.Intn(30)), Value: int64(1 + rng.Intn(60))}
	}

	return items
}

func BenchmarkSolve(b *testing.B) {
	items := benchItems(40)
	b.Run("BranchAndBound", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = knapsack.Solve(items, 200, knapsack.WithGreedySeed())
		}
	})
	b.Run("DP", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = knapsack.SolveDP(items, 200)
		}
	})
}
