package tsp_test

import (
	"testing"

	"github.com/katalvlaran/lvlsearch/tsp"
)

// BenchmarkSolve_Complete10 measures branch-and-bound on K10 with random weights.
func BenchmarkSolve_Complete10(b *testing.B) {
	g := randomComplete(b, 10, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Solve(g, 0)
	}
}

// BenchmarkHeldKarp_Complete10 measures the subset DP on the same instance.
func BenchmarkHeldKarp_Complete10(b *testing.B) {
	g := randomComplete(b, 10, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.HeldKarp(g, 0)
	}
}
