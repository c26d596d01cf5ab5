package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlsearch/core"
)

// HeldKarp returns a minimum-cost tour from start by dynamic programming
// over subsets.
//
// dp[mask][j] is the cheapest path that leaves start, visits exactly the
// nodes in mask (start included) and stops at j. The tour closes with the
// cheapest dp[all][j] + w[j→start]. Ties keep the lower node id.
//
// Time O(n²·2ⁿ), memory O(n·2ⁿ). Graphs above MaxHeldKarpNodes nodes are
// rejected with ErrTooLarge.
func HeldKarp(g *core.Graph, start int) (*Result, error) {
	t, err := newTable(g, start)
	if err != nil {
		return nil, err
	}
	n := t.n
	if n > MaxHeldKarpNodes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxHeldKarpNodes)
	}
	if n == 1 {
		return &Result{Tour: []int{start, start}}, nil
	}

	all := 1<<n - 1
	startBit := 1 << start
	dp := make([]float64, (all+1)*n)
	parent := make([]int, (all+1)*n)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[startBit*n+start] = 0

	for mask := startBit; mask <= all; mask++ {
		if mask&startBit == 0 {
			continue
		}
		for j := range n {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ 1<<j
			for k := range n {
				if prev&(1<<k) == 0 {
					continue
				}
				c := t.at(k, j)
				if math.IsInf(c, 1) {
					continue
				}
				if cand := dp[prev*n+k] + c; cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	best, last := math.Inf(1), -1
	for j := range n {
		if j == start {
			continue
		}
		if total := dp[all*n+j] + t.at(j, start); total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return nil, fmt.Errorf("%w: from %d", ErrNoTour, start)
	}

	tour := make([]int, n+1)
	tour[0], tour[n] = start, start
	mask, j := all, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask*n+j]
		mask ^= 1 << j
		j = p
	}

	return &Result{Tour: tour, Cost: best}, nil
}
