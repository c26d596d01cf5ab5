package knapsack

import "fmt"

// SolveDP solves the instance with the O(n·C) dynamic-programming table and
// reconstructs one optimal selection.
//
// best[i][c] is the best value using the first i items within capacity c.
// Reconstruction walks i from n down to 1 and takes item i−1 whenever its
// row improves on the row above.
//
// Errors: ErrInvalidCapacity, ErrInvalidItem, ErrCapacityTooLarge.
func SolveDP(items []Item, capacity int64) (*Result, error) {
	if err := validate(items, capacity); err != nil {
		return nil, err
	}
	if capacity > MaxDPCapacity {
		return nil, fmt.Errorf("%w: %d > %d", ErrCapacityTooLarge, capacity, MaxDPCapacity)
	}

	n, c := len(items), int(capacity)
	best := make([][]int64, n+1)
	for i := range best {
		best[i] = make([]int64, c+1)
	}
	for i := 1; i <= n; i++ {
		w, v := items[i-1].Weight, items[i-1].Value
		for k := 0; k <= c; k++ {
			best[i][k] = best[i-1][k]
			if w <= int64(k) {
				if take := best[i-1][k-int(w)] + v; take > best[i][k] {
					best[i][k] = take
				}
			}
		}
	}

	res := &Result{Value: best[n][c]}
	left := c
	for i := n; i >= 1; i-- {
		if best[i][left] != best[i-1][left] {
			res.Items = append(res.Items, i-1)
			res.Weight += items[i-1].Weight
			left -= int(items[i-1].Weight)
		}
	}
	for l, r := 0, len(res.Items)-1; l < r; l, r = l+1, r-1 {
		res.Items[l], res.Items[r] = res.Items[r], res.Items[l]
	}
	if res.Items == nil {
		res.Items = []int{}
	}

	return res, nil
}
