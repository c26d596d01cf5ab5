package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/core"
)

// ExampleNewGraph builds the square 0-1-2-3-0 and lists the neighbors of node 0.
func ExampleNewGraph() {
	g, err := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 2},
		{From: 3, To: 0, Weight: 6},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nbs, _ := g.Neighbors(0)
	for _, nb := range nbs {
		fmt.Printf("0-%d (%.0f)\n", nb.To, nb.Weight)
	}
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// 0-1 (2)
	// 0-3 (6)
	// edges: 4
}
