// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/goldgrid/grid"
)

// ExampleFrom2D demonstrates building a small mining map and querying it.
// Scenario:
//
//   - Negative values are impassable rock, values ≥ 0 are gold deposits.
//   - The map is deep-copied: the caller's slice can be reused freely.
//
// Complexity: O(R·C) construction, O(1) queries.
func ExampleFrom2D() {
	g, _ := grid.From2D([][]int{
		{1, 2, 0},
		{3, -1, 4},
	})

	fmt.Println("size:", g.Rows(), "x", g.Columns())
	fmt.Println("cell (1,1):", g.Kind(1, 1))
	fmt.Println("cell (1,2):", g.Kind(1, 2), "gold", g.Gold(1, 2))

	// Output:
	// size: 2 x 3
	// cell (1,1): Rock
	// cell (1,2): Open gold 4
}
