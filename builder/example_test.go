package builder_test

import (
	"fmt"

	nonogrid "github.com/katalvlaran/nonogrid"
	"github.com/katalvlaran/nonogrid/builder"
	"github.com/katalvlaran/nonogrid/color"
)

// ExampleBuildPuzzleFromGrid derives a puzzle's clues from a hand-drawn
// "L" shape and confirms a solver recovers the exact grid it came from:
// the round-trip property every line-solving/propagation pass relies on.
func ExampleBuildPuzzleFromGrid() {
	grid := [][]bool{
		{true, false, false},
		{true, false, false},
		{true, true, true},
	}

	b, err := builder.BuildPuzzleFromGrid(grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := nonogrid.Solve(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	matches := len(result.Solutions) == 1
	if matches {
		for i := range grid {
			row, _ := result.Solutions[0].GetRow(i)
			for j, inked := range grid[i] {
				if row[j].Equal(color.Black) != inked {
					matches = false
				}
			}
		}
	}

	fmt.Println(result.Status.Kind, matches)
	// Output: Unique true
}
