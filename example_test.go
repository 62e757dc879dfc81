package nonogrid_test

import (
	"fmt"

	nonogrid "github.com/katalvlaran/nonogrid"
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
)

// ExampleSolve demonstrates solving the trivial 1x1 puzzle: a single
// black cell, unambiguously forced by propagation alone.
func ExampleSolve() {
	one := color.Description{{Size: 1, Color: color.Black}}
	b, err := board.NewBoard([]color.Description{one}, []color.Description{one}, color.Undefined)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := nonogrid.Solve(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cell, _ := result.Solutions[0].Cell(board.Point{Row: 0, Col: 0})
	fmt.Println(result.Status.Kind, cell)
	// Output: Unique #
}
