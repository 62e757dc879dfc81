package satsolve_test

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/satsolve"
)

// ExampleDriver_Solve encodes and solves the same 2x2 "one black per row
// and column" board backtrack's example enumerates, using the SAT finisher
// instead.
func ExampleDriver_Solve() {
	one := color.Description{{Size: 1, Color: color.Black}}
	rows := []color.Description{one, one}
	cols := []color.Description{one, one}

	b, err := board.NewBoard(rows, cols, color.Undefined)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	driver := satsolve.NewDriver()
	solutions, err := driver.Solve(b, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(solutions), "solutions")
	// Output: 2 solutions
}
