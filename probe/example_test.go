package probe_test

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/probe"
	"github.com/katalvlaran/nonogrid/propagate"
)

// ExampleEngine_Run probes a 2x2 "exactly one black per row and column"
// puzzle, which propagation alone leaves ambiguous. Every variant of every
// cell solves it, so OnSolved prints a board for each of the eight probes,
// cells in row-major order and Black before White.
func ExampleEngine_Run() {
	one := color.Description{{Size: 1, Color: color.Black}}
	rows := []color.Description{one, one}
	cols := []color.Description{one, one}

	b, err := board.NewBoard(rows, cols, color.Undefined)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	drv := propagate.NewDriver()
	if err := drv.Run(b); err != nil {
		fmt.Println("error:", err)
		return
	}

	eng := probe.NewEngine(probe.WithOnSolved(func(solved *board.Board) {
		for i := 0; i < solved.Height(); i++ {
			line, _ := solved.GetRow(i)
			for _, c := range line {
				fmt.Print(c)
			}
			fmt.Println()
		}
	}))

	if _, err := eng.Run(b, drv); err != nil {
		fmt.Println("error:", err)
		return
	}
	// Output:
	// #.
	// .#
	// .#
	// #.
	// .#
	// #.
	// #.
	// .#
	// .#
	// #.
	// #.
	// .#
	// #.
	// .#
	// .#
	// #.
}
