package propagate_test

import (
	"testing"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/propagate"
)

// BenchmarkRun_AllBlack10x10 measures one propagation drive over a 10x10
// board whose every row and column is a single full-width black block: a
// fully forced puzzle that exercises the priority queue and linesolver
// cache without any search. The board is rebuilt every iteration since Run
// mutates it in place; construction is excluded from the timed region.
//
// Complexity: O(cells) queue pops, each an O(line length) linesolver call
// or an O(1) cache hit.
func BenchmarkRun_AllBlack10x10(b *testing.B) {
	full := color.Description{{Size: 10, Color: color.Black}}
	rows := make([]color.Description, 10)
	cols := make([]color.Description, 10)
	for i := range rows {
		rows[i] = full
	}
	for j := range cols {
		cols[j] = full
	}

	d := propagate.NewDriver()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		bd, err := board.NewBoard(rows, cols, color.Undefined)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		if err := d.Run(bd); err != nil {
			b.Fatal(err)
		}
	}
}
