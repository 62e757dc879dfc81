package nonogrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nonogrid "github.com/katalvlaran/nonogrid"
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/solution"
)

// E2 — trivial satisfiable 1x1.
func TestSolveTrivialSatisfiable(t *testing.T) {
	one := color.Description{{Size: 1, Color: color.Black}}
	b, err := board.NewBoard([]color.Description{one}, []color.Description{one}, color.Undefined)
	require.NoError(t, err)

	result, err := nonogrid.Solve(b)
	require.NoError(t, err)

	assert.Equal(t, solution.StatusUnique, result.Status.Kind)
	require.Len(t, result.Solutions, 1)
	cell, err := result.Solutions[0].Cell(board.Point{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, color.Black, cell)
}

// E3 — trivial infeasible 1x1.
func TestSolveTrivialInfeasible(t *testing.T) {
	one := color.Description{{Size: 1, Color: color.Black}}
	empty := color.Description{}
	b, err := board.NewBoard([]color.Description{one}, []color.Description{empty}, color.Undefined)
	require.NoError(t, err)

	result, err := nonogrid.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Status.FoundCount)
}

// E4 — ambiguous 2x2: two diagonal solutions.
func TestSolveAmbiguous2x2(t *testing.T) {
	one := color.Description{{Size: 1, Color: color.Black}}
	rows := []color.Description{one, one}
	cols := []color.Description{one, one}
	b, err := board.NewBoard(rows, cols, color.Undefined)
	require.NoError(t, err)

	result, err := nonogrid.Solve(b, nonogrid.WithMaxSolutions(2))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Status.FoundCount)
	assert.Len(t, result.Solutions, 2)
}

// E1 — the digit "5", 5 rows x 4 cols, unique solution.
func TestSolveDigitFive(t *testing.T) {
	full := color.Description{{Size: 4, Color: color.Black}}
	one := color.Description{{Size: 1, Color: color.Black}}
	rows := []color.Description{full, one, full, one, full}
	cols := []color.Description{
		{{Size: 3, Color: color.Black}, {Size: 1, Color: color.Black}},
		{{Size: 1, Color: color.Black}, {Size: 1, Color: color.Black}, {Size: 1, Color: color.Black}},
		{{Size: 1, Color: color.Black}, {Size: 1, Color: color.Black}, {Size: 1, Color: color.Black}},
		{{Size: 1, Color: color.Black}, {Size: 3, Color: color.Black}},
	}

	b, err := board.NewBoard(rows, cols, color.Undefined)
	require.NoError(t, err)

	result, err := nonogrid.Solve(b)
	require.NoError(t, err)
	require.Equal(t, 1, result.Status.FoundCount)

	expected := []string{"XXXX", "X...", "XXXX", "...X", "XXXX"}
	for i, want := range expected {
		row, err := result.Solutions[0].GetRow(i)
		require.NoError(t, err)
		for j, c := range row {
			if want[j] == 'X' {
				assert.Equal(t, color.Black, c, "row %d col %d", i, j)
			} else {
				assert.Equal(t, color.White, c, "row %d col %d", i, j)
			}
		}
	}
}
