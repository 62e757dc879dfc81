package nonogrid_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nonogrid "github.com/katalvlaran/nonogrid"
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/builder"
	"github.com/katalvlaran/nonogrid/color"
)

// TestSolveRecoversGeneratingGrid is spec.md §8's round-trip property: for
// a puzzle whose clues were derived from a random grid, Solve must return
// the generating grid among its solutions. Grid sizes and density are kept
// small (3x3..4x4, 0.35..0.65 ink fraction) so the true solution count
// stays well under the generous MaxSolutions cap, making backtracking's
// exhaustive-until-capped search certain to enumerate it.
func TestSolveRecoversGeneratingGrid(t *testing.T) {
	r := rand.New(rand.NewSource(20260731))

	for trial := 0; trial < 24; trial++ {
		width := 3 + r.Intn(2)
		height := 3 + r.Intn(2)
		density := 0.35 + r.Float64()*0.3
		seed := int64(trial)

		b, grid, err := builder.BuildPuzzle(width, height, builder.WithSeed(seed), builder.WithDensity(density))
		require.NoError(t, err)

		result, err := nonogrid.Solve(b, nonogrid.WithMaxSolutions(256), nonogrid.WithTimeout(5*time.Second))
		require.NoError(t, err)
		require.NotEmpty(t, result.Solutions, "trial %d (seed=%d w=%d h=%d density=%.2f) found no solutions", trial, seed, width, height, density)

		found := false
		for _, sol := range result.Solutions {
			if solutionMatchesGrid(t, sol, grid) {
				found = true
				break
			}
		}
		assert.True(t, found, "trial %d (seed=%d w=%d h=%d density=%.2f): generating grid not among %d returned solutions", trial, seed, width, height, density, len(result.Solutions))
	}
}

func solutionMatchesGrid(t *testing.T, sol *board.Board, grid [][]bool) bool {
	t.Helper()

	for i, row := range grid {
		cells, err := sol.GetRow(i)
		require.NoError(t, err)
		for j, inked := range row {
			want := color.Color(color.White)
			if inked {
				want = color.Black
			}
			if !cells[j].Equal(want) {
				return false
			}
		}
	}

	return true
}
