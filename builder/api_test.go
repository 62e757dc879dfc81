package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/builder"
	"github.com/katalvlaran/nonogrid/color"
)

func TestBuildPuzzleRejectsBadDimensions(t *testing.T) {
	_, _, err := builder.BuildPuzzle(0, 3)
	require.ErrorIs(t, err, builder.ErrInvalidDimensions)

	_, _, err = builder.BuildPuzzle(3, 0)
	require.ErrorIs(t, err, builder.ErrInvalidDimensions)
}

func TestBuildPuzzleRejectsBadDensity(t *testing.T) {
	_, _, err := builder.BuildPuzzle(3, 3, builder.WithDensity(1.5))
	require.ErrorIs(t, err, builder.ErrInvalidDensity)

	_, _, err = builder.BuildPuzzle(3, 3, builder.WithDensity(-0.1))
	require.ErrorIs(t, err, builder.ErrInvalidDensity)
}

func TestBuildPuzzleIsDeterministicForAFixedSeed(t *testing.T) {
	_, gridA, err := builder.BuildPuzzle(6, 5, builder.WithSeed(42))
	require.NoError(t, err)

	_, gridB, err := builder.BuildPuzzle(6, 5, builder.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, gridA, gridB)
}

func TestBuildPuzzleDiffersAcrossSeeds(t *testing.T) {
	_, gridA, err := builder.BuildPuzzle(8, 8, builder.WithSeed(1))
	require.NoError(t, err)

	_, gridB, err := builder.BuildPuzzle(8, 8, builder.WithSeed(2))
	require.NoError(t, err)

	assert.NotEqual(t, gridA, gridB)
}

func TestBuildPuzzleDescribesItsOwnGrid(t *testing.T) {
	b, grid, err := builder.BuildPuzzle(5, 4, builder.WithSeed(7), builder.WithDensity(0.4))
	require.NoError(t, err)
	require.Equal(t, 4, b.Height())
	require.Equal(t, 5, b.Width())

	for i, row := range grid {
		for j, inked := range row {
			cur, err := b.Cell(board.Point{Row: i, Col: j})
			require.NoError(t, err)
			assert.Contains(t, cur.Variants(), boolToColor(inked))
		}
	}
}

func TestBuildPuzzleFromGridRejectsRaggedRows(t *testing.T) {
	_, err := builder.BuildPuzzleFromGrid([][]bool{{true, false}, {true}})
	require.ErrorIs(t, err, builder.ErrRaggedGrid)
}

func TestBuildPuzzleFromGridMatchesHandDrawnShape(t *testing.T) {
	grid := [][]bool{
		{true, false, true},
		{true, true, true},
	}
	b, err := builder.BuildPuzzleFromGrid(grid)
	require.NoError(t, err)

	assert.Equal(t, color.Description{{Size: 1, Color: color.Black}, {Size: 1, Color: color.Black}}, b.RowDescription(0))
	assert.Equal(t, color.Description{{Size: 3, Color: color.Black}}, b.RowDescription(1))
	assert.Equal(t, color.Description{{Size: 2, Color: color.Black}}, b.ColDescription(0))
	assert.Equal(t, color.Description{{Size: 1, Color: color.Black}}, b.ColDescription(1))
}

func boolToColor(inked bool) color.Color {
	if inked {
		return color.Black
	}

	return color.White
}
