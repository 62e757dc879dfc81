package builder

import (
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
)

// BuildPuzzle generates a deterministic random width x height black/white
// grid and the Board whose row/column clues describe it exactly. The
// returned grid is the answer key: grid[row][col] is true where the cell
// is inked. A caller drives a solver against the Board and checks its
// unique solution against grid, the round-trip property scenario.
//
// Determinism: the same width, height, and Options always produce the
// same grid and Board, per WithSeed's contract.
func BuildPuzzle(width, height int, opts ...Option) (*board.Board, [][]bool, error) {
	if width < 1 || height < 1 {
		return nil, nil, ErrInvalidDimensions
	}

	cfg := newBuilderConfig(opts...)
	if cfg.density < 0 || cfg.density > 1 {
		return nil, nil, ErrInvalidDensity
	}

	grid := make([][]bool, height)
	for i := range grid {
		row := make([]bool, width)
		for j := range row {
			row[j] = cfg.rng.Float64() < cfg.density
		}
		grid[i] = row
	}

	b, err := boardFromGrid(grid)
	if err != nil {
		return nil, nil, err
	}

	return b, grid, nil
}

// BuildPuzzleFromGrid derives row/column clue Descriptions from an
// explicit grid and returns the Board they describe, for hand-authored
// fixtures that need a specific shape rather than a random one.
func BuildPuzzleFromGrid(grid [][]bool) (*board.Board, error) {
	return boardFromGrid(grid)
}

// boardFromGrid derives clue Descriptions from grid and constructs the
// Board they imply, every cell starting Undefined for a solver to narrow.
func boardFromGrid(grid [][]bool) (*board.Board, error) {
	height := len(grid)
	if height == 0 {
		return nil, ErrInvalidDimensions
	}
	width := len(grid[0])
	if width == 0 {
		return nil, ErrInvalidDimensions
	}
	for _, row := range grid {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
	}

	rowsDesc := make([]color.Description, height)
	for i, row := range grid {
		rowsDesc[i] = describeLine(row)
	}

	colsDesc := make([]color.Description, width)
	for j := 0; j < width; j++ {
		col := make([]bool, height)
		for i := 0; i < height; i++ {
			col[i] = grid[i][j]
		}
		colsDesc[j] = describeLine(col)
	}

	return board.NewBoard(rowsDesc, colsDesc, color.Undefined)
}

// describeLine groups consecutive inked cells in line into a Description
// of same-color Blocks, the clue a solver is given for that row or column.
func describeLine(line []bool) color.Description {
	var desc color.Description
	run := 0
	for _, inked := range line {
		if inked {
			run++
			continue
		}
		if run > 0 {
			desc = append(desc, color.Block{Size: run, Color: color.Black})
			run = 0
		}
	}
	if run > 0 {
		desc = append(desc, color.Block{Size: run, Color: color.Black})
	}

	return desc
}
