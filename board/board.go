package board

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/color"
)

// NewBoard constructs a Board of the given dimensions from per-row and
// per-column clue Descriptions. initial is the cell value every cell
// starts at before any line solving narrows it: color.Undefined for
// binary boards, or a Multi admitting every concrete palette color for
// multi-color boards.
//
// Validation happens exactly once, here: dimensions must be positive, the
// description counts must match height/width, and every line's minimum
// length (color.Description.MinLength) must not exceed the line's actual
// length. Any violation is a malformed-puzzle error that is never
// recovered — it is returned directly so the caller decides whether to
// treat it as fatal.
//
// Complexity: O(H*W) to allocate the grid plus O(H+W) to validate line
// lengths.
func NewBoard(rowsDesc, colsDesc []color.Description, initial color.Color, opts ...Option) (*Board, error) {
	height, width := len(rowsDesc), len(colsDesc)
	if height == 0 || width == 0 {
		return nil, ErrEmptyBoard
	}

	for i, d := range rowsDesc {
		if d.MinLength() > width {
			return nil, fmt.Errorf("%w: row %d needs >= %d cells, has %d", ErrLineTooShort, i, d.MinLength(), width)
		}
	}
	for j, d := range colsDesc {
		if d.MinLength() > height {
			return nil, fmt.Errorf("%w: col %d needs >= %d cells, has %d", ErrLineTooShort, j, d.MinLength(), height)
		}
	}

	b := &Board{
		height:   height,
		width:    width,
		rowsDesc: rowsDesc,
		colsDesc: colsDesc,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.cells = make([][]color.Color, height)
	for i := range b.cells {
		row := make([]color.Color, width)
		for j := range row {
			row[j] = initial
		}
		b.cells[i] = row
	}

	return b, nil
}

// Clone returns a deep copy of the board's current cell state sharing the
// same (immutable) descriptions and palette. Used by solution.Collector to
// retain a solved board independent of further solver mutation.
func (b *Board) Clone() *Board {
	b.muCells.RLock()
	defer b.muCells.RUnlock()

	out := &Board{
		height:   b.height,
		width:    b.width,
		rowsDesc: b.rowsDesc,
		colsDesc: b.colsDesc,
		palette:  b.palette,
	}
	out.cells = make([][]color.Color, b.height)
	for i, row := range b.cells {
		clone := make([]color.Color, b.width)
		copy(clone, row)
		out.cells[i] = clone
	}

	return out
}
