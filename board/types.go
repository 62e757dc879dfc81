package board

import (
	"sync"

	"github.com/katalvlaran/nonogrid/color"
)

// Point addresses a single cell by 0-based row and column.
type Point struct {
	Row, Col int
}

// LineJob identifies one row or column for the propagation driver and the
// line solver: IsColumn selects which axis, Index is the 0-based line
// number along that axis.
type LineJob struct {
	IsColumn bool
	Index    int
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithPalette attaches a Palette to a multi-color board. Binary boards
// never need one.
func WithPalette(p *color.Palette) Option {
	return func(b *Board) { b.palette = p }
}

// WithOnChange registers a callback fired synchronously, in write order,
// every time a cell actually narrows: subscribers receive (point, old,
// new) tuples on every cell narrowing. fn runs while muCells is held for
// writing; it must not call back into the Board. Multiple calls to
// WithOnChange compose; every registered callback fires for every
// narrowing.
func WithOnChange(fn func(p Point, old, new color.Color)) Option {
	return func(b *Board) {
		if fn != nil {
			b.onChange = append(b.onChange, fn)
		}
	}
}

// delta records one cell's prior value so a snapshot can be rolled back in
// O(changes-since-snapshot) rather than O(cells): a copy-on-write
// strategy.
type delta struct {
	p   Point
	old color.Color
}

// Board is the in-memory, shared, mutable grid of cells and their clues.
// muCells guards cells and the delta log; muDesc guards the
// clue/palette/dimension fields, which never change after NewBoard
// returns.
type Board struct {
	muDesc sync.RWMutex
	height int
	width  int
	rowsDesc []color.Description
	colsDesc []color.Description
	palette  *color.Palette

	muCells sync.RWMutex
	cells   [][]color.Color

	// log is the flat history of cell writes since the board was
	// created; each open snapshot remembers the log length at the
	// moment it was taken, so Restore can truncate back to it. Snapshots
	// must close in LIFO order.
	log       []delta
	snapStack []int

	// onChange holds every callback registered via WithOnChange, fired in
	// registration order on each narrowing write. Restore does not
	// replay these: a rollback is not a narrowing event.
	onChange []func(p Point, old, new color.Color)
}

// Snapshot is an opaque token returned by MakeSnapshot. It is only valid
// for Restore on the Board that produced it, and only while it remains the
// top of that Board's snapshot stack.
type Snapshot struct {
	logLen   int
	stackPos int
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Palette returns the board's color palette, or nil for a binary board.
func (b *Board) Palette() *color.Palette { return b.palette }

// RowDescription returns the clue sequence for row i.
func (b *Board) RowDescription(i int) color.Description {
	b.muDesc.RLock()
	defer b.muDesc.RUnlock()

	return b.rowsDesc[i]
}

// ColDescription returns the clue sequence for column j.
func (b *Board) ColDescription(j int) color.Description {
	b.muDesc.RLock()
	defer b.muDesc.RUnlock()

	return b.colsDesc[j]
}
