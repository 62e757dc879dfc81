// Package board implements the nonogram Board: a rectangular grid of
// color.Color cells plus the row/column clue Descriptions that constrain
// it.
//
// Board is the single shared, mutable object passed between the
// propagation driver, the probing engine, the backtracking search, and the
// SAT driver within one solver invocation. It exposes point and line
// access, a snapshot/restore pair for speculative mutation, and validation
// performed exactly once at construction.
//
// Mutex discipline is a two-lock split: muCells guards the cell grid,
// muDesc guards the (immutable after construction) clue slices and
// palette, so a reader of clue metadata never contends with a cell
// mutation in flight.
package board
