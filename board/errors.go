package board

import "errors"

// Sentinel errors for board construction and mutation.
var (
	// ErrEmptyBoard indicates zero rows or zero columns were requested.
	ErrEmptyBoard = errors.New("board: width and height must both be >= 1")

	// ErrDescriptionCountMismatch indicates len(rowsDesc) != height or
	// len(colsDesc) != width.
	ErrDescriptionCountMismatch = errors.New("board: description count does not match board dimensions")

	// ErrLineTooShort indicates a row or column description's MinLength
	// exceeds the line's length: sum of block sizes plus mandatory gaps
	// must not exceed line length.
	ErrLineTooShort = errors.New("board: description does not fit its line")

	// ErrOutOfRange indicates a Point outside the board's bounds.
	ErrOutOfRange = errors.New("board: point out of range")

	// ErrBroadening indicates a write would widen a cell's possibility
	// set instead of narrowing it.
	ErrBroadening = errors.New("board: write would broaden a cell")

	// ErrLineLengthMismatch indicates SetRow/SetCol was given a slice of
	// the wrong length.
	ErrLineLengthMismatch = errors.New("board: line length mismatch")

	// ErrLastColorRemoved indicates UnsetColor was asked to remove the
	// only remaining possibility from a cell.
	ErrLastColorRemoved = errors.New("board: cannot remove the only remaining color")

	// ErrSnapshotMisuse indicates Restore was called on a token that is
	// not the top of the snapshot stack: a programming-error class.
	ErrSnapshotMisuse = errors.New("board: restore called out of LIFO order")
)
