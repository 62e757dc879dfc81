package format

import "errors"

// Sentinel errors returned by Decode.
var (
	// ErrEmptyPuzzle indicates a document with no rows or no columns.
	ErrEmptyPuzzle = errors.New("format: puzzle must declare at least one row and one column")

	// ErrUnknownColor indicates a block names a color absent from the
	// document's palette (or names one at all on a document with no
	// palette, which only ever admits "black").
	ErrUnknownColor = errors.New("format: block names a color not in the palette")

	// ErrMissingBlockSize indicates a block entry omits its size, or gives
	// one that is not positive.
	ErrMissingBlockSize = errors.New("format: block size must be >= 1")
)
