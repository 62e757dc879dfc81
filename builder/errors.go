package builder

import "errors"

// Sentinel errors returned by BuildPuzzle and BuildPuzzleFromGrid.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("builder: width and height must be >= 1")

	// ErrInvalidDensity indicates a density outside [0, 1].
	ErrInvalidDensity = errors.New("builder: density must be within [0, 1]")

	// ErrRaggedGrid indicates BuildPuzzleFromGrid was given rows of
	// unequal length.
	ErrRaggedGrid = errors.New("builder: grid rows must all share one width")
)
