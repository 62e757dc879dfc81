package propagate

import "errors"

// Sentinel errors for the propagation driver.
var (
	// ErrContradiction indicates a line's description and current cells
	// admit no valid placement (linesolver.ErrInfeasible surfaced at
	// board granularity): the board is unsolvable in its current state.
	ErrContradiction = errors.New("propagate: board reached a contradictory state")
)
