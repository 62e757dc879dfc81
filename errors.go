package nonogrid

import (
	"errors"
	"fmt"
)

// ErrSolverPanic is the sentinel Solve wraps around any recovered internal
// panic: an unexpected internal inconsistency surfaced as a fatal failure,
// with solutions collected so far remaining valid. It is the single
// recover point for the whole solving pipeline.
var ErrSolverPanic = errors.New("nonogrid: internal solver inconsistency")

// newSolverPanic wraps a recovered panic value as an ErrSolverPanic.
func newSolverPanic(r interface{}) error {
	return fmt.Errorf("%w: %v", ErrSolverPanic, r)
}
