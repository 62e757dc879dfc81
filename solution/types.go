package solution

import (
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
)

// StatusKind classifies the outcome of one solver invocation, per
// spec.md §6.
type StatusKind int

const (
	// StatusUnsolvable means zero solutions were found and the search
	// space was exhausted.
	StatusUnsolvable StatusKind = iota
	// StatusUnique means exactly one solution was found and the search
	// space was exhausted.
	StatusUnique
	// StatusMultiple means Config.MaxSolutions were found before the
	// search space was exhausted (or the cap was hit exactly as the
	// space ran out).
	StatusMultiple
	// StatusTimedOut means the configured deadline expired before the
	// search space was fully explored; FoundCount may be zero.
	StatusTimedOut
)

// String renders k for logging and test failure messages.
func (k StatusKind) String() string {
	switch k {
	case StatusUnique:
		return "Unique"
	case StatusMultiple:
		return "Multiple"
	case StatusTimedOut:
		return "TimedOut"
	default:
		return "Unsolvable"
	}
}

// Status is the outcome spec.md §6 specifies: a Kind plus, for every
// variant, the number of solutions actually found.
type Status struct {
	Kind       StatusKind
	FoundCount int
}

// Observer receives one cell-narrowing event: p narrowed from before to
// after. Observers MUST NOT re-enter the solver (spec.md §4.H, §5).
type Observer func(p board.Point, before, after color.Color)
