package probe

import (
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
)

// Outcome classifies the result of one speculative cell/color probe.
type Outcome int

const (
	// OutcomeNoChange means the probe narrowed nothing: propagation left
	// the board exactly as it found it besides the forced cell itself.
	OutcomeNoChange Outcome = iota

	// OutcomeContradiction means the assignment is impossible: propagating
	// it drove some line to Infeasible.
	OutcomeContradiction

	// OutcomeSolved means propagating the assignment fully determined
	// every cell on the board.
	OutcomeSolved

	// OutcomeProgress means propagation narrowed one or more other cells
	// but did not finish the board.
	OutcomeProgress
)

// String renders o for logging and test failure messages.
func (o Outcome) String() string {
	switch o {
	case OutcomeContradiction:
		return "contradiction"
	case OutcomeSolved:
		return "solved"
	case OutcomeProgress:
		return "progress"
	default:
		return "no-change"
	}
}

// RankedCell is one candidate the engine judged informative: a cell whose
// probes produced progress (but never a contradiction from every variant),
// together with the total impact accumulated across its probes. Result's
// RankedCells seeds backtrack's branch-candidate ordering.
type RankedCell struct {
	Point  board.Point
	Impact int
}

// Result summarizes one call to Engine.Run.
type Result struct {
	// Solved reports whether any probe during this run fully determined
	// the board. The board itself is rolled back to its pre-probe state
	// regardless; callers that need the solved grid must capture it from
	// the OnSolved hook.
	Solved bool

	// RankedCells lists cells that produced progress, most impactful
	// first.
	RankedCells []RankedCell
}

// Options configures an Engine.
type Options struct {
	// LowPriorityThreshold skips cells whose P = N + R + C priority
	// falls below this value.
	LowPriorityThreshold float64

	// OnContradiction fires whenever a probed (cell, color) pair is
	// proven impossible, just before the color is permanently removed
	// and propagation re-run.
	OnContradiction func(p board.Point, c color.Color)

	// OnProgress fires whenever a probe narrows other cells without
	// finishing the board, after the speculative assignment has been
	// rolled back.
	OnProgress func(p board.Point, c color.Color, impact int)

	// OnSolved fires whenever a probe fully determines the board. It
	// receives an independent clone; the live board is rolled back
	// immediately after this hook returns. OnSolved MUST NOT mutate the
	// board it is given, and must not re-enter the engine.
	OnSolved func(solved *board.Board)
}

// DefaultOptions returns the Options an Engine uses when no Option is
// supplied: no threshold, no-op hooks.
func DefaultOptions() Options {
	return Options{
		LowPriorityThreshold: 0.0,
		OnContradiction:      func(board.Point, color.Color) {},
		OnProgress:           func(board.Point, color.Color, int) {},
		OnSolved:             func(*board.Board) {},
	}
}

// Option customizes an Engine at construction time.
type Option func(*Options)

// WithLowPriorityThreshold sets the minimum P priority a cell must reach
// to be probed.
func WithLowPriorityThreshold(t float64) Option {
	return func(o *Options) { o.LowPriorityThreshold = t }
}

// WithOnContradiction registers a contradiction hook.
func WithOnContradiction(fn func(board.Point, color.Color)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnContradiction = fn
		}
	}
}

// WithOnProgress registers a progress hook.
func WithOnProgress(fn func(board.Point, color.Color, int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithOnSolved registers a solved hook.
func WithOnSolved(fn func(*board.Board)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSolved = fn
		}
	}
}
