package backtrack

import "github.com/katalvlaran/nonogrid/board"

// Config bounds one Search.Run call.
type Config struct {
	// MaxSolutions stops the search once this many full solutions have
	// been collected. Must be >= 1.
	MaxSolutions int

	// OnSolution, if set, fires synchronously for every solution found,
	// in addition to it being appended to Result.Solutions.
	OnSolution func(*board.Board)
}

// DefaultConfig returns a Config that stops after the first solution.
func DefaultConfig() Config {
	return Config{MaxSolutions: 1}
}

// Result is the outcome of one Search.Run call.
type Result struct {
	// Solutions holds up to Config.MaxSolutions distinct full boards
	// found, in discovery order.
	Solutions []*board.Board

	// Exhausted reports whether the search explored the entire reachable
	// tree and proved no further solutions exist. It is false if the
	// search stopped early because MaxSolutions was reached or ctx was
	// cancelled before the tree was fully explored.
	Exhausted bool
}
