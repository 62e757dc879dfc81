package linesolver

import "errors"

// ErrInfeasible is returned by Solve when no placement of the description
// satisfies the given partial line.
var ErrInfeasible = errors.New("linesolver: no placement satisfies the line")

// MemoryMode controls how much of the DP matrix Solve retains, mirroring
// dtw.Options.MemoryMode. Solve always needs the full matrix to recover
// per-position color unions (there is no "just tell me if it's feasible"
// caller in this core), so FullMatrix is the only mode wired into Solve
// today; NoMemory and TwoRows are kept for a future feasibility-only fast
// path (e.g. a SAT seeding check that only needs ErrInfeasible).
type MemoryMode int

const (
	// FullMatrix retains the dp/free/gap tables for every position and
	// block count, required for the per-position union collection.
	FullMatrix MemoryMode = iota
	// TwoRows would retain only the current and previous DP rows.
	// Reserved; Solve does not implement it (see doc comment above).
	TwoRows
	// NoMemory would retain no history at all, reporting only
	// feasibility. Reserved; Solve does not implement it.
	NoMemory
)
