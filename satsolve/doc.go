// Package satsolve implements the nonogram core's alternative finisher: a
// CNF encoding of a board's placement constraints, solved by a pluggable
// Solver.
//
// Driver dispatches between a built-in DPLL Solver and any external Solver
// satisfying the package's small capability interface: one configuration
// shape picks among several interchangeable algorithm implementations,
// with a sensible default instead of requiring the caller to choose.
package satsolve
