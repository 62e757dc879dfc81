package satsolve

import "github.com/katalvlaran/nonogrid/color"

// Clause is a disjunction of DIMACS-style literals: a positive integer n
// is the n-th variable asserted true, a negative integer -n asserts it
// false. Variables are 1-indexed.
type Clause []int

// CNF is a conjunction of Clauses over NumVars boolean variables. It
// satisfies Builder and is also the concrete representation DPLL solves.
type CNF struct {
	NumVars int
	Clauses []Clause
}

// NewCNF returns an empty CNF.
func NewCNF() *CNF {
	return &CNF{}
}

// NewVar allocates and returns a fresh variable index.
func (c *CNF) NewVar() int {
	c.NumVars++

	return c.NumVars
}

// AddClause appends a clause built from lits.
func (c *CNF) AddClause(lits ...int) {
	clause := make(Clause, len(lits))
	copy(clause, lits)
	c.Clauses = append(c.Clauses, clause)
}

// Builder is the subset of Solver that Encode needs: an allocator for
// fresh variables and a sink for clauses. CNF implements Builder directly;
// any Solver implements it too, so Encode can write straight into a live
// solver instance without an intermediate CNF value.
type Builder interface {
	NewVar() int
	AddClause(lits ...int)
}

// Solver is the capability interface an external SAT engine can satisfy
// in place of the built-in DPLL.
type Solver interface {
	Builder

	// Solve reports whether the accumulated clauses are satisfiable.
	Solve() (bool, error)

	// Model returns the satisfying assignment from the most recent
	// successful Solve call: Model()[v-1] is the truth value of
	// variable v. Its behavior is undefined if Solve has not returned
	// (true, nil).
	Model() []bool
}

// Encoding records how Encode mapped a Board's cells onto CNF variables,
// so a satisfying model can be decoded back into concrete colors.
type Encoding struct {
	// CellVar[row][col][k] is the variable asserting that the cell at
	// (row, col) holds Colors[k].
	CellVar [][][]int

	// Colors is the board's concrete color alphabet, in the same order
	// used to index CellVar's third dimension.
	Colors []color.Color

	// BlankIndex is the position of the board's blank color within
	// Colors.
	BlankIndex int
}
