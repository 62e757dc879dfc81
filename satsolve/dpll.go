package satsolve

// DPLL is the built-in Solver used when Driver is given no external one:
// a minimal unit-propagation-plus-branching search. It favors clarity and
// correctness over performance; external Solvers are the intended path
// for puzzles large enough to need a tuned engine.
type DPLL struct {
	cnf   *CNF
	model []bool
}

// NewDPLL returns an empty DPLL instance.
func NewDPLL() *DPLL {
	return &DPLL{cnf: NewCNF()}
}

// NewVar allocates a fresh variable.
func (d *DPLL) NewVar() int { return d.cnf.NewVar() }

// AddClause appends a clause. Clauses accumulate across Solve calls, so a
// caller can add a blocking clause after a successful Solve and call
// Solve again to enumerate further models (satsolve.Driver does exactly
// this for multi-solution iteration).
func (d *DPLL) AddClause(lits ...int) { d.cnf.AddClause(lits...) }

// Solve runs DPLL search from scratch over the current clause set.
func (d *DPLL) Solve() (bool, error) {
	assign := make([]int8, d.cnf.NumVars+1)
	final, ok := searchDPLL(assign, d.cnf.Clauses)
	if !ok {
		d.model = nil

		return false, nil
	}

	model := make([]bool, d.cnf.NumVars)
	for v := 1; v <= d.cnf.NumVars; v++ {
		model[v-1] = final[v] == 1
	}
	d.model = model

	return true, nil
}

// Model returns the most recent satisfying assignment.
func (d *DPLL) Model() []bool { return d.model }

// assignment values: 0 unassigned, 1 true, -1 false.

// searchDPLL propagates unit clauses to a fixpoint, then branches on the
// first unassigned variable (true before false) if the clause set is not
// yet fully decided.
func searchDPLL(assign []int8, clauses []Clause) ([]int8, bool) {
	assign, ok := propagateUnits(assign, clauses)
	if !ok {
		return nil, false
	}

	status, branchVar := evaluateClauses(assign, clauses)
	switch status {
	case satStatusSAT:
		return assign, true
	case satStatusUNSAT:
		return nil, false
	}

	for _, val := range [2]int8{1, -1} {
		next := append([]int8(nil), assign...)
		next[branchVar] = val
		if result, ok := searchDPLL(next, clauses); ok {
			return result, true
		}
	}

	return nil, false
}

// propagateUnits repeatedly satisfies unit clauses until no more apply or
// a conflict (an all-false clause) is found. It never mutates its input.
func propagateUnits(assign []int8, clauses []Clause) ([]int8, bool) {
	assign = append([]int8(nil), assign...)

	changed := true
	for changed {
		changed = false
		for _, cl := range clauses {
			sat, unresolved := clauseStatus(cl, assign)
			if sat {
				continue
			}
			if len(unresolved) == 0 {
				return nil, false
			}
			if len(unresolved) == 1 {
				lit := unresolved[0]
				v := litVar(lit)
				if assign[v] == 0 {
					if lit > 0 {
						assign[v] = 1
					} else {
						assign[v] = -1
					}
					changed = true
				}
			}
		}
	}

	return assign, true
}

type satStatus int

const (
	satStatusUndecided satStatus = iota
	satStatusSAT
	satStatusUNSAT
)

// evaluateClauses reports whether assign already satisfies every clause,
// already violates one, or leaves the question open; in the open case it
// also returns the first unassigned variable to branch on.
func evaluateClauses(assign []int8, clauses []Clause) (satStatus, int) {
	allSat := true
	for _, cl := range clauses {
		sat, unresolved := clauseStatus(cl, assign)
		if sat {
			continue
		}
		if len(unresolved) == 0 {
			return satStatusUNSAT, 0
		}
		allSat = false
	}
	if allSat {
		return satStatusSAT, 0
	}

	for v := 1; v < len(assign); v++ {
		if assign[v] == 0 {
			return satStatusUndecided, v
		}
	}

	return satStatusSAT, 0
}

// clauseStatus reports whether cl is already satisfied by assign, and
// (when not) which of its literals remain unassigned.
func clauseStatus(cl Clause, assign []int8) (sat bool, unresolved []int) {
	for _, lit := range cl {
		v := litVar(lit)
		val := assign[v]
		if val == 0 {
			unresolved = append(unresolved, lit)
			continue
		}
		if litTrueUnder(lit, val) {
			sat = true
		}
	}

	return sat, unresolved
}

func litVar(lit int) int {
	if lit < 0 {
		return -lit
	}

	return lit
}

func litTrueUnder(lit int, val int8) bool {
	if lit > 0 {
		return val == 1
	}

	return val == -1
}
