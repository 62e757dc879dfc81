package satsolve

import "github.com/katalvlaran/nonogrid/board"

// Options configures a Driver.
type Options struct {
	// Solver is the backend Driver.Solve uses. Nil selects a fresh DPLL
	// per call.
	Solver Solver
}

// Option customizes a Driver at construction time.
type Option func(*Options)

// WithSolver selects an external Solver implementation instead of the
// built-in DPLL.
func WithSolver(s Solver) Option {
	return func(o *Options) { o.Solver = s }
}

// Driver runs the SAT finisher: encode the board, solve, decode the
// model, and repeat with an added blocking clause to enumerate further
// solutions.
type Driver struct {
	opts Options
}

// NewDriver builds a Driver.
func NewDriver(opts ...Option) *Driver {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Driver{opts: cfg}
}

// Solve encodes b, finds up to maxSolutions distinct full solutions, and
// returns them as independent boards (b itself is never mutated).
func (d *Driver) Solve(b *board.Board, maxSolutions int) ([]*board.Board, error) {
	if maxSolutions <= 0 {
		maxSolutions = 1
	}

	solver := d.opts.Solver
	if solver == nil {
		solver = NewDPLL()
	}

	enc, err := Encode(b, solver)
	if err != nil {
		return nil, err
	}

	var solutions []*board.Board
	for len(solutions) < maxSolutions {
		sat, err := solver.Solve()
		if err != nil {
			return nil, err
		}
		if !sat {
			break
		}

		model := solver.Model()
		solved, err := decode(b, enc, model)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, solved)

		solver.AddClause(blockingClause(enc, model)...)
	}

	return solutions, nil
}

// decode builds a clone of b with every cell narrowed to the concrete
// color model selects.
func decode(b *board.Board, enc *Encoding, model []bool) (*board.Board, error) {
	out := b.Clone()
	for i := range enc.CellVar {
		for j := range enc.CellVar[i] {
			for k, v := range enc.CellVar[i][j] {
				if model[v-1] {
					if _, err := out.SetColor(board.Point{Row: i, Col: j}, enc.Colors[k]); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return out, nil
}

// blockingClause negates every true cell-color literal in model, forcing
// the next Solve call to find a assignment differing in at least one
// cell.
func blockingClause(enc *Encoding, model []bool) []int {
	clause := make([]int, 0, len(enc.CellVar)*len(enc.CellVar[0]))
	for i := range enc.CellVar {
		for j := range enc.CellVar[i] {
			for _, v := range enc.CellVar[i][j] {
				if model[v-1] {
					clause = append(clause, -v)
				}
			}
		}
	}

	return clause
}
