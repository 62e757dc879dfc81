package backtrack

import (
	"context"
	"errors"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/probe"
	"github.com/katalvlaran/nonogrid/propagate"
)

// Search runs backtracking DFS over a Board.
type Search struct{}

// NewSearch builds a Search. Search carries no state of its own; all
// per-call configuration is passed to Run.
func NewSearch() *Search {
	return &Search{}
}

// Run enumerates up to cfg.MaxSolutions full solutions reachable from b's
// current (partially solved) state, or proves none exist, honoring ctx's
// deadline/cancellation cooperatively (checked before each recursive
// descent). Recursion is ordinary Go recursion bounded by board size,
// since a nonogram's unsolved-cell count is never large enough to risk
// native stack exhaustion in practice.
//
// eng and drv are reused at every node: eng re-probes the current board
// for ranked branch candidates (and may itself discover and report full
// solutions via its own OnSolved hook — Search does not distinguish those
// from solutions it finds by explicit branching), drv propagates every
// trial assignment to a fixpoint.
func (s *Search) Run(ctx context.Context, b *board.Board, eng *probe.Engine, drv *propagate.Driver, cfg Config) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.MaxSolutions <= 0 {
		cfg.MaxSolutions = 1
	}

	result := &Result{Exhausted: true}
	err := s.dfs(ctx, b, eng, drv, cfg, result)
	if err != nil {
		if errors.Is(err, errMaxSolutionsReached) {
			result.Exhausted = false

			return *result, nil
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			result.Exhausted = false

			return *result, nil
		}

		return Result{}, err
	}

	return *result, nil
}

// dfs explores one node: if b is already solved, it is emitted; otherwise
// the top ranked-impact candidate cell is chosen and each of its
// remaining colors is tried in turn.
func (s *Search) dfs(ctx context.Context, b *board.Board, eng *probe.Engine, drv *propagate.Driver, cfg Config, result *Result) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if b.IsSolvedFull() {
		return s.emit(b, cfg, result)
	}

	probeResult, err := eng.Run(b, drv)
	if err != nil {
		if errors.Is(err, propagate.ErrContradiction) {
			// Probing proved this node contradictory: a dead end.
			return nil
		}

		return err
	}

	// Probing's own eliminations may have pushed the board the rest of
	// the way to a solution, or its OnSolved hook may already have
	// reported one; either way, re-check before branching.
	if b.IsSolvedFull() {
		return s.emit(b, cfg, result)
	}

	candidate, ok := pickCandidate(b, probeResult.RankedCells)
	if !ok {
		// No unsolved cell remains and the board is still not fully
		// solved: impossible given board invariants, but treat as a
		// dead end rather than panicking.
		return nil
	}

	cur, err := b.Cell(candidate)
	if err != nil {
		return err
	}

	for _, v := range orderedVariants(cur) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		snap := b.MakeSnapshot()
		_, setErr := b.SetColor(candidate, v)
		if setErr == nil {
			setErr = drv.Run(b)
		}

		if setErr != nil {
			// This trial is a dead end: undo it, then permanently
			// eliminate v from the candidate so later siblings (and the
			// line solver) benefit from the narrowing: eliminate the
			// cell's current color, propagate, and continue.
			if restoreErr := b.Restore(snap); restoreErr != nil {
				return restoreErr
			}

			_, unsetErr := b.UnsetColor(candidate, v)
			if unsetErr != nil {
				if errors.Is(unsetErr, board.ErrLastColorRemoved) {
					// Every variant of this cell is now impossible: the
					// whole node is a contradiction, not just this trial.
					return nil
				}

				return unsetErr
			}

			if propErr := drv.Run(b); propErr != nil {
				if errors.Is(propErr, propagate.ErrContradiction) {
					// Eliminating v collapsed the board into a
					// contradiction elsewhere: dead node.
					return nil
				}

				return propErr
			}

			continue
		}

		if err := s.dfs(ctx, b, eng, drv, cfg, result); err != nil {
			_ = b.Restore(snap)

			return err
		}
		if restoreErr := b.Restore(snap); restoreErr != nil {
			return restoreErr
		}
	}

	return nil
}

// emit records a fully solved board as a solution and signals
// errMaxSolutionsReached once cfg.MaxSolutions has been collected.
func (s *Search) emit(b *board.Board, cfg Config, result *Result) error {
	solved := b.Clone()
	result.Solutions = append(result.Solutions, solved)
	if cfg.OnSolution != nil {
		cfg.OnSolution(solved)
	}
	if len(result.Solutions) >= cfg.MaxSolutions {
		return errMaxSolutionsReached
	}

	return nil
}

// pickCandidate returns the highest-ranked still-unsolved cell from
// ranked, falling back to the first unsolved cell in row-major order if
// ranked is empty or every ranked cell has since been solved.
func pickCandidate(b *board.Board, ranked []probe.RankedCell) (board.Point, bool) {
	for _, rc := range ranked {
		c, err := b.Cell(rc.Point)
		if err == nil && !c.IsSolved() {
			return rc.Point, true
		}
	}

	for i := 0; i < b.Height(); i++ {
		for j := 0; j < b.Width(); j++ {
			p := board.Point{Row: i, Col: j}
			c, err := b.Cell(p)
			if err == nil && !c.IsSolved() {
				return p, true
			}
		}
	}

	return board.Point{}, false
}

// orderedVariants returns cur's concrete variants with its blank color
// moved last, the same branch order probe.Engine uses: colors in palette
// order, blank last.
func orderedVariants(cur color.Color) []color.Color {
	variants := cur.Variants()
	blank := cur.Blank()

	out := make([]color.Color, 0, len(variants))
	var blankVariant color.Color
	for _, v := range variants {
		if v.Equal(blank) {
			blankVariant = v
			continue
		}
		out = append(out, v)
	}
	if blankVariant != nil {
		out = append(out, blankVariant)
	}

	return out
}
