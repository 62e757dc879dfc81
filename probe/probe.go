package probe

import (
	"errors"
	"sort"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/propagate"
)

// Engine runs one-ply probing passes over a Board.
type Engine struct {
	opts Options
}

// NewEngine builds an Engine.
func NewEngine(opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{opts: cfg}
}

// Run probes every unsolved cell at or above the configured priority
// threshold, repeating full passes until a pass yields no new
// information. drv propagates each speculative assignment and each
// permanent elimination.
func (e *Engine) Run(b *board.Board, drv *propagate.Driver) (Result, error) {
	impact := make(map[board.Point]int)
	solvedSeen := false

	for {
		// anyInfo tracks only whether this pass permanently mutated b.
		// Solved and Progress outcomes are always rolled back by
		// probeOne before it returns, so replaying them against the same
		// board state next pass would reproduce identical results;
		// Contradiction is the only outcome that survives via
		// UnsetColor, and therefore the only one that can unlock new
		// deductions on a further pass.
		anyInfo := false

		cells := orderedCells(b, e.opts.LowPriorityThreshold)
		for _, p := range cells {
			cur, err := b.Cell(p)
			if err != nil {
				return Result{}, err
			}
			if cur.IsSolved() {
				continue
			}

			for _, v := range orderedVariants(cur) {
				outcome, gained, err := e.probeOne(b, drv, p, v)
				if err != nil {
					return Result{}, err
				}

				switch outcome {
				case OutcomeContradiction:
					anyInfo = true
					e.opts.OnContradiction(p, v)
					if _, err := b.UnsetColor(p, v); err != nil {
						return Result{}, err
					}
					if err := drv.Run(b); err != nil {
						return Result{}, err
					}
				case OutcomeSolved:
					solvedSeen = true
				case OutcomeProgress:
					impact[p] += gained
					e.opts.OnProgress(p, v, gained)
				}

				// A cell that just became solved (by elimination, or by
				// having been forced externally mid-pass) needs no more
				// of its own variants tried.
				cur, err = b.Cell(p)
				if err != nil {
					return Result{}, err
				}
				if cur.IsSolved() {
					break
				}
			}
		}

		if !anyInfo {
			break
		}
	}

	return Result{Solved: solvedSeen, RankedCells: rankedFrom(impact)}, nil
}

// probeOne tentatively assigns v to p, propagates, classifies the outcome,
// and restores b to its pre-probe state before returning (the caller
// performs any permanent mutation, such as UnsetColor on contradiction).
func (e *Engine) probeOne(b *board.Board, drv *propagate.Driver, p board.Point, v color.Color) (Outcome, int, error) {
	snap := b.MakeSnapshot()
	defer func() {
		_ = b.Restore(snap)
	}()

	if _, err := b.SetColor(p, v); err != nil {
		if errors.Is(err, board.ErrBroadening) {
			return OutcomeNoChange, 0, nil
		}

		return OutcomeNoChange, 0, err
	}

	// Counted after the forced cell is set, so gains are other cells only.
	before := countSolved(b)

	if err := drv.Run(b); err != nil {
		if errors.Is(err, propagate.ErrContradiction) {
			return OutcomeContradiction, 0, nil
		}

		return OutcomeNoChange, 0, err
	}

	if b.IsSolvedFull() {
		e.opts.OnSolved(b.Clone())

		return OutcomeSolved, 0, nil
	}

	after := countSolved(b)
	if gained := after - before; gained > 0 {
		return OutcomeProgress, gained, nil
	}

	return OutcomeNoChange, 0, nil
}

// countSolved counts solved cells across the whole board.
func countSolved(b *board.Board) int {
	count := 0
	for i := 0; i < b.Height(); i++ {
		row, err := b.GetRow(i)
		if err != nil {
			continue
		}
		for _, c := range row {
			if c.IsSolved() {
				count++
			}
		}
	}

	return count
}

// priority computes P = N + R + C for the cell at p.
func priority(b *board.Board, p board.Point) float64 {
	neighbors := [4]board.Point{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}

	n := 0
	for _, nb := range neighbors {
		if nb.Row < 0 || nb.Row >= b.Height() || nb.Col < 0 || nb.Col >= b.Width() {
			n++ // board edge counts as solved
			continue
		}
		c, err := b.Cell(nb)
		if err == nil && c.IsSolved() {
			n++
		}
	}

	row, _ := b.GetRow(p.Row)
	rSolved := 0
	for _, c := range row {
		if c.IsSolved() {
			rSolved++
		}
	}

	col, _ := b.GetCol(p.Col)
	cSolved := 0
	for _, c := range col {
		if c.IsSolved() {
			cSolved++
		}
	}

	return float64(n) + float64(rSolved)/float64(len(row)) + float64(cSolved)/float64(len(col))
}

// orderedCells returns every unsolved cell at or above threshold, ordered
// by descending priority (ties broken row-major for determinism).
func orderedCells(b *board.Board, threshold float64) []board.Point {
	out := make([]board.Point, 0, b.Height()*b.Width())
	for i := 0; i < b.Height(); i++ {
		for j := 0; j < b.Width(); j++ {
			p := board.Point{Row: i, Col: j}
			c, err := b.Cell(p)
			if err != nil || c.IsSolved() {
				continue
			}
			if priority(b, p) < threshold {
				continue
			}
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priority(b, out[i]) > priority(b, out[j])
	})

	return out
}

// orderedVariants returns cur's concrete variants in palette order with
// the cell's blank color moved last: colors within a cell are tried in
// palette order, blank last.
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

// rankedFrom converts an accumulated impact map into a descending-sorted
// RankedCell slice.
func rankedFrom(impact map[board.Point]int) []RankedCell {
	out := make([]RankedCell, 0, len(impact))
	for p, n := range impact {
		out = append(out, RankedCell{Point: p, Impact: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Impact != out[j].Impact {
			return out[i].Impact > out[j].Impact
		}
		if out[i].Point.Row != out[j].Point.Row {
			return out[i].Point.Row < out[j].Point.Row
		}

		return out[i].Point.Col < out[j].Point.Col
	})

	return out
}
