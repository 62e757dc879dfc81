package satsolve

import (
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
)

// Encode builds a CNF placement encoding of b's current state into
// target: one boolean per (cell, concrete color), one boolean per (line,
// block, candidate start position), exactly-one constraints over both
// families, and channeling clauses tying a chosen placement to the cell
// colors it implies.
//
// This mirrors the classic nonogram-to-SAT reduction: each line's blocks
// get placement variables ranging only over the positions the block could
// possibly start at (computed the same way linesolver bounds a block's
// feasible window, generalized here to a closed-form leftmost/rightmost
// range rather than a full DP table, since SAT only needs the domain, not
// per-position reachability). Already-known cells are pinned with unit
// clauses so the solver never contradicts board state fed in from
// propagation and probing.
func Encode(b *board.Board, target Builder) (*Encoding, error) {
	colors := concreteColors(b)
	blankIdx, err := blankIndex(b, colors)
	if err != nil {
		return nil, err
	}

	height, width := b.Height(), b.Width()
	enc := &Encoding{
		CellVar:    make([][][]int, height),
		Colors:     colors,
		BlankIndex: blankIdx,
	}
	for i := 0; i < height; i++ {
		enc.CellVar[i] = make([][]int, width)
		for j := 0; j < width; j++ {
			vars := make([]int, len(colors))
			for k := range vars {
				vars[k] = target.NewVar()
			}
			enc.CellVar[i][j] = vars
		}
	}

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			vars := enc.CellVar[i][j]
			target.AddClause(vars...)
			atMostOne(target, vars)

			cur, err := b.Cell(board.Point{Row: i, Col: j})
			if err != nil {
				return nil, err
			}
			allowed := cur.Variants()
			for k, c := range colors {
				if !containsColor(allowed, c) {
					target.AddClause(-vars[k])
				}
			}
		}
	}

	encodeLines(target, enc, height, width, b.RowDescription, func(lineIdx, pos int) board.Point {
		return board.Point{Row: lineIdx, Col: pos}
	})
	encodeLines(target, enc, width, height, b.ColDescription, func(lineIdx, pos int) board.Point {
		return board.Point{Row: pos, Col: lineIdx}
	})

	return enc, nil
}

// atMostOne adds pairwise negative clauses forbidding more than one of
// vars from holding simultaneously.
func atMostOne(target Builder, vars []int) {
	for a := 0; a < len(vars); a++ {
		for c := a + 1; c < len(vars); c++ {
			target.AddClause(-vars[a], -vars[c])
		}
	}
}

// encodeLines encodes every line (row or column, selected by cellAt) of
// the given count and length against the descriptions desc returns.
func encodeLines(target Builder, enc *Encoding, count, lineLen int, desc func(int) color.Description, cellAt func(lineIdx, pos int) board.Point) {
	for idx := 0; idx < count; idx++ {
		d := desc(idx)
		if len(d) == 0 {
			// An empty description forces every cell on the line blank,
			// which unit clauses express without placement variables.
			for pos := 0; pos < lineLen; pos++ {
				p := cellAt(idx, pos)
				target.AddClause(enc.CellVar[p.Row][p.Col][enc.BlankIndex])
			}
			continue
		}

		minStart, maxStart := blockStartRange(d, lineLen)

		placementVars := make([][]int, len(d))
		for bi := range d {
			width := maxStart[bi] - minStart[bi] + 1
			vars := make([]int, width)
			for k := range vars {
				vars[k] = target.NewVar()
			}
			placementVars[bi] = vars
			target.AddClause(vars...)
			atMostOne(target, vars)
		}

		for bi := 0; bi+1 < len(d); bi++ {
			gap := 1
			if !d[bi+1].Color.Equal(d[bi].Color) {
				gap = 0
			}
			for a, sa := range startsInRange(minStart[bi], maxStart[bi]) {
				for c, sc := range startsInRange(minStart[bi+1], maxStart[bi+1]) {
					if sc < sa+d[bi].Size+gap {
						target.AddClause(-placementVars[bi][a], -placementVars[bi+1][c])
					}
				}
			}
		}

		coverers := make([][]int, lineLen)
		for bi, blk := range d {
			colorIdx := indexOfColor(enc.Colors, blk.Color)
			for k, s := range startsInRange(minStart[bi], maxStart[bi]) {
				pv := placementVars[bi][k]
				for o := 0; o < blk.Size; o++ {
					pos := s + o
					p := cellAt(idx, pos)
					target.AddClause(-pv, enc.CellVar[p.Row][p.Col][colorIdx])
					coverers[pos] = append(coverers[pos], pv)
				}
			}
		}

		for pos := 0; pos < lineLen; pos++ {
			p := cellAt(idx, pos)
			clause := append([]int{enc.CellVar[p.Row][p.Col][enc.BlankIndex]}, coverers[pos]...)
			target.AddClause(clause...)
		}
	}
}

// blockStartRange returns, for each block in d, the inclusive
// [minStart, maxStart] range of positions it could start at within a line
// of length lineLen: minStart packs every block as far left as possible,
// maxStart shifts each by the line's total slack (lineLen - d.MinLength()).
// Any assignment preserving block order and mandatory gaps lies within
// this envelope for every block simultaneously.
func blockStartRange(d color.Description, lineLen int) ([]int, []int) {
	n := len(d)
	minStart := make([]int, n)
	for i := 1; i < n; i++ {
		gap := 1
		if !d[i].Color.Equal(d[i-1].Color) {
			gap = 0
		}
		minStart[i] = minStart[i-1] + d[i-1].Size + gap
	}

	slack := lineLen - d.MinLength()
	maxStart := make([]int, n)
	for i := range maxStart {
		maxStart[i] = minStart[i] + slack
	}

	return minStart, maxStart
}

// startsInRange enumerates [lo, hi] inclusive.
func startsInRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for s := lo; s <= hi; s++ {
		out = append(out, s)
	}

	return out
}

// concreteColors enumerates a board's concrete color alphabet: the two
// Binary solved values, or one Multi singleton per occupied palette id.
func concreteColors(b *board.Board) []color.Color {
	if p := b.Palette(); p != nil {
		out := make([]color.Color, p.Size())
		for id := 0; id < p.Size(); id++ {
			m, _ := color.NewMulti(p, uint8(id))
			out[id] = m
		}

		return out
	}

	return []color.Color{color.White, color.Black}
}

// blankIndex locates colors' blank representative, derived from any
// sample cell on the board (the blank color is uniform across a board's
// flavor).
func blankIndex(b *board.Board, colors []color.Color) (int, error) {
	sample, err := b.Cell(board.Point{Row: 0, Col: 0})
	if err != nil {
		return 0, err
	}
	blank := sample.Blank()
	for i, c := range colors {
		if c.Equal(blank) {
			return i, nil
		}
	}

	return 0, ErrUnsupportedColorFlavor
}

// containsColor reports whether c appears (by Equal) in variants.
func containsColor(variants []color.Color, c color.Color) bool {
	for _, v := range variants {
		if v.Equal(c) {
			return true
		}
	}

	return false
}

// indexOfColor returns c's position within colors, or -1.
func indexOfColor(colors []color.Color, c color.Color) int {
	for i, v := range colors {
		if v.Equal(c) {
			return i
		}
	}

	return -1
}
