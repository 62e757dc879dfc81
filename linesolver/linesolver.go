package linesolver

import "github.com/katalvlaran/nonogrid/color"

// compatible reports whether assigning the concrete, solved color c to a
// cell currently holding cur would be a valid refinement (cur.IsUpdatedWith
// never needs to actually apply the write — board.Board owns that; here we
// only ask "is it possible").
func compatible(cur, c color.Color) bool {
	_, _, err := cur.IsUpdatedWith(c)

	return err == nil
}

// tables holds the forward dynamic-program state for one direction (the
// algorithm is run twice: once on the line as given, once on the reversed
// line with the reversed block order, to get the required backward pass).
//
//   - dp[k][i]   true iff block k (1-indexed; dp[0] is the "zero blocks
//     placed" base case) can end exactly at position i, i.e. occupy
//     [i-size_k, i).
//   - free[k][i] true iff, having placed the first k blocks somewhere at
//     or before position i, position i can be reached leaving zero or
//     more further blank cells since the last block ended.
//   - gap[k][i]  like free, but requires at least one blank cell since the
//     last block ended: used when the next block shares the previous
//     block's color and therefore needs a mandatory separator.
//   - windowOK[k][start] true iff the cells [start, start+size_k) all
//     admit block k's color; only meaningful for k in [0, numBlocks).
type tables struct {
	dp       [][]bool
	free     [][]bool
	gap      [][]bool
	windowOK [][]bool
}

// compute builds the forward DP tables for line against blocks, per the
// recurrence documented on the tables type.
func compute(line []color.Color, blocks []color.Block) tables {
	l := len(line)
	n := len(blocks)

	blank := color.Color(nil)
	if l > 0 {
		blank = line[0].Blank()
	}
	blankOK := func(pos int) bool {
		if blank == nil {
			return true
		}

		return compatible(line[pos], blank)
	}

	t := tables{
		dp:       make([][]bool, n+1),
		free:     make([][]bool, n+1),
		gap:      make([][]bool, n+1),
		windowOK: make([][]bool, n),
	}

	// k == 0: no blocks placed yet. free[0][i] is the blank-prefix chain;
	// gap[0] is unused (no block precedes the first one) and left false.
	t.dp[0] = make([]bool, l+1)
	t.free[0] = make([]bool, l+1)
	t.gap[0] = make([]bool, l+1)
	t.dp[0][0] = true
	t.free[0][0] = true
	for i := 1; i <= l; i++ {
		t.free[0][i] = t.free[0][i-1] && blankOK(i-1)
	}

	for k := 1; k <= n; k++ {
		blk := blocks[k-1]
		size := blk.Size

		// Sliding-window color-admissibility check for this block's
		// color over every candidate start position: O(L) total rather
		// than O(L*size).
		window := make([]bool, l+1)
		if size <= l {
			bad := 0
			for p := 0; p < size; p++ {
				if !compatible(line[p], blk.Color) {
					bad++
				}
			}
			window[0] = bad == 0
			for start := 1; start+size <= l; start++ {
				if !compatible(line[start-1], blk.Color) {
					bad--
				}
				if !compatible(line[start+size-1], blk.Color) {
					bad++
				}
				window[start] = bad == 0
			}
		}
		t.windowOK[k-1] = window

		sameAsPrev := k >= 2 && blocks[k-2].Color.Equal(blk.Color)

		t.dp[k] = make([]bool, l+1)
		t.free[k] = make([]bool, l+1)
		t.gap[k] = make([]bool, l+1)

		for i := 0; i <= l; i++ {
			start := i - size
			if start >= 0 && start+size <= l && window[start] {
				var predOK bool
				switch {
				case k == 1:
					predOK = t.free[0][start]
				case sameAsPrev:
					predOK = t.gap[k-1][start]
				default:
					predOK = t.free[k-1][start]
				}
				t.dp[k][i] = predOK
			}

			if i == 0 {
				t.free[k][0] = t.dp[k][0]
				continue
			}
			t.free[k][i] = t.dp[k][i] || (t.free[k][i-1] && blankOK(i-1))
			t.gap[k][i] = (t.free[k][i-1] && blankOK(i-1)) || (t.gap[k][i-1] && blankOK(i-1))
		}
	}

	return t
}

// Solve computes, for every position of line, the union of colors that
// appear in at least one full placement of d's blocks consistent with
// line's current (possibly partial) state. It returns ErrInfeasible if no
// such placement exists.
//
// Complexity: O(L * (n + sum(sizes))) time, O(L * n) space, where L is the
// line length and n is the number of blocks — the forward pass, the
// backward pass (run by re-invoking the forward algorithm on the reversed
// line), and the O(L*n) existence check per position together dominate.
func Solve(d color.Description, line []color.Color) ([]color.Color, error) {
	l := len(line)
	n := len(d)
	blocks := []color.Block(d)

	fwd := compute(line, blocks)
	if !fwd.free[n][l] {
		return nil, ErrInfeasible
	}

	reversedLine := make([]color.Color, l)
	for i, c := range line {
		reversedLine[l-1-i] = c
	}
	reversedBlocks := make([]color.Block, n)
	for i, b := range blocks {
		reversedBlocks[n-1-i] = b
	}
	bwd := compute(reversedLine, reversedBlocks)

	out := make([]color.Color, l)
	seen := make([]bool, l)
	accumulate := func(pos int, c color.Color) {
		if !seen[pos] {
			out[pos] = c
			seen[pos] = true
		} else {
			out[pos] = out[pos].Union(c)
		}
	}

	var blank color.Color
	if l > 0 {
		blank = line[0].Blank()
	}

	// Blank positions: position p can be left blank in some feasible full
	// placement iff the cell itself admits blank, and there is some split
	// k (0..n blocks placed so far) for which the prefix reaches p freely
	// and the suffix of the remaining n-k blocks fits from p+1 onward.
	for p := 0; p < l; p++ {
		if !compatible(line[p], blank) {
			continue
		}
		for k := 0; k <= n; k++ {
			m := n - k
			ib := l - (p + 1)
			if fwd.free[k][p] && bwd.free[m][ib] {
				accumulate(p, blank)

				break
			}
		}
	}

	// Block positions: enumerate every (block, start) pair whose window
	// is color-admissible, and whose left and right neighbors are jointly
	// reachable in the forward/backward tables, respecting the
	// mandatory-gap rule against the adjacent block on each side.
	for k0 := 0; k0 < n; k0++ {
		size := blocks[k0].Size
		window := fwd.windowOK[k0]
		if size > l {
			continue
		}
		for start := 0; start+size <= l; start++ {
			if !window[start] {
				continue
			}

			var leftOK bool
			if k0 == 0 {
				leftOK = fwd.free[0][start]
			} else if blocks[k0-1].Color.Equal(blocks[k0].Color) {
				leftOK = fwd.gap[k0][start]
			} else {
				leftOK = fwd.free[k0][start]
			}
			if !leftOK {
				continue
			}

			m := n - 1 - k0
			ib := l - (start + size)
			var rightOK bool
			if k0 == n-1 {
				rightOK = bwd.free[0][ib]
			} else if blocks[k0].Color.Equal(blocks[k0+1].Color) {
				rightOK = bwd.gap[m][ib]
			} else {
				rightOK = bwd.free[m][ib]
			}
			if !rightOK {
				continue
			}

			for p := start; p < start+size; p++ {
				accumulate(p, blocks[k0].Color)
			}
		}
	}

	return out, nil
}
