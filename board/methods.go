package board

import "github.com/katalvlaran/nonogrid/color"

// OnChange registers fn to fire on every future narrowing write, the same
// as WithOnChange at construction time but callable once a Board already
// exists (used by nonogrid.Solve to wire a solution.Collector's Notify
// method onto a caller-supplied Board).
func (b *Board) OnChange(fn func(p Point, old, new color.Color)) {
	if fn != nil {
		b.onChange = append(b.onChange, fn)
	}
}

// inRange reports whether p addresses an existing cell.
func (b *Board) inRange(p Point) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// Cell returns the current color at p.
// Complexity: O(1).
func (b *Board) Cell(p Point) (color.Color, error) {
	if !b.inRange(p) {
		return nil, ErrOutOfRange
	}

	b.muCells.RLock()
	defer b.muCells.RUnlock()

	return b.cells[p.Row][p.Col], nil
}

// writeLocked narrows the cell at p to newVal, validating the refinement
// relation, appending a delta to the log, and reporting whether anything
// changed. Caller must hold muCells for writing.
func (b *Board) writeLocked(p Point, newVal color.Color) (bool, error) {
	old := b.cells[p.Row][p.Col]
	merged, changed, err := old.IsUpdatedWith(newVal)
	if err != nil {
		return false, ErrBroadening
	}
	if !changed {
		return false, nil
	}

	b.log = append(b.log, delta{p: p, old: old})
	b.cells[p.Row][p.Col] = merged

	for _, fn := range b.onChange {
		fn(p, old, merged)
	}

	return true, nil
}

// SetColor narrows the cell at p to c. Returns whether the cell actually
// changed; ErrBroadening if c would widen the cell's possibility set.
// Complexity: O(1).
func (b *Board) SetColor(p Point, c color.Color) (bool, error) {
	if !b.inRange(p) {
		return false, ErrOutOfRange
	}

	b.muCells.Lock()
	defer b.muCells.Unlock()

	return b.writeLocked(p, c)
}

// UnsetColor removes c from the possibility set of the cell at p. It fails
// with ErrLastColorRemoved if c was the only remaining value.
// Complexity: O(k) where k is the palette size (bounded by 32).
func (b *Board) UnsetColor(p Point, c color.Color) (bool, error) {
	if !b.inRange(p) {
		return false, ErrOutOfRange
	}

	b.muCells.Lock()
	defer b.muCells.Unlock()

	cur := b.cells[p.Row][p.Col]
	remaining := make([]color.Color, 0, len(cur.Variants()))
	for _, v := range cur.Variants() {
		if !v.Equal(c) {
			remaining = append(remaining, v)
		}
	}
	if len(remaining) == 0 {
		return false, ErrLastColorRemoved
	}
	if len(remaining) == len(cur.Variants()) {
		return false, nil // c was already excluded
	}

	merged := remaining[0]
	for _, v := range remaining[1:] {
		merged = merged.Union(v)
	}

	return b.writeLocked(p, merged)
}

// GetRow returns a copy of row i's current cell values.
// Complexity: O(W).
func (b *Board) GetRow(i int) ([]color.Color, error) {
	if i < 0 || i >= b.height {
		return nil, ErrOutOfRange
	}

	b.muCells.RLock()
	defer b.muCells.RUnlock()

	out := make([]color.Color, b.width)
	copy(out, b.cells[i])

	return out, nil
}

// GetCol returns a copy of column j's current cell values.
// Complexity: O(H).
func (b *Board) GetCol(j int) ([]color.Color, error) {
	if j < 0 || j >= b.width {
		return nil, ErrOutOfRange
	}

	b.muCells.RLock()
	defer b.muCells.RUnlock()

	out := make([]color.Color, b.height)
	for i := range out {
		out[i] = b.cells[i][j]
	}

	return out, nil
}

// SetRow narrows row i's cells to values, which must have length Width().
// It writes cell-by-cell and validates each write; on the first
// ErrBroadening it returns immediately, leaving earlier cells in the row
// already narrowed (the caller is expected to treat this as Infeasible and
// unwind via Restore, not to inspect partial state).
// Complexity: O(W).
func (b *Board) SetRow(i int, values []color.Color) (bool, error) {
	if i < 0 || i >= b.height {
		return false, ErrOutOfRange
	}
	if len(values) != b.width {
		return false, ErrLineLengthMismatch
	}

	b.muCells.Lock()
	defer b.muCells.Unlock()

	changedAny := false
	for j, v := range values {
		changed, err := b.writeLocked(Point{Row: i, Col: j}, v)
		if err != nil {
			return changedAny, err
		}
		changedAny = changedAny || changed
	}

	return changedAny, nil
}

// SetCol narrows column j's cells to values, which must have length
// Height(). See SetRow for partial-write semantics on error.
// Complexity: O(H).
func (b *Board) SetCol(j int, values []color.Color) (bool, error) {
	if j < 0 || j >= b.width {
		return false, ErrOutOfRange
	}
	if len(values) != b.height {
		return false, ErrLineLengthMismatch
	}

	b.muCells.Lock()
	defer b.muCells.Unlock()

	changedAny := false
	for i, v := range values {
		changed, err := b.writeLocked(Point{Row: i, Col: j}, v)
		if err != nil {
			return changedAny, err
		}
		changedAny = changedAny || changed
	}

	return changedAny, nil
}

// Neighbours returns the up-to-4 orthogonal neighbors of p that lie within
// the board.
// Complexity: O(1).
func (b *Board) Neighbours(p Point) []Point {
	candidates := [4]Point{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}

	out := make([]Point, 0, 4)
	for _, c := range candidates {
		if b.inRange(c) {
			out = append(out, c)
		}
	}

	return out
}

// IsSolvedFull reports whether every cell on the board is solved.
// Complexity: O(H*W).
func (b *Board) IsSolvedFull() bool {
	b.muCells.RLock()
	defer b.muCells.RUnlock()

	for _, row := range b.cells {
		for _, c := range row {
			if !c.IsSolved() {
				return false
			}
		}
	}

	return true
}

// SolutionRate returns the mean per-cell SolutionRate across the board.
// Complexity: O(H*W).
func (b *Board) SolutionRate() float64 {
	b.muCells.RLock()
	defer b.muCells.RUnlock()

	total := 0.0
	for _, row := range b.cells {
		for _, c := range row {
			total += c.SolutionRate()
		}
	}

	return total / float64(b.height*b.width)
}
