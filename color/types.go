package color

// Color is the capability contract shared by both color flavors. Solving
// code (linesolver, propagate, probe, backtrack, satsolve) is written
// entirely against this interface and never inspects a concrete flavor.
type Color interface {
	// Blank returns the "no ink" color of this flavor (White for Binary,
	// the id-0 singleton mask for Multi).
	Blank() Color

	// IsSolved reports whether exactly one concrete possibility remains.
	IsSolved() bool

	// SolutionRate returns a value in [0,1]: 1 when solved and less than 1
	// otherwise. A Binary Undefined rates 0 and BlackOrWhite 0.5; a Multi
	// rates 1 over its count of remaining colors, so a fully open Multi
	// over N colors rates 1/N.
	SolutionRate() float64

	// Variants enumerates the concrete (fully solved) colors this value
	// could still resolve to.
	Variants() []Color

	// IsUpdatedWith reports whether other is a valid refinement of the
	// receiver (narrower than, or equal to, the receiver's possibility
	// set) and returns the merged value. ErrNotARefinement is returned if
	// other would broaden the receiver.
	IsUpdatedWith(other Color) (Color, bool, error)

	// Equal reports value equality within the same flavor.
	Equal(other Color) bool

	// Union returns the possibility set that admits every concrete color
	// admitted by either the receiver or other. Unlike IsUpdatedWith,
	// Union never fails and never narrows: linesolver uses it to fold
	// together the set of colors observed across every feasible placement
	// of a line's blocks, and board.UnsetColor uses it to fold the
	// variants that remain after removing one.
	Union(other Color) Color

	// String renders a short human-readable form, used by render/ and by
	// test failure messages.
	String() string
}

// Block is one contiguous, identically-colored run within a line. Size must
// be >= 1. For binary puzzles Color is always Black.
type Block struct {
	Size  int
	Color Color
}

// Description is the ordered clue sequence for one row or column. An empty
// Description means the line must be entirely blank.
type Description []Block

// TotalSize returns the sum of all block sizes in the description.
func (d Description) TotalSize() int {
	total := 0
	for _, b := range d {
		total += b.Size
	}

	return total
}

// MinLength returns the minimum line length capable of holding d: the sum
// of block sizes plus one mandatory gap between every pair of adjacent
// same-color blocks.
func (d Description) MinLength() int {
	if len(d) == 0 {
		return 0
	}

	length := d[0].Size
	for i := 1; i < len(d); i++ {
		length++ // at least one gap cell between i-1 and i
		if !d[i].Color.Equal(d[i-1].Color) {
			// different colors may abut; the gap above is only
			// mandatory for same-color neighbors, so give it back.
			length--
		}
		length += d[i].Size
	}

	return length
}
