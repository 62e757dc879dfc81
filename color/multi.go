package color

import "math/bits"

// Multi is a color value for colored nonograms: an unordered set of up to
// 31 concrete colors encoded as a bitmask over a palette of at most 32 ids,
// where id 0 is always the implicit blank color. A Multi is solved iff
// exactly one bit is set.
type Multi struct {
	mask    uint32
	palette *Palette
}

// NewMulti builds a Multi value from an explicit set of palette ids. An
// empty set is rejected with ErrEmptyPalette; ids are validated against p.
func NewMulti(p *Palette, ids ...uint8) (Multi, error) {
	if len(ids) == 0 {
		return Multi{}, ErrEmptyPalette
	}

	var mask uint32
	for _, id := range ids {
		if int(id) >= p.Size() {
			return Multi{}, ErrPaletteTooLarge
		}
		mask |= 1 << id
	}

	return Multi{mask: mask, palette: p}, nil
}

// blankMulti returns the solved id-0 singleton for palette p.
func blankMulti(p *Palette) Multi {
	return Multi{mask: 1, palette: p}
}

// Blank returns the solved blank color for this value's palette.
func (m Multi) Blank() Color { return blankMulti(m.palette) }

// IsSolved reports whether exactly one bit is set.
func (m Multi) IsSolved() bool {
	return bits.OnesCount32(m.mask) == 1
}

// SolutionRate returns 1/popcount(mask); a fully open cell over an N-color
// palette has rate 1/N, a solved cell has rate 1.
func (m Multi) SolutionRate() float64 {
	n := bits.OnesCount32(m.mask)
	if n == 0 {
		return 0
	}

	return 1.0 / float64(n)
}

// Variants enumerates the concrete solved colors admitted by m.
func (m Multi) Variants() []Color {
	out := make([]Color, 0, bits.OnesCount32(m.mask))
	remaining := m.mask
	for remaining != 0 {
		id := uint8(bits.TrailingZeros32(remaining))
		remaining &= remaining - 1
		out = append(out, Multi{mask: 1 << id, palette: m.palette})
	}

	return out
}

// IsUpdatedWith validates that other's mask is a subset of m's mask
// (refinement) and returns the merged value. A strict superset is
// rejected as a broadening; an equal mask reports changed=false.
func (m Multi) IsUpdatedWith(other Color) (Color, bool, error) {
	om, ok := other.(Multi)
	if !ok {
		return nil, false, ErrNotARefinement
	}
	if om.mask == 0 || om.mask&^m.mask != 0 {
		return nil, false, ErrNotARefinement
	}
	if om.mask == m.mask {
		return m, false, nil
	}

	return Multi{mask: om.mask, palette: m.palette}, true, nil
}

// Equal reports mask equality; palettes are not compared (they are shared
// by construction within one Board).
func (m Multi) Equal(other Color) bool {
	om, ok := other.(Multi)

	return ok && om.mask == m.mask
}

// Union ORs the two masks together.
func (m Multi) Union(other Color) Color {
	om, ok := other.(Multi)
	if !ok {
		return m
	}

	return Multi{mask: m.mask | om.mask, palette: m.palette}
}

// String renders the palette name when solved, "*" otherwise.
func (m Multi) String() string {
	if m.IsSolved() {
		id := uint8(bits.TrailingZeros32(m.mask))
		if m.palette != nil {
			if name, ok := m.palette.Name(id); ok {
				return name
			}
		}
	}
	return "*"
}

// Mask exposes the raw bitmask, used by satsolve's CNF encoder and by
// board rendering.
func (m Multi) Mask() uint32 { return m.mask }

// HasColor reports whether id is still possible.
func (m Multi) HasColor(id uint8) bool {
	return m.mask&(1<<id) != 0
}

// Palette maps concrete color ids (1..31, plus the implicit blank id 0) to
// symbolic names and RGB triples, used by the multi-color board and by the
// render/ consumer package.
type Palette struct {
	names [32]string
	rgb   [32][3]uint8
	size  int // number of occupied ids, including the blank id 0
}

// NewPalette builds a Palette with the implicit blank at id 0 and the
// given concrete colors at ids 1..len(names). At most 31 concrete colors
// are allowed (ErrPaletteTooLarge).
func NewPalette(blankName string, names []string, rgb [][3]uint8) (*Palette, error) {
	if len(names) == 0 {
		return nil, ErrEmptyPalette
	}
	if len(names) > 31 {
		return nil, ErrPaletteTooLarge
	}

	p := &Palette{size: len(names) + 1}
	p.names[0] = blankName
	for i, n := range names {
		p.names[i+1] = n
		if i < len(rgb) {
			p.rgb[i+1] = rgb[i]
		}
	}

	return p, nil
}

// Size returns the number of occupied ids (blank plus concrete colors).
func (p *Palette) Size() int { return p.size }

// Name returns the symbolic name for id, if occupied.
func (p *Palette) Name(id uint8) (string, bool) {
	if int(id) >= p.size {
		return "", false
	}

	return p.names[id], true
}

// RGB returns the RGB triple for id, if occupied.
func (p *Palette) RGB(id uint8) ([3]uint8, bool) {
	if int(id) >= p.size {
		return [3]uint8{}, false
	}

	return p.rgb[id], true
}

// Lookup resolves a symbolic name back to its palette id, used by format/'s
// YAML decoder to turn clue color names into concrete ids.
func (p *Palette) Lookup(name string) (uint8, bool) {
	for id := 0; id < p.size; id++ {
		if p.names[id] == name {
			return uint8(id), true
		}
	}

	return 0, false
}
