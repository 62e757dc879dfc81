package color

import "errors"

// Sentinel errors returned by the color package.
var (
	// ErrNotARefinement is returned by IsUpdatedWith when the proposed value
	// does not narrow (or equal) the receiver's possibility set.
	ErrNotARefinement = errors.New("color: update is not a refinement")

	// ErrEmptyPalette is returned when a Multi color or Palette is built
	// with zero concrete colors.
	ErrEmptyPalette = errors.New("color: palette has no concrete colors")

	// ErrPaletteTooLarge is returned when a palette would need more than
	// 31 concrete color ids (plus the implicit blank id 0), and by
	// NewMulti for a color id outside the palette.
	ErrPaletteTooLarge = errors.New("color: palette exceeds 31 concrete colors")

	// ErrBadBlockSize is returned for a Block with Size <= 0.
	ErrBadBlockSize = errors.New("color: block size must be >= 1")
)
