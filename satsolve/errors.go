package satsolve

import "errors"

// Sentinel errors for CNF encoding and solving.
var (
	// ErrUnsupportedColorFlavor indicates Encode was given a board whose
	// concrete color flavor it does not recognize (neither color.Binary
	// nor color.Multi).
	ErrUnsupportedColorFlavor = errors.New("satsolve: unsupported color flavor")
)
