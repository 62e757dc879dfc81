// Package color defines the cell-value and clue-item primitives shared by
// every layer of the nonogram solving core: the line solver, the
// propagation driver, the probing engine, the backtracking search, and the
// SAT encoder all operate on the small capability contract defined here
// rather than on a concrete color representation.
//
// Two concrete flavors are provided:
//
//   - Binary: a four-state enum (Undefined, White, Black, BlackOrWhite) for
//     classic black-and-white nonograms.
//   - Multi: a bitmask over up to 31 concrete palette colors plus the
//     implicit blank color, for colored nonograms.
//
// Both satisfy the Color interface, so algorithms written against Color
// never need to branch on which flavor they were given.
package color
