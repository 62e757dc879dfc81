// Package render paints a board.Board onto a terminal via
// github.com/gdamore/tcell/v2: one terminal cell per board cell, an ANSI
// background color per solved value, '?' for anything still undecided.
// Terminal rendering with ANSI color sits outside the solving core's
// scope, implemented here as a thin outer consumer package.
package render
