// Package format decodes a YAML puzzle description into a board.Board,
// the normalized input nonogrid.Solve consumes. File parsing sits outside
// the solving core's scope, implemented here as a thin outer consumer
// package.
package format
