// Package probe implements the nonogram core's probing engine: one-ply
// speculative reasoning that tries a single cell/color assignment, runs
// propagation, and classifies the result as a contradiction, a full
// solution, or mere progress.
//
// The hook set (OnContradiction/OnProgress/OnSolved) fires synchronously
// during each probing pass instead of returning a single result map,
// generalizing "visiting a vertex" to "probing a cell".
package probe
