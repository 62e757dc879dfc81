// Package linesolver implements the nonogram core's single-line deducer:
// given one row or column's clue Description and its current partial
// state, it computes every cell value forced by the clue alone.
//
// The algorithm is a two-dimensional dynamic program over
// (position-in-line, blocks-placed-so-far), directly descended from the
// teacher's dtw package: dtw.DTW fills a rolling DP row forward and then
// walks a retained matrix backward to recover one optimal alignment path;
// Solve here fills boolean dp/free/gap tables forward over the line, runs
// the same pass again over the reversed line with the blocks reversed, and
// combines the two per position to recover the union of colors that
// appear in at least one feasible placement — a superset walk rather than
// a single argmin walk, because the line solver wants "everything that
// could be true here", not "the one best explanation".
//
// A bounded LRU Cache (cache.go) memoizes Solve by (description, line)
// content hash, since the same row or column is resubmitted to the line
// solver many times over one propagation drive.
package linesolver
