// Package backtrack implements the nonogram core's backtracking search: a
// depth-first search over cell/color assignments, seeded by probe's ranked
// impact candidates and pruned by propagation contradictions.
//
// Search.Run runs a staged loop per search node (probe for candidates →
// propagate each trial assignment → recurse or prune), checking the
// caller's deadline cooperatively before each recursive descent.
package backtrack
