// Package builder generates deterministic nonogram puzzle fixtures for
// tests: a random (or explicit) black/white grid plus the row/column
// Descriptions a solver must recover it from.
//
// It uses the functional-options-with-a-seed shape the rest of this
// module's packages use (Option, WithSeed, a single resolved config
// struct) and narrows it to the one thing a nonogram test needs: "give me
// a puzzle, and the answer key to check a solver's output against."
package builder
