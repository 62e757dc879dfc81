// Package nonogrid solves nonogram (paint-by-numbers) puzzles: given a
// rectangular grid described only by per-row and per-column clue
// sequences (optionally colored), it determines every cell's value or
// enumerates up to a configured number of solutions.
//
// 🧩 What is nonogrid?
//
//	A single-threaded, deterministic solving core that layers four
//	cooperating techniques, cheapest first:
//
//	  • Line solving  — dynamic-program deduction over one row/column
//	  • Propagation   — a priority queue driving line solves to a fixpoint
//	  • Probing       — one-ply speculative assignment + contradiction check
//	  • Search        — backtracking DFS or a CNF/SAT finisher, last resort
//
// ✨ Why choose nonogrid?
//
//   - Deterministic    — same input and Config always yields the same
//     solutions and the same observer event sequence
//   - Snapshot-safe    — every speculative mutation is LIFO-rollback-able
//   - Extensible       — attach an Observer to watch every cell narrow
//   - Two finishers    — custom backtracking or a pluggable CNF/SAT solver
//
// Everything solving-relevant lives under its own subpackage:
//
//	color/       — Color/Block/Description primitives (binary + multi-color)
//	board/       — the shared, mutable Board: grid, clues, snapshot/restore
//	linesolver/  — the DP line solver and its LRU cache
//	propagate/   — the priority-queue propagation driver
//	probe/       — the one-ply probing engine
//	backtrack/   — depth-first backtracking search
//	satsolve/    — CNF encoder + pluggable SAT driver
//	solution/    — solution collector + cell-narrowing observer bus
//	builder/     — deterministic puzzle fixtures for tests and benchmarks
//
// Quick ASCII example, the digit "5":
//
//	XXXX
//	X...
//	XXXX
//	...X
//	XXXX
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full design
// and its grounding.
//
//	go get github.com/katalvlaran/nonogrid
package nonogrid
