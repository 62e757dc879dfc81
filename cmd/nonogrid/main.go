// Command nonogrid solves a nonogram puzzle described in a YAML file and
// prints its solution status, optionally drawing the first solution to
// the terminal. This is the "command-line argument handling" spec.md §1
// places outside the solving core's scope.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	nonogrid "github.com/katalvlaran/nonogrid"
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/format"
	"github.com/katalvlaran/nonogrid/render"
)

// cli is the kong-parsed command line: a puzzle file plus the same
// MaxSolutions/Finisher knobs nonogrid.Config exposes.
type cli struct {
	Puzzle       string `arg:"" help:"Path to a YAML puzzle description."`
	MaxSolutions int    `default:"1" help:"Maximum number of solutions to report."`
	Finisher     string `default:"backtracking" enum:"backtracking,sat" help:"Finisher used once propagation and probing leave the board unsolved."`
	NoRender     bool   `help:"Skip drawing the solution to the terminal; print only the status line."`
}

func main() {
	var c cli
	kong.Parse(&c, kong.Description("Solve a nonogram puzzle and report its unique or first few solutions."))

	if err := c.run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "nonogrid:", err)
		os.Exit(1)
	}
}

// run opens c.Puzzle, decodes and solves it, prints its Status to out, and
// (unless NoRender) draws its first solution to the terminal.
func (c *cli) run(out *os.File) error {
	f, err := os.Open(c.Puzzle)
	if err != nil {
		return fmt.Errorf("opening puzzle: %w", err)
	}
	defer f.Close()

	b, err := format.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding puzzle: %w", err)
	}

	result, err := c.solve(b)
	if err != nil {
		return fmt.Errorf("solving puzzle: %w", err)
	}

	fmt.Fprintln(out, result.Status.Kind, result.Status.FoundCount)

	if c.NoRender || len(result.Solutions) == 0 {
		return nil
	}

	return drawToTerminal(result.Solutions[0])
}

// solve runs the configured solver over b.
func (c *cli) solve(b *board.Board) (nonogrid.Result, error) {
	finisher := nonogrid.FinisherBacktracking
	if c.Finisher == "sat" {
		finisher = nonogrid.FinisherSAT
	}

	return nonogrid.Solve(b, nonogrid.WithMaxSolutions(c.MaxSolutions), nonogrid.WithFinisher(finisher))
}

// drawToTerminal opens a real terminal screen and draws sol on it, kept
// separate from run so tests can exercise run's parsing/solving/printing
// path without requiring an actual tty.
func drawToTerminal(sol *board.Board) error {
	r, err := render.NewRenderer()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer r.Close()

	return r.Draw(sol)
}
