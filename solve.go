package nonogrid

import (
	"context"
	"errors"

	"github.com/katalvlaran/nonogrid/backtrack"
	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/probe"
	"github.com/katalvlaran/nonogrid/propagate"
	"github.com/katalvlaran/nonogrid/satsolve"
	"github.com/katalvlaran/nonogrid/solution"
)

// Solve drives b to a fixed point by propagation, probing, and (if still
// unsolved) the configured finisher: propagation always runs first,
// probing runs only if propagation did not fully solve the board, and the
// finisher runs only if probing did not fully solve it either.
//
// b is mutated in place by propagation and probing; it never outlives
// this call. Every solution returned is an independent Board.Clone, so b
// itself reflects only the logical deductions forced by propagation and
// probing, not any speculative branch of the search.
//
// A recovered internal panic is converted to ErrSolverPanic; solutions
// already collected before the panic are still returned.
func Solve(b *board.Board, opts ...Option) (result Result, err error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	collector, cErr := solution.NewCollector(cfg.MaxSolutions)
	if cErr != nil {
		return Result{}, cErr
	}
	if cfg.Observer != nil {
		collector.Subscribe(cfg.Observer)
	}
	b.OnChange(collector.Notify)

	defer func() {
		if r := recover(); r != nil {
			err = newSolverPanic(r)
			result = Result{Solutions: collector.Solutions()}
		}
	}()

	drv := propagate.NewDriver(propagate.WithCacheCapacity(cfg.LineCacheCapacity))

	if propErr := drv.Run(b); propErr != nil {
		if errors.Is(propErr, propagate.ErrContradiction) {
			cfg.Logger.Debug("propagation found a contradiction", "error", propErr)

			return Result{Status: solution.Status{Kind: solution.StatusUnsolvable}}, nil
		}

		return Result{}, propErr
	}

	if b.IsSolvedFull() {
		if _, subErr := collector.Submit(b.Clone()); subErr != nil {
			return Result{}, subErr
		}

		return Result{Solutions: collector.Solutions(), Status: collector.Status(true)}, nil
	}

	eng := probe.NewEngine(
		probe.WithLowPriorityThreshold(cfg.LowPriorityThreshold),
		probe.WithOnSolved(func(solved *board.Board) {
			if _, subErr := collector.Submit(solved); subErr != nil {
				cfg.Logger.Debug("probe solution submit failed", "error", subErr)
			}
		}),
	)

	probeResult, probeErr := eng.Run(b, drv)
	if probeErr != nil {
		if errors.Is(probeErr, propagate.ErrContradiction) {
			cfg.Logger.Debug("probing found a contradiction", "error", probeErr)

			return Result{Status: solution.Status{Kind: solution.StatusUnsolvable}}, nil
		}

		return Result{}, probeErr
	}

	if b.IsSolvedFull() {
		if _, subErr := collector.Submit(b.Clone()); subErr != nil {
			return Result{}, subErr
		}

		return Result{Solutions: collector.Solutions(), Status: collector.Status(true)}, nil
	}

	// probeResult.Solved means OnSolved already submitted solutions found on
	// rolled-back branches; the live board is still partial, so the finisher
	// runs unless the collector is full. It is asked for the full
	// MaxSolutions: it finds those solutions again and Submit drops them.
	if probeResult.Solved && collector.Full() {
		return Result{Solutions: collector.Solutions(), Status: collector.Status(false)}, nil
	}
	remaining := cfg.MaxSolutions

	switch cfg.Finisher {
	case FinisherSAT:
		return runSAT(b, collector, remaining)
	default:
		return runBacktracking(b, eng, drv, collector, cfg, remaining)
	}
}

// runBacktracking dispatches to backtrack.Search for the default finisher.
func runBacktracking(b *board.Board, eng *probe.Engine, drv *propagate.Driver, collector *solution.Collector, cfg Config, remaining int) (Result, error) {
	ctx := context.Background()
	cancel := func() {}
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
	}
	defer cancel()

	search := backtrack.NewSearch()
	searchResult, err := search.Run(ctx, b, eng, drv, backtrack.Config{
		MaxSolutions: remaining,
		OnSolution: func(sol *board.Board) {
			if _, subErr := collector.Submit(sol); subErr != nil {
				cfg.Logger.Debug("backtrack solution submit failed", "error", subErr)
			}
		},
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Solutions: collector.Solutions(), Status: collector.Status(searchResult.Exhausted)}, nil
}

// runSAT dispatches to satsolve.Driver for the alternative finisher.
func runSAT(b *board.Board, collector *solution.Collector, remaining int) (Result, error) {
	driver := satsolve.NewDriver()
	found, err := driver.Solve(b, remaining)
	if err != nil {
		return Result{}, err
	}

	for _, sol := range found {
		if _, subErr := collector.Submit(sol); subErr != nil {
			return Result{}, subErr
		}
	}

	// driver.Solve loops until either remaining solutions were found or
	// its solver reported UNSAT; finding fewer than remaining is exactly
	// the proof that the search space was exhausted.
	exhausted := len(found) < remaining

	return Result{Solutions: collector.Solutions(), Status: collector.Status(exhausted)}, nil
}
