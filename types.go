package nonogrid

import (
	"time"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/internal/nlog"
	"github.com/katalvlaran/nonogrid/solution"
)

// Finisher selects which technique Solve falls back to once propagation
// and probing stall.
type Finisher int

const (
	// FinisherBacktracking runs backtrack.Search: custom depth-first
	// search branching on probe-ranked candidate cells.
	FinisherBacktracking Finisher = iota
	// FinisherSAT runs satsolve.Driver: a CNF encoding of placement
	// constraints solved by a pluggable SAT backend.
	FinisherSAT
)

// String renders f for logging and test failure messages.
func (f Finisher) String() string {
	if f == FinisherSAT {
		return "sat"
	}

	return "backtracking"
}

// Config bounds one Solve call.
type Config struct {
	// MaxSolutions stops the search once this many distinct solutions
	// have been collected.
	MaxSolutions int

	// Timeout aborts the backtracking finisher after this long; zero
	// means unlimited. The deadline is checked cooperatively at each
	// backtracking step. The SAT finisher does not observe Timeout: it
	// runs until it has MaxSolutions solutions or finds no more.
	// Propagation and probing are never subject to Timeout — they always
	// run to their own fixpoint.
	Timeout time.Duration

	// LowPriorityThreshold skips probing cells whose P = N+R+C priority
	// falls below this value.
	LowPriorityThreshold float64

	// Finisher selects backtracking or SAT once logical techniques
	// stall.
	Finisher Finisher

	// LineCacheCapacity bounds the propagation driver's internal LRU
	// line-solver cache. Zero disables caching.
	LineCacheCapacity int

	// Logger receives Debug/Trace events from the solve pipeline. Nil
	// selects nlog.Nop().
	Logger nlog.Logger

	// Observer, if set, is notified synchronously of every cell
	// narrowing during propagation, probing, and search. Observers must
	// not re-enter Solve.
	Observer solution.Observer
}

// DefaultConfig returns the Config Solve uses when no Option overrides it.
func DefaultConfig() Config {
	return Config{
		MaxSolutions:         2,
		Timeout:              0,
		LowPriorityThreshold: 0.0,
		Finisher:             FinisherBacktracking,
		LineCacheCapacity:    100_000,
		Logger:               nlog.Nop(),
	}
}

// Option customizes a Config at Solve call time.
type Option func(*Config)

// WithMaxSolutions overrides the number of distinct solutions to collect.
// n must be >= 1; non-positive values are coerced to 1.
func WithMaxSolutions(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			n = 1
		}
		c.MaxSolutions = n
	}
}

// WithTimeout bounds the backtracking finisher's running time; the SAT
// finisher does not observe it.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithLowPriorityThreshold sets the probing engine's skip threshold.
func WithLowPriorityThreshold(t float64) Option {
	return func(c *Config) { c.LowPriorityThreshold = t }
}

// WithFinisher selects the search finisher.
func WithFinisher(f Finisher) Option {
	return func(c *Config) { c.Finisher = f }
}

// WithLineCacheCapacity overrides the propagation driver's line cache
// size.
func WithLineCacheCapacity(n int) Option {
	return func(c *Config) { c.LineCacheCapacity = n }
}

// WithLogger attaches a structured logger.
func WithLogger(l nlog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithObserver attaches a cell-narrowing observer.
func WithObserver(fn solution.Observer) Option {
	return func(c *Config) { c.Observer = fn }
}

// Result is Solve's return value: the collected solutions plus the
// Status summarizing how the search concluded.
type Result struct {
	// Solutions holds every distinct solved board collected, in
	// discovery order.
	Solutions []*board.Board

	// Status classifies how the search concluded.
	Status solution.Status
}

