package solution

import (
	"fmt"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
)

// Collector accumulates up to MaxSolutions distinct full boards (spec.md
// §4.H) and fans cell-narrowing events out to any registered Observer.
//
// Collector carries no internal lock: spec.md §5 places the whole solver,
// this collector included, on a single synchronous caller thread, so the
// concurrency-safety board.Board offers for its own cell grid has no
// analog here. A caller embedding Collector in a goroutine-shared context
// is responsible for its own external synchronization.
type Collector struct {
	max       int
	solutions []*board.Board
	observers []Observer
}

// NewCollector builds a Collector that keeps at most max distinct
// solutions. max must be >= 1.
func NewCollector(max int) (*Collector, error) {
	if max <= 0 {
		return nil, ErrMaxSolutionsNonPositive
	}

	return &Collector{max: max}, nil
}

// Subscribe registers fn to receive every future cell-narrowing event
// notified via Notify. Subscribers accumulate; there is no Unsubscribe,
// matching the solver's single-invocation lifetime (spec.md §3
// "Lifecycle").
func (c *Collector) Subscribe(fn Observer) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

// Notify delivers one cell-narrowing event to every subscriber, in
// registration order, synchronously on the caller's goroutine.
func (c *Collector) Notify(p board.Point, before, after color.Color) {
	for _, fn := range c.observers {
		fn(p, before, after)
	}
}

// Submit adds b to the collected solutions if it is not a duplicate (by
// grid equality) of one already held, and there is still room under
// MaxSolutions. It reports whether b was accepted.
func (c *Collector) Submit(b *board.Board) (bool, error) {
	for _, existing := range c.solutions {
		eq, err := gridEqual(existing, b)
		if err != nil {
			return false, err
		}
		if eq {
			return false, nil
		}
	}

	if len(c.solutions) >= c.max {
		return false, nil
	}

	c.solutions = append(c.solutions, b)

	return true, nil
}

// Full reports whether MaxSolutions distinct solutions have already been
// collected; callers use this to stop searching early.
func (c *Collector) Full() bool {
	return len(c.solutions) >= c.max
}

// Solutions returns the collected boards, in discovery order. The slice
// and its elements must not be mutated by the caller.
func (c *Collector) Solutions() []*board.Board {
	return c.solutions
}

// Status derives a Status from the collected count and whether the search
// that fed this collector proved it exhausted the search space
// (exhausted=false covers both "timed out" and "max solutions reached
// before exhaustion").
func (c *Collector) Status(exhausted bool) Status {
	n := len(c.solutions)
	switch {
	case !exhausted:
		if n >= c.max {
			return Status{Kind: StatusMultiple, FoundCount: n}
		}

		return Status{Kind: StatusTimedOut, FoundCount: n}
	case n == 0:
		return Status{Kind: StatusUnsolvable, FoundCount: 0}
	case n == 1:
		return Status{Kind: StatusUnique, FoundCount: 1}
	default:
		return Status{Kind: StatusMultiple, FoundCount: n}
	}
}

// gridEqual reports whether a and b hold identical cell grids. Both
// boards must share dimensions (true for any two solutions of the same
// puzzle).
func gridEqual(a, b *board.Board) (bool, error) {
	if a.Height() != b.Height() || a.Width() != b.Width() {
		return false, fmt.Errorf("solution: dimension mismatch comparing solutions")
	}

	for i := 0; i < a.Height(); i++ {
		ra, err := a.GetRow(i)
		if err != nil {
			return false, err
		}
		rb, err := b.GetRow(i)
		if err != nil {
			return false, err
		}
		for j := range ra {
			if !ra[j].Equal(rb[j]) {
				return false, nil
			}
		}
	}

	return true, nil
}
