package propagate

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/nonogrid/board"
	"github.com/katalvlaran/nonogrid/color"
	"github.com/katalvlaran/nonogrid/linesolver"
)

// Driver runs the propagation loop: it drains a priority queue of pending
// rows and columns, narrowing each via linesolver and re-enqueuing every
// line crossing a line that changed, until the queue empties (a fixed
// point) or a contradiction is found.
type Driver struct {
	cache *linesolver.Cache
}

// NewDriver builds a Driver. By default it owns a private linesolver.Cache
// sized per DefaultOptions; WithCacheCapacity overrides that size.
func NewDriver(opts ...Option) *Driver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Driver{cache: linesolver.NewCache(cfg.CacheCapacity)}
}

// Run propagates b to a fixed point: every row and column is narrowed by
// linesolver until no further narrowing occurs anywhere on the board. It
// returns ErrContradiction (wrapping the line that failed) if any line's
// description and current cells admit no valid placement.
//
// Complexity: each popped job costs one linesolver call, O(line length ×
// total block size) or O(1) on a cache hit; the number of pops is bounded
// by the number of narrowing events, which is itself bounded by the total
// number of cells (each cell can only narrow finitely many times).
func (d *Driver) Run(b *board.Board) error {
	pq := make(jobPQ, 0, b.Height()+b.Width())
	inQueue := make(map[board.LineJob]int, b.Height()+b.Width())

	push := func(job board.LineJob, priority int) {
		if existing, ok := inQueue[job]; ok && existing <= priority {
			return
		}
		inQueue[job] = priority
		heap.Push(&pq, &jobItem{job: job, priority: priority})
	}

	for i := 0; i < b.Height(); i++ {
		push(board.LineJob{IsColumn: false, Index: i}, 0)
	}
	for j := 0; j < b.Width(); j++ {
		push(board.LineJob{IsColumn: true, Index: j}, 0)
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*jobItem)
		if cur, ok := inQueue[item.job]; !ok || cur != item.priority {
			continue // stale: a fresher priority has already superseded this entry
		}
		delete(inQueue, item.job)

		changed, err := d.solveLine(b, item.job)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrContradiction, describeJob(item.job))
		}
		if !changed {
			continue
		}

		for _, cross := range crossingJobs(b, item.job) {
			priority, err := undeterminedCount(b, cross)
			if err != nil {
				return err
			}
			push(cross, priority)
		}
	}

	return nil
}

// solveLine narrows the single line job identifies and writes the result
// back to b. It returns linesolver.ErrInfeasible unchanged so Run can wrap
// it with the failing line's identity.
func (d *Driver) solveLine(b *board.Board, job board.LineJob) (bool, error) {
	var line []color.Color
	var desc color.Description
	var err error

	if job.IsColumn {
		line, err = b.GetCol(job.Index)
		desc = b.ColDescription(job.Index)
	} else {
		line, err = b.GetRow(job.Index)
		desc = b.RowDescription(job.Index)
	}
	if err != nil {
		return false, err
	}

	refined, err := d.cache.Solve(desc, line)
	if err != nil {
		return false, err
	}

	if job.IsColumn {
		return b.SetCol(job.Index, refined)
	}

	return b.SetRow(job.Index, refined)
}

// crossingJobs returns every line orthogonal to job: all columns if job is
// a row, all rows if job is a column. Any cell job's line touches belongs
// to exactly one such line, so this is a correct (if coarse) superset of
// the lines a change to job could have affected.
func crossingJobs(b *board.Board, job board.LineJob) []board.LineJob {
	if job.IsColumn {
		out := make([]board.LineJob, b.Height())
		for i := range out {
			out[i] = board.LineJob{IsColumn: false, Index: i}
		}

		return out
	}

	out := make([]board.LineJob, b.Width())
	for j := range out {
		out[j] = board.LineJob{IsColumn: true, Index: j}
	}

	return out
}

// undeterminedCount reports how many cells of job's line are not yet
// solved; it is the priority a re-enqueued job is pushed at.
func undeterminedCount(b *board.Board, job board.LineJob) (int, error) {
	var line []color.Color
	var err error
	if job.IsColumn {
		line, err = b.GetCol(job.Index)
	} else {
		line, err = b.GetRow(job.Index)
	}
	if err != nil {
		return 0, err
	}

	count := 0
	for _, c := range line {
		if !c.IsSolved() {
			count++
		}
	}

	return count, nil
}

// describeJob renders job for error messages.
func describeJob(job board.LineJob) string {
	if job.IsColumn {
		return fmt.Sprintf("column %d", job.Index)
	}

	return fmt.Sprintf("row %d", job.Index)
}
