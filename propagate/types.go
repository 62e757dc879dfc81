package propagate

import "github.com/katalvlaran/nonogrid/board"

// Options configures a Driver.
type Options struct {
	// CacheCapacity bounds the linesolver.Cache a Driver builds for
	// itself. Zero disables caching.
	CacheCapacity int
}

// DefaultOptions returns the Options a Driver uses when no Option is
// supplied: a modestly sized cache, since most boards revisit the same
// handful of lines many times during propagation.
func DefaultOptions() Options {
	return Options{CacheCapacity: 256}
}

// Option customizes a Driver at construction time.
type Option func(*Options)

// WithCacheCapacity overrides the capacity of the Driver's internal
// linesolver.Cache.
func WithCacheCapacity(n int) Option {
	return func(o *Options) { o.CacheCapacity = n }
}

// jobItem is one entry in the driver's priority queue: a pending line
// together with the priority it was last pushed at.
type jobItem struct {
	job      board.LineJob
	priority int
	index    int // position in the heap slice, maintained by heap.Interface
}

// jobPQ is a min-heap of *jobItem ordered by ascending priority: lines
// with fewer undetermined cells are popped first, on the heuristic that
// they are cheapest to finish and most likely to narrow their neighbors.
type jobPQ []*jobItem

func (pq jobPQ) Len() int            { return len(pq) }
func (pq jobPQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq jobPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i]; pq[i].index = i; pq[j].index = j }
func (pq *jobPQ) Push(x interface{}) {
	item := x.(*jobItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *jobPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
