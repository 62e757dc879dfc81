// Package propagate implements the nonogram core's propagation driver: it
// schedules line-solver calls across a priority queue of pending rows and
// columns until a fixed point is reached.
//
// The queue is a container/heap min-heap over line jobs with a lazy
// "decrease-key": duplicate pushes are allowed, and stale pops are
// discarded by comparing against a current-priority map. Driver.Run
// drains the heap, does one unit of work per pop, and pushes follow-up
// work at a new priority.
package propagate
