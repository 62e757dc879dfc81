// Package solution implements the core's solution collector and cell-
// narrowing observer bus, per spec.md §4.H: an ordered, de-duplicated list
// of up to Config.MaxSolutions full boards, plus a synchronous subscriber
// list notified of every (point, before, after) narrowing.
//
// Grounded on bfs.BFSOptions' hook-callback contract (OnEnqueue/OnDequeue/
// OnVisit): Collector.Subscribe registers a callback with the same
// synchronous, no-re-entrancy contract bfs.OnVisit documents ("returning an
// error aborts BFS" becomes "observers MUST NOT re-enter the solver").
package solution
