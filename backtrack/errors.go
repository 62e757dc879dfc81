package backtrack

import "errors"

// errMaxSolutionsReached is an internal control-flow signal used to unwind
// the recursion once Config.MaxSolutions has been collected; Run never
// returns it to its caller.
var errMaxSolutionsReached = errors.New("backtrack: max solutions reached")
