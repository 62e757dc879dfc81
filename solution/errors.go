package solution

import "errors"

// ErrMaxSolutionsNonPositive indicates NewCollector was asked to track a
// non-positive number of solutions.
var ErrMaxSolutionsNonPositive = errors.New("solution: max solutions must be >= 1")
