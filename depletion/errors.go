package depletion

import "errors"

// ErrNegativeDepletionTime indicates Set was called with a depletion time
// at or before -INFINITY, a precondition violation per spec.md §7.
var ErrNegativeDepletionTime = errors.New("depletion: depletion time must be greater than -infinity")
