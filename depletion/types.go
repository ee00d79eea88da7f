package depletion

import "github.com/katalvlaran/dynaflow/numeric"

// ChangeEventValue carries the per-commodity outflow map (and its sum)
// that a depletion will install on the edge's outflow function once the
// depletion's change time is reached.
type ChangeEventValue struct {
	// NewOutflowMap is the per-commodity outflow rate map to apply.
	NewOutflowMap map[int]numeric.T
	// ValuesSum is the sum of NewOutflowMap's values.
	ValuesSum numeric.T
}

// ChangeEvent describes a future outflow discontinuity that follows an
// edge's queue depletion: at Time, the edge's outflow should be extended
// with Value.
type ChangeEvent struct {
	Time  numeric.T
	Value ChangeEventValue
}

// depletionItem is one entry in the depletion-time heap.
type depletionItem struct {
	edge  int
	time  numeric.T
	index int
}

// changeItem is one entry in the change-time heap.
type changeItem struct {
	edge  int
	time  numeric.T
	index int
}
