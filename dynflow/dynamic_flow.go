package dynflow

import (
	"sort"

	"github.com/katalvlaran/dynaflow/depletion"
	"github.com/katalvlaran/dynaflow/numeric"
)

// Extend advances the flow by one round: for every edge mentioned in
// newInflow, it dispatches the three analytic cases of spec.md §4.5,
// then advances built_until to the earliest pending event (or
// maxExtensionTime, or +INFINITY if nothing remains), resolves any
// depletions that watermark now covers, and returns the set of edges
// whose outflow changed at or before the new built_until.
func (f *DynamicFlow) Extend(
	newInflow map[int]map[int]numeric.T,
	maxExtensionTime *numeric.T,
	capacity, invCapacity, travelTime []numeric.T,
) (map[int]bool, error) {
	n := len(f.queue)
	if len(capacity) != n || len(invCapacity) != n || len(travelTime) != n {
		return nil, ErrMismatchedEdgeParams
	}

	edges := make([]int, 0, len(newInflow))
	for e := range newInflow {
		if e < 0 || e >= n {
			return nil, ErrEdgeOutOfRange
		}
		edges = append(edges, e)
	}
	sort.Ints(edges)

	for _, e := range edges {
		if err := f.extendEdge(e, newInflow[e], capacity[e], invCapacity[e], travelTime[e]); err != nil {
			return nil, err
		}
	}

	f.advanceBuiltUntil(maxExtensionTime)

	if err := f.processDepletions(); err != nil {
		return nil, err
	}

	return f.outflowChanges.popAllAtOrBefore(f.builtUntil), nil
}

// extendEdge applies spec.md §4.5 steps 1-4 to a single edge.
func (f *DynamicFlow) extendEdge(e int, rateMap map[int]numeric.T, mu, invMu, tau numeric.T) error {
	current, hasHistory, err := f.inflow[e].GetValuesAtTime(f.builtUntil)
	if err != nil {
		return err
	}
	if hasHistory && mapsEqualWithinTol(current, rateMap) {
		return nil
	}

	accIn := sumRates(rateMap)
	curQueue := numeric.Max(f.queue[e].Eval(f.builtUntil), numeric.ZERO)

	if err := f.inflow[e].Extend(f.builtUntil, rateMap, accIn); err != nil {
		return err
	}

	switch {
	case numeric.IsZero(accIn):
		err = f.dispatchCaseI(e, curQueue, mu, invMu, tau)
	case numeric.IsZero(curQueue) || accIn >= mu-numeric.TOL:
		err = f.dispatchCaseII(e, rateMap, accIn, curQueue, mu, invMu, tau)
	default:
		err = f.dispatchCaseIII(e, rateMap, accIn, curQueue, mu, invMu, tau)
	}
	if err != nil {
		return err
	}

	f.opts.OnEdgeProcessed(e, caseLabel(accIn, curQueue, mu))
	return nil
}

func caseLabel(accIn, curQueue, mu numeric.T) string {
	switch {
	case numeric.IsZero(accIn):
		return "I"
	case numeric.IsZero(curQueue) || accIn >= mu-numeric.TOL:
		return "II"
	default:
		return "III"
	}
}

// dispatchCaseI handles no new inflow: the queue (if any) drains at
// -mu and the outflow stops once that drain plus travel time elapses.
func (f *DynamicFlow) dispatchCaseI(e int, curQueue, mu, invMu, tau numeric.T) error {
	arrival := f.builtUntil + curQueue*invMu + tau
	if err := f.outflow[e].Extend(arrival, map[int]numeric.T{}, numeric.ZERO); err != nil {
		return err
	}
	f.outflowChanges.push(e, arrival)

	if numeric.IsZero(curQueue) {
		f.depletions.Remove(e)
		return f.queue[e].Extend(f.builtUntil, numeric.ZERO)
	}

	if err := f.queue[e].Extend(f.builtUntil, -mu); err != nil {
		return err
	}
	deplTime := f.builtUntil + curQueue*invMu
	return f.depletions.Set(e, deplTime, nil)
}

// dispatchCaseII handles the saturated or instantly-routed case: the
// edge outputs everything it can right now, and the queue either holds
// steady or grows.
func (f *DynamicFlow) dispatchCaseII(e int, rateMap map[int]numeric.T, accIn, curQueue, mu, invMu, tau numeric.T) error {
	accOut := numeric.Min(mu, accIn)
	outMap := scaleRates(rateMap, accOut/accIn)

	arrival := f.builtUntil + curQueue*invMu + tau
	if err := f.outflow[e].Extend(arrival, outMap, accOut); err != nil {
		return err
	}
	f.outflowChanges.push(e, arrival)

	f.depletions.Remove(e)
	return f.queue[e].Extend(f.builtUntil, numeric.Max(accIn-mu, numeric.ZERO))
}

// dispatchCaseIII handles a draining queue with live inflow under
// capacity: output is limited to mu now, but once the queue empties the
// edge will pass the full inflow through directly.
func (f *DynamicFlow) dispatchCaseIII(e int, rateMap map[int]numeric.T, accIn, curQueue, mu, invMu, tau numeric.T) error {
	outMap := scaleRates(rateMap, mu/accIn)

	arrival := f.builtUntil + curQueue*invMu + tau
	if err := f.outflow[e].Extend(arrival, outMap, mu); err != nil {
		return err
	}
	f.outflowChanges.push(e, arrival)

	if err := f.queue[e].Extend(f.builtUntil, accIn-mu); err != nil {
		return err
	}

	deplTime := f.builtUntil + curQueue/(mu-accIn)
	plannedChangeTime := deplTime + tau
	return f.depletions.Set(e, deplTime, &depletion.ChangeEvent{
		Time: plannedChangeTime,
		Value: depletion.ChangeEventValue{
			NewOutflowMap: cloneRates(rateMap),
			ValuesSum:     accIn,
		},
	})
}

// advanceBuiltUntil moves the watermark to the earliest of: the next
// pending change time in DepletionQueue, the next pending outflow
// change, and the caller's bound; +INFINITY if none exist.
func (f *DynamicFlow) advanceBuiltUntil(maxExtensionTime *numeric.T) {
	next := numeric.INFINITY

	if t, ok := f.depletions.MinChangeTime(); ok {
		next = numeric.Min(next, t)
	}
	if t, ok := f.outflowChanges.peekMin(); ok {
		next = numeric.Min(next, t)
	}
	if maxExtensionTime != nil {
		next = numeric.Min(next, *maxExtensionTime)
	}

	f.builtUntil = next
}

// processDepletions resolves every depletion at or before built_until:
// the edge's queue is pinned to zero at the depletion time, and if the
// depletion carries a change event, the edge's outflow is extended and
// an outflow-change entry is pushed for it.
func (f *DynamicFlow) processDepletions() error {
	for {
		deplTime, ok := f.depletions.MinDepletionTime()
		if !ok || deplTime > f.builtUntil+numeric.TOL {
			return nil
		}

		edge, deplTime, changeEvent, ok := f.depletions.PopByDepletion()
		if !ok {
			return nil
		}

		drift := f.queue[edge].Eval(deplTime)
		if f.opts.DebugChecks && numeric.Abs(drift) > numeric.ResidualTol {
			return ErrToleranceBreach
		}
		if err := f.queue[edge].Extend(deplTime, numeric.ZERO); err != nil {
			return err
		}
		f.queue[edge].SetLastY(numeric.ZERO)

		if changeEvent == nil {
			continue
		}
		if err := f.outflow[edge].Extend(changeEvent.Time, changeEvent.Value.NewOutflowMap, changeEvent.Value.ValuesSum); err != nil {
			return err
		}
		f.outflowChanges.push(edge, changeEvent.Time)
	}
}

func sumRates(m map[int]numeric.T) numeric.T {
	var sum numeric.T
	for _, v := range m {
		sum += v
	}
	return sum
}

func scaleRates(m map[int]numeric.T, factor numeric.T) map[int]numeric.T {
	out := make(map[int]numeric.T, len(m))
	for k, v := range m {
		out[k] = v * factor
	}
	return out
}

func cloneRates(m map[int]numeric.T) map[int]numeric.T {
	out := make(map[int]numeric.T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func mapsEqualWithinTol(a, b map[int]numeric.T) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !numeric.Equal(av, bv) {
			return false
		}
	}
	return true
}
