package rates

import (
	"github.com/katalvlaran/dynaflow/numeric"
	"github.com/katalvlaran/dynaflow/piecewise"
)

// FlowRatesCollection bundles, for one edge, a per-commodity rate
// function, a cumulative rate function, and a sliding-window history of
// per-commodity snapshots. Grounded on spec.md §4.3.
type FlowRatesCollection struct {
	functionByComm map[int]*piecewise.PiecewiseConstant
	accumulative   *piecewise.PiecewiseLinear
	snapshots      []snapshot
}

// New returns an empty collection seeded at (0, 0).
func New() *FlowRatesCollection {
	return &FlowRatesCollection{
		functionByComm: make(map[int]*piecewise.PiecewiseConstant),
		accumulative:   piecewise.NewSeededLinear(numeric.ZERO, numeric.INFINITY, numeric.ZERO, numeric.ZERO, numeric.ZERO),
	}
}

// FunctionFor returns the per-commodity rate function for comm, and
// whether it has ever been extended. A commodity absent here
// contributes rate 0 at the accumulative level, per spec.md §4.3.
func (c *FlowRatesCollection) FunctionFor(comm int) (*piecewise.PiecewiseConstant, bool) {
	fn, ok := c.functionByComm[comm]
	return fn, ok
}

// Accumulative returns the cumulative rate function, whose slope on
// each interval equals the sum of all commodity rates on that interval.
func (c *FlowRatesCollection) Accumulative() *piecewise.PiecewiseLinear {
	return c.accumulative
}

// Extend records a new rate snapshot at fromTime: each commodity in
// rateMap is extended on its own PiecewiseConstant (seeding one at
// (0, 0) on first use), the snapshot is appended to the history, and
// the cumulative function is extended with rateSum. A commodity
// previously present but absent from rateMap is left untouched — the
// caller owns re-supplying an unchanged rate, per spec.md §4.3 rule 2.
func (c *FlowRatesCollection) Extend(fromTime numeric.T, rateMap map[int]numeric.T, rateSum numeric.T) error {
	for comm, rate := range rateMap {
		fn, ok := c.functionByComm[comm]
		if !ok {
			fn = piecewise.NewSeededConstant(numeric.ZERO, numeric.INFINITY, numeric.ZERO, numeric.ZERO)
			c.functionByComm[comm] = fn
		}
		if err := fn.Extend(fromTime, rate); err != nil {
			return err
		}
	}

	c.snapshots = append(c.snapshots, snapshot{time: fromTime, rateMap: cloneRateMap(rateMap)})

	return c.accumulative.Extend(fromTime, rateSum)
}

// GetValuesAtTime returns the per-commodity rate map active at t,
// evicting snapshots the caller can no longer reach. ok is false (with
// a nil error) when the collection has never been extended. An error
// is returned if t precedes the oldest retained snapshot — callers must
// query monotonically in time, per spec.md §4.3.
func (c *FlowRatesCollection) GetValuesAtTime(t numeric.T) (map[int]numeric.T, bool, error) {
	if len(c.snapshots) == 0 {
		return nil, false, nil
	}
	if c.snapshots[0].time > t+numeric.TOL {
		return nil, false, ErrEvictedHistory
	}

	for len(c.snapshots) > 1 && c.snapshots[1].time <= t+numeric.TOL {
		c.snapshots = c.snapshots[1:]
	}

	return c.snapshots[0].rateMap, true, nil
}
