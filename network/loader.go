package network

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/dynaflow/dynflow"
	"github.com/katalvlaran/dynaflow/numeric"
)

// BuildFlow drains the path-inflow schedule, advancing a fresh
// dynflow.DynamicFlow(numEdges) until built_until reaches +INFINITY,
// and returns the finished flow. Grounded on spec.md §4.6.
//
// ctx is checked once per loop iteration, mirroring flow.Dinic's
// cancellation pattern: a cancelled context aborts with ctx.Err()
// before the next DynamicFlow.Extend call.
func (nl *NetworkLoader) BuildFlow(
	ctx context.Context,
	numEdges int,
	capacity, invCapacity, travelTime []numeric.T,
	opts ...dynflow.Option,
) (*dynflow.DynamicFlow, error) {
	flow := dynflow.New(numEdges, opts...)
	newInflow := make(map[int]map[int]numeric.T)

	for numeric.IsInfinite(flow.BuiltUntil()) == false {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for {
			t, ok := nl.pending.peekTime()
			if !ok || t > flow.BuiltUntil()+numeric.TOL {
				break
			}
			item := heap.Pop(&nl.pending).(pathEventItem)
			edge := nl.firstEdge(item.pathID)
			if newInflow[edge] == nil {
				newInflow[edge] = make(map[int]numeric.T)
			}
			newInflow[edge][item.pathID] = item.rate

			points := nl.paths[item.pathID].Inflow.Points()
			if item.nextIndex < len(points) {
				next := points[item.nextIndex]
				heap.Push(&nl.pending, pathEventItem{
					pathID:    item.pathID,
					time:      next.X,
					rate:      next.Y,
					nextIndex: item.nextIndex + 1,
				})
			}
		}

		var maxExtensionTime *numeric.T
		if t, ok := nl.pending.peekTime(); ok {
			maxExtensionTime = &t
		}

		changedEdges, err := flow.Extend(newInflow, maxExtensionTime, capacity, invCapacity, travelTime)
		if err != nil {
			return nil, err
		}

		newInflow = make(map[int]map[int]numeric.T)
		for e := range changedEdges {
			outMap, ok, err := flow.OutflowAtBuiltUntil(e)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			for pid, rate := range outMap {
				next, ok := nl.successor(pid, e)
				if !ok {
					continue // path sink: this commodity's journey ends at e
				}
				if newInflow[next] == nil {
					newInflow[next] = make(map[int]numeric.T)
				}
				newInflow[next][pid] = rate
			}
		}
	}

	return flow, nil
}
