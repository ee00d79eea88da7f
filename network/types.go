package network

import (
	"container/heap"

	"github.com/katalvlaran/dynaflow/numeric"
	"github.com/katalvlaran/dynaflow/piecewise"
)

// PathInflow describes one commodity: an ordered sequence of edge ids
// it traverses, and its inflow rate schedule at the path's first edge.
type PathInflow struct {
	Path   []int
	Inflow *piecewise.PiecewiseConstant
}

// pathEventItem is one pending rate change: at time, path's inflow rate
// becomes rate; nextIndex is the position in the path's inflow points
// to push next, once this one is popped.
type pathEventItem struct {
	pathID    int
	time      numeric.T
	rate      numeric.T
	nextIndex int
}

// pathEventHeap is a min-heap over pathEventItem by time.
type pathEventHeap []pathEventItem

func (h pathEventHeap) Len() int           { return len(h) }
func (h pathEventHeap) Less(i, j int) bool { return h[i].time < h[j].time }
func (h pathEventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *pathEventHeap) Push(x any)        { *h = append(*h, x.(pathEventItem)) }
func (h *pathEventHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

func (h *pathEventHeap) peekTime() (numeric.T, bool) {
	if h.Len() == 0 {
		return 0, false
	}
	return (*h)[0].time, true
}

// NetworkLoader resolves PathInflow schedules onto a dynflow.DynamicFlow:
// state is the per-(path, edge) successor relation plus the pending
// rate-change priority queue. Grounded on spec.md §4.6.
type NetworkLoader struct {
	paths    []PathInflow
	nextEdge []map[int]int // nextEdge[pathID][edge] = successor edge id
	pending  pathEventHeap
}

// New builds a NetworkLoader from the given path schedules, validating
// that every path is non-empty and every inflow schedule is present,
// and seeding the pending rate-change queue from each path's first
// breakpoint.
func New(pathInflows []PathInflow) (*NetworkLoader, error) {
	nl := &NetworkLoader{
		paths:    pathInflows,
		nextEdge: make([]map[int]int, len(pathInflows)),
	}

	for pid, p := range pathInflows {
		if len(p.Path) == 0 {
			return nil, ErrEmptyPath
		}
		if p.Inflow == nil {
			return nil, ErrNilInflow
		}

		succ := make(map[int]int, len(p.Path)-1)
		for i := 0; i < len(p.Path)-1; i++ {
			succ[p.Path[i]] = p.Path[i+1]
		}
		nl.nextEdge[pid] = succ

		points := p.Inflow.Points()
		heap.Push(&nl.pending, pathEventItem{
			pathID:    pid,
			time:      points[0].X,
			rate:      points[0].Y,
			nextIndex: 1,
		})
	}

	return nl, nil
}

// firstEdge returns the entry edge of path pid.
func (nl *NetworkLoader) firstEdge(pid int) int {
	return nl.paths[pid].Path[0]
}

// successor returns the edge that follows e along path pid, if any —
// absent means e is that path's sink.
func (nl *NetworkLoader) successor(pid, e int) (int, bool) {
	next, ok := nl.nextEdge[pid][e]
	return next, ok
}
