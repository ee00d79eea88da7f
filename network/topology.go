package network

import (
	"github.com/katalvlaran/dynaflow/numeric"
)

// Topology bundles the edge-id-ordered per-edge metadata DynamicFlow.Extend
// and NetworkLoader.BuildFlow need. Edge ids are assigned densely in
// construction order; NetworkLoader resolves paths purely through these
// integer ids, never through vertex names.
type Topology struct {
	Capacity    []numeric.T
	InvCapacity []numeric.T
	TravelTime  []numeric.T
}

func appendEdge(t *Topology, capacity, travelTime numeric.T) int {
	id := len(t.Capacity)
	t.Capacity = append(t.Capacity, capacity)
	t.InvCapacity = append(t.InvCapacity, numeric.ONE/capacity)
	t.TravelTime = append(t.TravelTime, travelTime)
	return id
}

// PathTopology builds a directed path v0 -> v1 -> ... -> v(n-1) of n-1
// edges, each with uniform capacity and travel time, and returns the
// path as an ordered edge-id list alongside the topology. Adapted from
// builder.Path (impl_path.go), fixing the per-edge weight to a supplied
// capacity instead of a randomized weightFn.
func PathTopology(n int, capacity, travelTime numeric.T) (*Topology, []int, error) {
	if n < 2 {
		return nil, nil, ErrTooFewNodes
	}

	topo := &Topology{}
	path := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		path = append(path, appendEdge(topo, capacity, travelTime))
	}
	return topo, path, nil
}

// CycleTopology builds a directed cycle v0 -> v1 -> ... -> v(n-1) -> v0
// of n edges, each with uniform capacity and travel time, and returns
// the cycle as an ordered edge-id list. Adapted from builder.Cycle
// (impl_cycle.go).
func CycleTopology(n int, capacity, travelTime numeric.T) (*Topology, []int, error) {
	if n < 2 {
		return nil, nil, ErrTooFewNodes
	}

	topo := &Topology{}
	path := make([]int, 0, n)
	for i := 0; i < n; i++ {
		path = append(path, appendEdge(topo, capacity, travelTime))
	}
	return topo, path, nil
}

// StarTopology builds a directed star with a single hub v0 and leaves
// v1..v(leaves), one edge hub->leaf per leaf, each with uniform
// capacity and travel time. Returns the per-leaf single-edge "paths".
// Adapted from builder.Star (impl_star.go).
func StarTopology(leaves int, capacity, travelTime numeric.T) (*Topology, [][]int, error) {
	if leaves < 1 {
		return nil, nil, ErrTooFewNodes
	}

	topo := &Topology{}
	paths := make([][]int, 0, leaves)
	for i := 1; i <= leaves; i++ {
		paths = append(paths, []int{appendEdge(topo, capacity, travelTime)})
	}
	return topo, paths, nil
}
