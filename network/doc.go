// Package network implements NetworkLoader, the outer driver that
// resolves path inflow schedules onto edges and repeatedly advances a
// dynflow.DynamicFlow until the whole schedule has been loaded.
// Grounded on spec.md §4.6.
//
// A path is a sequence of edge ids; NetworkLoader precomputes, for
// every (path, edge) pair, the successor edge along that path (or
// none, if the edge is the path's sink), then drains a priority queue
// of per-path rate changes in lockstep with DynamicFlow.Extend,
// feeding each edge's outflow back in as the next edge's inflow.
//
// Topology, the accompanying path/cycle/star builders in topology.go,
// adapts the teacher's builder.Path/Cycle/Star constructors (impl_path.go,
// impl_cycle.go, impl_star.go) from randomized test-graph generation to
// fixed per-edge capacity/travel-time metadata, keyed purely by the dense
// integer edge ids DynamicFlow and NetworkLoader operate on.
package network
