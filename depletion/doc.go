// Package depletion implements DepletionQueue: the event structure that
// lets dynflow's DynamicFlow discover, per edge, when a queue will next
// drain to zero, and whether that depletion produces a future outflow
// discontinuity.
//
// DepletionQueue pairs two earliest-first priority queues keyed by edge
// id — one over depletion times, one over the post-depletion change times
// that follow a depletion — plus a map from edge id to the pending
// change's value. Grounded on spec.md §4.4, implemented as two
// container/heap instances the way dijkstra.go implements its own
// vertexHeap, rather than a generic priority-queue dependency (see
// SPEC_FULL.md §2.2: the retrieval pack offers no such library).
package depletion
