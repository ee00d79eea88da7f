// Package dynaflow simulates dynamic, time-varying multi-commodity
// network flows over a directed transportation graph with point-queue
// edge dynamics: each edge has a finite service capacity and a fixed
// free-flow travel time, and excess inflow accumulates as a FIFO queue
// at the edge head.
//
// Given per-path inflow schedules that are piecewise-constant in time,
// the simulator produces, for every edge, the complete time-evolution
// of per-commodity inflow rates, per-commodity outflow rates, and queue
// lengths — each represented exactly as a piecewise function over the
// nonnegative real time axis.
//
// Everything is organized under subpackages, leaves first:
//
//	numeric/    — the ordered, tolerance-aware numeric facade (T, TOL, INFINITY)
//	piecewise/  — PiecewiseConstant and PiecewiseLinear function algebra
//	depletion/  — DepletionQueue, the paired depletion/change event heaps
//	rates/      — FlowRatesCollection, the per-edge rate history bundle
//	dynflow/    — DynamicFlow, the event-driven network loading engine
//	network/    — NetworkLoader, the path-to-edge outer driver
//
// Quick ASCII picture of a single edge's point-queue dynamics:
//
//	inflow(t) ──▶ [ FIFO queue, length q(t) ] ──▶ service @ rate μ ──▶ outflow(t+τ)
//
// The core never retries and never recovers from malformed input:
// precondition violations (unordered points, backward-in-time extends,
// non-monotone composition) are reported as errors and abort the call
// that triggered them.
package dynaflow
