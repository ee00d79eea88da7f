// Package dynflow implements DynamicFlow, the event-driven network
// loading engine at the center of the simulator: per-edge inflow and
// outflow rate collections, per-edge queue-length functions, the
// outflow-change event queue, and the DepletionQueue, all advanced in
// lock-step by Extend. Grounded on spec.md §4.5.
//
// Extend dispatches each mentioned edge into one of three analytic
// cases (no new inflow, saturated/instantly-routed, draining queue with
// live inflow), then advances the global watermark built_until to the
// earliest of the pending event queues and the caller's bound, then
// resolves any depletions that watermark now covers.
//
// Configuration follows the functional-options idiom used throughout
// the teacher packages (see bfs.Option): Options is built up via
// With* constructors and passed to New.
package dynflow
