// Package rates implements FlowRatesCollection, the per-edge time-indexed
// bundle that tracks one PiecewiseConstant rate function per commodity,
// a cumulative PiecewiseLinear, and a sliding-window history of
// per-commodity rate snapshots. Grounded on spec.md §4.3.
//
// The snapshot queue mirrors the sliding-window eviction idiom: only the
// window back to the caller's oldest live query time is retained, and
// eviction is amortized O(1) per access — the same shape as a classic
// monotonic-deque rate limiter, adapted here to piecewise-rate history
// instead of request timestamps.
package rates
