// Package piecewise implements the two function families the dynaflow
// network loading engine evaluates and extends at every event: a
// right-continuous step function (PiecewiseConstant) and a continuous
// piecewise-linear function (PiecewiseLinear), both over a half-infinite
// or finite domain in numeric.T.
//
// Both types are built once from a seed point and only ever extended to
// the right — Extend never edits interior points, matching the lifecycle
// spec.md §3 describes for every per-edge function dynflow owns.
//
// PiecewiseConstant supports Eval (binary-search + right-continuous
// lookup) and Extend (tolerance-gated step append).
//
// PiecewiseLinear additionally supports Gradient (per-interval slope),
// the binary operators Add/Sub (domain-intersected, point-set-merged),
// Neg, Image (on monotone inputs), and Compose (self ∘ inner, inner
// monotone, per-interval linear inversion).
//
// Every coordinate/value equality check in this package goes through
// numeric.Equal (|a-b| <= numeric.TOL), so the tolerance policy lives in
// one place (see the numeric package).
package piecewise
