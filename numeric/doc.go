// Package numeric provides the totally-ordered, tolerance-aware numeric
// domain that every other dynaflow package builds on.
//
// dynaflow works over a single concrete time/value domain T = float64.
// Rather than a generic numeric trait (the kind of adapter the original
// Rust implementation layers over OrderedFloat, and which this module
// deliberately leaves out of scope — see SPEC_FULL.md §1), numeric exposes
// a small set of named constants and tolerance-aware comparison helpers
// that every piecewise-function and event-queue operation calls through,
// so the tolerance policy lives in exactly one place.
//
// Constants:
//
//	ZERO, ONE, INFINITY - the obvious values.
//	TOL                 - the tolerance used for all coordinate/value
//	                      equality tests (|a-b| <= TOL).
//	ResidualTol         - 1000*TOL, used only to snap residual drift to
//	                      zero at queue depletions (spec.md §4.5 step 6).
//	EXACT_ARITHMETIC    - false for this module: T is floating point, so
//	                      tolerance slack is applied throughout.
package numeric
