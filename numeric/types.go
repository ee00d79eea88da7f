package numeric

import "math"

// T is the numeric domain dynaflow operates over: a totally-ordered,
// hashable value type with a fixed tolerance. This module fixes T to
// float64 (EXACT_ARITHMETIC below is false); see doc.go for why a
// generic trait is out of scope.
type T = float64

// EXACT_ARITHMETIC is false: T is floating point, so every coordinate and
// value comparison in piecewise, depletion, rates, and dynflow applies TOL
// slack rather than exact equality.
const EXACT_ARITHMETIC = false

const (
	// ZERO is the additive identity.
	ZERO T = 0

	// ONE is the multiplicative identity.
	ONE T = 1

	// TOL is the positive tolerance used for all coordinate and value
	// equality tests: a == b iff |a-b| <= TOL.
	TOL T = 1e-9

	// ResidualTol is the looser tolerance (1000*TOL) used only when
	// snapping residual queue-length drift to zero at a depletion event
	// (spec.md §4.5 step 6, §7 "tolerance breach").
	ResidualTol T = 1000 * TOL
)

// INFINITY is the +infinity sentinel; -INFINITY is its negation.
var INFINITY T = math.Inf(1)

// Equal reports whether a and b are within TOL of each other.
func Equal(a, b T) bool {
	return math.Abs(a-b) <= TOL
}

// EqualTol reports whether a and b are within the given tolerance of
// each other, for callers that need a bound other than TOL (such as
// ResidualTol).
func EqualTol(a, b, tol T) bool {
	return math.Abs(a-b) <= tol
}

// IsZero reports whether v is within TOL of ZERO.
func IsZero(v T) bool {
	return Equal(v, ZERO)
}

// Abs returns the absolute value of v.
func Abs(v T) T {
	return math.Abs(v)
}

// Max returns the greater of a and b.
func Max(a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the lesser of a and b.
func Min(a, b T) T {
	if a < b {
		return a
	}
	return b
}

// IsInfinite reports whether v is +INFINITY or -INFINITY.
func IsInfinite(v T) bool {
	return math.IsInf(v, 0)
}
