package piecewise

import "errors"

// Sentinel errors returned by the piecewise package. They are returned
// unwrapped, and callers in this module pass them on unwrapped; each
// message carries the "piecewise:" prefix itself.
var (
	// ErrEmptyPoints indicates a PiecewiseConstant/PiecewiseLinear was
	// constructed with zero points; both types require at least a seed point.
	ErrEmptyPoints = errors.New("piecewise: at least one point is required")

	// ErrUnorderedPoints indicates the supplied points are not strictly
	// ascending in x, or collide within numeric.TOL.
	ErrUnorderedPoints = errors.New("piecewise: points are not strictly x-ascending")

	// ErrOutOfDomain indicates a point's x-coordinate lies outside the
	// declared [a, b] domain.
	ErrOutOfDomain = errors.New("piecewise: point is outside the declared domain")

	// ErrBackwardExtend indicates Extend was called with a time strictly
	// before the function's last point, beyond the allowed -TOL slack.
	ErrBackwardExtend = errors.New("piecewise: extend time precedes the last point")

	// ErrNonMonotoneInner indicates Compose was called with an inner
	// function that is not monotone (required for a well-defined preimage).
	ErrNonMonotoneInner = errors.New("piecewise: compose requires a monotone inner function")

	// ErrImageOutOfDomain indicates Compose's inner image is not contained
	// (within tolerance) in the outer function's domain.
	ErrImageOutOfDomain = errors.New("piecewise: inner image is not contained in outer domain")

	// ErrNotMonotone indicates Image was called on a PiecewiseLinear that
	// is not monotone nondecreasing (required for Image to be well-defined
	// as a single interval).
	ErrNotMonotone = errors.New("piecewise: image requires a monotone nondecreasing function")
)
