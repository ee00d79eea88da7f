package piecewise

import "github.com/katalvlaran/dynaflow/numeric"

// PiecewiseConstant is a right-continuous step function over [a, b]:
// for points[i].X <= x < points[i+1].X the value is points[i].Y, for
// x < points[0].X it is points[0].Y, and beyond the last point it is
// last.Y. Grounded on spec.md §4.1.
type PiecewiseConstant struct {
	a, b   numeric.T
	points []Point
}

// NewPiecewiseConstant builds a PiecewiseConstant over [a, b] from a
// non-empty, strictly x-ascending list of points, all within [a, b].
func NewPiecewiseConstant(a, b numeric.T, points []Point) (*PiecewiseConstant, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}
	if !sortedAscending(points) {
		return nil, ErrUnorderedPoints
	}
	if points[0].X < a-numeric.TOL || points[len(points)-1].X > b+numeric.TOL {
		return nil, ErrOutOfDomain
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &PiecewiseConstant{a: a, b: b, points: cp}, nil
}

// NewSeededConstant builds a PiecewiseConstant over [a, b] seeded with a
// single point (at, value), the common case of a fresh per-commodity rate
// function (spec.md §4.3 step 1: "seed one on [0, +infinity) with (0, 0)").
func NewSeededConstant(a, b, at, value numeric.T) *PiecewiseConstant {
	return &PiecewiseConstant{a: a, b: b, points: []Point{{X: at, Y: value}}}
}

// Domain returns the function's declared [a, b] bounds.
func (f *PiecewiseConstant) Domain() (numeric.T, numeric.T) {
	return f.a, f.b
}

// Points returns a read-only view of the function's breakpoints. Callers
// must not mutate the returned slice.
func (f *PiecewiseConstant) Points() []Point {
	return f.points
}

// Eval returns the function's value at x: binary-search x among the
// breakpoints; on an exact match return that Y, otherwise return the Y of
// the immediately preceding point (or points[0].Y if x precedes all).
func (f *PiecewiseConstant) Eval(x numeric.T) numeric.T {
	rank, exact := getRank(f.points, x)
	if exact {
		return f.points[rank].Y
	}
	if rank == 0 {
		return f.points[0].Y
	}
	return f.points[rank-1].Y
}

// Extend appends a new step (t, v) to the function.
//
// Precondition: t >= last.X - numeric.TOL (ErrBackwardExtend otherwise).
//
// Rules (spec.md §4.1):
//   - if |v - last.Y| <= TOL, do nothing (no new breakpoint).
//   - else if |t - last.X| <= TOL, overwrite last.Y <- v (no new point).
//   - else append (t, v).
func (f *PiecewiseConstant) Extend(t, v numeric.T) error {
	last := &f.points[len(f.points)-1]
	if t < last.X-numeric.TOL {
		return ErrBackwardExtend
	}
	if numeric.Equal(last.Y, v) {
		return nil
	}
	if numeric.Equal(last.X, t) {
		last.Y = v
		return nil
	}
	f.points = append(f.points, Point{X: t, Y: v})
	return nil
}
