package piecewise

import (
	"sort"

	"github.com/katalvlaran/dynaflow/numeric"
)

// PiecewiseLinear is a continuous piecewise-linear function over [a, b]:
// linear interpolation between adjacent points, firstSlope left of the
// first point, lastSlope right of the last. Grounded on spec.md §4.2.
type PiecewiseLinear struct {
	a, b                 numeric.T
	firstSlope, lastSlope numeric.T
	points               []Point
}

// NewPiecewiseLinear builds a PiecewiseLinear over [a, b] from a
// non-empty, strictly x-ascending list of points within [a, b], plus the
// slopes applied outside the point range.
func NewPiecewiseLinear(a, b, firstSlope, lastSlope numeric.T, points []Point) (*PiecewiseLinear, error) {
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
	return &PiecewiseLinear{a: a, b: b, firstSlope: firstSlope, lastSlope: lastSlope, points: cp}, nil
}

// NewSeededLinear builds a PiecewiseLinear over [a, b] seeded with a
// single point (at, value) and both slopes set to slope. Matches the
// "(0, 0)" seed used throughout dynflow (spec.md §3 "Lifecycle").
func NewSeededLinear(a, b, at, value, slope numeric.T) *PiecewiseLinear {
	return &PiecewiseLinear{a: a, b: b, firstSlope: slope, lastSlope: slope, points: []Point{{X: at, Y: value}}}
}

// Domain returns the function's declared [a, b] bounds.
func (f *PiecewiseLinear) Domain() (numeric.T, numeric.T) {
	return f.a, f.b
}

// Points returns a read-only view of the function's breakpoints. Callers
// must not mutate the returned slice.
func (f *PiecewiseLinear) Points() []Point {
	return f.points
}

// FirstSlope returns the slope applied left of the first point.
func (f *PiecewiseLinear) FirstSlope() numeric.T { return f.firstSlope }

// LastSlope returns the slope applied right of the last point.
func (f *PiecewiseLinear) LastSlope() numeric.T { return f.lastSlope }

// Eval returns f(x): linear interpolation between neighboring points;
// below the first point it extrapolates with firstSlope, above the last
// with lastSlope.
func (f *PiecewiseLinear) Eval(x numeric.T) numeric.T {
	// Infinite x is only reachable through firstSlope/lastSlope extrapolation;
	// guard it explicitly so 0 * Inf never produces NaN.
	if numeric.IsInfinite(x) {
		if x > 0 {
			return extrapolateAtInfinity(f.points[len(f.points)-1].Y, f.lastSlope, +1)
		}
		return extrapolateAtInfinity(f.points[0].Y, f.firstSlope, -1)
	}

	rank, exact := getRank(f.points, x)
	if exact {
		return f.points[rank].Y
	}
	if rank == 0 {
		first := f.points[0]
		return first.Y + (x-first.X)*f.firstSlope
	}
	if rank == len(f.points) {
		last := f.points[len(f.points)-1]
		return last.Y + (x-last.X)*f.lastSlope
	}
	left, right := f.points[rank-1], f.points[rank]
	return left.Y + (x-left.X)*(right.Y-left.Y)/(right.X-left.X)
}

// extrapolateAtInfinity returns the limit of anchor + (x-anchorX)*slope as
// x walks off to +/- infinity in the given direction (+1 or -1), without
// the 0 * Inf = NaN trap.
func extrapolateAtInfinity(anchorY, slope numeric.T, direction int) numeric.T {
	if numeric.IsZero(slope) {
		return anchorY
	}
	if (slope > 0) == (direction > 0) {
		return numeric.INFINITY
	}
	return -numeric.INFINITY
}

// Gradient returns the slope of the i-th interval: i=0 is firstSlope,
// i=len(points) is lastSlope, otherwise the slope between points[i-1] and
// points[i].
func (f *PiecewiseLinear) Gradient(i int) numeric.T {
	if i == 0 {
		return f.firstSlope
	}
	if i == len(f.points) {
		return f.lastSlope
	}
	left, right := f.points[i-1], f.points[i]
	return (right.Y - left.Y) / (right.X - left.X)
}

// gradientAt returns the slope of f at the interval containing value v,
// used by Compose to apply the chain rule at the composed function's
// domain edges.
func (f *PiecewiseLinear) gradientAt(v numeric.T) numeric.T {
	rank, exact := getRank(f.points, v)
	if exact {
		// On an exact breakpoint, Gradient(rank) is the slope of the
		// interval ending at that breakpoint (firstSlope when rank is 0).
		return f.Gradient(rank)
	}
	return f.Gradient(rank)
}

// Extend appends a new segment of slope newSlope starting at t. It
// appends a point (t, Eval(t)) if necessary (tolerance-merged with the
// existing last point), then sets lastSlope = newSlope, so Eval past the
// new last point yields last.Y + (x-last.X)*newSlope.
func (f *PiecewiseLinear) Extend(t, newSlope numeric.T) error {
	last := f.points[len(f.points)-1]
	if t < last.X-numeric.TOL {
		return ErrBackwardExtend
	}
	value := f.Eval(t)
	if numeric.Equal(last.X, t) {
		f.points[len(f.points)-1].Y = value
	} else {
		f.points = append(f.points, Point{X: t, Y: value})
	}
	f.lastSlope = newSlope
	return nil
}

// SetLastY forcibly overwrites the Y of the function's last point. Used
// only by dynflow to snap residual queue-length drift to zero at a
// depletion event (spec.md §4.5 step 6); with dynflow's DebugChecks on,
// it first verifies the drift is within numeric.ResidualTol.
func (f *PiecewiseLinear) SetLastY(y numeric.T) {
	f.points[len(f.points)-1].Y = y
}

// combine implements the shared machinery behind Add and Sub: merge the
// breakpoints of lhs and rhs over their intersected domain, applying op
// pointwise, per spec.md §4.2's binary-operation algorithm.
func combine(lhs, rhs *PiecewiseLinear, op func(a, b numeric.T) numeric.T) *PiecewiseLinear {
	newA := numeric.Max(lhs.a, rhs.a)
	newB := numeric.Min(lhs.b, rhs.b)

	candidates := make([]numeric.T, 0, len(lhs.points)+len(rhs.points)+2)
	candidates = append(candidates, newA, newB)
	for _, p := range lhs.points {
		if p.X >= newA-numeric.TOL && p.X <= newB+numeric.TOL {
			candidates = append(candidates, p.X)
		}
	}
	for _, p := range rhs.points {
		if p.X >= newA-numeric.TOL && p.X <= newB+numeric.TOL {
			candidates = append(candidates, p.X)
		}
	}

	xs := dedupSortedWithinTol(candidates)

	points := make([]Point, 0, len(xs))
	for _, x := range xs {
		points = append(points, Point{X: x, Y: op(lhs.Eval(x), rhs.Eval(x))})
	}

	return &PiecewiseLinear{
		a:          newA,
		b:          newB,
		firstSlope: op(lhs.firstSlope, rhs.firstSlope),
		lastSlope:  op(lhs.lastSlope, rhs.lastSlope),
		points:     points,
	}
}

// dedupSortedWithinTol sorts xs ascending and collapses consecutive
// values within numeric.TOL of each other, keeping the earlier one —
// the tie-break spec.md §4.2 mandates under inexact arithmetic.
func dedupSortedWithinTol(xs []numeric.T) []numeric.T {
	sorted := append([]numeric.T(nil), xs...)
	sort.Float64s(sorted)

	out := sorted[:0:0]
	for _, x := range sorted {
		if len(out) > 0 && numeric.Equal(out[len(out)-1], x) {
			continue
		}
		out = append(out, x)
	}
	return out
}

// Add returns lhs + rhs over their intersected domain.
func Add(lhs, rhs *PiecewiseLinear) *PiecewiseLinear {
	return combine(lhs, rhs, func(a, b numeric.T) numeric.T { return a + b })
}

// Sub returns lhs - rhs over their intersected domain.
func Sub(lhs, rhs *PiecewiseLinear) *PiecewiseLinear {
	return combine(lhs, rhs, func(a, b numeric.T) numeric.T { return a - b })
}

// Neg returns -f: both slopes and every Y negated, domain unchanged.
func Neg(f *PiecewiseLinear) *PiecewiseLinear {
	points := make([]Point, len(f.points))
	for i, p := range f.points {
		points[i] = Point{X: p.X, Y: -p.Y}
	}
	return &PiecewiseLinear{
		a: f.a, b: f.b,
		firstSlope: -f.firstSlope,
		lastSlope:  -f.lastSlope,
		points:     points,
	}
}

// isNondecreasing reports whether f is monotone nondecreasing: both
// slopes >= 0 (within tolerance) and every point's Y nondecreasing.
func (f *PiecewiseLinear) isNondecreasing() bool {
	if f.firstSlope < -numeric.TOL || f.lastSlope < -numeric.TOL {
		return false
	}
	for i := 1; i < len(f.points); i++ {
		if f.points[i].Y < f.points[i-1].Y-numeric.TOL {
			return false
		}
	}
	return true
}

// isNonincreasing reports whether f is monotone nonincreasing.
func (f *PiecewiseLinear) isNonincreasing() bool {
	if f.firstSlope > numeric.TOL || f.lastSlope > numeric.TOL {
		return false
	}
	for i := 1; i < len(f.points); i++ {
		if f.points[i].Y > f.points[i-1].Y+numeric.TOL {
			return false
		}
	}
	return true
}

// Image returns (Eval(a), Eval(b)) when f is monotone nondecreasing,
// as spec.md §4.2 defines it. ErrNotMonotone otherwise.
func (f *PiecewiseLinear) Image() (numeric.T, numeric.T, error) {
	if !f.isNondecreasing() {
		return 0, 0, ErrNotMonotone
	}
	return f.Eval(f.a), f.Eval(f.b), nil
}

// Compose returns self ∘ inner: inner must be monotone (nondecreasing or
// nonincreasing), and its image must lie within self's domain (tolerance
// ErrImageOutOfDomain otherwise). Breakpoints of the result are emitted
// at every x in inner.points, plus every preimage under inner of an x in
// self.points that falls inside inner's image, using a per-interval
// linear inversion (skipped where inner.Gradient(i) == 0, per spec.md §9).
func (self *PiecewiseLinear) Compose(inner *PiecewiseLinear) (*PiecewiseLinear, error) {
	if !inner.isNondecreasing() && !inner.isNonincreasing() {
		return nil, ErrNonMonotoneInner
	}

	innerLeftVal := inner.Eval(inner.a)
	innerRightVal := inner.Eval(inner.b)
	loVal, hiVal := innerLeftVal, innerRightVal
	if loVal > hiVal {
		loVal, hiVal = hiVal, loVal
	}
	if loVal < self.a-numeric.TOL || hiVal > self.b+numeric.TOL {
		return nil, ErrImageOutOfDomain
	}

	candidates := make([]numeric.T, 0, len(inner.points)+len(self.points)+2)
	candidates = append(candidates, inner.a, inner.b)
	for _, p := range inner.points {
		candidates = append(candidates, p.X)
	}

	// Per-interval inversion: for every self breakpoint whose value falls
	// within an inner interval's value range, solve for the preimage x.
	type interval struct {
		leftX, rightX, leftVal, rightVal, slope numeric.T
	}
	intervals := make([]interval, 0, len(inner.points)+1)
	intervals = append(intervals, interval{
		leftX: inner.a, rightX: firstX(inner), leftVal: innerLeftVal, rightVal: firstY(inner), slope: inner.firstSlope,
	})
	for i := 1; i < len(inner.points); i++ {
		intervals = append(intervals, interval{
			leftX: inner.points[i-1].X, rightX: inner.points[i].X,
			leftVal: inner.points[i-1].Y, rightVal: inner.points[i].Y,
			slope: inner.Gradient(i),
		})
	}
	intervals = append(intervals, interval{
		leftX: lastX(inner), rightX: inner.b, leftVal: lastY(inner), rightVal: innerRightVal, slope: inner.lastSlope,
	})

	for _, iv := range intervals {
		if numeric.IsZero(iv.slope) {
			continue // flat interval: no well-defined preimage, skip per spec.md §9
		}
		lo, hi := iv.leftVal, iv.rightVal
		if lo > hi {
			lo, hi = hi, lo
		}
		for _, sp := range self.points {
			v := sp.X
			if v < lo-numeric.TOL || v > hi+numeric.TOL {
				continue
			}
			x := iv.leftX + (v-iv.leftVal)/iv.slope
			if numeric.IsInfinite(x) {
				continue
			}
			if x < iv.leftX-numeric.TOL || x > iv.rightX+numeric.TOL {
				continue
			}
			candidates = append(candidates, x)
		}
	}

	xs := dedupSortedWithinTol(candidates)
	points := make([]Point, 0, len(xs))
	for _, x := range xs {
		points = append(points, Point{X: x, Y: self.Eval(inner.Eval(x))})
	}

	composedFirstSlope := self.gradientAt(innerLeftVal) * inner.firstSlope
	composedLastSlope := self.gradientAt(innerRightVal) * inner.lastSlope

	return &PiecewiseLinear{
		a: inner.a, b: inner.b,
		firstSlope: composedFirstSlope,
		lastSlope:  composedLastSlope,
		points:     points,
	}, nil
}

func firstX(f *PiecewiseLinear) numeric.T { return f.points[0].X }
func firstY(f *PiecewiseLinear) numeric.T { return f.points[0].Y }
func lastX(f *PiecewiseLinear) numeric.T  { return f.points[len(f.points)-1].X }
func lastY(f *PiecewiseLinear) numeric.T  { return f.points[len(f.points)-1].Y }
