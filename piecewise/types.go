package piecewise

import "github.com/katalvlaran/dynaflow/numeric"

// Point is a single (x, y) coordinate pair. Points within a function's
// point list are compared and ordered by X.
type Point struct {
	X numeric.T
	Y numeric.T
}

// sortedAscending reports whether pts is strictly ascending in X, with no
// two consecutive points colliding within numeric.TOL.
func sortedAscending(pts []Point) bool {
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X || numeric.Equal(pts[i].X, pts[i-1].X) {
			return false
		}
	}
	return true
}

// getRank performs a binary search for at among pts' X-coordinates.
// It returns (index, true) on an exact (within-tolerance) match, and
// (insertion index, false) otherwise — the insertion index being the
// index of the first point whose X is > at.
func getRank(pts []Point, at numeric.T) (int, bool) {
	lo, hi := 0, len(pts)
	for lo < hi {
		mid := (lo + hi) / 2
		if pts[mid].X < at {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(pts) && numeric.Equal(pts[lo].X, at) {
		return lo, true
	}
	if lo > 0 && numeric.Equal(pts[lo-1].X, at) {
		return lo - 1, true
	}
	return lo, false
}
