// Package piecewise_test provides runnable examples demonstrating how to
// build and extend piecewise functions, mirroring the example_test.go
// convention used throughout the teacher packages (e.g. dijkstra).
package piecewise_test

import (
	"fmt"

	"github.com/katalvlaran/dynaflow/numeric"
	"github.com/katalvlaran/dynaflow/piecewise"
)

// ExamplePiecewiseConstant_Extend shows a step function growing from a
// (0, 0) seed: a single Extend call adds a breakpoint at x=1, and the
// new value holds from there on.
func ExamplePiecewiseConstant_Extend() {
	f := piecewise.NewSeededConstant(numeric.ZERO, numeric.INFINITY, numeric.ZERO, numeric.ZERO)
	_ = f.Extend(1.0, 2.0)

	fmt.Printf("f(0.5)=%.0f f(1)=%.0f f(5)=%.0f\n", f.Eval(0.5), f.Eval(1), f.Eval(5))
	// Output: f(0.5)=0 f(1)=2 f(5)=2
}

// ExamplePiecewiseLinear_Extend shows a queue-length-shaped function: it
// grows at slope 1 until t=3, then drains at slope -1.
func ExamplePiecewiseLinear_Extend() {
	f := piecewise.NewSeededLinear(numeric.ZERO, numeric.INFINITY, numeric.ZERO, numeric.ZERO, 1)
	_ = f.Extend(3, -1)

	fmt.Printf("f(0)=%.0f f(3)=%.0f f(6)=%.0f\n", f.Eval(0), f.Eval(3), f.Eval(6))
	// Output: f(0)=0 f(3)=3 f(6)=0
}
