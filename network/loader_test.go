package network

import (
	"context"
	"testing"

	"github.com/katalvlaran/dynaflow/numeric"
	"github.com/katalvlaran/dynaflow/piecewise"
)

func constantInflow(t *testing.T, from, until, rate numeric.T) *piecewise.PiecewiseConstant {
	t.Helper()
	f := piecewise.NewSeededConstant(numeric.ZERO, numeric.INFINITY, numeric.ZERO, numeric.ZERO)
	if err := f.Extend(from, rate); err != nil {
		t.Fatalf("seeding inflow: %v", err)
	}
	if !numeric.IsInfinite(until) {
		if err := f.Extend(until, numeric.ZERO); err != nil {
			t.Fatalf("terminating inflow: %v", err)
		}
	}
	return f
}

func TestBuildFlowSingleEdgeUnitInflow(t *testing.T) {
	topo, path, err := PathTopology(2, 1, 1)
	if err != nil {
		t.Fatalf("PathTopology: %v", err)
	}

	nl, err := New([]PathInflow{{Path: path, Inflow: constantInflow(t, 0, numeric.INFINITY, 1)}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	flow, err := nl.BuildFlow(context.Background(), 1, topo.Capacity, topo.InvCapacity, topo.TravelTime)
	if err != nil {
		t.Fatalf("BuildFlow: %v", err)
	}
	if !numeric.IsInfinite(flow.BuiltUntil()) {
		t.Fatalf("BuiltUntil() = %v, want +INFINITY", flow.BuiltUntil())
	}

	outflowFn, ok := flow.Outflow()[0].FunctionFor(0)
	if !ok {
		t.Fatal("expected an outflow function for commodity 0")
	}
	if got := outflowFn.Eval(0.5); !numeric.IsZero(got) {
		t.Fatalf("outflow(0.5) = %v, want 0 (before travel time elapses)", got)
	}
	if got := outflowFn.Eval(10); !numeric.Equal(got, 1) {
		t.Fatalf("outflow(10) = %v, want 1", got)
	}
}

// TestBuildFlowTwoPathsShareEdge covers scenario S3 from spec.md §8: two
// paths sharing a saturated entry edge over a 3-edge cycle.
func TestBuildFlowTwoPathsShareEdge(t *testing.T) {
	topo, cycle, err := CycleTopology(3, 0, 0) // capacities overridden per edge below
	if err != nil {
		t.Fatalf("CycleTopology: %v", err)
	}
	topo.Capacity = []numeric.T{1, 2, 3}
	topo.InvCapacity = []numeric.T{1, 0.5, 1.0 / 3.0}
	topo.TravelTime = []numeric.T{1, 2, 3}

	pathA := []int{cycle[0], cycle[1], cycle[2]} // both paths enter through the same first edge
	pathB := []int{cycle[0], cycle[2], cycle[1]}

	nl, err := New([]PathInflow{
		{Path: pathA, Inflow: constantInflow(t, 0, 3, 1)},
		{Path: pathB, Inflow: constantInflow(t, 0, 3, 2)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	flow, err := nl.BuildFlow(context.Background(), 3, topo.Capacity, topo.InvCapacity, topo.TravelTime)
	if err != nil {
		t.Fatalf("BuildFlow: %v", err)
	}
	if !numeric.IsInfinite(flow.BuiltUntil()) {
		t.Fatalf("BuiltUntil() = %v, want +INFINITY", flow.BuiltUntil())
	}
}

func TestBuildFlowRespectsCancellation(t *testing.T) {
	topo, path, err := PathTopology(2, 1, 1)
	if err != nil {
		t.Fatalf("PathTopology: %v", err)
	}
	nl, err := New([]PathInflow{{Path: path, Inflow: constantInflow(t, 0, numeric.INFINITY, 1)}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := nl.BuildFlow(ctx, 1, topo.Capacity, topo.InvCapacity, topo.TravelTime); err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New([]PathInflow{{Path: nil, Inflow: constantInflow(t, 0, numeric.INFINITY, 1)}})
	if err != ErrEmptyPath {
		t.Fatalf("error = %v, want ErrEmptyPath", err)
	}
}

func TestNewRejectsNilInflow(t *testing.T) {
	_, err := New([]PathInflow{{Path: []int{0}, Inflow: nil}})
	if err != ErrNilInflow {
		t.Fatalf("error = %v, want ErrNilInflow", err)
	}
}
