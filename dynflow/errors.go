package dynflow

import "errors"

var (
	// ErrEdgeOutOfRange is returned when an edge id falls outside
	// [0, numEdges) supplied at construction.
	ErrEdgeOutOfRange = errors.New("dynflow: edge id out of range")

	// ErrToleranceBreach indicates a computed queue length at a depletion
	// differed from zero by more than 1000*TOL (in either direction),
	// reported only under DebugChecks.
	ErrToleranceBreach = errors.New("dynflow: queue length breached residual tolerance at depletion")

	// ErrMismatchedEdgeParams is returned when capacity, inv_capacity,
	// and travel_time slices passed to Extend disagree in length with
	// the flow's edge count.
	ErrMismatchedEdgeParams = errors.New("dynflow: per-edge parameter slice length mismatch")
)
