package network

import "errors"

var (
	// ErrTooFewNodes is returned by the topology builders when asked for
	// fewer than 2 nodes.
	ErrTooFewNodes = errors.New("network: at least 2 nodes are required")

	// ErrEmptyPath is returned when a PathInflow names an empty edge path.
	ErrEmptyPath = errors.New("network: path inflow has an empty edge path")

	// ErrNilInflow is returned when a PathInflow has a nil inflow function.
	ErrNilInflow = errors.New("network: path inflow has a nil inflow schedule")
)
