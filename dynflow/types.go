package dynflow

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dynaflow/depletion"
	"github.com/katalvlaran/dynaflow/numeric"
	"github.com/katalvlaran/dynaflow/piecewise"
	"github.com/katalvlaran/dynaflow/rates"
)

// Option configures a DynamicFlow via functional arguments, mirroring
// the bfs.Option idiom.
type Option func(*Options)

// Options holds tunables and hooks for DynamicFlow.Extend.
type Options struct {
	// Verbose, if true, installs a default OnEdgeProcessed that prints
	// each edge's dispatched case to stdout.
	Verbose bool

	// DebugChecks, if true, turns a residual-tolerance breach at a
	// depletion into ErrToleranceBreach instead of silently clamping.
	DebugChecks bool

	// OnEdgeProcessed is called once per edge dispatched by Extend,
	// after its case has been applied, with the case label ("I", "II",
	// or "III").
	OnEdgeProcessed func(edge int, caseKind string)
}

// DefaultOptions returns sane defaults: DebugChecks on, no verbosity,
// a no-op hook.
func DefaultOptions() Options {
	return Options{
		DebugChecks:     true,
		OnEdgeProcessed: func(int, string) {},
	}
}

// WithVerbose toggles a default stdout hook describing each edge's
// dispatched case.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
		if v {
			o.OnEdgeProcessed = func(edge int, caseKind string) {
				fmt.Printf("dynflow: edge %d dispatched case %s\n", edge, caseKind)
			}
		}
	}
}

// WithDebugChecks toggles residual-tolerance breach checking.
func WithDebugChecks(v bool) Option {
	return func(o *Options) {
		o.DebugChecks = v
	}
}

// WithOnEdgeProcessed installs a custom per-edge hook, overriding any
// hook installed by an earlier option (such as WithVerbose). Options
// apply in order, so a later WithVerbose(true) replaces it in turn.
func WithOnEdgeProcessed(fn func(edge int, caseKind string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEdgeProcessed = fn
		}
	}
}

// outflowChangeItem is one entry in the outflow-change heap: edges may
// have multiple coexisting entries at distinct times, per spec.md §9's
// dedup note ("a container that replaces by key is incorrect; key by
// (edge, change_time)").
type outflowChangeItem struct {
	edge int
	time numeric.T
}

// outflowChangeHeap is a plain min-heap over outflowChangeItem by time;
// unlike depletion's heaps it never dedups by edge.
type outflowChangeHeap []outflowChangeItem

func (h outflowChangeHeap) Len() int            { return len(h) }
func (h outflowChangeHeap) Less(i, j int) bool  { return h[i].time < h[j].time }
func (h outflowChangeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *outflowChangeHeap) Push(x any)         { *h = append(*h, x.(outflowChangeItem)) }
func (h *outflowChangeHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

func (h *outflowChangeHeap) push(edge int, time numeric.T) {
	heap.Push(h, outflowChangeItem{edge: edge, time: time})
}

func (h *outflowChangeHeap) peekMin() (numeric.T, bool) {
	if h.Len() == 0 {
		return 0, false
	}
	return (*h)[0].time, true
}

// popAllAtOrBefore pops every entry with time <= bound, returning the
// set of distinct edges touched.
func (h *outflowChangeHeap) popAllAtOrBefore(bound numeric.T) map[int]bool {
	edges := make(map[int]bool)
	for h.Len() > 0 && (*h)[0].time <= bound+numeric.TOL {
		it := heap.Pop(h).(outflowChangeItem)
		edges[it.edge] = true
	}
	return edges
}

// DynamicFlow is the event-driven network loading engine: per-edge
// inflow/outflow rate collections, queue-length functions, the
// outflow-change event queue, and the DepletionQueue, advanced by
// Extend. Grounded on spec.md §4.5.
type DynamicFlow struct {
	builtUntil numeric.T

	inflow  []*rates.FlowRatesCollection
	outflow []*rates.FlowRatesCollection
	queue   []*piecewise.PiecewiseLinear

	outflowChanges outflowChangeHeap
	depletions     *depletion.DepletionQueue

	opts Options
}

// New builds a DynamicFlow for numEdges edges, each seeded with an
// empty inflow/outflow collection and a queue-length function pinned
// at (0, 0), per spec.md §3 "Lifecycle".
func New(numEdges int, opts ...Option) *DynamicFlow {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &DynamicFlow{
		inflow:     make([]*rates.FlowRatesCollection, numEdges),
		outflow:    make([]*rates.FlowRatesCollection, numEdges),
		queue:      make([]*piecewise.PiecewiseLinear, numEdges),
		depletions: depletion.New(),
		opts:       o,
	}
	for e := 0; e < numEdges; e++ {
		f.inflow[e] = rates.New()
		f.outflow[e] = rates.New()
		f.queue[e] = piecewise.NewSeededLinear(numeric.ZERO, numeric.INFINITY, numeric.ZERO, numeric.ZERO, numeric.ZERO)
	}
	return f
}

// BuiltUntil returns the global watermark: everything strictly earlier
// is finalized.
func (f *DynamicFlow) BuiltUntil() numeric.T {
	return f.builtUntil
}

// Queues returns the per-edge queue-length functions. Callers must not
// mutate the returned slice or its elements.
func (f *DynamicFlow) Queues() []*piecewise.PiecewiseLinear {
	return f.queue
}

// Inflow returns the per-edge inflow rate collections.
func (f *DynamicFlow) Inflow() []*rates.FlowRatesCollection {
	return f.inflow
}

// Outflow returns the per-edge outflow rate collections.
func (f *DynamicFlow) Outflow() []*rates.FlowRatesCollection {
	return f.outflow
}

// OutflowAtBuiltUntil returns edge's per-commodity outflow rate map as
// of the current built_until watermark.
func (f *DynamicFlow) OutflowAtBuiltUntil(edge int) (map[int]numeric.T, bool, error) {
	if edge < 0 || edge >= len(f.outflow) {
		return nil, false, ErrEdgeOutOfRange
	}
	return f.outflow[edge].GetValuesAtTime(f.builtUntil)
}
