package depletion

import (
	"container/heap"

	"github.com/katalvlaran/dynaflow/numeric"
)

// depletionHeap is a min-heap of depletionItem ordered by time, with an
// index map so a given edge's entry can be replaced or removed in
// O(log n) rather than linear scan — the capability the Rust
// priority_queue crate gives DepletionQueue for free and container/heap
// requires you to build yourself (the classic heap.Interface + index
// pattern documented by container/heap).
type depletionHeap struct {
	items   []*depletionItem
	byEdge  map[int]*depletionItem
}

func newDepletionHeap() *depletionHeap {
	return &depletionHeap{byEdge: make(map[int]*depletionItem)}
}

func (h *depletionHeap) Len() int { return len(h.items) }
func (h *depletionHeap) Less(i, j int) bool {
	return h.items[i].time < h.items[j].time
}
func (h *depletionHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}
func (h *depletionHeap) Push(x any) {
	it := x.(*depletionItem)
	it.index = len(h.items)
	h.items = append(h.items, it)
}
func (h *depletionHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return it
}

// set inserts or replaces edge's entry with the given time.
func (h *depletionHeap) set(edge int, time numeric.T) {
	if it, ok := h.byEdge[edge]; ok {
		it.time = time
		heap.Fix(h, it.index)
		return
	}
	it := &depletionItem{edge: edge, time: time}
	h.byEdge[edge] = it
	heap.Push(h, it)
}

// remove erases edge's entry, if any.
func (h *depletionHeap) remove(edge int) {
	it, ok := h.byEdge[edge]
	if !ok {
		return
	}
	heap.Remove(h, it.index)
	delete(h.byEdge, edge)
}

// popMin pops the earliest entry. Returns ok=false if empty.
func (h *depletionHeap) popMin() (edge int, time numeric.T, ok bool) {
	if h.Len() == 0 {
		return 0, 0, false
	}
	it := heap.Pop(h).(*depletionItem)
	delete(h.byEdge, it.edge)
	return it.edge, it.time, true
}

// peekMin returns the earliest time without popping. ok=false if empty.
func (h *depletionHeap) peekMin() (time numeric.T, ok bool) {
	if h.Len() == 0 {
		return 0, false
	}
	return h.items[0].time, true
}

// changeHeap mirrors depletionHeap for the post-depletion change-time queue.
type changeHeap struct {
	items  []*changeItem
	byEdge map[int]*changeItem
}

func newChangeHeap() *changeHeap {
	return &changeHeap{byEdge: make(map[int]*changeItem)}
}

func (h *changeHeap) Len() int { return len(h.items) }
func (h *changeHeap) Less(i, j int) bool {
	return h.items[i].time < h.items[j].time
}
func (h *changeHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}
func (h *changeHeap) Push(x any) {
	it := x.(*changeItem)
	it.index = len(h.items)
	h.items = append(h.items, it)
}
func (h *changeHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return it
}

func (h *changeHeap) set(edge int, time numeric.T) {
	if it, ok := h.byEdge[edge]; ok {
		it.time = time
		heap.Fix(h, it.index)
		return
	}
	it := &changeItem{edge: edge, time: time}
	h.byEdge[edge] = it
	heap.Push(h, it)
}

func (h *changeHeap) remove(edge int) bool {
	it, ok := h.byEdge[edge]
	if !ok {
		return false
	}
	heap.Remove(h, it.index)
	delete(h.byEdge, edge)
	return true
}

func (h *changeHeap) peekMin() (time numeric.T, ok bool) {
	if h.Len() == 0 {
		return 0, false
	}
	return h.items[0].time, true
}

// DepletionQueue maintains, per edge id: an earliest-first queue of
// scheduled depletion times, an earliest-first queue of scheduled
// outflow-change times that follow a depletion, and the pending change
// values. Grounded on spec.md §4.4.
type DepletionQueue struct {
	depletions *depletionHeap
	changes    *changeHeap
	values     map[int]ChangeEventValue
}

// New returns an empty DepletionQueue.
func New() *DepletionQueue {
	return &DepletionQueue{
		depletions: newDepletionHeap(),
		changes:    newChangeHeap(),
		values:     make(map[int]ChangeEventValue),
	}
}

// Set inserts or replaces edge's depletion-time entry. If changeEvent is
// non-nil, edge's change-time entry and pending value are also set; if it
// is nil and edge previously had a change entry, that entry is removed —
// matching spec.md §4.4's Set contract.
func (q *DepletionQueue) Set(edge int, depletionTime numeric.T, changeEvent *ChangeEvent) error {
	if depletionTime <= -numeric.INFINITY {
		return ErrNegativeDepletionTime
	}
	q.depletions.set(edge, depletionTime)

	if changeEvent != nil {
		q.values[edge] = changeEvent.Value
		q.changes.set(edge, changeEvent.Time)
	} else if q.changes.remove(edge) {
		delete(q.values, edge)
	}
	return nil
}

// Remove erases edge's entries from both heaps and the value map.
func (q *DepletionQueue) Remove(edge int) {
	q.depletions.remove(edge)
	q.changes.remove(edge)
	delete(q.values, edge)
}

// PopByDepletion pops the earliest depletion entry. If the same edge has
// a change entry, it is removed and returned alongside. ok is false if
// the depletion queue is empty.
func (q *DepletionQueue) PopByDepletion() (edge int, depletionTime numeric.T, changeEvent *ChangeEvent, ok bool) {
	edge, depletionTime, ok = q.depletions.popMin()
	if !ok {
		return 0, 0, nil, false
	}

	if changeTime, has := q.changeTimeFor(edge); has {
		q.changes.remove(edge)
		value := q.values[edge]
		delete(q.values, edge)
		changeEvent = &ChangeEvent{Time: changeTime, Value: value}
	}
	return edge, depletionTime, changeEvent, true
}

// changeTimeFor returns edge's pending change time, if any.
func (q *DepletionQueue) changeTimeFor(edge int) (numeric.T, bool) {
	it, ok := q.changes.byEdge[edge]
	if !ok {
		return 0, false
	}
	return it.time, true
}

// MinDepletionTime peeks the earliest scheduled depletion time.
func (q *DepletionQueue) MinDepletionTime() (numeric.T, bool) {
	return q.depletions.peekMin()
}

// MinChangeTime peeks the earliest scheduled post-depletion change time.
func (q *DepletionQueue) MinChangeTime() (numeric.T, bool) {
	return q.changes.peekMin()
}
