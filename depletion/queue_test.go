package depletion

import (
	"testing"

	"github.com/katalvlaran/dynaflow/numeric"
)

func TestSetAndPopByDepletionOrdersByTime(t *testing.T) {
	q := New()
	if err := q.Set(1, 5.0, nil); err != nil {
		t.Fatalf("Set(1): %v", err)
	}
	if err := q.Set(2, 1.0, nil); err != nil {
		t.Fatalf("Set(2): %v", err)
	}
	if err := q.Set(3, 3.0, nil); err != nil {
		t.Fatalf("Set(3): %v", err)
	}

	wantOrder := []int{2, 3, 1}
	wantTimes := []numeric.T{1.0, 3.0, 5.0}
	for i, wantEdge := range wantOrder {
		edge, time, change, ok := q.PopByDepletion()
		if !ok {
			t.Fatalf("pop %d: queue empty early", i)
		}
		if edge != wantEdge || !numeric.Equal(time, wantTimes[i]) {
			t.Fatalf("pop %d: got edge=%d time=%v, want edge=%d time=%v", i, edge, time, wantEdge, wantTimes[i])
		}
		if change != nil {
			t.Fatalf("pop %d: unexpected change event %+v", i, change)
		}
	}
	if _, _, _, ok := q.PopByDepletion(); ok {
		t.Fatal("expected empty queue after draining all entries")
	}
}

func TestSetCarriesChangeEvent(t *testing.T) {
	q := New()
	ce := &ChangeEvent{
		Time: 10.0,
		Value: ChangeEventValue{
			NewOutflowMap: map[int]numeric.T{0: 2.0},
			ValuesSum:     2.0,
		},
	}
	if err := q.Set(1, 4.0, ce); err != nil {
		t.Fatalf("Set: %v", err)
	}

	minChange, ok := q.MinChangeTime()
	if !ok || !numeric.Equal(minChange, 10.0) {
		t.Fatalf("MinChangeTime() = %v, %v; want 10.0, true", minChange, ok)
	}

	edge, depletionTime, gotChange, ok := q.PopByDepletion()
	if !ok {
		t.Fatal("PopByDepletion: queue unexpectedly empty")
	}
	if edge != 1 || !numeric.Equal(depletionTime, 4.0) {
		t.Fatalf("got edge=%d time=%v, want edge=1 time=4.0", edge, depletionTime)
	}
	if gotChange == nil {
		t.Fatal("expected a paired change event, got nil")
	}
	if !numeric.Equal(gotChange.Time, 10.0) || !numeric.Equal(gotChange.Value.ValuesSum, 2.0) {
		t.Fatalf("got change event %+v, want time=10.0 sum=2.0", gotChange)
	}

	if _, ok := q.MinChangeTime(); ok {
		t.Fatal("change heap should be drained after PopByDepletion consumed it")
	}
}

func TestSetReplacesExistingEntry(t *testing.T) {
	q := New()
	if err := q.Set(1, 5.0, nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := q.Set(1, 2.0, nil); err != nil {
		t.Fatalf("Set replace: %v", err)
	}

	minDepletion, ok := q.MinDepletionTime()
	if !ok || !numeric.Equal(minDepletion, 2.0) {
		t.Fatalf("MinDepletionTime() = %v, %v; want 2.0, true", minDepletion, ok)
	}

	edge, time, _, ok := q.PopByDepletion()
	if !ok || edge != 1 || !numeric.Equal(time, 2.0) {
		t.Fatalf("got edge=%d time=%v ok=%v, want edge=1 time=2.0 ok=true", edge, time, ok)
	}
	if _, _, _, ok := q.PopByDepletion(); ok {
		t.Fatal("expected only one entry to remain for edge 1 after replace")
	}
}

func TestSetNilChangeRemovesPriorChangeEntry(t *testing.T) {
	q := New()
	ce := &ChangeEvent{Time: 9.0, Value: ChangeEventValue{ValuesSum: 1.0}}
	if err := q.Set(1, 4.0, ce); err != nil {
		t.Fatalf("Set with change: %v", err)
	}
	if err := q.Set(1, 4.0, nil); err != nil {
		t.Fatalf("Set without change: %v", err)
	}

	if _, ok := q.MinChangeTime(); ok {
		t.Fatal("change entry should have been removed by the nil-changeEvent Set call")
	}

	_, _, gotChange, ok := q.PopByDepletion()
	if !ok {
		t.Fatal("PopByDepletion: queue unexpectedly empty")
	}
	if gotChange != nil {
		t.Fatalf("expected no paired change event, got %+v", gotChange)
	}
}

func TestRemoveErasesBothHeaps(t *testing.T) {
	q := New()
	ce := &ChangeEvent{Time: 9.0, Value: ChangeEventValue{ValuesSum: 1.0}}
	if err := q.Set(1, 4.0, ce); err != nil {
		t.Fatalf("Set: %v", err)
	}
	q.Remove(1)

	if _, ok := q.MinDepletionTime(); ok {
		t.Fatal("depletion entry should be gone after Remove")
	}
	if _, ok := q.MinChangeTime(); ok {
		t.Fatal("change entry should be gone after Remove")
	}
	if _, _, _, ok := q.PopByDepletion(); ok {
		t.Fatal("PopByDepletion should find nothing after Remove")
	}
}

func TestSetRejectsNegativeInfinity(t *testing.T) {
	q := New()
	err := q.Set(1, -numeric.INFINITY, nil)
	if err == nil {
		t.Fatal("expected an error for a depletion time of -INFINITY")
	}
}

func TestMinTimesOnEmptyQueue(t *testing.T) {
	q := New()
	if _, ok := q.MinDepletionTime(); ok {
		t.Fatal("MinDepletionTime on empty queue should report ok=false")
	}
	if _, ok := q.MinChangeTime(); ok {
		t.Fatal("MinChangeTime on empty queue should report ok=false")
	}
}
