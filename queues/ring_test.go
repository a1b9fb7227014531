package queues_test

import (
	"brook/queues"
	"testing"
)

func TestNewRing(t *testing.T) {
	tests := []struct {
		name            string
		initialCapacity int
	}{
		{"Negative capacity", -1},
		{"Zero capacity", 0},
		{"Capacity 1", 1},
		{"Capacity 3 (round up)", 3},
		{"Capacity 8", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := queues.NewRing[int](tt.initialCapacity)
			if r.Size() != 0 {
				t.Errorf("expected size 0, got %d", r.Size())
			}
			if !r.IsEmpty() {
				t.Error("expected ring to be empty")
			}
		})
	}
}

func TestRing_Enqueue_Dequeue(t *testing.T) {
	r := queues.NewRing[int](4)

	// Fill: [1, 2, 3, 4]
	for i := 1; i <= 4; i++ {
		r.Enqueue(i)
	}
	if r.Size() != 4 {
		t.Errorf("expected size 4, got %d", r.Size())
	}

	// Dequeue 2, then enqueue past the wrap point: [5, 6, 3, 4]
	if v, ok := r.Dequeue(); !ok || v != 1 {
		t.Errorf("expected 1, got %v", v)
	}
	if v, ok := r.Dequeue(); !ok || v != 2 {
		t.Errorf("expected 2, got %v", v)
	}
	r.Enqueue(5)
	r.Enqueue(6)

	if v, ok := r.Peek(); !ok || v != 3 {
		t.Errorf("Peek expected 3, got %v", v)
	}

	// Trigger a resize from the wrapped state.
	r.Enqueue(7)
	if r.Size() != 5 {
		t.Errorf("expected size 5, got %d", r.Size())
	}

	expected := []int{3, 4, 5, 6, 7}
	for _, want := range expected {
		v, ok := r.Dequeue()
		if !ok || v != want {
			t.Errorf("expected %d, got %v (ok=%v)", want, v, ok)
		}
	}
	if _, ok := r.Dequeue(); ok {
		t.Error("expected empty ring after draining")
	}
}

func TestRing_At(t *testing.T) {
	r := queues.NewRing[string](2)
	r.Enqueue("a")
	r.Enqueue("b")

	// Force the buffered region to wrap.
	r.Dequeue()
	r.Enqueue("c")

	if got := r.At(0); got != "b" {
		t.Errorf("At(0) expected b, got %s", got)
	}
	if got := r.At(1); got != "c" {
		t.Errorf("At(1) expected c, got %s", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("At out of range should panic")
		}
	}()
	r.At(2)
}

func TestRing_Discard(t *testing.T) {
	r := queues.NewRing[int](4)
	for i := 1; i <= 6; i++ {
		r.Enqueue(i)
	}

	if n := r.Discard(2); n != 2 {
		t.Errorf("Discard(2) expected 2, got %d", n)
	}
	if v, ok := r.Peek(); !ok || v != 3 {
		t.Errorf("Peek expected 3 after discard, got %v", v)
	}

	// Discarding more than buffered drops only what is there.
	if n := r.Discard(10); n != 4 {
		t.Errorf("Discard(10) expected 4, got %d", n)
	}
	if !r.IsEmpty() {
		t.Error("expected empty ring after full discard")
	}
	if n := r.Discard(1); n != 0 {
		t.Errorf("Discard on empty ring expected 0, got %d", n)
	}
}

func TestRing_Clear(t *testing.T) {
	r := queues.NewRing[int](4)
	r.Enqueue(1)
	r.Enqueue(2)
	r.Clear()

	if !r.IsEmpty() {
		t.Error("expected empty ring after Clear")
	}
	r.Enqueue(9)
	if v, ok := r.Dequeue(); !ok || v != 9 {
		t.Errorf("expected 9 after Clear+Enqueue, got %v", v)
	}
}
