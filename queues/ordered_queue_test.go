package queues_test

import (
	"brook/queues"
	"testing"
)

type entry struct {
	Name string
	Rank int
}

func byRank(a, b entry) bool {
	return a.Rank < b.Rank
}

func TestNewOrderedQueue_Validation(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewOrderedQueue should panic with nil less function")
		}
	}()
	queues.NewOrderedQueue[int](10, nil)
}

func TestOrderedQueue_Ordering(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []entry
		expected []string // expected Names in dequeue order
	}{
		{
			name:     "Distinct ranks",
			inputs:   []entry{{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2}},
			expected: []string{"B", "D", "A", "C"},
		},
		{
			name:     "Already sorted",
			inputs:   []entry{{"A", 1}, {"B", 2}, {"C", 3}},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "Reverse sorted",
			inputs:   []entry{{"C", 3}, {"B", 2}, {"A", 1}},
			expected: []string{"A", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oq := queues.NewOrderedQueue(10, byRank)
			for _, e := range tt.inputs {
				oq.Enqueue(e)
			}

			if oq.Size() != len(tt.inputs) {
				t.Fatalf("expected size %d, got %d", len(tt.inputs), oq.Size())
			}

			for _, want := range tt.expected {
				got, ok := oq.Dequeue()
				if !ok || got.Name != want {
					t.Errorf("expected %s, got %v (ok=%v)", want, got.Name, ok)
				}
			}
			if !oq.IsEmpty() {
				t.Error("expected empty queue after draining")
			}
		})
	}
}

func TestOrderedQueue_Peek(t *testing.T) {
	oq := queues.NewOrderedQueue(0, byRank)

	if _, ok := oq.Peek(); ok {
		t.Error("Peek on empty queue should report not ok")
	}
	if _, ok := oq.Dequeue(); ok {
		t.Error("Dequeue on empty queue should report not ok")
	}

	oq.Enqueue(entry{"A", 2})
	oq.Enqueue(entry{"B", 1})

	v, ok := oq.Peek()
	if !ok || v.Name != "B" {
		t.Errorf("Peek expected B, got %v", v.Name)
	}
	if oq.Size() != 2 {
		t.Errorf("Peek must not consume; size = %d", oq.Size())
	}
}
