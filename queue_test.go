package huffzip

import (
	"errors"
	"testing"
)

func TestNodeQueue_Order(t *testing.T) {
	weights := []uint64{3, 1, 2, 1, 3, 0}
	tr := newTree(len(weights), true)
	q := newNodeQueue(tr, len(weights))
	for i, w := range weights {
		if err := q.push(tr.addLeaf(Symbol('a'+i), w)); err != nil {
			t.Fatalf("push failed: %v", err)
		}
	}

	// Equal weights come out in insertion order.
	expect := []nodeIndex{5, 1, 3, 2, 0, 4}
	for _, e := range expect {
		if actual := q.pop(); actual != e {
			t.Errorf("expected node %d, got %d", e, actual)
		}
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d", q.Len())
	}
}

func TestNodeQueue_CapacityExceeded(t *testing.T) {
	tr := newTree(3, true)
	q := newNodeQueue(tr, 2)
	for i := 0; i < 2; i++ {
		if err := q.push(tr.addLeaf(Symbol(i), 1)); err != nil {
			t.Fatalf("push %d failed: %v", i, err)
		}
	}
	err := q.push(tr.addLeaf(2, 1))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestNodeQueue_PopEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected pop on an empty queue to panic")
		}
	}()
	q := newNodeQueue(newTree(1, true), 1)
	q.pop()
}
