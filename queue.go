package huffzip

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// nodeQueue is a binary min-heap of tree nodes with a fixed capacity.
//
// Nodes are ordered by weight.  Equal weights are ordered by arena index,
// i.e. the node created earlier comes out first.
type nodeQueue struct {
	t        *tree
	list     []nodeIndex
	capacity int
}

func newNodeQueue(t *tree, capacity int) *nodeQueue {
	return &nodeQueue{
		t:        t,
		list:     make([]nodeIndex, 0, capacity),
		capacity: capacity,
	}
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	aw, bw := q.t.nodes[a].weight, q.t.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (q *nodeQueue) swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

// push inserts a node, restoring the heap property by sifting it up.
func (q *nodeQueue) push(i nodeIndex) error {
	if len(q.list) >= q.capacity {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, q.capacity)
	}
	q.list = append(q.list, i)

	hole := len(q.list) - 1
	for hole > 0 {
		parent := (hole - 1) / 2
		if !q.less(hole, parent) {
			break
		}
		q.swap(hole, parent)
		hole = parent
	}
	return nil
}

// pop removes and returns the minimum node.  The queue must not be empty.
func (q *nodeQueue) pop() nodeIndex {
	assert.Assertf(len(q.list) > 0, "pop called on an empty queue")

	last := len(q.list) - 1
	top := q.list[0]
	q.list[0] = q.list[last]
	q.list = q.list[:last]

	n := len(q.list)
	hole := 0
	for {
		child := 2*hole + 1
		if child >= n {
			break
		}
		if right := child + 1; right < n && q.less(right, child) {
			child = right
		}
		if !q.less(child, hole) {
			break
		}
		q.swap(hole, child)
		hole = child
	}
	return top
}
