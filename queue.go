package hufftree

import (
	"errors"

	"github.com/chronos-tachyon/assert"
)

// ErrUnderflow is returned when removing or peeking at the minimum of an
// empty queue.
var ErrUnderflow = errors.New("remove from empty priority queue")

// MinQueue is a priority queue backed by a binary heap held in a dynamic
// array.  The zero value is not usable; construct instances with
// NewMinQueue.
type MinQueue[T any] struct {
	list []T
	less func(a, b T) bool
}

// NewMinQueue constructs an empty MinQueue ordered by the given
// comparator.  The comparator must define a total order: ties in the
// primary sort key must be broken by a secondary key, or the removal
// order of equal items is not reproducible.
func NewMinQueue[T any](less func(a, b T) bool) *MinQueue[T] {
	assert.Assertf(less != nil, "nil comparator")
	return &MinQueue[T]{less: less}
}

// Len returns the number of items currently queued.
func (q *MinQueue[T]) Len() int {
	return len(q.list)
}

// Insert adds an item to the queue in O(log n).
func (q *MinQueue[T]) Insert(item T) {
	q.list = append(q.list, item)
	q.siftUp(len(q.list) - 1)
}

// PeekMin returns the minimum item without removing it.  It fails with
// ErrUnderflow if the queue is empty.
func (q *MinQueue[T]) PeekMin() (T, error) {
	var zero T
	if len(q.list) == 0 {
		return zero, ErrUnderflow
	}
	return q.list[0], nil
}

// RemoveMin removes and returns the minimum item in O(log n).  It fails
// with ErrUnderflow if the queue is empty.
func (q *MinQueue[T]) RemoveMin() (T, error) {
	var zero T
	if len(q.list) == 0 {
		return zero, ErrUnderflow
	}
	min := q.list[0]
	last := len(q.list) - 1
	q.list[0] = q.list[last]
	q.list[last] = zero
	q.list = q.list[:last]
	if last != 0 {
		q.siftDown(0)
	}
	return min, nil
}

func (q *MinQueue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.list[i], q.list[parent]) {
			return
		}
		q.list[i], q.list[parent] = q.list[parent], q.list[i]
		i = parent
	}
}

func (q *MinQueue[T]) siftDown(i int) {
	n := len(q.list)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		child := left
		if right := left + 1; right < n && q.less(q.list[right], q.list[left]) {
			child = right
		}
		if !q.less(q.list[child], q.list[i]) {
			return
		}
		q.list[i], q.list[child] = q.list[child], q.list[i]
		i = child
	}
}
