package channel

import (
	"iter"

	"github.com/ezrec/isolang/cell"
)

// Queue is a bounded in-memory FIFO of cells. Cells sent to a queue are
// received back in order, unconverted, so a queue can capture output values
// that have no byte form, or feed a world from memory.
type Queue[C cell.Cell[C]] struct {
	Capacity int // Capacity in cells. Changes take effect on Reset.

	readIndex  int
	writeIndex int
	size       int
	data       []C
}

var _ Channel[cell.Wide] = (*Queue[cell.Wide])(nil)

// Reset empties the queue.
func (queue *Queue[C]) Reset() {
	queue.readIndex = 0
	queue.writeIndex = 0
	queue.size = 0
	queue.data = make([]C, queue.Capacity)
}

// Len is the number of queued cells.
func (queue *Queue[C]) Len() int {
	return queue.size
}

// All iterates over the queued cells, oldest first, without dequeuing them.
func (queue *Queue[C]) All() iter.Seq[C] {
	return func(yield func(value C) bool) {
		index := queue.readIndex
		for range queue.size {
			if !yield(queue.data[index]) {
				return
			}
			index++
			if index == len(queue.data) {
				index = 0
			}
		}
	}
}

// Receive dequeues a cell. ok is false when the queue is empty.
func (queue *Queue[C]) Receive() (value C, ok bool, err error) {
	if queue.size == 0 {
		return
	}

	value = queue.data[queue.readIndex]
	queue.readIndex++
	if queue.readIndex == len(queue.data) {
		queue.readIndex = 0
	}
	queue.size--

	return value, true, nil
}

// Send enqueues a cell.
func (queue *Queue[C]) Send(value C) (err error) {
	if queue.data == nil {
		queue.Reset()
	}

	if queue.size >= len(queue.data) {
		err = ErrFull
		return
	}

	queue.data[queue.writeIndex] = value
	queue.writeIndex++
	if queue.writeIndex == len(queue.data) {
		queue.writeIndex = 0
	}
	queue.size++

	return
}
