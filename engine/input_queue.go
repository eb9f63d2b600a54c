package engine

import (
	"sync"

	"github.com/lixenwraith/vi-snake/core"
)

// InputQueue is an unbounded MPSC FIFO of player directions
// Thread-Safety:
//   - Push: any number of producers, never waits on the consumer
//   - Pop: single consumer (tick loop), never waits for input
//
// Overflow: none, the backing slice grows
type InputQueue struct {
	mu    sync.Mutex
	items []core.Direction
	head  int
}

// NewInputQueue creates an empty queue
func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push appends d at the tail
func (q *InputQueue) Push(d core.Direction) {
	q.mu.Lock()
	q.items = append(q.items, d)
	q.mu.Unlock()
}

// Pop removes and returns the oldest direction, ok is false when empty
func (q *InputQueue) Pop() (d core.Direction, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head == len(q.items) {
		return core.Direction{}, false
	}

	d = q.items[q.head]
	q.head++

	// Reclaim the consumed prefix once the queue drains
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return d, true
}

// Len returns the number of queued directions
func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
