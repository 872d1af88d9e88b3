// Package queue implements the bounded FIFO between command ingestion and the
// dispatcher. Many producers, one consumer, no coalescing: every accepted
// command is eventually dispatched in arrival order.
package queue

import (
	"sync"

	"github.com/golocube/kioskd/internal/domain"
)

// DefaultCapacity bounds the queue when the configuration does not
const DefaultCapacity = 256

// CommandQueue is a mutex-protected FIFO of commands
type CommandQueue struct {
	mu       sync.Mutex
	items    []domain.Command
	capacity int
}

// New creates a queue bounded at capacity; non-positive values fall back to
// DefaultCapacity
func New(capacity int) *CommandQueue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &CommandQueue{capacity: capacity}
}

// Enqueue appends a command. It never blocks; a full queue returns
// ErrQueueFull so the caller can reject the request instead of losing the
// command silently.
func (q *CommandQueue) Enqueue(cmd domain.Command) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) >= q.capacity {
		return domain.ErrQueueFull
	}
	q.items = append(q.items, cmd)
	return nil
}

// Dequeue pops the oldest pending command; false when empty
func (q *CommandQueue) Dequeue() (domain.Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return domain.Command{}, false
	}
	cmd := q.items[0]
	q.items = q.items[1:]
	return cmd, true
}

// Len reports the number of pending commands
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
