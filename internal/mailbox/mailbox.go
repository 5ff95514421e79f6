// Package mailbox bridges background workers and the UI loop. Workers
// post typed result messages from arbitrary goroutines; the UI loop
// drains them on its poll tick and stays the sole mutator of view state.
package mailbox

import (
	"fmt"
	"sync"
)

// Mailbox is a multi-producer/single-consumer FIFO. Post never blocks
// and DrainAll hands the consumer every message available at call time,
// preserving enqueue order. Ownership of a message transfers at Post:
// producers must not touch the payload afterwards.
type Mailbox[T any] struct {
	mu    sync.Mutex
	queue []T
}

// New returns an empty mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{}
}

// Post appends one message. Safe for concurrent use.
func (m *Mailbox[T]) Post(msg T) {
	m.mu.Lock()
	m.queue = append(m.queue, msg)
	m.mu.Unlock()
}

// DrainAll removes and returns every queued message in enqueue order.
// Returns nil when the mailbox is empty. Intended for a single consumer;
// processing the whole batch per poll tick keeps the backlog bounded
// even under a slow tick interval.
func (m *Mailbox[T]) DrainAll() []T {
	m.mu.Lock()
	batch := m.queue
	m.queue = nil
	m.mu.Unlock()
	return batch
}

// Len reports the number of queued messages.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Go runs op on its own goroutine and posts exactly one message: op's
// result on normal return, or failed(err) if op panics. Workers always
// run to completion and always report; the consumer never needs to
// account for a worker that silently disappeared.
func (m *Mailbox[T]) Go(op func() T, failed func(error) T) {
	go func() {
		var msg T
		func() {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("worker panic: %v", r)
					}
					msg = failed(err)
				}
			}()
			msg = op()
		}()
		m.Post(msg)
	}()
}
