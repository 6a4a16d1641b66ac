package listkit

import "sync"

// Scheduler queues work to run on the next idle slot of the UI loop.
// The callback is invoked once; returning true re-queues it for the
// following idle slot, returning false retires it. A callback is never
// re-entered while a prior invocation is still running.
type Scheduler interface {
	ScheduleIdle(fn func() bool)
}

// IdleQueue is the frame-loop Scheduler. Callbacks run in FIFO order
// when the app drains the queue between frames.
type IdleQueue struct {
	mu      sync.Mutex
	pending []func() bool
}

// NewIdleQueue creates an empty idle queue.
func NewIdleQueue() *IdleQueue {
	return &IdleQueue{}
}

// ScheduleIdle implements Scheduler. Safe to call from callbacks.
func (q *IdleQueue) ScheduleIdle(fn func() bool) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Len returns the number of queued callbacks.
func (q *IdleQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs each currently queued callback once. Callbacks that return
// true are re-queued after they return, so a self-rescheduling callback
// runs at most once per drain. Callbacks scheduled during the drain run
// on the next one. Returns the number of callbacks run.
func (q *IdleQueue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		if fn() {
			q.ScheduleIdle(fn)
		}
	}
	return len(batch)
}

// DrainAll keeps draining until the queue is empty, with a generous
// iteration cap against callbacks that never retire. Intended for tests
// and teardown, not the frame loop.
func (q *IdleQueue) DrainAll(maxIterations int) int {
	total := 0
	for i := 0; i < maxIterations; i++ {
		n := q.Drain()
		total += n
		if n == 0 {
			break
		}
	}
	return total
}
