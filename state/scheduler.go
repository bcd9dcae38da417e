package state

import "sync"

// Scheduler dispatches subscription callbacks.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(func())

// Schedule dispatches fn using the wrapped function.
func (f SchedulerFunc) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

// DirectScheduler runs callbacks immediately in the caller goroutine.
var DirectScheduler Scheduler = SchedulerFunc(func(fn func()) {
	if fn != nil {
		fn()
	}
})

// Queue batches callbacks until an explicit flush, which the runtime
// performs once per tick. Schedule may be called from any goroutine;
// Flush runs on the update goroutine, so queued callbacks always execute
// at a frame boundary in the order they were scheduled.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues a callback for the next flush.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Len returns the number of callbacks waiting for a flush.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	n := len(q.pending)
	q.mu.Unlock()
	return n
}

// Flush executes queued callbacks in scheduling order and returns the
// count. Callbacks scheduled during a flush wait for the next one.
func (q *Queue) Flush() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
