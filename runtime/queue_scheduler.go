package runtime

import (
	"sync/atomic"

	"github.com/odvcencio/peek-ui/state"
)

// QueueScheduler is the scheduler handed to signals whose listeners
// live on background goroutines. Callbacks land in a state.Queue and a
// coalesced QueueFlushMsg wakes the update loop, so listener code runs
// at the next frame boundary instead of on the emitting goroutine.
// Repeated Schedule calls between frames post at most one wake-up; the
// queue itself holds every callback.
type QueueScheduler struct {
	queue   *state.Queue
	post    func(Message) bool
	pending atomic.Bool
}

// NewQueueScheduler wires a queue to a post function, usually
// App.TryPost. A nil queue gets a fresh one.
func NewQueueScheduler(queue *state.Queue, post func(Message) bool) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{queue: queue, post: post}
}

// Schedule enqueues fn for the next frame and wakes the loop.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || s.queue == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	if s.post == nil {
		return
	}
	if !s.pending.CompareAndSwap(false, true) {
		return
	}
	if !s.post(QueueFlushMsg{}) {
		// The loop refused the wake-up; disarm so the next Schedule can
		// retry. The callback stays queued either way.
		s.pending.Store(false)
	}
}

// resetPending re-arms the coalescing latch. collect calls it when the
// flush message reaches the loop.
func (s *QueueScheduler) resetPending() {
	if s == nil {
		return
	}
	s.pending.Store(false)
}
