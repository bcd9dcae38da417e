package runtime

import "sync/atomic"

// Invalidator lets background work request a repaint without flooding
// the update loop: however many times Invalidate runs between two
// frames, at most one InvalidateMsg is in flight. The loop re-arms the
// latch when it collects the message.
type Invalidator struct {
	post    func(Message) bool
	pending atomic.Bool
}

// NewInvalidator returns an invalidator that posts through the given
// function, usually App.TryPost.
func NewInvalidator(post func(Message) bool) *Invalidator {
	return &Invalidator{post: post}
}

// Invalidate marks the next frame dirty. Safe from any goroutine.
func (i *Invalidator) Invalidate() {
	if i == nil || i.post == nil {
		return
	}
	if !i.pending.CompareAndSwap(false, true) {
		return
	}
	if !i.post(InvalidateMsg{}) {
		// The loop refused the message (shutting down or queue full);
		// disarm so a later call can retry.
		i.pending.Store(false)
	}
}

// Schedule runs fn inline and marks the next frame dirty. It satisfies
// the state scheduler contract for callers already on the update
// goroutine, where deferring the callback would only add a frame of
// latency.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

// resetPending re-arms the coalescing latch. collect calls it when the
// posted message reaches the loop.
func (i *Invalidator) resetPending() {
	if i == nil {
		return
	}
	i.pending.Store(false)
}
