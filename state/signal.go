// Package state provides the reactive primitives under the inspector
// runtime: signals for values whose changes drive re-rendering, and
// schedulers that defer listener dispatch to frame boundaries.
//
// Except for Queue, everything here belongs to the update goroutine:
// signals are read and written only between ticks of one runtime loop and
// carry no locks. Queue is the hand-off point for work scheduled from
// other goroutines and synchronizes internally.
package state

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Readable exposes read-only reactive state.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func()) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Writable exposes read/write reactive state.
type Writable[T any] interface {
	Readable[T]
	Set(value T) bool
	Update(fn func(T) T) bool
}

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

type subscriber struct {
	fn        func()
	scheduler Scheduler
}

// Signal holds a value and notifies subscribers on change.
type Signal[T any] struct {
	value T
	subs  map[int]subscriber
	next  int
	equal EqualFunc[T]
}

// NewSignal creates a new signal with an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// SetEqualFunc configures the equality check used to suppress redundant
// updates.
func (s *Signal[T]) SetEqualFunc(fn EqualFunc[T]) {
	if s == nil {
		return
	}
	s.equal = fn
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	if s == nil {
		var zero T
		return zero
	}
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) bool {
	if s == nil {
		return false
	}
	if s.equal != nil && s.equal(s.value, value) {
		return false
	}
	s.value = value
	s.notify()
	return true
}

// Update replaces the value using fn.
func (s *Signal[T]) Update(fn func(T) T) bool {
	if s == nil || fn == nil {
		return false
	}
	return s.Set(fn(s.value))
}

// Subscribe registers a listener for change notifications.
func (s *Signal[T]) Subscribe(fn func()) func() {
	return s.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
// If scheduler is nil, callbacks run synchronously.
func (s *Signal[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	if s.subs == nil {
		s.subs = make(map[int]subscriber)
	}
	id := s.next
	s.next++
	s.subs[id] = subscriber{fn: fn, scheduler: scheduler}

	done := false
	return func() {
		if done {
			return
		}
		done = true
		delete(s.subs, id)
	}
}

// notify copies the subscriber list first so listeners may unsubscribe
// mid-notification.
func (s *Signal[T]) notify() {
	if len(s.subs) == 0 {
		return
	}
	subs := make([]subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	for _, sub := range subs {
		if sub.fn == nil {
			continue
		}
		if sub.scheduler == nil {
			sub.fn()
			continue
		}
		sub.scheduler.Schedule(sub.fn)
	}
}
