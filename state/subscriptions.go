package state

// Subscriptions tracks unsubscribe callbacks so a widget can drop all of
// its listeners in one call when it is destroyed by a tree rebuild.
type Subscriptions struct {
	unsubs []func()
	sched  Scheduler
}

// NewSubscriptions creates a Subscriptions with a default scheduler.
func NewSubscriptions(scheduler Scheduler) *Subscriptions {
	return &Subscriptions{sched: scheduler}
}

// SetScheduler updates the default scheduler.
func (s *Subscriptions) SetScheduler(scheduler Scheduler) {
	if s == nil {
		return
	}
	s.sched = scheduler
}

// Scheduler returns the default scheduler.
func (s *Subscriptions) Scheduler() Scheduler {
	if s == nil {
		return nil
	}
	return s.sched
}

// Add registers an unsubscribe callback.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.unsubs = append(s.unsubs, unsub)
}

// Subscribe registers a synchronous listener and tracks the unsubscribe.
func (s *Subscriptions) Subscribe(sub Subscribable, fn func()) {
	s.SubscribeWithScheduler(sub, nil, fn)
}

// Observe registers a listener using the default scheduler.
func (s *Subscriptions) Observe(sub Subscribable, fn func()) {
	if s == nil {
		return
	}
	s.SubscribeWithScheduler(sub, s.sched, fn)
}

// SubscribeWithScheduler registers a listener using a scheduler and
// tracks it.
func (s *Subscriptions) SubscribeWithScheduler(sub Subscribable, scheduler Scheduler, fn func()) {
	if s == nil || sub == nil || fn == nil {
		return
	}
	var unsub func()
	if scheduler == nil {
		unsub = sub.Subscribe(fn)
	} else if sched, ok := sub.(interface {
		SubscribeWithScheduler(Scheduler, func()) func()
	}); ok {
		unsub = sched.SubscribeWithScheduler(scheduler, fn)
	} else {
		unsub = sub.Subscribe(fn)
	}
	s.Add(unsub)
}

// Clear unsubscribes all tracked callbacks.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	unsubs := s.unsubs
	s.unsubs = nil
	for _, unsub := range unsubs {
		if unsub != nil {
			unsub()
		}
	}
}
