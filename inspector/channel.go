package inspector

import "github.com/odvcencio/peek-ui/interaction"

// Channel is the edit propagation queue: widgets emit change events into
// it as they happen, and the tree drains it at one fixed point per tick,
// in emission order. A rapid double-edit on the same field stays two
// sequential events; nothing is merged or reordered.
type Channel struct {
	pending []interaction.ChangeEvent
}

// NewChannel returns an empty channel.
func NewChannel() *Channel {
	return &Channel{}
}

// Emit queues one event.
func (c *Channel) Emit(ev interaction.ChangeEvent) {
	if c == nil {
		return
	}
	c.pending = append(c.pending, ev)
}

// Len returns the number of queued events.
func (c *Channel) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pending)
}

// Drain removes and returns the queued events in emission order,
// stamping each with the draining tick's frame id. Events emitted while
// a drain's writes run (none do today) would wait for the next drain.
func (c *Channel) Drain(frame uint64) []interaction.ChangeEvent {
	if c == nil || len(c.pending) == 0 {
		return nil
	}
	events := c.pending
	c.pending = nil
	for i := range events {
		events[i].Frame = frame
	}
	return events
}
