package widgets

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/terminal"
)

// Slider edits a bounded numeric field through stepwise drags. Every
// adjustment clamps to the declared range before emitting; a slider
// never produces an out-of-range value.
type Slider struct {
	Base
	pageSteps int
}

// NewSlider creates a slider for the given field. The field should
// declare both bounds; without them the slider degrades to plain
// stepping.
func NewSlider(desc bridge.FieldDescriptor) *Slider {
	s := &Slider{pageSteps: 10}
	s.initBase(desc, ControlSlider)
	return s
}

// Number returns the displayed numeric value.
func (s *Slider) Number() float64 {
	return s.Value().Number()
}

// Ratio returns the value's position inside the declared range, in
// [0, 1], for gauge rendering. Unbounded sliders report 0.
func (s *Slider) Ratio() float64 {
	if s == nil || s.desc.Min == nil || s.desc.Max == nil {
		return 0
	}
	span := *s.desc.Max - *s.desc.Min
	if span <= 0 {
		return 0
	}
	r := (s.Value().Number() - *s.desc.Min) / span
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func (s *Slider) step() float64 {
	if s.desc.Step > 0 {
		return s.desc.Step
	}
	return 1
}

// Adjust moves the value by steps increments, clamped, and emits the
// change. It reports whether a change was emitted.
func (s *Slider) Adjust(steps int) bool {
	if s == nil || s.machine.IsDisabled() || steps == 0 {
		return false
	}
	old := s.Value()
	next := s.desc.Clamp(old.Number() + float64(steps)*s.step())
	if next == old.Number() {
		return false
	}
	s.emitChange(old, bridge.Number(next))
	return true
}

// HandleKey implements arrow and page stepping plus home/end jumps.
func (s *Slider) HandleKey(ev terminal.KeyEvent) bool {
	if s == nil || s.machine.IsDisabled() {
		return false
	}
	switch ev.Key {
	case terminal.KeyLeft, terminal.KeyDown:
		s.Adjust(-1)
		return true
	case terminal.KeyRight, terminal.KeyUp:
		s.Adjust(1)
		return true
	case terminal.KeyPageDown:
		s.Adjust(-s.pageSteps)
		return true
	case terminal.KeyPageUp:
		s.Adjust(s.pageSteps)
		return true
	case terminal.KeyHome:
		if s.desc.Min != nil {
			old := s.Value()
			if *s.desc.Min != old.Number() {
				s.emitChange(old, bridge.Number(*s.desc.Min))
			}
			return true
		}
	case terminal.KeyEnd:
		if s.desc.Max != nil {
			old := s.Value()
			if *s.desc.Max != old.Number() {
				s.emitChange(old, bridge.Number(*s.desc.Max))
			}
			return true
		}
	}
	return false
}

var (
	_ Widget   = (*Slider)(nil)
	_ Adjuster = (*Slider)(nil)
)
