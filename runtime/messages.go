// Package runtime drives the inspector: a single update goroutine that
// batches normalized input messages, hands them to the program once per
// tick, and flushes the composed frame to a backend. Input sources only
// ever post messages; nothing but the update goroutine touches program
// state.
package runtime

import (
	"time"

	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/terminal"
)

// Message is one normalized event flowing into the update loop. Messages
// come from terminal input, timers, or background goroutines; widget-
// targeted messages carry the field path they address.
type Message interface {
	isMessage()
}

// PointerEnterMsg reports the pointer moving onto the widget at Path.
type PointerEnterMsg struct {
	Path bridge.Path
}

func (PointerEnterMsg) isMessage() {}

// PointerLeaveMsg reports the pointer leaving the widget at Path.
type PointerLeaveMsg struct {
	Path bridge.Path
}

func (PointerLeaveMsg) isMessage() {}

// PressMsg reports a press (click) on the widget at Path.
type PressMsg struct {
	Path bridge.Path
}

func (PressMsg) isMessage() {}

// ReleaseMsg reports a release over the widget at Path.
type ReleaseMsg struct {
	Path bridge.Path
}

func (ReleaseMsg) isMessage() {}

// TextCommitMsg delivers committed text to the widget at Path.
type TextCommitMsg struct {
	Path bridge.Path
	Text string
}

func (TextCommitMsg) isMessage() {}

// FocusMsg moves keyboard focus to the widget at Path.
type FocusMsg struct {
	Path bridge.Path
}

func (FocusMsg) isMessage() {}

// BlurMsg removes keyboard focus from the widget at Path.
type BlurMsg struct {
	Path bridge.Path
}

func (BlurMsg) isMessage() {}

// FocusNextMsg advances the focus ring.
type FocusNextMsg struct{}

func (FocusNextMsg) isMessage() {}

// FocusPrevMsg steps the focus ring backwards.
type FocusPrevMsg struct{}

func (FocusPrevMsg) isMessage() {}

// KeyMsg is a keyboard input event, routed to the focused widget.
type KeyMsg struct {
	Key   terminal.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyMsg) isMessage() {}

// MouseMsg is a raw mouse event in cell coordinates. The view layer owns
// hit-testing; it translates these into path-targeted messages.
type MouseMsg struct {
	X, Y   int
	Button terminal.MouseButton
	Action terminal.MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseMsg) isMessage() {}

// PasteMsg carries text from bracketed paste mode.
type PasteMsg struct {
	Text string
}

func (PasteMsg) isMessage() {}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// TickMsg marks one frame tick.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// QueueFlushMsg triggers a state queue flush in the update loop.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// InvalidateMsg requests a render pass without new input.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}
