// Package terminal defines the normalized input events backends deliver
// to the runtime loop.
package terminal

// Key identifies a special key in a KeyEvent. Printable input uses
// KeyRune with the rune set.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlC
	KeyCtrlX
	KeyCtrlV
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyTab:
		return "tab"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdn"
	case KeyCtrlC:
		return "ctrl-c"
	case KeyCtrlX:
		return "ctrl-x"
	case KeyCtrlV:
		return "ctrl-v"
	default:
		return "unknown"
	}
}

// KeyEvent is a keyboard input event.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

// MouseButton identifies which mouse button was involved.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction identifies what happened with the mouse.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
)

// MouseEvent is a mouse input event in cell coordinates.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

// PasteEvent carries text from bracketed paste mode.
type PasteEvent struct {
	Text string
}
