package runtime

// Command is an intent bubbling from the program back to the app after a
// tick: stop the loop, force a full redraw, move focus, or feed another
// message in.
type Command interface {
	Command()
}

// PostFunc sends a message into the app. It returns false when the
// message queue is full.
type PostFunc func(Message) bool

// Quit signals the application should exit.
type Quit struct{}

func (Quit) Command() {}

// Refresh requests a full redraw on the next render.
type Refresh struct{}

func (Refresh) Command() {}

// FocusNext asks the program to advance its focus ring on the next tick.
type FocusNext struct{}

func (FocusNext) Command() {}

// FocusPrev asks the program to step its focus ring backwards.
type FocusPrev struct{}

func (FocusPrev) Command() {}

// SendMsg posts a message into the app loop.
type SendMsg struct {
	Message Message
}

func (SendMsg) Command() {}

// Send wraps a message in a SendMsg command.
func Send(msg Message) Command {
	return SendMsg{Message: msg}
}
