// Package backend abstracts the terminal surface the inspector renders
// to: a cell grid with styles, plus the event source feeding the runtime
// loop. The tcell subpackage talks to a real terminal; the sim subpackage
// is an in-memory grid for tests and scripted drivers.
package backend

// Backend is a terminal surface. PollEvent blocks until an event from the
// terminal package is available and returns nil once the backend is
// finalized, which ends the runtime's poll loop.
type Backend interface {
	Init() error
	Fini()
	Size() (int, int)
	SetContent(x, y int, r rune, combining []rune, style Style)
	Show()
	HideCursor()
	ShowCursor(x, y int)
	PollEvent() any
}
