// Package tcell implements the terminal backend on top of
// github.com/gdamore/tcell.
package tcell

import (
	tc "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/peek-ui/backend"
	"github.com/odvcencio/peek-ui/terminal"
)

// Backend drives a real terminal through tcell.
type Backend struct {
	screen tc.Screen

	// Bracketed paste bursts arrive as rune events between the paste
	// start and end markers.
	pasting bool
	pasted  []rune

	lastButtons tc.ButtonMask
}

// New creates a tcell-backed terminal backend.
func New() (*Backend, error) {
	screen, err := tc.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen, which tests construct
// with tcell's simulation screen.
func NewWithScreen(screen tc.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the terminal and enables mouse and paste reporting.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.EnablePaste()
	return nil
}

// Fini restores the terminal. PollEvent returns nil afterwards.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// SetContent writes one cell.
func (b *Backend) SetContent(x, y int, r rune, combining []rune, style backend.Style) {
	b.screen.SetContent(x, y, r, combining, toTcellStyle(style))
}

// Show flushes pending writes to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// HideCursor hides the hardware cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// ShowCursor places the hardware cursor.
func (b *Backend) ShowCursor(x, y int) {
	b.screen.ShowCursor(x, y)
}

// PollEvent blocks for the next input event, translated to the terminal
// package's types. It returns nil when the screen is finalized.
func (b *Backend) PollEvent() any {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tc.EventKey:
			if out, ok := b.translateKey(e); ok {
				return out
			}
		case *tc.EventResize:
			w, h := e.Size()
			return terminal.ResizeEvent{Width: w, Height: h}
		case *tc.EventMouse:
			if out, ok := b.translateMouse(e); ok {
				return out
			}
		case *tc.EventPaste:
			if e.Start() {
				b.pasting = true
				b.pasted = b.pasted[:0]
				continue
			}
			b.pasting = false
			if len(b.pasted) == 0 {
				continue
			}
			return terminal.PasteEvent{Text: string(b.pasted)}
		}
	}
}

func (b *Backend) translateKey(e *tc.EventKey) (any, bool) {
	if b.pasting {
		if e.Key() == tc.KeyRune {
			b.pasted = append(b.pasted, e.Rune())
		} else if e.Key() == tc.KeyEnter {
			b.pasted = append(b.pasted, '\n')
		}
		return nil, false
	}

	mods := e.Modifiers()
	out := terminal.KeyEvent{
		Alt:   mods&tc.ModAlt != 0,
		Ctrl:  mods&tc.ModCtrl != 0,
		Shift: mods&tc.ModShift != 0,
	}

	switch e.Key() {
	case tc.KeyRune:
		out.Key = terminal.KeyRune
		out.Rune = e.Rune()
	case tc.KeyEnter:
		out.Key = terminal.KeyEnter
	case tc.KeyEsc:
		out.Key = terminal.KeyEscape
	case tc.KeyBackspace, tc.KeyBackspace2:
		out.Key = terminal.KeyBackspace
	case tc.KeyDelete:
		out.Key = terminal.KeyDelete
	case tc.KeyTab:
		out.Key = terminal.KeyTab
	case tc.KeyBacktab:
		out.Key = terminal.KeyTab
		out.Shift = true
	case tc.KeyLeft:
		out.Key = terminal.KeyLeft
	case tc.KeyRight:
		out.Key = terminal.KeyRight
	case tc.KeyUp:
		out.Key = terminal.KeyUp
	case tc.KeyDown:
		out.Key = terminal.KeyDown
	case tc.KeyHome:
		out.Key = terminal.KeyHome
	case tc.KeyEnd:
		out.Key = terminal.KeyEnd
	case tc.KeyPgUp:
		out.Key = terminal.KeyPageUp
	case tc.KeyPgDn:
		out.Key = terminal.KeyPageDown
	case tc.KeyCtrlC:
		out.Key = terminal.KeyCtrlC
		out.Ctrl = true
	case tc.KeyCtrlX:
		out.Key = terminal.KeyCtrlX
		out.Ctrl = true
	case tc.KeyCtrlV:
		out.Key = terminal.KeyCtrlV
		out.Ctrl = true
	default:
		return nil, false
	}
	return out, true
}

func (b *Backend) translateMouse(e *tc.EventMouse) (any, bool) {
	x, y := e.Position()
	mods := e.Modifiers()
	out := terminal.MouseEvent{
		X:     x,
		Y:     y,
		Alt:   mods&tc.ModAlt != 0,
		Ctrl:  mods&tc.ModCtrl != 0,
		Shift: mods&tc.ModShift != 0,
	}

	buttons := e.Buttons()
	if buttons&tc.WheelUp != 0 {
		out.Button = terminal.MouseWheelUp
		out.Action = terminal.MousePress
		return out, true
	}
	if buttons&tc.WheelDown != 0 {
		out.Button = terminal.MouseWheelDown
		out.Action = terminal.MousePress
		return out, true
	}

	held := buttons & (tc.Button1 | tc.Button2 | tc.Button3)
	was := b.lastButtons
	b.lastButtons = held

	switch {
	case held != 0 && was == 0:
		out.Button = buttonFor(held)
		out.Action = terminal.MousePress
	case held == 0 && was != 0:
		out.Button = buttonFor(was)
		out.Action = terminal.MouseRelease
	default:
		out.Button = buttonFor(held)
		out.Action = terminal.MouseMove
	}
	return out, true
}

func buttonFor(mask tc.ButtonMask) terminal.MouseButton {
	switch {
	case mask&tc.Button1 != 0:
		return terminal.MouseLeft
	case mask&tc.Button2 != 0:
		return terminal.MouseMiddle
	case mask&tc.Button3 != 0:
		return terminal.MouseRight
	default:
		return terminal.MouseNone
	}
}

func toTcellStyle(s backend.Style) tc.Style {
	style := tc.StyleDefault
	if fg := s.Fg(); fg.Valid() {
		style = style.Foreground(tc.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	}
	if bg := s.Bg(); bg.Valid() {
		style = style.Background(tc.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	}
	if s.IsBold() {
		style = style.Bold(true)
	}
	if s.IsDim() {
		style = style.Dim(true)
	}
	if s.IsItalic() {
		style = style.Italic(true)
	}
	if s.IsUnderline() {
		style = style.Underline(true)
	}
	if s.IsReverse() {
		style = style.Reverse(true)
	}
	return style
}

var _ backend.Backend = (*Backend)(nil)
