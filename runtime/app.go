package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/odvcencio/peek-ui/backend"
	"github.com/odvcencio/peek-ui/state"
	"github.com/odvcencio/peek-ui/terminal"
)

// Program is the root the app drives. Tick receives the messages that
// arrived since the previous tick, in arrival order, and reports whether
// a render is needed plus any commands for the app. Render composes the
// frame into the buffer. Both run on the update goroutine only.
type Program interface {
	Tick(frame uint64, msgs []Message) TickResult
	Render(buf *backend.Buffer)
}

// TickResult is what a program hands back after one tick.
type TickResult struct {
	Commands []Command
	Dirty    bool
}

// Config configures an App.
type Config struct {
	Backend       backend.Backend
	Program       Program
	MessageBuffer int
	// TickRate fixes the frame cadence. Zero or negative runs a tick per
	// arriving message instead.
	TickRate    time.Duration
	StateQueue  *state.Queue
	FlushPolicy QueueFlushPolicy
}

// App runs a program against a terminal backend: one update goroutine,
// a buffered message channel fed by input sources, frame-ordered ticks.
type App struct {
	backend        backend.Backend
	program        Program
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	invalidator    *Invalidator
	flushPolicy    QueueFlushPolicy

	buffer  *backend.Buffer
	batch   []Message
	frame   uint64
	dirty   bool
	running atomic.Bool
}

// quitMsg stops the loop; posted by Quit.
type quitMsg struct{}

func (quitMsg) isMessage() {}

// NewApp creates an App from config.
func NewApp(cfg Config) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	a := &App{
		backend:     cfg.Backend,
		program:     cfg.Program,
		messages:    make(chan Message, bufferSize),
		tickRate:    cfg.TickRate,
		stateQueue:  queue,
		flushPolicy: cfg.FlushPolicy,
	}
	a.queueScheduler = NewQueueScheduler(queue, a.TryPost)
	a.invalidator = NewInvalidator(a.TryPost)
	return a
}

// StateQueue returns the app's state queue.
func (a *App) StateQueue() *state.Queue {
	if a == nil {
		return nil
	}
	return a.stateQueue
}

// StateScheduler returns a scheduler that wakes the app to flush.
func (a *App) StateScheduler() state.Scheduler {
	if a == nil {
		return nil
	}
	return a.queueScheduler
}

// Invalidate requests a render pass.
func (a *App) Invalidate() {
	if a == nil {
		return
	}
	a.invalidator.Invalidate()
}

// Post sends a message to the update loop, dropping it if the queue is
// full.
func (a *App) Post(msg Message) {
	_ = a.TryPost(msg)
}

// TryPost sends a message without blocking and reports whether it was
// accepted.
func (a *App) TryPost(msg Message) bool {
	if a == nil || a.messages == nil {
		return false
	}
	select {
	case a.messages <- msg:
		return true
	default:
		return false
	}
}

// Quit stops the update loop after the current tick.
func (a *App) Quit() {
	a.Post(quitMsg{})
}

// Run starts the loop until Quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if a.program == nil {
		return errors.New("program is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	a.buffer = backend.NewBuffer(w, h)
	a.running.Store(true)
	a.dirty = true

	go a.pollEvents()

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	// First frame before any input.
	a.step(nil)

	for a.running.Load() {
		select {
		case <-ctx.Done():
			a.running.Store(false)
		case msg := <-a.messages:
			if a.collect(msg) && ticks == nil {
				a.step(nil)
			}
		case now := <-ticks:
			a.step(&now)
		}
	}
	return ctx.Err()
}

// collect stages one message for the next tick and reports whether it
// should drive a tick in message-driven mode.
func (a *App) collect(msg Message) bool {
	switch m := msg.(type) {
	case quitMsg:
		a.running.Store(false)
		return false
	case ResizeMsg:
		a.buffer.Resize(m.Width, m.Height)
		a.dirty = true
	case InvalidateMsg:
		a.invalidator.resetPending()
		a.dirty = true
	case QueueFlushMsg:
		a.queueScheduler.resetPending()
	}
	a.batch = append(a.batch, msg)
	return true
}

// step runs one tick: flush scheduled state callbacks, hand the batch to
// the program, apply its commands, render if anything changed.
func (a *App) step(now *time.Time) {
	a.frame++
	batch := a.batch
	a.batch = nil
	if now != nil {
		batch = append(batch, TickMsg{Time: *now})
	}

	flush := false
	for _, msg := range batch {
		if shouldFlushQueue(a.flushPolicy, msg) {
			flush = true
			break
		}
	}
	if flush && a.stateQueue.Flush() > 0 {
		a.dirty = true
	}

	res := a.program.Tick(a.frame, batch)
	if res.Dirty {
		a.dirty = true
	}
	for _, cmd := range res.Commands {
		a.handleCommand(cmd)
	}

	if a.dirty && a.running.Load() {
		a.render()
		a.dirty = false
	}
}

func (a *App) handleCommand(cmd Command) {
	switch c := cmd.(type) {
	case Quit:
		a.running.Store(false)
	case Refresh:
		a.buffer.MarkAllDirty()
		a.dirty = true
	case FocusNext:
		a.Post(FocusNextMsg{})
	case FocusPrev:
		a.Post(FocusPrevMsg{})
	case SendMsg:
		if c.Message != nil {
			a.Post(c.Message)
		}
	}
}

// render composes the frame and flushes dirty rows to the backend.
// Backends implementing RectWriter take whole frames in one call;
// RowWriter backends take dirty rows; everything else gets cells.
func (a *App) render() {
	a.program.Render(a.buffer)

	if rect, ok := a.backend.(backend.RectWriter); ok && a.buffer.AllDirty() {
		w, h := a.buffer.Size()
		rect.SetRect(0, 0, w, h, a.buffer.Cells())
		a.buffer.ClearDirty()
		a.backend.Show()
		return
	}

	rw, bulk := a.backend.(backend.RowWriter)
	a.buffer.DirtyRows(func(y int, row []backend.Cell) {
		if bulk {
			rw.SetRow(y, 0, row)
			return
		}
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				// Continuation cell of a wide rune.
				continue
			}
			a.backend.SetContent(x, y, r, nil, c.Style)
		}
	})
	a.buffer.ClearDirty()
	a.backend.Show()
}

// pollEvents translates backend events into messages until the backend
// is finalized.
func (a *App) pollEvents() {
	for a.running.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case terminal.KeyEvent:
			a.Post(KeyMsg{Key: e.Key, Rune: e.Rune, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift})
		case terminal.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		case terminal.MouseEvent:
			a.Post(MouseMsg{
				X: e.X, Y: e.Y,
				Button: e.Button, Action: e.Action,
				Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift,
			})
		case terminal.PasteEvent:
			a.Post(PasteMsg{Text: e.Text})
		}
	}
}
