package interaction

import (
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/peek-ui/bridge"
)

func TestComposite_ActivationToggles(t *testing.T) {
	c := NewComposite(NewMachine())

	if c.IsOpen() {
		t.Fatalf("expected a fresh composite to be closed")
	}
	if !c.Activate() {
		t.Fatalf("expected activation to open")
	}
	if !c.IsOpen() {
		t.Fatalf("expected open after activation")
	}
	if !c.Activate() {
		t.Fatalf("expected activation to close")
	}
	if c.IsOpen() {
		t.Fatalf("expected closed after second activation")
	}
}

func TestComposite_DisabledNeverOpens(t *testing.T) {
	m := NewMachine()
	m.Apply(Disable)
	c := NewComposite(m)

	if c.Activate() {
		t.Fatalf("expected disabled composite to ignore activation")
	}
	if c.Open() {
		t.Fatalf("expected disabled composite to refuse open")
	}
	if c.IsOpen() {
		t.Fatalf("expected closed, got open")
	}
}

func TestComposite_DisabledStillCloses(t *testing.T) {
	m := NewMachine()
	c := NewComposite(m)
	c.Open()

	m.Apply(Disable)
	if !c.Close() {
		t.Fatalf("expected close to work while disabled")
	}
	if c.IsOpen() {
		t.Fatalf("expected closed, got open")
	}
}

func TestComposite_SelectChildClosesBeforeCommit(t *testing.T) {
	c := NewComposite(NewMachine())
	c.Open()

	var openDuringCommit bool
	var committed bool
	c.SelectChild(func() {
		openDuringCommit = c.IsOpen()
		committed = true
	})

	if !committed {
		t.Fatalf("expected commit to run")
	}
	if openDuringCommit {
		t.Fatalf("commit must observe the composite already closed")
	}
	if c.IsOpen() {
		t.Fatalf("expected closed after selection")
	}
}

func TestComposite_SelectChildWhileClosedStillCommits(t *testing.T) {
	c := NewComposite(NewMachine())

	var committed bool
	c.SelectChild(func() { committed = true })
	if !committed {
		t.Fatalf("expected keyboard reselection to commit while closed")
	}
}

func TestComposite_ToggleListener(t *testing.T) {
	c := NewComposite(NewMachine())
	var states []CompositeState
	c.SetOnToggle(func(s CompositeState) { states = append(states, s) })

	c.Open()
	c.Close()
	c.Close()

	if len(states) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(states))
	}
	if states[0] != CompositeOpen || states[1] != CompositeClosed {
		t.Fatalf("expected open then closed, got %s then %s", states[0], states[1])
	}
}

func TestNewChangeEvent_FillsIdentity(t *testing.T) {
	path := bridge.ParsePath("settings.visible")
	ev := NewChangeEvent(path, bridge.Bool(false), bridge.Bool(true))

	if ev.ID.Compare(ulid.ULID{}) == 0 {
		t.Fatalf("expected a non-zero event id")
	}
	if !ev.Path.Equal(path) {
		t.Fatalf("expected path %q, got %q", path, ev.Path)
	}
	if !ev.Old.Equal(bridge.Bool(false)) || !ev.New.Equal(bridge.Bool(true)) {
		t.Fatalf("expected old/new to be kept")
	}

	second := NewChangeEvent(path, bridge.Bool(true), bridge.Bool(false))
	if ev.ID.Compare(second.ID) >= 0 {
		t.Fatalf("expected ids to be monotonic within the process")
	}
}
