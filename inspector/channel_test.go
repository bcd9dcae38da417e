package inspector

import (
	"testing"

	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
)

func TestChannel_DrainKeepsEmissionOrder(t *testing.T) {
	c := NewChannel()
	c.Emit(interaction.NewChangeEvent(bridge.Path{"a"}, bridge.Number(0), bridge.Number(1)))
	c.Emit(interaction.NewChangeEvent(bridge.Path{"b"}, bridge.Bool(false), bridge.Bool(true)))
	c.Emit(interaction.NewChangeEvent(bridge.Path{"a"}, bridge.Number(1), bridge.Number(2)))
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	events := c.Drain(7)
	if len(events) != 3 {
		t.Fatalf("drained %d events, want 3", len(events))
	}
	wantPaths := []string{"a", "b", "a"}
	for i, ev := range events {
		if ev.Path.String() != wantPaths[i] {
			t.Errorf("event %d path = %q, want %q", i, ev.Path, wantPaths[i])
		}
		if ev.Frame != 7 {
			t.Errorf("event %d frame = %d, want 7", i, ev.Frame)
		}
	}

	if c.Len() != 0 {
		t.Fatalf("Len() after drain = %d, want 0", c.Len())
	}
	if got := c.Drain(8); got != nil {
		t.Fatalf("second drain = %v, want nil", got)
	}
}
