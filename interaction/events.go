package interaction

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/peek-ui/bridge"
)

// ChangeEvent records one committed edit on its way from a widget to the
// bridge. Events are drained in emission order once per tick; Frame is the
// tick that drained the event, stamped by the channel, and IDs are
// monotonic within the process so interleaved logs sort correctly.
type ChangeEvent struct {
	ID    ulid.ULID
	Path  bridge.Path
	Old   bridge.Value
	New   bridge.Value
	Frame uint64
}

// NewChangeEvent builds an event for one edit of the field at path.
func NewChangeEvent(path bridge.Path, old, next bridge.Value) ChangeEvent {
	return ChangeEvent{
		ID:   ulid.Make(),
		Path: path,
		Old:  old,
		New:  next,
	}
}

func (e ChangeEvent) String() string {
	return fmt.Sprintf("%s: %s -> %s (frame %d)", e.Path, e.Old.Display(), e.New.Display(), e.Frame)
}
