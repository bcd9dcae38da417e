package widgets

import (
	"errors"
	"testing"

	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/terminal"
)

type emitted struct {
	old  bridge.Value
	next bridge.Value
}

func captureEmits(w Widget) *[]emitted {
	var events []emitted
	w.SetEmit(func(old, next bridge.Value) {
		events = append(events, emitted{old: old, next: next})
	})
	return &events
}

func boolField(name string) bridge.FieldDescriptor {
	return bridge.FieldDescriptor{
		Name:     name,
		Path:     bridge.Path{name},
		Kind:     bridge.KindBool,
		Writable: true,
	}
}

func numberField(name string, min, max float64) bridge.FieldDescriptor {
	return bridge.FieldDescriptor{
		Name:     name,
		Path:     bridge.Path{name},
		Kind:     bridge.KindNumber,
		Writable: true,
		Min:      &min,
		Max:      &max,
	}
}

func enumField(name string, variants ...string) bridge.FieldDescriptor {
	return bridge.FieldDescriptor{
		Name:     name,
		Path:     bridge.Path{name},
		Kind:     bridge.KindEnum,
		Writable: true,
		Variants: variants,
	}
}

func textField(name string) bridge.FieldDescriptor {
	return bridge.FieldDescriptor{
		Name:     name,
		Path:     bridge.Path{name},
		Kind:     bridge.KindText,
		Writable: true,
	}
}

func TestCheckbox_ToggleEmitsOnce(t *testing.T) {
	c := NewCheckbox(boolField("visible"))
	c.Refresh(bridge.Bool(false))
	events := captureEmits(c)

	if !c.Toggle() {
		t.Fatalf("expected toggle to succeed")
	}
	if len(*events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(*events))
	}
	ev := (*events)[0]
	if ev.old.Bool() != false || ev.next.Bool() != true {
		t.Fatalf("expected false->true, got %s->%s", ev.old.Display(), ev.next.Display())
	}
}

func TestCheckbox_DisabledIgnoresToggle(t *testing.T) {
	c := NewCheckbox(boolField("visible"))
	c.Refresh(bridge.Bool(false))
	events := captureEmits(c)
	c.Machine().Apply(interaction.Disable)

	if c.Toggle() {
		t.Fatalf("expected disabled toggle to fail")
	}
	if len(*events) != 0 {
		t.Fatalf("expected no events, got %d", len(*events))
	}
}

func TestNumberField_OutOfRangeCommitRejects(t *testing.T) {
	n := NewNumberField(numberField("speed", 0, 10))
	n.Refresh(bridge.Number(5))
	events := captureEmits(n)

	if n.CommitText("15") {
		t.Fatalf("expected out-of-range commit to fail")
	}
	if len(*events) != 0 {
		t.Fatalf("expected no events for rejected commit, got %d", len(*events))
	}
	if n.Validation().Severity != SeverityError {
		t.Fatalf("expected error validation, got %s", n.Validation().Severity)
	}
}

func TestNumberField_NonNumericCommitRejects(t *testing.T) {
	n := NewNumberField(numberField("speed", 0, 10))
	n.Refresh(bridge.Number(5))
	events := captureEmits(n)

	if n.CommitText("fast") {
		t.Fatalf("expected non-numeric commit to fail")
	}
	if len(*events) != 0 {
		t.Fatalf("expected no events, got %d", len(*events))
	}
	if n.Validation().Severity != SeverityError {
		t.Fatalf("expected error validation, got %s", n.Validation().Severity)
	}
}

func TestNumberField_ValidCommitEmitsAndClearsValidation(t *testing.T) {
	n := NewNumberField(numberField("speed", 0, 10))
	n.Refresh(bridge.Number(5))
	events := captureEmits(n)

	n.CommitText("15")
	if !n.CommitText("7.5") {
		t.Fatalf("expected valid commit to emit")
	}
	if len(*events) != 1 || (*events)[0].next.Number() != 7.5 {
		t.Fatalf("expected one event with 7.5, got %v", *events)
	}
	if n.Validation().Severity != SeverityNone {
		t.Fatalf("expected validation cleared, got %s", n.Validation().Severity)
	}
}

func TestNumberField_AdjustClamps(t *testing.T) {
	desc := numberField("speed", 0, 10)
	desc.Step = 4
	n := NewNumberField(desc)
	n.Refresh(bridge.Number(9))
	events := captureEmits(n)

	if !n.Adjust(1) {
		t.Fatalf("expected adjust to emit")
	}
	if got := (*events)[0].next.Number(); got != 10 {
		t.Fatalf("expected clamp to 10, got %v", got)
	}

	// Already at the max: a further step changes nothing and emits nothing.
	n.Refresh(bridge.Number(10))
	if n.Adjust(1) {
		t.Fatalf("expected adjust at max to be a no-op")
	}
	if len(*events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(*events))
	}
}

func TestNumberField_EditBufferCommitOnEnter(t *testing.T) {
	n := NewNumberField(numberField("speed", 0, 10))
	n.Refresh(bridge.Number(5))
	n.Machine().Apply(interaction.FocusIn)
	events := captureEmits(n)

	n.HandleKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: '8'})
	if !n.Editing() || n.EditText() != "8" {
		t.Fatalf("expected live buffer %q, got %q (editing=%v)", "8", n.EditText(), n.Editing())
	}
	n.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter})
	if n.Editing() {
		t.Fatalf("expected editing to end on commit")
	}
	if len(*events) != 1 || (*events)[0].next.Number() != 8 {
		t.Fatalf("expected one event with 8, got %v", *events)
	}
}

func TestNumberField_BlockedCommitKeepsBuffer(t *testing.T) {
	n := NewNumberField(numberField("speed", 0, 10))
	n.Refresh(bridge.Number(5))
	n.Machine().Apply(interaction.FocusIn)

	n.HandleKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: '9'})
	n.HandleKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: '9'})
	n.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter})
	if !n.Editing() {
		t.Fatalf("expected blocked commit to stay in editing mode")
	}
	if n.EditText() != "99" {
		t.Fatalf("expected buffer kept, got %q", n.EditText())
	}
}

func TestSlider_AdjustClampsToRange(t *testing.T) {
	desc := numberField("volume", 0, 100)
	desc.Step = 30
	s := NewSlider(desc)
	s.Refresh(bridge.Number(90))
	events := captureEmits(s)

	if !s.Adjust(1) {
		t.Fatalf("expected adjust to emit")
	}
	if got := (*events)[0].next.Number(); got != 100 {
		t.Fatalf("expected clamp to 100, got %v", got)
	}
}

func TestSlider_Ratio(t *testing.T) {
	s := NewSlider(numberField("volume", 0, 10))
	s.Refresh(bridge.Number(2.5))
	if got := s.Ratio(); got != 0.25 {
		t.Fatalf("expected ratio 0.25, got %v", got)
	}
}

func TestTextField_CommitRunsValidators(t *testing.T) {
	f := NewTextField(textField("name"))
	f.Refresh(bridge.Text("old"))
	f.SetErrorValidator(func(text string) error {
		if text == "" {
			return errors.New("must not be empty")
		}
		return nil
	})
	f.SetWarningValidator(func(text string) error {
		if len(text) > 5 {
			return errors.New("long name")
		}
		return nil
	})
	events := captureEmits(f)

	if f.CommitText("") {
		t.Fatalf("expected empty commit to be blocked")
	}
	if f.Validation().Severity != SeverityError {
		t.Fatalf("expected error severity, got %s", f.Validation().Severity)
	}
	if len(*events) != 0 {
		t.Fatalf("expected no events, got %d", len(*events))
	}

	// A warning flags the widget but the commit still goes through.
	if !f.CommitText("verbose") {
		t.Fatalf("expected warned commit to emit")
	}
	if f.Validation().Severity != SeverityWarning {
		t.Fatalf("expected warning severity, got %s", f.Validation().Severity)
	}
	if len(*events) != 1 || (*events)[0].next.Text() != "verbose" {
		t.Fatalf("expected one event with %q, got %v", "verbose", *events)
	}
}

func TestTextField_EditingLifecycle(t *testing.T) {
	f := NewTextField(textField("name"))
	f.Refresh(bridge.Text("cat"))
	f.Machine().Apply(interaction.FocusIn)
	events := captureEmits(f)

	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter})
	if !f.Editing() || f.EditText() != "cat" {
		t.Fatalf("expected buffer seeded with %q, got %q", "cat", f.EditText())
	}
	if f.Machine().State() != interaction.Selected {
		t.Fatalf("expected selected while editing, got %s", f.Machine().State())
	}

	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 's'})
	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter})
	if f.Editing() {
		t.Fatalf("expected editing to end on commit")
	}
	if f.Machine().State() != interaction.Focus {
		t.Fatalf("expected focus after commit, got %s", f.Machine().State())
	}
	if len(*events) != 1 || (*events)[0].next.Text() != "cats" {
		t.Fatalf("expected one event with %q, got %v", "cats", *events)
	}
}

func TestTextField_EscapeCancelsWithoutEmit(t *testing.T) {
	f := NewTextField(textField("name"))
	f.Refresh(bridge.Text("cat"))
	f.Machine().Apply(interaction.FocusIn)
	events := captureEmits(f)

	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter})
	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x'})
	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyEscape})

	if f.Editing() {
		t.Fatalf("expected editing cancelled")
	}
	if len(*events) != 0 {
		t.Fatalf("expected no events after cancel, got %d", len(*events))
	}
	if f.DisplayText() != "cat" {
		t.Fatalf("expected display back to %q, got %q", "cat", f.DisplayText())
	}
}

func TestTextField_ClipboardCutPaste(t *testing.T) {
	f := NewTextField(textField("name"))
	f.Refresh(bridge.Text("snippet"))
	f.Machine().Apply(interaction.FocusIn)

	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter})
	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyCtrlX})
	if f.EditText() != "" {
		t.Fatalf("expected cut to clear buffer, got %q", f.EditText())
	}
	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyCtrlV})
	f.HandleKey(terminal.KeyEvent{Key: terminal.KeyCtrlV})
	if f.EditText() != "snippetsnippet" {
		t.Fatalf("expected double paste, got %q", f.EditText())
	}
}

func TestColorField_RejectsBadHexAndNormalizesGood(t *testing.T) {
	f := NewColorField(textField("tint"))
	f.Refresh(bridge.Text("#336699"))
	events := captureEmits(f)

	if f.CommitText("chartreuse") {
		t.Fatalf("expected non-hex commit to be blocked")
	}
	if f.Validation().Severity != SeverityError {
		t.Fatalf("expected error severity, got %s", f.Validation().Severity)
	}

	if !f.CommitText("FFA500") {
		t.Fatalf("expected hex commit to emit")
	}
	if got := (*events)[0].next.Text(); got != "#ffa500" {
		t.Fatalf("expected normalized %q, got %q", "#ffa500", got)
	}
}

func TestRadioGroup_ChooseEmitsVariant(t *testing.T) {
	r := NewRadioGroup(enumField("mode", "Idle", "Running", "Paused"))
	r.Refresh(bridge.Variant("Idle", nil))
	events := captureEmits(r)

	if !r.Choose("Running") {
		t.Fatalf("expected choose to emit")
	}
	ev := (*events)[0]
	if ev.old.VariantName() != "Idle" || ev.next.VariantName() != "Running" {
		t.Fatalf("expected Idle->Running, got %s->%s", ev.old.Display(), ev.next.Display())
	}

	if r.Choose("Sleeping") {
		t.Fatalf("expected unknown variant to be rejected")
	}
	if len(*events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(*events))
	}
}

func TestRadioGroup_ReselectionEmitsNothing(t *testing.T) {
	r := NewRadioGroup(enumField("mode", "Idle", "Running"))
	r.Refresh(bridge.Variant("Idle", nil))
	events := captureEmits(r)

	if r.Choose("Idle") {
		t.Fatalf("expected reselection not to emit")
	}
	if len(*events) != 0 {
		t.Fatalf("expected no events, got %d", len(*events))
	}
}

func TestDropdown_SelectionIsAtomic(t *testing.T) {
	d := NewDropdown(enumField("mode", "Idle", "Running", "Paused"), 8)
	d.Refresh(bridge.Variant("Idle", nil))

	var events []emitted
	d.SetEmit(func(old, next bridge.Value) {
		// The composite must already be closed when the event is emitted.
		if d.Composite().IsOpen() {
			t.Fatalf("change emitted while dropdown still open")
		}
		events = append(events, emitted{old: old, next: next})
	})

	if !d.Open() {
		t.Fatalf("expected open to succeed")
	}
	if !d.Choose("Running") {
		t.Fatalf("expected choose to emit")
	}
	if d.Composite().IsOpen() {
		t.Fatalf("expected dropdown closed after selection")
	}
	if len(events) != 1 || events[0].next.VariantName() != "Running" {
		t.Fatalf("expected exactly one Running event, got %v", events)
	}
}

func TestDropdown_KeyboardSelection(t *testing.T) {
	d := NewDropdown(enumField("mode", "Idle", "Running", "Paused"), 8)
	d.Refresh(bridge.Variant("Idle", nil))
	events := captureEmits(d)
	d.Machine().Apply(interaction.FocusIn)

	d.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter})
	if !d.Composite().IsOpen() {
		t.Fatalf("expected enter to open the dropdown")
	}
	if d.Window().Cursor() != 0 {
		t.Fatalf("expected cursor on committed variant, got %d", d.Window().Cursor())
	}
	d.HandleKey(terminal.KeyEvent{Key: terminal.KeyDown})
	d.HandleKey(terminal.KeyEvent{Key: terminal.KeyEnter})

	if d.Composite().IsOpen() {
		t.Fatalf("expected dropdown closed after selection")
	}
	if len(*events) != 1 || (*events)[0].next.VariantName() != "Running" {
		t.Fatalf("expected one Running event, got %v", *events)
	}
}

func TestDropdown_EscapeClosesWithoutEmit(t *testing.T) {
	d := NewDropdown(enumField("mode", "Idle", "Running"), 8)
	d.Refresh(bridge.Variant("Idle", nil))
	events := captureEmits(d)

	d.Open()
	d.HandleKey(terminal.KeyEvent{Key: terminal.KeyEscape})
	if d.Composite().IsOpen() {
		t.Fatalf("expected escape to close")
	}
	if len(*events) != 0 {
		t.Fatalf("expected no events, got %d", len(*events))
	}
}

func TestDropdown_DisabledNeverOpens(t *testing.T) {
	d := NewDropdown(enumField("mode", "Idle", "Running"), 8)
	d.Refresh(bridge.Variant("Idle", nil))
	d.Machine().Apply(interaction.Disable)

	if d.Open() {
		t.Fatalf("expected disabled dropdown to stay closed")
	}
	if d.Choose("Running") {
		t.Fatalf("expected disabled choose to fail")
	}
}

func TestSection_StartsOpenAndToggles(t *testing.T) {
	s := NewSection(bridge.FieldDescriptor{
		Name: "transform", Path: bridge.Path{"transform"}, Kind: bridge.KindNested,
	})
	if !s.Composite().IsOpen() {
		t.Fatalf("expected a fresh section to be open")
	}
	s.Toggle()
	if s.Composite().IsOpen() {
		t.Fatalf("expected toggle to close the section")
	}
}

func TestAccordion_ExclusiveClosesSiblings(t *testing.T) {
	a := NewAccordion(true)
	mk := func(name string) *Section {
		return NewSection(bridge.FieldDescriptor{
			Name: name, Path: bridge.Path{name}, Kind: bridge.KindNested,
		})
	}
	first, second, third := mk("a"), mk("b"), mk("c")
	a.Add(first)
	a.Add(second)
	a.Add(third)

	open := 0
	for _, s := range a.Sections() {
		if s.Composite().IsOpen() {
			open++
		}
	}
	if open != 1 {
		t.Fatalf("expected exactly one open section after exclusive add, got %d", open)
	}

	third.Composite().Open()
	if first.Composite().IsOpen() || second.Composite().IsOpen() {
		t.Fatalf("expected siblings closed after exclusive open")
	}
	if !third.Composite().IsOpen() {
		t.Fatalf("expected opened section to stay open")
	}
}

func TestAccordion_IndependentSections(t *testing.T) {
	a := NewAccordion(false)
	mk := func(name string) *Section {
		return NewSection(bridge.FieldDescriptor{
			Name: name, Path: bridge.Path{name}, Kind: bridge.KindNested,
		})
	}
	first, second := mk("a"), mk("b")
	a.Add(first)
	a.Add(second)

	if !first.Composite().IsOpen() || !second.Composite().IsOpen() {
		t.Fatalf("expected both sections open in independent mode")
	}
}

func TestListSection_RefreshTracksCollectionSize(t *testing.T) {
	l := NewListSection(bridge.FieldDescriptor{
		Name: "items", Path: bridge.Path{"items"}, Kind: bridge.KindCollection, Writable: true,
	}, 2)
	l.Refresh(bridge.Collection(bridge.Number(1), bridge.Number(2), bridge.Number(3)))

	if l.DisplayText() != "[3]" {
		t.Fatalf("expected display [3], got %q", l.DisplayText())
	}
	l.Window().End()
	if l.Window().Cursor() != 2 {
		t.Fatalf("expected cursor on last element, got %d", l.Window().Cursor())
	}

	// Shrink: the window clamps, nothing panics.
	l.Refresh(bridge.Collection(bridge.Number(1), bridge.Number(2)))
	if l.Window().Cursor() != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", l.Window().Cursor())
	}
	if l.DisplayText() != "[2]" {
		t.Fatalf("expected display [2], got %q", l.DisplayText())
	}
}

func TestLabel_TakesNoFocus(t *testing.T) {
	l := NewLabel(bridge.FieldDescriptor{
		Name: "id", Path: bridge.Path{"id"}, Kind: bridge.KindText,
	})
	l.Refresh(bridge.Text("e-1042"))

	if _, ok := l.Machine().Apply(interaction.FocusIn); ok {
		t.Fatalf("expected label to refuse focus")
	}
	if l.DisplayText() != "e-1042" {
		t.Fatalf("expected display text, got %q", l.DisplayText())
	}
}
