package view

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/odvcencio/peek-ui/backend"
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/inspector"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/widgets"
)

func rowString(buf *backend.Buffer, y int) string {
	var b strings.Builder
	for _, c := range buf.Row(y) {
		if c.Rune == 0 {
			continue
		}
		b.WriteRune(c.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

func sampleSnapshots() []inspector.Snapshot {
	return []inspector.Snapshot{
		{Path: bridge.Path{"visible"}, Name: "visible", Control: widgets.ControlCheckbox, Value: "true", Enabled: true},
		{Path: bridge.Path{"speed"}, Name: "speed", Control: widgets.ControlNumber, Value: "2", Enabled: true, Focused: true, Doc: "Units per tick."},
		{Path: bridge.Path{"origin"}, Name: "origin", Control: widgets.ControlSection, Expandable: true, Open: false, Enabled: true},
		{Path: bridge.Path{"origin", "x"}, Name: "x", Control: widgets.ControlNumber, Depth: 1, Value: "0", Enabled: true, Hidden: true},
		{Path: bridge.Path{"mode"}, Name: "mode", Control: widgets.ControlDropdown, Value: "Idle", Enabled: true},
	}
}

func TestView_RenderRows(t *testing.T) {
	buf := backend.NewBuffer(40, 10)
	v := NewView(DefaultTheme())
	v.Render(buf, sampleSnapshots())

	want := []string{
		"[x] visible",
		"speed: 2",
		"▸ origin",
		"mode: Idle ▾",
	}
	var got []string
	for y := range want {
		got = append(got, rowString(buf, y))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if v.Rows() != 4 {
		t.Fatalf("Rows() = %d, want 4 (hidden row must not render)", v.Rows())
	}
}

func TestView_PathAt(t *testing.T) {
	buf := backend.NewBuffer(40, 10)
	v := NewView(DefaultTheme())
	v.Render(buf, sampleSnapshots())

	p, ok := v.PathAt(3)
	if !ok || p.String() != "mode" {
		t.Fatalf("PathAt(3) = %v, %v; want mode", p, ok)
	}
	if _, ok := v.PathAt(9); ok {
		t.Fatal("PathAt past the rendered rows should miss")
	}
}

func TestView_DocFooterForFocusedRow(t *testing.T) {
	buf := backend.NewBuffer(40, 6)
	v := NewView(DefaultTheme())
	v.Render(buf, sampleSnapshots())

	if got := rowString(buf, 5); got != "Units per tick." {
		t.Fatalf("doc footer = %q, want %q", got, "Units per tick.")
	}
}

func TestView_InlineElementsShareRow(t *testing.T) {
	snaps := []inspector.Snapshot{
		{Path: bridge.Path{"position"}, Name: "position", Control: widgets.ControlLabel, Value: "[2]", Enabled: true},
		{Path: bridge.Path{"position", "0"}, Name: "0", Depth: 1, Control: widgets.ControlNumber, Value: "1", Inline: true, Enabled: true},
		{Path: bridge.Path{"position", "1"}, Name: "1", Depth: 1, Control: widgets.ControlNumber, Value: "4", Inline: true, Enabled: true},
	}
	buf := backend.NewBuffer(40, 4)
	v := NewView(DefaultTheme())
	v.Render(buf, snaps)

	if got := rowString(buf, 0); got != "position: [2] 1 4" {
		t.Fatalf("inline row = %q", got)
	}
	if v.Rows() != 1 {
		t.Fatalf("Rows() = %d, want 1", v.Rows())
	}
}

func TestView_ValidationAndStateStyles(t *testing.T) {
	theme := DefaultTheme()
	snaps := []inspector.Snapshot{
		{Path: bridge.Path{"speed"}, Name: "speed", Control: widgets.ControlNumber, Value: "15", Enabled: true,
			Validation: widgets.Validation{Severity: widgets.SeverityError, Message: "out of range"}},
		{Path: bridge.Path{"label"}, Name: "label", Control: widgets.ControlText, Value: "p", Enabled: true, State: interaction.Hover},
		{Path: bridge.Path{"mode"}, Name: "mode", Control: widgets.ControlRadio, Value: "Idle", Enabled: false},
	}
	buf := backend.NewBuffer(40, 4)
	v := NewView(theme)
	v.Render(buf, snaps)

	if got := rowString(buf, 0); got != "speed: 15 ✗ out of range" {
		t.Fatalf("error row = %q", got)
	}
	if got := buf.Get(0, 0).Style; got != theme.Error {
		t.Fatalf("error row style = %+v, want %+v", got, theme.Error)
	}
	if got := buf.Get(0, 1).Style; !got.IsReverse() {
		t.Fatal("hover row should render reversed")
	}
	if got := buf.Get(0, 2).Style; !got.IsDim() {
		t.Fatal("disabled row should render dim")
	}
}

func TestView_TruncatesToWidth(t *testing.T) {
	snaps := []inspector.Snapshot{
		{Path: bridge.Path{"label"}, Name: "label", Control: widgets.ControlText,
			Value: "a very long value that cannot fit", Enabled: true},
	}
	buf := backend.NewBuffer(12, 2)
	v := NewView(DefaultTheme())
	v.Render(buf, snaps)

	row := rowString(buf, 0)
	if !strings.HasSuffix(row, "…") {
		t.Fatalf("row = %q, want ellipsis suffix", row)
	}
	if len([]rune(row)) > 12 {
		t.Fatalf("row %q exceeds buffer width", row)
	}
}

func TestPlainText_FlattensBlocks(t *testing.T) {
	md := "# Speed\n\nMax *units* per tick.\n\n- one\n- two\n"
	want := []string{"Speed", "Max units per tick.", "one", "two"}
	if diff := cmp.Diff(want, PlainText(md)); diff != "" {
		t.Fatalf("plain text mismatch (-want +got):\n%s", diff)
	}
	if got := PlainText("  \n"); got != nil {
		t.Fatalf("blank doc = %v, want nil", got)
	}
}

func TestHighlightJSON_SpansReproduceSource(t *testing.T) {
	src := "{\n  \"speed\": 2,\n  \"label\": \"player\"\n}"
	lines := HighlightJSON(src)

	var b strings.Builder
	for i, spans := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, sp := range spans {
			b.WriteString(sp.Text)
		}
	}
	if b.String() != src {
		t.Fatalf("concatenated spans = %q, want source %q", b.String(), src)
	}

	styled := false
	for _, spans := range lines {
		for _, sp := range spans {
			if sp.Style != backend.DefaultStyle() {
				styled = true
			}
		}
	}
	if !styled {
		t.Fatal("expected at least one styled span")
	}
}

func TestRenderRaw_WritesHighlightedRows(t *testing.T) {
	buf := backend.NewBuffer(30, 6)
	buf.Clear()
	RenderRaw(buf, 2, "{\n  \"on\": true\n}")

	if got := rowString(buf, 0); got != "  {" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := rowString(buf, 1); got != "    \"on\": true" {
		t.Fatalf("row 1 = %q", got)
	}
}
