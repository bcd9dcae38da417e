// Package view lays inspector snapshots out as rows in a backend buffer.
// It is a pure consumer: snapshots in, styled cells out, plus reverse hit
// testing from a row back to the widget path that produced it. Field docs
// are flattened from markdown and the raw value pane is syntax
// highlighted; both live in this package so the inspector itself stays
// presentation-free.
package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/peek-ui/backend"
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/inspector"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/widgets"
)

// Theme is the style set rows are drawn with. Interaction state picks the
// base style; a validation error recolors the row on top of it.
type Theme struct {
	Default  backend.Style
	Hover    backend.Style
	Focused  backend.Style
	Selected backend.Style
	Disabled backend.Style
	Error    backend.Style
	Warning  backend.Style
	Doc      backend.Style
}

// DefaultTheme returns a theme that reads on both dark and light
// terminals: attribute-only row styles plus colored validation.
func DefaultTheme() Theme {
	return Theme{
		Default:  backend.DefaultStyle(),
		Hover:    backend.DefaultStyle().Reverse(true),
		Focused:  backend.DefaultStyle().Bold(true).Underline(true),
		Selected: backend.DefaultStyle().Bold(true),
		Disabled: backend.DefaultStyle().Dim(true),
		Error:    backend.DefaultStyle().Foreground(backend.RGB(0xe0, 0x4f, 0x4f)),
		Warning:  backend.DefaultStyle().Foreground(backend.RGB(0xd9, 0xa4, 0x2b)),
		Doc:      backend.DefaultStyle().Dim(true).Italic(true),
	}
}

// View renders snapshot lists and remembers, per rendered row, which
// widget path it came from.
type View struct {
	theme Theme
	rows  []bridge.Path
}

// NewView creates a view with the given theme.
func NewView(theme Theme) *View {
	return &View{theme: theme}
}

type renderedRow struct {
	text  string
	style backend.Style
	path  bridge.Path
	doc   string
}

// Render clears buf and draws one row per visible snapshot, with the
// focused field's doc flattened into a footer. Inline elements are
// appended to their head row instead of taking rows of their own.
func (v *View) Render(buf *backend.Buffer, snaps []inspector.Snapshot) {
	if v == nil || buf == nil {
		return
	}
	buf.Clear()
	rows := v.layout(snaps)

	w, h := buf.Size()
	v.rows = v.rows[:0]

	var doc string
	for y, r := range rows {
		if y >= h {
			break
		}
		buf.SetString(0, y, runewidth.Truncate(r.text, w, "…"), r.style)
		v.rows = append(v.rows, r.path)
		if r.doc != "" {
			doc = r.doc
		}
	}
	v.renderDoc(buf, doc, len(v.rows))
}

func (v *View) layout(snaps []inspector.Snapshot) []renderedRow {
	var rows []renderedRow
	for _, s := range snaps {
		if s.Hidden {
			continue
		}
		if s.Inline && len(rows) > 0 {
			rows[len(rows)-1].text += " " + s.Value
			continue
		}
		r := renderedRow{text: rowText(s), style: v.styleFor(s), path: s.Path}
		if s.Focused {
			r.doc = s.Doc
		}
		rows = append(rows, r)
	}
	return rows
}

// renderDoc draws the focused field's doc at the bottom of the buffer,
// leaving at least one blank row below the widget rows.
func (v *View) renderDoc(buf *backend.Buffer, doc string, used int) {
	if doc == "" {
		return
	}
	w, h := buf.Size()
	lines := PlainText(doc)
	top := h - len(lines)
	if top <= used {
		top = used + 1
	}
	for i, line := range lines {
		y := top + i
		if y >= h {
			break
		}
		buf.SetString(0, y, runewidth.Truncate(line, w, "…"), v.theme.Doc)
	}
}

// PathAt returns the widget path rendered at row y in the last Render.
func (v *View) PathAt(y int) (bridge.Path, bool) {
	if v == nil || y < 0 || y >= len(v.rows) {
		return nil, false
	}
	return v.rows[y], true
}

// Rows returns how many widget rows the last Render produced.
func (v *View) Rows() int {
	if v == nil {
		return 0
	}
	return len(v.rows)
}

func (v *View) styleFor(s inspector.Snapshot) backend.Style {
	switch s.Validation.Severity {
	case widgets.SeverityError:
		return v.theme.Error
	case widgets.SeverityWarning:
		return v.theme.Warning
	}
	if !s.Enabled {
		return v.theme.Disabled
	}
	if s.Focused {
		return v.theme.Focused
	}
	switch s.State {
	case interaction.Hover:
		return v.theme.Hover
	case interaction.Selected:
		return v.theme.Selected
	}
	return v.theme.Default
}

// rowText composes the visible line for one snapshot: indentation by tree
// depth, a control-specific adornment, then the display value and any
// validation message.
func rowText(s inspector.Snapshot) string {
	var b strings.Builder
	for i := 0; i < s.Depth; i++ {
		b.WriteString("  ")
	}
	switch s.Control {
	case widgets.ControlCheckbox:
		if s.Value == "true" {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
		b.WriteString(s.Name)
	case widgets.ControlSection:
		b.WriteString(openGlyph(s.Open))
		b.WriteByte(' ')
		b.WriteString(s.Name)
	case widgets.ControlList:
		b.WriteString(openGlyph(s.Open))
		b.WriteByte(' ')
		b.WriteString(s.Name)
		b.WriteByte(' ')
		b.WriteString(s.Value)
	case widgets.ControlDropdown:
		b.WriteString(s.Name)
		b.WriteString(": ")
		b.WriteString(s.Value)
		if s.Open {
			b.WriteString(" ▴")
		} else {
			b.WriteString(" ▾")
		}
	case widgets.ControlRadio:
		b.WriteString(s.Name)
		b.WriteString(": (")
		b.WriteString(s.Value)
		b.WriteString(")")
	default:
		b.WriteString(s.Name)
		b.WriteString(": ")
		b.WriteString(s.Value)
	}
	if s.Validation.Severity == widgets.SeverityError {
		b.WriteString(" ✗ ")
		b.WriteString(s.Validation.Message)
	} else if s.Validation.Severity == widgets.SeverityWarning {
		b.WriteString(" ⚠ ")
		b.WriteString(s.Validation.Message)
	}
	return b.String()
}

func openGlyph(open bool) string {
	if open {
		return "▾"
	}
	return "▸"
}
