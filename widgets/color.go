package widgets

import (
	"errors"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/odvcencio/peek-ui/bridge"
)

var errNotAColor = errors.New("not a hex color")

// NewColorField creates a text field specialized for hex color values:
// committed text must parse as "#rrggbb" (the leading '#' may be
// omitted) and is normalized to lowercase #-prefixed form before it is
// emitted. Everything else behaves like a TextField.
func NewColorField(desc bridge.FieldDescriptor) *TextField {
	t := NewTextField(desc)
	t.control = ControlColor
	t.SetErrorValidator(func(text string) error {
		if _, err := parseHexColor(text); err != nil {
			return errNotAColor
		}
		return nil
	})
	t.setNormalize(func(text string) string {
		c, err := parseHexColor(text)
		if err != nil {
			return text
		}
		return c.Hex()
	})
	return t
}

// ColorOf parses a widget's displayed value as a hex color, for swatch
// rendering. ok is false while the value does not parse.
func ColorOf(w Widget) (colorful.Color, bool) {
	if w == nil {
		return colorful.Color{}, false
	}
	v := w.Value()
	if v.Kind() != bridge.KindText {
		return colorful.Color{}, false
	}
	c, err := parseHexColor(v.Text())
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func parseHexColor(text string) (colorful.Color, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return colorful.Color{}, errNotAColor
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return colorful.Hex(strings.ToLower(s))
}
