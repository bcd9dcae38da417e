package backend

// Color is a 24-bit color. The zero value means "terminal default".
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB builds a concrete color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Valid reports whether the color overrides the terminal default.
func (c Color) Valid() bool {
	return c.set
}

// Style describes how a cell is drawn. Styles are immutable values;
// the chained setters return modified copies.
type Style struct {
	fg        Color
	bg        Color
	bold      bool
	dim       bool
	italic    bool
	underline bool
	reverse   bool
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style {
	return Style{}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Bold sets the bold attribute.
func (s Style) Bold(v bool) Style {
	s.bold = v
	return s
}

// Dim sets the dim attribute.
func (s Style) Dim(v bool) Style {
	s.dim = v
	return s
}

// Italic sets the italic attribute.
func (s Style) Italic(v bool) Style {
	s.italic = v
	return s
}

// Underline sets the underline attribute.
func (s Style) Underline(v bool) Style {
	s.underline = v
	return s
}

// Reverse sets the reverse-video attribute.
func (s Style) Reverse(v bool) Style {
	s.reverse = v
	return s
}

// Fg returns the foreground color.
func (s Style) Fg() Color { return s.fg }

// Bg returns the background color.
func (s Style) Bg() Color { return s.bg }

// IsBold reports the bold attribute.
func (s Style) IsBold() bool { return s.bold }

// IsDim reports the dim attribute.
func (s Style) IsDim() bool { return s.dim }

// IsItalic reports the italic attribute.
func (s Style) IsItalic() bool { return s.italic }

// IsUnderline reports the underline attribute.
func (s Style) IsUnderline() bool { return s.underline }

// IsReverse reports the reverse-video attribute.
func (s Style) IsReverse() bool { return s.reverse }
