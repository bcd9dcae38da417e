package view

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/odvcencio/peek-ui/backend"
)

// Span is one styled run of text within a highlighted line.
type Span struct {
	Text  string
	Style backend.Style
}

// HighlightJSON tokenizes src as JSON and returns one span list per line.
// Concatenating every span reproduces src exactly; a tokenizer failure
// degrades to unstyled text rather than an error, since the raw pane is
// diagnostic output.
func HighlightJSON(src string) [][]Span {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return plainSpans(src)
	}

	var lines [][]Span
	var cur []Span
	for tok := it(); tok != chroma.EOF; tok = it() {
		st := spanStyle(style.Get(tok.Type))
		rest := tok.Value
		for {
			nl := strings.IndexByte(rest, '\n')
			if nl < 0 {
				break
			}
			if nl > 0 {
				cur = append(cur, Span{Text: rest[:nl], Style: st})
			}
			lines = append(lines, cur)
			cur = nil
			rest = rest[nl+1:]
		}
		if rest != "" {
			cur = append(cur, Span{Text: rest, Style: st})
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func plainSpans(src string) [][]Span {
	var lines [][]Span
	for _, line := range strings.Split(src, "\n") {
		if line == "" {
			lines = append(lines, nil)
			continue
		}
		lines = append(lines, []Span{{Text: line}})
	}
	return lines
}

func spanStyle(entry chroma.StyleEntry) backend.Style {
	st := backend.DefaultStyle()
	if entry.Colour.IsSet() {
		st = st.Foreground(backend.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

// RenderRaw draws highlighted source into buf starting at column x, one
// line per row, clipped to the buffer. It is the raw value pane: hosts
// pass bridge.Repr output through it next to the widget rows.
func RenderRaw(buf *backend.Buffer, x int, src string) {
	if buf == nil {
		return
	}
	_, h := buf.Size()
	for y, spans := range HighlightJSON(src) {
		if y >= h {
			break
		}
		col := x
		for _, sp := range spans {
			col = buf.SetString(col, y, sp.Text, sp.Style)
		}
	}
}
