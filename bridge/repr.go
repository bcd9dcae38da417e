package bridge

import (
	"strconv"
	"strings"
)

// Repr renders the full value graph under root as indented JSON. Field
// order follows Fields(), so the output is deterministic for an unchanged
// value and diffs cleanly between ticks. Enum values with payloads render
// as an object with a "$variant" discriminator alongside the payload
// fields. Unreadable fields render as null.
func Repr(root Handle) string {
	var b strings.Builder
	writeHandleRepr(&b, root, 0)
	b.WriteByte('\n')
	return b.String()
}

func writeHandleRepr(b *strings.Builder, h Handle, depth int) {
	if h == nil {
		b.WriteString("null")
		return
	}
	fields := h.Fields()
	if len(fields) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	for i, d := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		newline(b, depth+1)
		b.WriteString(strconv.Quote(d.Name))
		b.WriteString(": ")
		v, err := h.Read(d.Name)
		if err != nil {
			b.WriteString("null")
			continue
		}
		writeValueRepr(b, v, depth+1)
	}
	newline(b, depth)
	b.WriteByte('}')
}

func writeValueRepr(b *strings.Builder, v Value, depth int) {
	switch v.Kind() {
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.Number(), 'g', -1, 64))
	case KindText:
		b.WriteString(strconv.Quote(v.Text()))
	case KindEnum:
		payload := v.Payload()
		if payload == nil {
			b.WriteString(strconv.Quote(v.VariantName()))
			return
		}
		b.WriteByte('{')
		newline(b, depth+1)
		b.WriteString(`"$variant": `)
		b.WriteString(strconv.Quote(v.VariantName()))
		for _, d := range payload.Fields() {
			b.WriteByte(',')
			newline(b, depth+1)
			b.WriteString(strconv.Quote(d.Name))
			b.WriteString(": ")
			pv, err := payload.Read(d.Name)
			if err != nil {
				b.WriteString("null")
				continue
			}
			writeValueRepr(b, pv, depth+1)
		}
		newline(b, depth)
		b.WriteByte('}')
	case KindNested:
		writeHandleRepr(b, v.Handle(), depth)
	case KindCollection:
		items := v.Items()
		if len(items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range items {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, depth+1)
			writeValueRepr(b, item, depth+1)
		}
		newline(b, depth)
		b.WriteByte(']')
	default:
		b.WriteString("null")
	}
}

func newline(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
