package view

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainText flattens a markdown fragment into display lines: one line per
// block, inline markup dropped, code blocks kept verbatim. Field docs are
// short, so block structure beyond that is not preserved.
func PlainText(md string) []string {
	md = strings.TrimSpace(md)
	if md == "" {
		return nil
	}
	source := []byte(md)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var lines []string
	var cur strings.Builder
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			lines = append(lines, s)
		}
		cur.Reset()
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch n.(type) {
			case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote:
				flush()
			}
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			cur.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				cur.WriteByte(' ')
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			flush()
			block := n.Lines()
			for i := 0; i < block.Len(); i++ {
				seg := block.At(i)
				lines = append(lines, strings.TrimRight(string(seg.Value(source)), "\n"))
			}
			return ast.WalkSkipChildren, nil
		case *ast.ThematicBreak:
			flush()
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	flush()
	return lines
}
