// Package mdterm renders standard Markdown as styled terminal text for
// the chat panel.
//
// It parses Markdown (including GFM tables and strikethrough) and
// produces lipgloss-styled lines a viewport can display directly.
// Features a terminal cannot express are mapped to approximations:
//   - Headings become bold text
//   - Images become "alt (url)" links
//   - Task list boxes become [x] / [ ] markers
//   - Horizontal rules become a line of dashes
package mdterm

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	quoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // dim gray
	boldStyle    = lipgloss.NewStyle().Bold(true)
	italicStyle  = lipgloss.NewStyle().Italic(true)
	strikeStyle  = lipgloss.NewStyle().Strikethrough(true)
)

const codeIndent = "    "

// Render converts Markdown text into styled terminal text.
func Render(markdown string) string {
	source := []byte(markdown)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	r := &renderer{source: source}
	r.walkBlock(doc)
	return strings.TrimRight(r.buf.String(), "\n ")
}

type renderer struct {
	source    []byte
	buf       bytes.Buffer
	listDepth int
}

// ---------------------------------------------------------------------------
// Block-level rendering
// ---------------------------------------------------------------------------

func (r *renderer) walkBlock(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.block(c)
	}
}

func (r *renderer) block(node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		r.walkBlock(n)

	case *ast.Heading:
		r.buf.WriteString(headingStyle.Render(r.textContent(n)))
		r.buf.WriteString("\n\n")

	case *ast.Paragraph:
		r.inlines(n)
		r.buf.WriteString("\n\n")

	case *ast.TextBlock:
		r.inlines(n)
		r.buf.WriteString("\n")

	case *ast.Blockquote:
		sub := &renderer{source: r.source}
		sub.walkBlock(n)
		quoted := strings.TrimRight(sub.buf.String(), "\n ")
		for _, line := range strings.Split(quoted, "\n") {
			r.buf.WriteString(quoteStyle.Render("│ " + line))
			r.buf.WriteByte('\n')
		}
		r.buf.WriteByte('\n')

	case *ast.List:
		r.list(n)

	case *ast.ListItem:
		// Handled inside list(); fallback.
		r.walkBlock(n)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		r.codeLines(node)
		r.buf.WriteByte('\n')

	case *ast.ThematicBreak:
		r.buf.WriteString(quoteStyle.Render(strings.Repeat("─", 20)))
		r.buf.WriteString("\n\n")

	case *ast.HTMLBlock:
		// Terminals render no HTML; pass the raw source through.
		r.rawLines(n)
		r.buf.WriteByte('\n')

	default:
		// GFM table
		if t, ok := node.(*east.Table); ok {
			r.table(t)
			return
		}
		if node.HasChildren() {
			r.walkBlock(node)
		}
	}
}

func (r *renderer) codeLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(r.source)), "\n")
		r.buf.WriteString(codeIndent)
		r.buf.WriteString(codeStyle.Render(line))
		r.buf.WriteByte('\n')
	}
}

func (r *renderer) rawLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		r.buf.Write(seg.Value(r.source))
	}
}

// ---------------------------------------------------------------------------
// Inline rendering
// ---------------------------------------------------------------------------

func (r *renderer) inlines(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(c)
	}
}

func (r *renderer) inline(node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		r.buf.Write(n.Text(r.source))
		if n.SoftLineBreak() || n.HardLineBreak() {
			r.buf.WriteByte('\n')
		}

	case *ast.String:
		r.buf.Write(n.Value)

	case *ast.Emphasis:
		style := italicStyle
		if n.Level == 2 {
			style = boldStyle
		}
		r.buf.WriteString(style.Render(r.textContent(n)))

	case *ast.CodeSpan:
		r.buf.WriteString(codeStyle.Render(r.textContent(n)))

	case *ast.Link:
		label := r.textContent(n)
		dest := string(n.Destination)
		if label == "" || label == dest {
			r.buf.WriteString(linkStyle.Render(dest))
		} else {
			fmt.Fprintf(&r.buf, "%s %s", label, linkStyle.Render("("+dest+")"))
		}

	case *ast.AutoLink:
		r.buf.WriteString(linkStyle.Render(string(n.URL(r.source))))

	case *ast.Image:
		alt := r.textContent(n)
		if alt == "" {
			alt = string(n.Destination)
		}
		fmt.Fprintf(&r.buf, "%s %s", alt, linkStyle.Render("("+string(n.Destination)+")"))

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			r.buf.Write(seg.Value(r.source))
		}

	default:
		// GFM extensions
		switch v := node.(type) {
		case *east.Strikethrough:
			r.buf.WriteString(strikeStyle.Render(r.textContent(v)))
		case *east.TaskCheckBox:
			if v.IsChecked {
				r.buf.WriteString("[x] ")
			} else {
				r.buf.WriteString("[ ] ")
			}
		default:
			if node.HasChildren() {
				r.inlines(node)
			}
		}
	}
}

// textContent returns the plain-text content of a node tree.
func (r *renderer) textContent(n ast.Node) string {
	var buf bytes.Buffer
	r.collectText(n, &buf)
	return buf.String()
}

func (r *renderer) collectText(node ast.Node, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Text(r.source))
		case *ast.String:
			buf.Write(t.Value)
		default:
			r.collectText(c, buf)
		}
	}
}

// ---------------------------------------------------------------------------
// List rendering
// ---------------------------------------------------------------------------

func (r *renderer) list(n *ast.List) {
	idx := 0
	if n.Start > 0 {
		idx = int(n.Start) - 1
	}
	indent := strings.Repeat("  ", r.listDepth)

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		if n.IsOrdered() {
			idx++
			fmt.Fprintf(&r.buf, "%s%d. ", indent, idx)
		} else {
			r.buf.WriteString(indent)
			r.buf.WriteString("• ")
		}
		r.listItemContent(item)
		r.buf.WriteByte('\n')
	}
	if r.listDepth == 0 {
		r.buf.WriteByte('\n')
	}
}

func (r *renderer) listItemContent(item *ast.ListItem) {
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			if !first {
				r.buf.WriteByte('\n')
				r.buf.WriteString(strings.Repeat("  ", r.listDepth+1))
			}
			r.inlines(n)
			first = false
		case *ast.List:
			r.buf.WriteByte('\n')
			r.listDepth++
			r.list(n)
			r.listDepth--
		default:
			r.block(c)
			first = false
		}
	}
}

// ---------------------------------------------------------------------------
// Table rendering (GFM)
// ---------------------------------------------------------------------------

// table renders a GFM table as column-aligned plain rows with a bold
// header. Alignment markers in the source are ignored; everything is
// left-aligned.
func (r *renderer) table(t *east.Table) {
	var rows [][]string
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, r.textContent(cell))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return
	}

	widths := columnWidths(rows)
	for i, cells := range rows {
		var parts []string
		for j, cell := range cells {
			parts = append(parts, pad(cell, widths[j]))
		}
		line := strings.TrimRight(strings.Join(parts, "  "), " ")
		if i == 0 {
			line = headingStyle.Render(line)
		}
		r.buf.WriteString(line)
		r.buf.WriteByte('\n')
	}
	r.buf.WriteByte('\n')
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, cells := range rows {
		for j, cell := range cells {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := len([]rune(cell)); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
