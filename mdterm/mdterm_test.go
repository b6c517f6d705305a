package mdterm

import (
	"strings"
	"testing"
)

func TestBasicText(t *testing.T) {
	got := Render("Hello world")
	if !strings.Contains(got, "Hello world") {
		t.Errorf("plain text lost: %q", got)
	}
}

func TestHeadingsKeepText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"# Title", "Title"},
		{"## Subtitle", "Subtitle"},
		{"### Section", "Section"},
	}
	for _, tt := range tests {
		got := Render(tt.in)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.in, got, tt.want)
		}
	}
}

func TestUnorderedList(t *testing.T) {
	got := Render("- one\n- two")
	if !strings.Contains(got, "• one") || !strings.Contains(got, "• two") {
		t.Errorf("missing bullets: %q", got)
	}
}

func TestOrderedList(t *testing.T) {
	got := Render("1. first\n2. second")
	if !strings.Contains(got, "1. first") || !strings.Contains(got, "2. second") {
		t.Errorf("missing numbering: %q", got)
	}
}

func TestNestedList(t *testing.T) {
	got := Render("- outer\n  - inner")
	if !strings.Contains(got, "• outer") || !strings.Contains(got, "  • inner") {
		t.Errorf("nested list not indented: %q", got)
	}
}

func TestFencedCodeBlockIndented(t *testing.T) {
	md := "```go\nfmt.Println(\"hi\")\n```"
	got := Render(md)
	if !strings.Contains(got, codeIndent+`fmt.Println("hi")`) {
		t.Errorf("code block not indented: %q", got)
	}
}

func TestBlockquotePrefixed(t *testing.T) {
	got := Render("> quoted line")
	if !strings.Contains(got, "│ quoted line") {
		t.Errorf("blockquote marker missing: %q", got)
	}
}

func TestLinkShowsDestination(t *testing.T) {
	got := Render("[docs](https://example.com)")
	if !strings.Contains(got, "docs") || !strings.Contains(got, "https://example.com") {
		t.Errorf("link label or destination lost: %q", got)
	}
}

func TestTableAligned(t *testing.T) {
	md := "| Region | Revenue |\n|---|---|\n| North | 128,400 |\n| S | 1 |"
	got := Render(md)
	if !strings.Contains(got, "Region") || !strings.Contains(got, "North") {
		t.Fatalf("table content lost: %q", got)
	}
	// Short cells are padded to the column width.
	if !strings.Contains(got, "S     ") {
		t.Errorf("table columns not aligned: %q", got)
	}
}

func TestTaskList(t *testing.T) {
	got := Render("- [x] done\n- [ ] open")
	if !strings.Contains(got, "[x] done") || !strings.Contains(got, "[ ] open") {
		t.Errorf("task boxes lost: %q", got)
	}
}

func TestThematicBreak(t *testing.T) {
	got := Render("above\n\n---\n\nbelow")
	if !strings.Contains(got, "─") {
		t.Errorf("rule missing: %q", got)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	md := "# Title\n\n- a\n- b\n\n`code` and **bold**"
	if Render(md) != Render(md) {
		t.Fatal("Render() should be deterministic")
	}
}
