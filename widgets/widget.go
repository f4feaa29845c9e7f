package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Widget renders itself at a given width. Height is whatever the content needs;
// the caller clips or scrolls.
type Widget interface {
	Render(width int) string
}

// Measured is implemented by widgets that need a minimum width to show
// their content without wrapping.
type Measured interface {
	NaturalWidth() int
}

// naturalWidth reports w's natural width, or 0 when w can reflow to any width.
func naturalWidth(w Widget) int {
	if m, ok := w.(Measured); ok {
		return m.NaturalWidth()
	}
	return 0
}

type Text struct {
	Content string
	Style   lipgloss.Style
}

func (t Text) Render(width int) string {
	if width <= 0 {
		return ""
	}
	return t.Style.Width(width).Render(t.Content)
}

// Rule is a horizontal divider.
type Rule struct {
	Char  string
	Style lipgloss.Style
}

func (r Rule) Render(width int) string {
	if width <= 0 {
		return ""
	}
	ch := r.Char
	if ch == "" {
		ch = "─"
	}
	return r.Style.Render(strings.Repeat(ch, width))
}

type Empty struct{}

func (Empty) Render(int) string { return "" }
