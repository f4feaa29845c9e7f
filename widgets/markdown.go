package widgets

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

// MarkdownRenderer renders markdown through glamour, keeping one term
// renderer per wrap width.
type MarkdownRenderer struct {
	style string

	mu      sync.Mutex
	byWidth map[int]*glamour.TermRenderer
}

// NewMarkdownRenderer takes a glamour standard style name ("dark", "light",
// "notty", "ascii", ...) or "auto" to detect from the terminal.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{style: style, byWidth: make(map[int]*glamour.TermRenderer)}
}

func (r *MarkdownRenderer) Render(src string, width int) (string, error) {
	tr, err := r.termRenderer(width)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(src)
	if err != nil {
		return "", err
	}
	return trimBlankLines(out), nil
}

func (r *MarkdownRenderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tr, ok := r.byWidth[width]; ok {
		return tr, nil
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(10, width))}
	if r.style == "" || r.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(r.style))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	r.byWidth[width] = tr
	return tr, nil
}

// Markdown renders Source at the given width. If glamour fails the raw
// source is shown instead.
type Markdown struct {
	Source   string
	Renderer *MarkdownRenderer
}

func (m Markdown) Render(width int) string {
	if width <= 0 {
		return ""
	}
	if m.Renderer == nil {
		return strings.TrimSpace(m.Source)
	}
	out, err := m.Renderer.Render(m.Source, width)
	if err != nil {
		return strings.TrimSpace(m.Source)
	}
	return out
}

func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(ansi.Strip(lines[start])) == "" {
		start++
	}
	for end > start && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
