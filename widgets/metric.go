package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type MetricStyle struct {
	Card  lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Delta lipgloss.Style
}

// Metric is a label, a large primary value and an optional delta line.
type Metric struct {
	Label string
	Value string
	Delta string
	Style MetricStyle
}

func (m Metric) Render(width int) string {
	if width <= 0 {
		return ""
	}
	inner := max(1, width-m.Style.Card.GetHorizontalFrameSize())
	lines := []string{
		PadRight(m.Style.Label.Render(m.Label), inner),
		PadRight(m.Style.Value.Render(m.Value), inner),
	}
	if strings.TrimSpace(m.Delta) != "" {
		lines = append(lines, PadRight(m.Style.Delta.Render("↑ "+m.Delta), inner))
	}
	return m.Style.Card.Width(width - m.Style.Card.GetHorizontalMargins()).Render(strings.Join(lines, "\n"))
}
