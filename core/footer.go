package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/launchplan/widgets"
)

// renderFooter stacks the deck footer note, the status bar and key help.
func (m Model) renderFooter(cw int) string {
	note := m.renderer.Footer(m.deck.Footer, cw)
	return strings.Join([]string{note, m.renderStatus(cw), m.help.View(m.keys)}, "\n")
}

func (m Model) renderStatus(cw int) string {
	left := " " + m.status
	right := scrollLabel(m.viewport.ScrollPercent(), m.viewport.TotalLineCount() > m.viewport.Height) + " "
	gap := max(1, cw-lipgloss.Width(left)-lipgloss.Width(right))
	line := widgets.PadRight(left+strings.Repeat(" ", gap)+right, cw)
	return m.styles.Status.Width(cw).MaxWidth(cw).Render(line)
}

func scrollLabel(pct float64, scrollable bool) string {
	if !scrollable {
		return "All"
	}
	switch {
	case pct <= 0:
		return "Top"
	case pct >= 1:
		return "Bot"
	}
	return fmt.Sprintf("%d%%", int(pct*100))
}
