package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/launchplan/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	cw := m.contentWidth()
	header := m.renderer.Header(m.deck.Header, cw)
	strip := m.tabStrip().Render(cw)
	footer := m.renderFooter(cw)

	bodyHeight := max(0, m.height-m.chromeHeight(cw))
	body := m.viewport.View()
	if m.jump != nil && bodyHeight > 0 {
		popup := m.jump.View(max(20, cw-12), m.styles.PickerSel, m.styles.Help)
		body = widgets.RenderPopup(body, popup, cw, bodyHeight, m.styles.Palette.Accent)
	}
	body = widgets.FitHeight(body, bodyHeight)

	parts := []string{header, strip, ""}
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	view := widgets.FitHeight(strings.Join(parts, "\n"), max(1, m.height))
	return indent(view, m.leftMargin())
}

// tabStripTop is the screen row of the first tab strip line.
func (m Model) tabStripTop(cw int) int {
	return lipgloss.Height(m.renderer.Header(m.deck.Header, cw))
}

// chromeHeight counts every line that is not the scrolling panel body.
func (m Model) chromeHeight(cw int) int {
	header := m.renderer.Header(m.deck.Header, cw)
	strip := m.tabStrip().Render(cw)
	return lipgloss.Height(header) + lipgloss.Height(strip) + 1 + lipgloss.Height(m.renderFooter(cw))
}

func indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
