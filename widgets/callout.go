package widgets

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

type CalloutStyle struct {
	Icon  string
	Bar   lipgloss.TerminalColor
	Fill  lipgloss.TerminalColor
	Text  lipgloss.TerminalColor
	Title lipgloss.Style
}

// Callout is a tinted block with a coloured bar down its left edge. Icon
// overrides Style.Icon when set. Text that already opens with a symbol
// keeps it and gets no second icon.
type Callout struct {
	Icon    string
	Title   string
	Content Widget
	Style   CalloutStyle
}

func (c Callout) Render(width int) string {
	if width <= 0 {
		return ""
	}
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(c.Style.Bar).
		Padding(0, 1)
	if c.Style.Fill != nil {
		box = box.Background(c.Style.Fill)
	}
	if c.Style.Text != nil {
		box = box.Foreground(c.Style.Text)
	}
	inner := max(1, width-box.GetHorizontalFrameSize())

	icon := c.Icon
	if icon == "" {
		icon = c.Style.Icon
	}
	lines := make([]string, 0, 2)
	title := strings.TrimSpace(c.Title)
	if icon != "" && title != "" && !LeadsWithSymbol(title) {
		title = icon + " " + title
	}
	if title != "" {
		lines = append(lines, c.Style.Title.Render(title))
	}
	body := ""
	if c.Content != nil {
		body = strings.TrimRight(c.Content.Render(inner), "\n")
	}
	if icon != "" && title == "" && body != "" && !LeadsWithSymbol(body) {
		body = icon + " " + strings.TrimLeft(body, " ")
	}
	if body != "" {
		lines = append(lines, body)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	rows := strings.Split(strings.Join(lines, "\n"), "\n")
	for i, row := range rows {
		rows[i] = PadRight(row, inner)
	}
	return box.Width(width - 1).Render(strings.Join(rows, "\n"))
}

// LeadsWithSymbol reports whether s, ignoring leading blanks, opens with a
// pictograph such as an emoji.
func LeadsWithSymbol(s string) bool {
	r, _ := utf8.DecodeRuneInString(strings.TrimLeft(s, " \n"))
	return unicode.Is(unicode.So, r)
}
