package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/launchplan/deck"
	"github.com/jask/launchplan/widgets"
)

// Styles is the global style rule set. Build it once with NewStyles and
// treat it as read-only afterwards.
type Styles struct {
	Palette Palette

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Divider    lipgloss.Style
	Heading    lipgloss.Style
	Subheading lipgloss.Style
	Footer     lipgloss.Style

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	Status    lipgloss.Style
	Help      lipgloss.Style
	HelpKey   lipgloss.Style
	PickerSel lipgloss.Style

	Metric widgets.MetricStyle
	Grid   widgets.GridStyle

	callouts [4]widgets.CalloutStyle
}

var calloutIcons = [...]string{
	deck.CalloutInfo:      "ℹ️",
	deck.CalloutWarning:   "⚠️",
	deck.CalloutSuccess:   "✅",
	deck.CalloutHighlight: "",
}

// CalloutIcon is the glyph marking a callout kind. Highlight boxes carry
// their own emoji in the title and have none.
func CalloutIcon(kind deck.CalloutKind) string {
	if kind < 0 || int(kind) >= len(calloutIcons) {
		return calloutIcons[deck.CalloutInfo]
	}
	return calloutIcons[kind]
}

func NewStyles(p Palette) Styles {
	s := Styles{Palette: p}

	s.Title = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	s.Subtitle = lipgloss.NewStyle().Foreground(p.Text).Bold(true)
	s.Divider = lipgloss.NewStyle().Foreground(p.Border)
	s.Heading = lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Underline(true)
	s.Subheading = lipgloss.NewStyle().Foreground(p.Text).Bold(true)
	s.Footer = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)

	// Tabs: padded grey pills, selected one filled with the accent.
	s.Tab = lipgloss.NewStyle().
		Background(p.TabBg).
		Foreground(p.TabFg).
		Padding(0, 2)
	s.ActiveTab = lipgloss.NewStyle().
		Background(p.TabActiveBg).
		Foreground(p.TabActiveFg).
		Bold(true).
		Padding(0, 2)

	s.Status = lipgloss.NewStyle().Foreground(p.Muted).Background(p.StatusBg)
	s.Help = lipgloss.NewStyle().Foreground(p.Muted)
	s.HelpKey = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	s.PickerSel = lipgloss.NewStyle().Foreground(p.TabActiveFg).Background(p.TabActiveBg).Bold(true)

	s.Metric = widgets.MetricStyle{
		Card:  lipgloss.NewStyle().Background(p.CardBg).Padding(0, 1).MarginBottom(1),
		Label: lipgloss.NewStyle().Foreground(p.Muted).Background(p.CardBg),
		Value: lipgloss.NewStyle().Foreground(p.Text).Background(p.CardBg).Bold(true),
		Delta: lipgloss.NewStyle().Foreground(p.DeltaUp).Background(p.CardBg),
	}

	s.Grid = widgets.GridStyle{
		Border: lipgloss.NewStyle().Foreground(p.Border),
		Header: lipgloss.NewStyle().Foreground(p.Muted).Bold(true),
		Index:  lipgloss.NewStyle().Foreground(p.Muted),
		Cell:   lipgloss.NewStyle().Foreground(p.Text),
		Alt:    lipgloss.NewStyle().Foreground(p.Text).Background(p.TableAltBg),
	}

	s.callouts[deck.CalloutInfo] = widgets.CalloutStyle{
		Icon: CalloutIcon(deck.CalloutInfo),
		Bar:  p.InfoFg, Fill: p.InfoBg, Text: p.InfoFg,
		Title: lipgloss.NewStyle().Foreground(p.InfoFg).Background(p.InfoBg).Bold(true),
	}
	s.callouts[deck.CalloutWarning] = widgets.CalloutStyle{
		Icon: CalloutIcon(deck.CalloutWarning),
		Bar:  p.WarningFg, Fill: p.WarningBg, Text: p.WarningFg,
		Title: lipgloss.NewStyle().Foreground(p.WarningFg).Background(p.WarningBg).Bold(true),
	}
	s.callouts[deck.CalloutSuccess] = widgets.CalloutStyle{
		Icon: CalloutIcon(deck.CalloutSuccess),
		Bar:  p.SuccessFg, Fill: p.SuccessBg, Text: p.SuccessFg,
		Title: lipgloss.NewStyle().Foreground(p.SuccessFg).Background(p.SuccessBg).Bold(true),
	}
	s.callouts[deck.CalloutHighlight] = widgets.CalloutStyle{
		Icon: CalloutIcon(deck.CalloutHighlight),
		Bar:  p.HighlightBar, Fill: p.HighlightBg, Text: p.Text,
		Title: lipgloss.NewStyle().Foreground(p.Text).Background(p.HighlightBg).Bold(true),
	}
	return s
}

// Callout returns the style for a callout kind; unknown kinds fall back to info.
func (s Styles) Callout(kind deck.CalloutKind) widgets.CalloutStyle {
	if kind < 0 || int(kind) >= len(s.callouts) {
		return s.callouts[deck.CalloutInfo]
	}
	return s.callouts[kind]
}
