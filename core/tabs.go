package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/launchplan/widgets"
)

const tabGap = 1

// tabZone is the clickable cell range of one tab label, relative to the
// top-left corner of the strip.
type tabZone struct {
	Index int
	Row   int
	X0    int
	X1    int
}

func (z tabZone) contains(x, y int) bool {
	return y == z.Row && x >= z.X0 && x < z.X1
}

// TabStrip lays tab labels out left to right, wrapping onto a new row when
// the next label would overflow width.
type TabStrip struct {
	Titles []string
	Active int
	Tab    lipgloss.Style
	Sel    lipgloss.Style
}

func (s TabStrip) layout(width int) ([]string, []tabZone) {
	width = max(1, width)
	var (
		rows  []string
		zones []tabZone
		cur   strings.Builder
		x     int
	)
	flush := func() {
		rows = append(rows, widgets.PadRight(cur.String(), width))
		cur.Reset()
		x = 0
	}
	for i, title := range s.Titles {
		style := s.Tab
		if i == s.Active {
			style = s.Sel
		}
		label := style.Render(title)
		w := ansi.StringWidth(label)
		if w > width {
			label = ansi.Truncate(label, width, "…")
			w = ansi.StringWidth(label)
		}
		need := w
		if x > 0 {
			need += tabGap
		}
		if x > 0 && x+need > width {
			flush()
			need = w
		}
		if x > 0 {
			cur.WriteString(strings.Repeat(" ", tabGap))
			x += tabGap
		}
		zones = append(zones, tabZone{Index: i, Row: len(rows), X0: x, X1: x + w})
		cur.WriteString(label)
		x += w
	}
	if x > 0 || len(rows) == 0 {
		flush()
	}
	return rows, zones
}

func (s TabStrip) Render(width int) string {
	rows, _ := s.layout(width)
	return strings.Join(rows, "\n")
}

// HitTest returns the tab under strip-relative cell (x, y).
func (s TabStrip) HitTest(width, x, y int) (int, bool) {
	_, zones := s.layout(width)
	for _, z := range zones {
		if z.contains(x, y) {
			return z.Index, true
		}
	}
	return -1, false
}
