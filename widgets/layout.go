package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width int) string {
	if len(v.Widgets) == 0 || width <= 0 {
		return ""
	}
	parts := make([]string, 0, len(v.Widgets))
	for _, w := range v.Widgets {
		if w == nil {
			continue
		}
		out := w.Render(width)
		if out == "" {
			continue
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, strings.Repeat("\n", v.Spacing+1))
}

// NaturalWidth is the widest natural width among the stacked widgets.
func (v VStack) NaturalWidth() int {
	n := 0
	for _, w := range v.Widgets {
		n = max(n, naturalWidth(w))
	}
	return n
}

// HStack places widgets side by side. Columns shorter than the tallest are
// padded with blank lines. With Collapse set, the widgets are stacked
// vertically instead whenever one of them is narrower than its natural width.
type HStack struct {
	Widgets  []Widget
	Ratios   []float64
	Gap      int
	Collapse bool
}

// NaturalWidth is the widest column's natural width when collapsing, since
// each column can then get the full width, and the sum of columns otherwise.
func (h HStack) NaturalWidth() int {
	n, total := 0, max(0, h.Gap*(len(h.Widgets)-1))
	for _, w := range h.Widgets {
		n = max(n, naturalWidth(w))
		total += naturalWidth(w)
	}
	if h.Collapse {
		return n
	}
	return total
}

func (h HStack) Render(width int) string {
	if len(h.Widgets) == 0 || width <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := SplitWidths(usable, len(h.Widgets), h.Ratios)
	if h.Collapse {
		for i, w := range h.Widgets {
			if w != nil && naturalWidth(w) > widths[i] {
				return VStack{Widgets: h.Widgets, Spacing: 1}.Render(width)
			}
		}
	}
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		if w == nil {
			continue
		}
		part := strings.Split(w.Render(max(1, widths[i])), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = PadRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// SplitWidths divides total among n slots, proportionally to ratios when
// there is one ratio per slot, evenly otherwise.
func SplitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	norm := make([]float64, n)
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		norm[i] = r
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((norm[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// PadRight truncates or pads s to exactly width terminal cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// FitHeight clips or pads s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
