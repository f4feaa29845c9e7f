package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

type GridStyle struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Index  lipgloss.Style
	Cell   lipgloss.Style
	Alt    lipgloss.Style
}

// Grid draws a literal table. With ShowIndex a leading 0-based row index
// column is added, dataframe style.
//
// Headers are never cut. When the table is wider than the space given,
// cells wrap at word boundaries; when even the widest header or word per
// column does not fit, each row is drawn as a stacked record instead.
type Grid struct {
	Headers   []string
	Rows      [][]string
	Numeric   []bool
	ShowIndex bool
	Style     GridStyle
}

// cellPadding is the horizontal padding on each side of every cell.
const cellPadding = 1

func (g Grid) columns() ([]string, [][]string) {
	if !g.ShowIndex {
		return g.Headers, g.Rows
	}
	headers := append([]string{""}, g.Headers...)
	rows := make([][]string, len(g.Rows))
	for i, r := range g.Rows {
		rows[i] = append([]string{strconv.Itoa(i)}, r...)
	}
	return headers, rows
}

// frame is the width taken by borders and padding around n columns.
func frame(n int) int {
	return n + 1 + 2*cellPadding*n
}

// NaturalWidth is the width the grid needs to show every cell on one line.
func (g Grid) NaturalWidth() int {
	if len(g.Headers) == 0 {
		return 0
	}
	headers, rows := g.columns()
	total := frame(len(headers))
	for _, w := range columnWidths(headers, rows, ansi.StringWidth) {
		total += w
	}
	return total
}

func (g Grid) Render(width int) string {
	if width <= 0 {
		return ""
	}
	if len(g.Headers) == 0 {
		return "No data"
	}
	headers, rows := g.columns()
	avail := width - frame(len(headers))
	natural := columnWidths(headers, rows, ansi.StringWidth)
	if sum(natural) <= avail {
		return g.table(headers, rows)
	}
	minimum := columnWidths(headers, rows, longestWord)
	for i, h := range headers {
		minimum[i] = max(minimum[i], ansi.StringWidth(h))
	}
	if sum(minimum) > avail {
		return g.records(width)
	}
	widths := fitColumns(natural, minimum, avail)
	wrapped := make([][]string, len(rows))
	for i, row := range rows {
		wrapped[i] = make([]string, len(row))
		for j, cell := range row {
			wrapped[i][j] = ansi.Wordwrap(cell, widths[j], "")
		}
	}
	return g.table(headers, wrapped)
}

func (g Grid) table(headers []string, rows [][]string) string {
	offset := 0
	if g.ShowIndex {
		offset = 1
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(g.Style.Border).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = g.Style.Header
			case g.ShowIndex && col == 0:
				s = g.Style.Index
			case row%2 == 1:
				s = g.Style.Alt
			default:
				s = g.Style.Cell
			}
			s = s.Padding(0, cellPadding)
			if row != table.HeaderRow && g.numeric(col-offset) {
				s = s.Align(lipgloss.Right)
			}
			return s
		}).
		Render()
}

// records draws one "Header: value" block per row, separated by blank lines.
func (g Grid) records(width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	blocks := make([]string, 0, len(g.Rows))
	for i, row := range g.Rows {
		lines := make([]string, 0, len(row)+1)
		if g.ShowIndex {
			lines = append(lines, g.Style.Index.Render(strconv.Itoa(i)))
		}
		for j, cell := range row {
			if j >= len(g.Headers) {
				break
			}
			lines = append(lines, wrap.Render(g.Style.Header.Render(g.Headers[j]+":")+" "+g.Style.Cell.Render(cell)))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (g Grid) numeric(col int) bool {
	return col >= 0 && col < len(g.Numeric) && g.Numeric[col]
}

// columnWidths measures every column with measure, headers included.
func columnWidths(headers []string, rows [][]string, measure func(string) int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = measure(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], measure(cell))
			}
		}
	}
	return widths
}

func longestWord(s string) int {
	n := 0
	for _, w := range strings.Fields(s) {
		n = max(n, ansi.StringWidth(w))
	}
	return n
}

// fitColumns starts every column at its minimum and hands the remaining
// space, one cell at a time, to the column furthest below its natural width.
func fitColumns(natural, minimum []int, avail int) []int {
	widths := append([]int(nil), minimum...)
	for extra := avail - sum(widths); extra > 0; extra-- {
		best, gap := -1, 0
		for i := range widths {
			if d := natural[i] - widths[i]; d > gap {
				best, gap = i, d
			}
		}
		if best < 0 {
			break
		}
		widths[best]++
	}
	return widths
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
