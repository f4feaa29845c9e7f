package export

import (
	"fmt"
	"strings"

	"github.com/jask/launchplan/deck"
	"github.com/jask/launchplan/render"
	"github.com/jask/launchplan/widgets"
)

func markdown(d deck.Deck, tabs []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n### %s\n\n---\n", d.Header.Title, d.Header.Subtitle)
	for _, i := range tabs {
		t := d.Tabs[i]
		p := t.Panel()
		fmt.Fprintf(&b, "\n## %s\n\n### %s\n", t.Title(), p.Heading)
		writeBlocks(&b, p.Blocks)
	}
	fmt.Fprintf(&b, "\n---\n\n%s\n", d.Footer.Note)
	return b.String()
}

// writeBlocks flattens columns into document order; Markdown has no side by
// side layout.
func writeBlocks(b *strings.Builder, blocks []deck.Block) {
	for _, blk := range blocks {
		switch v := blk.(type) {
		case deck.Columns:
			for _, col := range v.Cols {
				writeBlocks(b, col)
			}
			continue
		case deck.Subheading:
			fmt.Fprintf(b, "\n#### %s\n", v.Text)
		case deck.Markdown:
			fmt.Fprintf(b, "\n%s\n", strings.TrimSpace(v.Source))
		case deck.Callout:
			writeCallout(b, v)
		case deck.Metric:
			fmt.Fprintf(b, "\n- **%s:** %s", v.Label, v.Value)
			if v.Delta != "" {
				fmt.Fprintf(b, " (%s)", v.Delta)
			}
			b.WriteString("\n")
		case deck.Table:
			b.WriteString("\n")
			writeTable(b, v)
		case deck.Divider:
			b.WriteString("\n---\n")
		}
	}
}

func writeCallout(b *strings.Builder, c deck.Callout) {
	b.WriteString("\n")
	prefix := "> "
	body := strings.TrimSpace(c.Body)
	lead := c.Title
	if lead == "" {
		lead = body
	}
	if icon := render.CalloutIcon(c.Kind); icon != "" && !widgets.LeadsWithSymbol(lead) {
		prefix += icon + " "
	}
	if c.Title != "" {
		fmt.Fprintf(b, "%s**%s**\n", prefix, c.Title)
		if body == "" {
			return
		}
		b.WriteString(">\n")
		prefix = "> "
	}
	for i, line := range strings.Split(body, "\n") {
		if i > 0 {
			prefix = "> "
		}
		if line == "" {
			b.WriteString(">\n")
			continue
		}
		b.WriteString(prefix + line + "\n")
	}
}

func writeTable(b *strings.Builder, t deck.Table) {
	headers := t.Headers()
	if len(headers) == 0 {
		return
	}
	numeric := make([]bool, len(headers))
	for i, col := range t.Columns {
		numeric[i] = len(col.Cells) > 0
		for _, c := range col.Cells {
			if !c.IsNumber() {
				numeric[i] = false
				break
			}
		}
	}
	b.WriteString("| " + strings.Join(escapeCells(headers), " | ") + " |\n")
	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
		if numeric[i] {
			seps[i] = "---:"
		}
	}
	b.WriteString("| " + strings.Join(seps, " | ") + " |\n")
	for _, row := range t.StringRows() {
		b.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
	}
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}
