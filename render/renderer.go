package render

import (
	"strings"

	"github.com/jask/launchplan/deck"
	"github.com/jask/launchplan/widgets"
)

const columnGap = 2

type Renderer struct {
	styles    Styles
	md        *widgets.MarkdownRenderer
	showIndex bool
}

type Option func(*Renderer)

// WithoutIndex hides the leading row index column on tables.
func WithoutIndex() Option {
	return func(r *Renderer) { r.showIndex = false }
}

func NewRenderer(styles Styles, md *widgets.MarkdownRenderer, opts ...Option) *Renderer {
	r := &Renderer{styles: styles, md: md, showIndex: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Styles() Styles { return r.styles }

// Header renders the title line, the subtitle line and a divider.
func (r *Renderer) Header(h deck.Header, width int) string {
	return widgets.VStack{Widgets: []widgets.Widget{
		widgets.Text{Content: h.Title, Style: r.styles.Title},
		widgets.Text{Content: h.Subtitle, Style: r.styles.Subtitle},
		widgets.Rule{Style: r.styles.Divider},
	}}.Render(width)
}

func (r *Renderer) Footer(f deck.Footer, width int) string {
	return widgets.VStack{Widgets: []widgets.Widget{
		widgets.Rule{Style: r.styles.Divider},
		widgets.Text{Content: strings.Trim(f.Note, "*"), Style: r.styles.Footer},
	}}.Render(width)
}

// Panel renders one tab's content: its heading followed by its blocks.
func (r *Renderer) Panel(p deck.Panel, width int) string {
	items := make([]widgets.Widget, 0, len(p.Blocks)+1)
	items = append(items, widgets.Text{Content: p.Heading, Style: r.styles.Heading})
	for _, b := range p.Blocks {
		items = append(items, r.Widget(b))
	}
	return widgets.VStack{Widgets: items, Spacing: 1}.Render(width)
}

// Document renders the header, one active panel and the footer, without
// any interactive chrome.
func (r *Renderer) Document(d deck.Deck, active, width int) string {
	if active < 0 || active >= len(d.Tabs) {
		return r.Header(d.Header, width)
	}
	return strings.Join([]string{
		r.Header(d.Header, width),
		r.Panel(d.Tabs[active].Panel(), width),
		r.Footer(d.Footer, width),
	}, "\n\n")
}

// Widget maps a block to its widget.
func (r *Renderer) Widget(b deck.Block) widgets.Widget {
	switch b := b.(type) {
	case deck.Subheading:
		return widgets.Text{Content: b.Text, Style: r.styles.Subheading}
	case deck.Markdown:
		return widgets.Markdown{Source: b.Source, Renderer: r.md}
	case deck.Callout:
		var content widgets.Widget
		if strings.TrimSpace(b.Body) != "" {
			content = widgets.Markdown{Source: b.Body, Renderer: r.md}
		}
		return widgets.Callout{Title: b.Title, Content: content, Style: r.styles.Callout(b.Kind)}
	case deck.Metric:
		return widgets.Metric{Label: b.Label, Value: b.Value, Delta: b.Delta, Style: r.styles.Metric}
	case deck.Table:
		return r.grid(b)
	case deck.Columns:
		cols := make([]widgets.Widget, 0, len(b.Cols))
		for _, col := range b.Cols {
			inner := make([]widgets.Widget, 0, len(col))
			for _, child := range col {
				inner = append(inner, r.Widget(child))
			}
			cols = append(cols, widgets.VStack{Widgets: inner, Spacing: 1})
		}
		return widgets.HStack{Widgets: cols, Ratios: b.Ratios, Gap: columnGap, Collapse: true}
	case deck.Divider:
		return widgets.Rule{Style: r.styles.Divider}
	default:
		return widgets.Empty{}
	}
}

func (r *Renderer) grid(t deck.Table) widgets.Grid {
	numeric := make([]bool, len(t.Columns))
	for i, c := range t.Columns {
		numeric[i] = len(c.Cells) > 0
		for _, cell := range c.Cells {
			if !cell.IsNumber() {
				numeric[i] = false
				break
			}
		}
	}
	return widgets.Grid{
		Headers:   t.Headers(),
		Rows:      t.StringRows(),
		Numeric:   numeric,
		ShowIndex: r.showIndex,
		Style:     r.styles.Grid,
	}
}
