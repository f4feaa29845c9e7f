package export

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/jask/launchplan/deck"
)

// docDeck is the serialisable shape of a deck for YAML and JSON exports.
type docDeck struct {
	Page   docPage  `yaml:"page" json:"page"`
	Header docTitle `yaml:"header" json:"header"`
	Tabs   []docTab `yaml:"tabs" json:"tabs"`
	Footer string   `yaml:"footer" json:"footer"`
}

type docPage struct {
	Title  string `yaml:"title" json:"title"`
	Icon   string `yaml:"icon" json:"icon"`
	Layout string `yaml:"layout" json:"layout"`
}

type docTitle struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

type docTab struct {
	ID      string     `yaml:"id" json:"id"`
	Title   string     `yaml:"title" json:"title"`
	Heading string     `yaml:"heading" json:"heading"`
	Blocks  []docBlock `yaml:"blocks" json:"blocks"`
}

type docBlock struct {
	Type    string       `yaml:"type" json:"type"`
	Text    string       `yaml:"text,omitempty" json:"text,omitempty"`
	Kind    string       `yaml:"kind,omitempty" json:"kind,omitempty"`
	Title   string       `yaml:"title,omitempty" json:"title,omitempty"`
	Label   string       `yaml:"label,omitempty" json:"label,omitempty"`
	Value   string       `yaml:"value,omitempty" json:"value,omitempty"`
	Delta   string       `yaml:"delta,omitempty" json:"delta,omitempty"`
	Ratios  []float64    `yaml:"ratios,omitempty" json:"ratios,omitempty"`
	Columns [][]docBlock `yaml:"columns,omitempty" json:"columns,omitempty"`
	Table   []docColumn  `yaml:"table,omitempty" json:"table,omitempty"`
}

type docColumn struct {
	Name  string `yaml:"name" json:"name"`
	Cells []any  `yaml:"cells" json:"cells"`
}

func document(d deck.Deck, tabs []int) docDeck {
	doc := docDeck{
		Page:   docPage{Title: d.Page.Title, Icon: d.Page.Icon, Layout: string(d.Page.Layout)},
		Header: docTitle{Title: d.Header.Title, Subtitle: d.Header.Subtitle},
		Footer: d.Footer.Note,
	}
	for _, i := range tabs {
		t := d.Tabs[i]
		p := t.Panel()
		doc.Tabs = append(doc.Tabs, docTab{
			ID:      t.ID,
			Title:   t.Title(),
			Heading: p.Heading,
			Blocks:  docBlocks(p.Blocks),
		})
	}
	return doc
}

func docBlocks(blocks []deck.Block) []docBlock {
	out := make([]docBlock, 0, len(blocks))
	for _, blk := range blocks {
		switch v := blk.(type) {
		case deck.Subheading:
			out = append(out, docBlock{Type: "subheading", Text: v.Text})
		case deck.Markdown:
			out = append(out, docBlock{Type: "markdown", Text: v.Source})
		case deck.Callout:
			out = append(out, docBlock{Type: "callout", Kind: v.Kind.String(), Title: v.Title, Text: v.Body})
		case deck.Metric:
			out = append(out, docBlock{Type: "metric", Label: v.Label, Value: v.Value, Delta: v.Delta})
		case deck.Table:
			cols := make([]docColumn, 0, len(v.Columns))
			for _, c := range v.Columns {
				cells := make([]any, 0, len(c.Cells))
				for _, cell := range c.Cells {
					cells = append(cells, cell.Value())
				}
				cols = append(cols, docColumn{Name: c.Name, Cells: cells})
			}
			out = append(out, docBlock{Type: "table", Table: cols})
		case deck.Columns:
			nested := make([][]docBlock, 0, len(v.Cols))
			for _, col := range v.Cols {
				nested = append(nested, docBlocks(col))
			}
			out = append(out, docBlock{Type: "columns", Ratios: v.Ratios, Columns: nested})
		case deck.Divider:
			out = append(out, docBlock{Type: "divider"})
		}
	}
	return out
}

func encodeYAML(doc docDeck) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encodeJSON(doc docDeck) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
