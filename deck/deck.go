package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TabCount is the number of panels in the deck.
const TabCount = 10

var ErrUnknownTab = errors.New("unknown tab")

type Layout string

const (
	LayoutWide     Layout = "wide"
	LayoutCentered Layout = "centered"
)

// Page is the page metadata applied once at startup.
type Page struct {
	Title  string
	Icon   string
	Layout Layout
}

type Header struct {
	Title    string
	Subtitle string
}

type Footer struct {
	Note string
}

// Tab pairs a label with the routine that builds its panel.
type Tab struct {
	ID    string
	Icon  string
	Label string
	Panel func() Panel
}

// Title is the label shown in the tab strip.
func (t Tab) Title() string {
	if t.Icon == "" {
		return t.Label
	}
	return t.Icon + " " + t.Label
}

type Panel struct {
	Heading string
	Blocks  []Block
}

type Deck struct {
	Page   Page
	Header Header
	Tabs   []Tab
	Footer Footer
}

func (d Deck) Labels() []string {
	out := make([]string, 0, len(d.Tabs))
	for _, t := range d.Tabs {
		out = append(out, t.Title())
	}
	return out
}

// TabIndex resolves a tab by id, label, full title, or 1-based position.
func (d Deck) TabIndex(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1, false
	}
	for i, t := range d.Tabs {
		if strings.EqualFold(t.ID, name) || strings.EqualFold(t.Label, name) || t.Title() == name {
			return i, true
		}
	}
	if pos, err := strconv.Atoi(name); err == nil && pos >= 1 && pos <= len(d.Tabs) {
		return pos - 1, true
	}
	return -1, false
}

// Lookup is TabIndex reporting a miss as ErrUnknownTab.
func (d Deck) Lookup(name string) (int, error) {
	idx, ok := d.TabIndex(name)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownTab, name)
	}
	return idx, nil
}

// Validate checks the tab count and every literal table in every panel.
func (d Deck) Validate() error {
	if len(d.Tabs) != TabCount {
		return fmt.Errorf("deck has %d tabs, want %d", len(d.Tabs), TabCount)
	}
	seen := make(map[string]bool, len(d.Tabs))
	for _, t := range d.Tabs {
		if seen[t.ID] {
			return fmt.Errorf("duplicate tab id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Panel == nil {
			return fmt.Errorf("tab %q has no panel", t.ID)
		}
		var err error
		Walk(t.Panel().Blocks, func(b Block) {
			if err != nil {
				return
			}
			if tbl, ok := b.(Table); ok {
				if vErr := tbl.Validate(); vErr != nil {
					err = fmt.Errorf("tab %q: %w", t.ID, vErr)
				}
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}
