package render

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/launchplan/deck"
	"github.com/jask/launchplan/widgets"
)

const testWidth = 240

func newTestRenderer() *Renderer {
	return NewRenderer(NewStyles(Classic()), widgets.NewMarkdownRenderer("notty"))
}

func TestPanelRenderIsIdempotent(t *testing.T) {
	r := newTestRenderer()
	d := deck.New()
	for _, tab := range d.Tabs {
		first := r.Panel(tab.Panel(), testWidth)
		second := r.Panel(tab.Panel(), testWidth)
		if first != second {
			t.Fatalf("tab %s renders differently on a second pass", tab.ID)
		}
	}
}

func TestPanelsAreMutuallyExclusive(t *testing.T) {
	r := newTestRenderer()
	d := deck.New()
	headings := make([]string, len(d.Tabs))
	for i, tab := range d.Tabs {
		headings[i] = tab.Panel().Heading
	}
	for i, tab := range d.Tabs {
		out := ansi.Strip(r.Panel(tab.Panel(), testWidth))
		if !strings.Contains(out, headings[i]) {
			t.Fatalf("tab %s missing its own heading %q", tab.ID, headings[i])
		}
		for j, h := range headings {
			if j != i && strings.Contains(out, h) {
				t.Fatalf("tab %s leaks heading of tab %d: %q", tab.ID, j, h)
			}
		}
	}
}

func TestPanelLiteralContent(t *testing.T) {
	r := newTestRenderer()
	d := deck.New()
	cases := map[string][]string{
		"overview": {"Processing Time", "<30 sec", "vs 3+ hours manual", "Core Objective", "Partner-First Approach"},
		"strategy": {"Secure 1-2 innovation partners by Week 6", "What Partners Get:", "Case study rights"},
		"org-setup": {
			"Cloud Provider", "Claude + OCR + Embeddings", "GitHub Actions vs GitLab",
			"/Legal & Contracts", "Cloud provider choice affects all downstream decisions",
		},
		"team":     {"Kickoff Tasks", "Code repository setup", "3x/week"},
		"partners": {"Close 1-2 partners", "Terms signed", "Partnership Terms", "50% discount"},
		"demo":     {"Sample contributions", "Robustness", "Pre-compute results for smooth demo flow"},
		"build":    {"Sprint 6", "18-20", "Final sign-off", "Build Sprint Plan"},
		"pilot":    {"User Satisfaction", ">4.5/5", "Testimonial video"},
		"timeline": {"Production Launch", "Partner/Team", "Production launch with testimonials", "Week 24"},
		"budget":   {"$211,000", "Including 20% buffer", "Buffer (20%)", "$35,000", "Break-even: Month 8"},
	}
	for id, wants := range cases {
		idx, ok := d.TabIndex(id)
		if !ok {
			t.Fatalf("unknown tab %q", id)
		}
		out := ansi.Strip(r.Panel(d.Tabs[idx].Panel(), testWidth))
		for _, want := range wants {
			if !strings.Contains(out, want) {
				t.Fatalf("tab %s missing %q:\n%s", id, want, out)
			}
		}
	}
}

func TestTimelineMilestoneRows(t *testing.T) {
	r := newTestRenderer()
	d := deck.New()
	out := ansi.Strip(r.Panel(d.Tabs[8].Panel(), testWidth))
	rowRe := regexp.MustCompile(`(?m)^.*│\s*\d+\s*│\s*(\d+)\s*│\s*(Infrastructure|Outsourced|Innovation|Full build|Pilot program|Production launch)`)
	matches := rowRe.FindAllStringSubmatch(out, -1)
	want := []string{"1", "2", "6", "8", "18", "24"}
	if len(matches) != len(want) {
		t.Fatalf("milestone rows = %d, want %d:\n%s", len(matches), len(want), out)
	}
	for i, m := range matches {
		if m[1] != want[i] {
			t.Fatalf("milestone row %d week = %s, want %s", i, m[1], want[i])
		}
	}
}

func TestDocumentIncludesHeaderAndFooter(t *testing.T) {
	r := newTestRenderer()
	d := deck.New()
	out := ansi.Strip(r.Document(d, 0, testWidth))
	for _, want := range []string{
		"🚀 AI Compliance Platform",
		"Streamlined Implementation Strategy",
		"Executive Summary",
		"Remember: Partner feedback drives product success.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("document missing %q", want)
		}
	}
	if strings.Contains(out, "💰 Budget Considerations") {
		t.Fatalf("document renders an inactive panel")
	}
	if got := ansi.Strip(r.Document(d, 42, testWidth)); strings.Contains(got, "Executive Summary") {
		t.Fatalf("out of range tab should render header only")
	}
}

func TestNarrowWidthStillRenders(t *testing.T) {
	r := newTestRenderer()
	d := deck.New()
	for _, tab := range d.Tabs {
		if out := r.Panel(tab.Panel(), 60); strings.TrimSpace(out) == "" {
			t.Fatalf("tab %s rendered empty at width 60", tab.ID)
		}
	}
}

func TestTablesCanHideIndex(t *testing.T) {
	d := deck.New()
	withIdx := ansi.Strip(newTestRenderer().Panel(d.Tabs[9].Panel(), testWidth))
	noIdx := ansi.Strip(NewRenderer(NewStyles(Classic()), widgets.NewMarkdownRenderer("notty"), WithoutIndex()).Panel(d.Tabs[9].Panel(), testWidth))
	if withIdx == noIdx {
		t.Fatalf("WithoutIndex had no effect")
	}
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPaletteColorsAreValidHex(t *testing.T) {
	for _, p := range Palettes() {
		for _, c := range p.Colors() {
			if !hexColorRegex.MatchString(string(c)) {
				t.Errorf("palette %s: invalid hex color %q", p.Name, c)
			}
		}
	}
}

func TestClassicPaletteFollowsStylesheet(t *testing.T) {
	p := Classic()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"tab background", string(p.TabBg), "#f0f2f6"},
		{"selected tab", string(p.TabActiveBg), "#1f77b4"},
		{"selected tab text", string(p.TabActiveFg), "#ffffff"},
		{"card", string(p.CardBg), "#f0f2f6"},
		{"highlight", string(p.HighlightBg), "#e8f4f8"},
		{"highlight rule", string(p.HighlightBar), "#1f77b4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestPaletteByName(t *testing.T) {
	if p, err := PaletteByName(""); err != nil || p.Name != "classic" {
		t.Fatalf("default palette = %q, %v", p.Name, err)
	}
	if p, err := PaletteByName(" Mocha "); err != nil || p.Name != "mocha" {
		t.Fatalf("mocha palette = %q, %v", p.Name, err)
	}
	if _, err := PaletteByName("solarized"); !errors.Is(err, ErrUnknownPalette) {
		t.Fatalf("expected ErrUnknownPalette, got %v", err)
	}
}

func TestCalloutStylesDifferByKind(t *testing.T) {
	s := NewStyles(Classic())
	bars := map[lipgloss.TerminalColor]deck.CalloutKind{}
	for _, k := range []deck.CalloutKind{deck.CalloutInfo, deck.CalloutWarning, deck.CalloutSuccess} {
		bar := s.Callout(k).Bar
		if other, dup := bars[bar]; dup {
			t.Fatalf("callout kinds %v and %v share bar colour %v", other, k, bar)
		}
		bars[bar] = k
	}
	if s.Callout(deck.CalloutKind(99)).Bar != s.Callout(deck.CalloutInfo).Bar {
		t.Fatalf("unknown kind should fall back to info")
	}
}

func TestTablesKeepHeadersAndCellsWhole(t *testing.T) {
	r := newTestRenderer()
	d := deck.New()
	for _, width := range []int{100, 80} {
		for _, tab := range d.Tabs {
			out := ansi.Strip(r.Panel(tab.Panel(), width))
			deck.Walk(tab.Panel().Blocks, func(b deck.Block) {
				tbl, ok := b.(deck.Table)
				if !ok {
					return
				}
				for _, h := range tbl.Headers() {
					if !strings.Contains(out, h) {
						t.Fatalf("width %d, tab %s: header %q cut:\n%s", width, tab.ID, h, out)
					}
				}
				for _, row := range tbl.StringRows() {
					for _, cell := range row {
						want := []string{cell}
						if width < 100 {
							want = strings.Fields(cell)
						}
						for _, s := range want {
							if !strings.Contains(out, s) {
								t.Fatalf("width %d, tab %s: %q split:\n%s", width, tab.ID, s, out)
							}
						}
					}
				}
			})
		}
	}
}

func TestCalloutIconPerKind(t *testing.T) {
	r := newTestRenderer()
	for _, k := range []deck.CalloutKind{deck.CalloutInfo, deck.CalloutWarning, deck.CalloutSuccess} {
		icon := CalloutIcon(k)
		if icon == "" {
			t.Fatalf("kind %v has no icon", k)
		}
		out := ansi.Strip(r.Widget(deck.Callout{Kind: k, Body: "Secure partners"}).Render(60))
		if !strings.Contains(out, icon) {
			t.Fatalf("kind %v callout missing %q: %q", k, icon, out)
		}
		titled := ansi.Strip(r.Widget(deck.Callout{Kind: k, Title: "Partnership Terms"}).Render(60))
		if !strings.Contains(titled, icon+" Partnership Terms") {
			t.Fatalf("kind %v titled callout = %q", k, titled)
		}
	}
	if icon := CalloutIcon(deck.CalloutHighlight); icon != "" {
		t.Fatalf("highlight icon = %q, want none", icon)
	}
	out := ansi.Strip(r.Widget(deck.Callout{Kind: deck.CalloutWarning, Body: "⚠️ **Important:** Pre-compute results"}).Render(60))
	if strings.Count(out, "⚠") != 1 {
		t.Fatalf("warning icon doubled: %q", out)
	}
}
