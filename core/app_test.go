package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/launchplan/deck"
	"github.com/jask/launchplan/render"
	"github.com/jask/launchplan/widgets"
)

func newTestModel(t *testing.T, d deck.Deck, width, height int, opts ...Option) Model {
	t.Helper()
	r := render.NewRenderer(render.NewStyles(render.Classic()), widgets.NewMarkdownRenderer("notty"))
	m := NewModel(d, r, opts...)
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var headings = []string{
	"Executive Summary",
	"Critical Strategy Shift: Partner-First Development",
	"Phase 1: Organizational Setup (Week 1)",
	"Phase 2: Outsourced Team Engagement (Weeks 1-2)",
	"Phase 3: Partner Acquisition (Weeks 2-6)",
	"Phase 4: CTO-Led Demo Development (Weeks 2-6)",
	"Phase 5: Full Application Build (Weeks 8-20)",
	"Phase 6: Partner Pilot Program (Weeks 18-22)",
	"Integrated Timeline",
	"Budget Considerations",
}

func TestNextAndPrevWrapAround(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	if m.ActiveTab() != 0 {
		t.Fatalf("initial tab = %d, want 0", m.ActiveTab())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ActiveTab() != 9 {
		t.Fatalf("prev from first = %d, want 9", m.ActiveTab())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ActiveTab() != 0 {
		t.Fatalf("next from last = %d, want 0", m.ActiveTab())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, runes("l"))
	if m.ActiveTab() != 2 {
		t.Fatalf("after right,l = %d, want 2", m.ActiveTab())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runes("h"))
	if m.ActiveTab() != 0 {
		t.Fatalf("after left,h = %d, want 0", m.ActiveTab())
	}
}

func TestDigitKeysSelectTabs(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	for i, k := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"} {
		m = press(t, m, runes(k))
		if m.ActiveTab() != i {
			t.Fatalf("key %q selected %d, want %d", k, m.ActiveTab(), i)
		}
	}
}

func TestEveryTabReachableFromEveryTab(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	for from := 0; from < deck.TabCount; from++ {
		for to := 0; to < deck.TabCount; to++ {
			m.SwitchTab(from)
			m.SwitchTab(to)
			if m.ActiveTab() != to {
				t.Fatalf("switch %d -> %d landed on %d", from, to, m.ActiveTab())
			}
		}
	}
}

func TestSwitchTabIgnoresOutOfRange(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	m.SwitchTab(3)
	m.SwitchTab(-1)
	m.SwitchTab(deck.TabCount)
	if m.ActiveTab() != 3 {
		t.Fatalf("active = %d, want 3", m.ActiveTab())
	}
}

func TestViewShowsOnlyActivePanel(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	for i := range headings {
		m.SwitchTab(i)
		view := ansi.Strip(m.View())
		for j, h := range headings {
			has := strings.Contains(view, h)
			if j == i && !has {
				t.Fatalf("tab %d view missing its heading %q", i, h)
			}
			if j != i && has {
				t.Fatalf("tab %d view also shows heading %q", i, h)
			}
		}
		if !strings.Contains(view, "AI Compliance Platform") {
			t.Fatalf("tab %d view missing page header", i)
		}
		if !strings.Contains(view, "Partner feedback drives product success") {
			t.Fatalf("tab %d view missing footer note", i)
		}
	}
}

func TestViewFitsWindowHeight(t *testing.T) {
	m := newTestModel(t, deck.New(), 120, 40)
	if got := len(strings.Split(m.View(), "\n")); got != 40 {
		t.Fatalf("view lines = %d, want 40", got)
	}
}

func TestSwitchingTabsResetsScroll(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 20)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.viewport.YOffset == 0 {
		t.Fatalf("expected overview panel to scroll in a short window")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.viewport.YOffset != 0 {
		t.Fatalf("scroll offset after switch = %d, want 0", m.viewport.YOffset)
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	cw := m.contentWidth()
	_, zones := m.tabStrip().layout(cw)
	top := m.tabStripTop(cw)
	z := zones[6]
	m = press(t, m, tea.MouseMsg{X: z.X0 + 1, Y: top + z.Row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.ActiveTab() != 6 {
		t.Fatalf("click selected %d, want 6", m.ActiveTab())
	}
	m = press(t, m, tea.MouseMsg{X: z.X0 + 1, Y: top + 40, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.ActiveTab() != 6 {
		t.Fatalf("click outside the strip changed tab to %d", m.ActiveTab())
	}
}

func TestMouseClickHonoursCenteredMargin(t *testing.T) {
	d := deck.New()
	d.Page.Layout = deck.LayoutCentered
	m := newTestModel(t, d, 160, 60)
	if m.contentWidth() != centeredWidth || m.leftMargin() != 30 {
		t.Fatalf("content width %d margin %d, want %d and 30", m.contentWidth(), m.leftMargin(), centeredWidth)
	}
	_, zones := m.tabStrip().layout(m.contentWidth())
	z := zones[2]
	m = press(t, m, tea.MouseMsg{X: 30 + z.X0, Y: m.tabStripTop(m.contentWidth()) + z.Row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.ActiveTab() != 2 {
		t.Fatalf("click selected %d, want 2", m.ActiveTab())
	}
}

func TestJumpPickerSelectsByName(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	m = press(t, m, runes("/"))
	if !m.JumpOpen() {
		t.Fatalf("expected jump picker to open")
	}
	if !strings.Contains(ansi.Strip(m.View()), "Jump to tab") {
		t.Fatalf("expected picker popup in view")
	}
	m = press(t, m, runes("b"), runes("u"), runes("d"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.JumpOpen() {
		t.Fatalf("expected picker to close after selection")
	}
	if m.ActiveTab() != 9 {
		t.Fatalf("jump selected %d, want 9", m.ActiveTab())
	}
}

func TestJumpPickerFallsBackOnTypos(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	m = press(t, m, runes("/"))
	for _, r := range "pilat" {
		m = press(t, m, runes(string(r)))
	}
	if !m.jump.picker.Approximate() {
		t.Fatalf("expected typo fallback for %q", m.jump.picker.Query())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ActiveTab() != 7 {
		t.Fatalf("typo jump selected %d, want 7", m.ActiveTab())
	}
}

func TestJumpPickerEscKeepsTab(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	m.SwitchTab(4)
	m = press(t, m, runes("/"), runes("q"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.JumpOpen() {
		t.Fatalf("expected esc to close the picker")
	}
	if m.ActiveTab() != 4 {
		t.Fatalf("esc changed tab to %d", m.ActiveTab())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, deck.New(), 200, 60)
		next, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", msg)
		}
		if next.(Model).View() != "" {
			t.Fatalf("%s: expected empty view after quit", msg)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	short := m.viewport.Height
	m = press(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatalf("expected full help")
	}
	if m.viewport.Height >= short {
		t.Fatalf("full help should shrink the body: %d >= %d", m.viewport.Height, short)
	}
	m = press(t, m, runes("?"))
	if m.help.ShowAll || m.viewport.Height != short {
		t.Fatalf("expected short help and the short-help body height")
	}
}

func TestStartTabAndWindowTitle(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60, WithStartTab(8))
	if m.ActiveTab() != 8 {
		t.Fatalf("start tab = %d, want 8", m.ActiveTab())
	}
	if got, want := m.WindowTitle(), "🚀 AI Compliance Platform - Implementation Strategy"; got != want {
		t.Fatalf("window title = %q, want %q", got, want)
	}
	if m.Init() == nil {
		t.Fatalf("expected Init to set the window title")
	}
	m = newTestModel(t, deck.New(), 200, 60, WithStartTab(42))
	if m.ActiveTab() != 0 {
		t.Fatalf("out of range start tab should be ignored, got %d", m.ActiveTab())
	}
}

func TestPanelCacheReusesRenders(t *testing.T) {
	m := newTestModel(t, deck.New(), 200, 60)
	m.SwitchTab(9)
	m.SwitchTab(0)
	m.SwitchTab(9)
	if _, ok := m.panels[cacheKey{tab: 9, width: 200}]; !ok {
		t.Fatalf("expected budget panel cached at width 200")
	}
	if got := m.panel(200); got != m.panels[cacheKey{tab: 9, width: 200}] {
		t.Fatalf("cached render differs from lookup")
	}
}
