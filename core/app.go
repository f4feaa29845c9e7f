package core

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/launchplan/deck"
	"github.com/jask/launchplan/render"
)

// centeredWidth caps the content column in the centered page layout.
const centeredWidth = 100

type cacheKey struct {
	tab   int
	width int
}

// Model is the bubbletea model for the deck. Exactly one tab is active at a
// time; every tab is reachable from every other.
type Model struct {
	deck     deck.Deck
	renderer *render.Renderer
	styles   render.Styles
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	log      *zap.Logger

	width     int
	height    int
	activeTab int
	status    string
	quitting  bool
	jump      *jumpPicker

	panels map[cacheKey]string
}

type Option func(*Model)

// WithStartTab selects the initial tab by zero-based index. Out of range
// values are ignored.
func WithStartTab(index int) Option {
	return func(m *Model) {
		if index >= 0 && index < len(m.deck.Tabs) {
			m.activeTab = index
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

func NewModel(d deck.Deck, r *render.Renderer, opts ...Option) Model {
	styles := r.Styles()
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.FullKey = styles.HelpKey
	h.Styles.ShortDesc = styles.Help
	h.Styles.FullDesc = styles.Help
	h.Styles.ShortSeparator = styles.Help
	h.Styles.FullSeparator = styles.Help

	m := Model{
		deck:     d,
		renderer: r,
		styles:   styles,
		keys:     DefaultKeyMap(),
		help:     h,
		viewport: viewport.New(100, 20),
		log:      zap.NewNop(),
		width:    100,
		height:   32,
		status:   "Ready",
		panels:   make(map[cacheKey]string),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.WindowTitle())
}

// WindowTitle is the terminal title derived from the page metadata.
func (m Model) WindowTitle() string {
	p := m.deck.Page
	if p.Icon == "" {
		return p.Title
	}
	return p.Icon + " " + p.Title
}

func (m Model) ActiveTab() int { return m.activeTab }

func (m Model) ActiveTitle() string {
	if len(m.deck.Tabs) == 0 {
		return ""
	}
	return m.deck.Tabs[m.activeTab].Title()
}

func (m Model) Status() string { return m.status }

func (m Model) JumpOpen() bool { return m.jump != nil }

func (m *Model) SetStatus(msg string) {
	m.status = msg
}

// SwitchTab activates index and scrolls its panel to the top. Out of range
// indexes are ignored.
func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.deck.Tabs) {
		return
	}
	from := m.activeTab
	m.activeTab = index
	m.refreshViewport()
	m.viewport.GotoTop()
	m.SetStatus(m.deck.Tabs[index].Title())
	if from != index {
		m.log.Debug("tab switched",
			zap.String("from", m.deck.Tabs[from].ID),
			zap.String("to", m.deck.Tabs[index].ID))
	}
}

func (m *Model) NextTab() {
	if n := len(m.deck.Tabs); n > 0 {
		m.SwitchTab((m.activeTab + 1) % n)
	}
}

func (m *Model) PrevTab() {
	if n := len(m.deck.Tabs); n > 0 {
		m.SwitchTab((m.activeTab - 1 + n) % n)
	}
}

// contentWidth is the width of the content column for the page layout.
func (m Model) contentWidth() int {
	w := max(1, m.width)
	if m.deck.Page.Layout == deck.LayoutCentered {
		return min(w, centeredWidth)
	}
	return w
}

func (m Model) leftMargin() int {
	return max(0, (max(1, m.width)-m.contentWidth())/2)
}

func (m Model) tabStrip() TabStrip {
	titles := make([]string, 0, len(m.deck.Tabs))
	for _, t := range m.deck.Tabs {
		titles = append(titles, t.Title())
	}
	return TabStrip{Titles: titles, Active: m.activeTab, Tab: m.styles.Tab, Sel: m.styles.ActiveTab}
}

// panel renders the active tab's panel, caching by tab and width.
func (m Model) panel(width int) string {
	k := cacheKey{tab: m.activeTab, width: width}
	if s, ok := m.panels[k]; ok {
		return s
	}
	s := m.renderer.Panel(m.deck.Tabs[m.activeTab].Panel(), width)
	m.panels[k] = s
	return s
}

func (m *Model) refreshViewport() {
	if len(m.deck.Tabs) == 0 {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.panel(m.contentWidth()))
}

// layout sizes the viewport to whatever the chrome leaves over.
func (m *Model) layout() {
	cw := m.contentWidth()
	m.help.Width = cw
	m.viewport.Width = cw
	m.viewport.Height = max(1, m.height-m.chromeHeight(cw))
	m.refreshViewport()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		offset := m.viewport.YOffset
		m.layout()
		m.viewport.SetYOffset(offset)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jump != nil {
		idx, done, selected := m.jump.handleKey(msg.String())
		if done {
			m.jump = nil
			m.SetStatus("Ready")
		}
		if selected {
			m.SwitchTab(idx)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.NextTab()
	case key.Matches(msg, m.keys.Prev):
		m.PrevTab()
	case key.Matches(msg, m.keys.Select):
		if idx, ok := tabForDigit(msg.String()); ok {
			m.SwitchTab(idx)
		}
	case key.Matches(msg, m.keys.Jump):
		m.jump = newJumpPicker(m.deck)
		m.SetStatus("Jump to tab")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.jump != nil {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		cw := m.contentWidth()
		top := m.tabStripTop(cw)
		if idx, ok := m.tabStrip().HitTest(cw, msg.X-m.leftMargin(), msg.Y-top); ok {
			m.SwitchTab(idx)
		}
	}
	return m, nil
}
