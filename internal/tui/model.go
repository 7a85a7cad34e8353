// Package tui is the terminal presentation of the content browser. The
// bubbletea program never mutates browser state: key presses become
// controller intents, and every Screen the controller publishes arrives as a
// ScreenMsg.
package tui

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/writeguide/internal/browser"
	"github.com/ziadkadry99/writeguide/internal/present"
)

const (
	sidebarWidth = 28
	appTitle     = "寫作指南 WriteGuide"
	loadingText  = "載入中… Loading…"
)

// Controller is the part of browser.Controller the model drives.
type Controller interface {
	Select(id string)
	FragmentChanged()
	ToggleSidebar()
}

// Navigator moves through session history.
type Navigator interface {
	Back() bool
	Forward() bool
}

// ScreenMsg carries a published browser screen into the program.
type ScreenMsg struct{ Screen browser.Screen }

// WidthTracker is a browser.Viewport fed by terminal resize events.
type WidthTracker struct{ w atomic.Int64 }

// NewWidthTracker starts at the given width.
func NewWidthTracker(initial int) *WidthTracker {
	t := &WidthTracker{}
	t.Set(initial)
	return t
}

func (t *WidthTracker) Width() int { return int(t.w.Load()) }

func (t *WidthTracker) Set(width int) { t.w.Store(int64(width)) }

// ProgramDisplay forwards screens to a bubbletea program. Screens shown before
// Attach are dropped.
type ProgramDisplay struct {
	mu sync.Mutex
	p  *tea.Program
}

// Attach sets the receiving program.
func (d *ProgramDisplay) Attach(p *tea.Program) {
	d.mu.Lock()
	d.p = p
	d.mu.Unlock()
}

func (d *ProgramDisplay) Show(s browser.Screen) {
	d.mu.Lock()
	p := d.p
	d.mu.Unlock()
	if p != nil {
		p.Send(ScreenMsg{Screen: s})
	}
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Back    key.Binding
	Forward key.Binding
	Sidebar key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:    key.NewBinding(key.WithKeys("b", "left"), key.WithHelp("b", "back")),
		Forward: key.NewBinding(key.WithKeys("f", "right"), key.WithHelp("f", "forward")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Forward, k.Sidebar, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// Options tune the model.
type Options struct {
	// GlamourStyle names a glamour standard style. Empty picks one from the
	// terminal background.
	GlamourStyle string
	Styles       *Styles
}

// Model is the bubbletea model of the browser.
type Model struct {
	ctrl    Controller
	history Navigator
	width   *WidthTracker

	styles   Styles
	keys     keyMap
	glamour  string
	renderer *glamour.TermRenderer
	wrap     int

	viewport viewport.Model
	screen   browser.Screen
	ready    bool
	cursor   int
	cols     int
	rows     int
}

// New creates a model. history may be nil when back/forward is unavailable.
func New(ctrl Controller, history Navigator, width *WidthTracker, opts Options) Model {
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	if width == nil {
		width = NewWidthTracker(0)
	}
	return Model{
		ctrl:     ctrl,
		history:  history,
		width:    width,
		styles:   styles,
		keys:     defaultKeys(),
		glamour:  opts.GlamourStyle,
		viewport: viewport.New(80, 20),
		cols:     80,
		rows:     24,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.width.Set(msg.Width)
		m.layout()
		return m, nil

	case ScreenMsg:
		prev := m.screen
		m.screen = msg.Screen
		m.ready = true
		m.syncCursor()
		m.layout()
		if prev.Selected != m.screen.Selected || prev.View.Kind != m.screen.View.Kind || prev.Phase != m.screen.Phase {
			m.viewport.GotoTop()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up) && m.screen.SidebarOpen:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down) && m.screen.SidebarOpen:
			if m.cursor < len(m.screen.Nav)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Open):
			if m.cursor < len(m.screen.Nav) {
				id := m.screen.Nav[m.cursor].ID
				return m, m.intent(func(c Controller) { c.Select(id) })
			}
			return m, nil
		case key.Matches(msg, m.keys.Back):
			if m.history != nil && m.history.Back() {
				return m, m.intent(Controller.FragmentChanged)
			}
			return m, nil
		case key.Matches(msg, m.keys.Forward):
			if m.history != nil && m.history.Forward() {
				return m, m.intent(Controller.FragmentChanged)
			}
			return m, nil
		case key.Matches(msg, m.keys.Sidebar):
			return m, m.intent(Controller.ToggleSidebar)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// intent runs f off the program loop. The controller may be blocked handing
// the program a screen, so it is never called from Update directly.
func (m Model) intent(f func(Controller)) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		f(ctrl)
		return nil
	}
}

// syncCursor follows the active item and keeps the cursor in range.
func (m *Model) syncCursor() {
	for i, it := range m.screen.Nav {
		if it.Active {
			m.cursor = i
			return
		}
	}
	if m.cursor >= len(m.screen.Nav) {
		m.cursor = max(len(m.screen.Nav)-1, 0)
	}
}

func (m *Model) contentWidth() int {
	w := m.cols
	if m.screen.SidebarOpen {
		w -= sidebarWidth + 1
	}
	return max(w, 10)
}

// layout sizes the viewport and re-renders the current view into it.
func (m *Model) layout() {
	w := m.contentWidth()
	m.viewport.Width = w
	m.viewport.Height = max(m.rows-2, 1)

	wrap := max(w-4, 10)
	if m.renderer == nil || m.wrap != wrap {
		m.renderer = newRenderer(m.glamour, wrap)
		m.wrap = wrap
	}
	m.viewport.SetContent(m.styles.Content.Render(m.renderContent()))
}

func newRenderer(style string, wrap int) *glamour.TermRenderer {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil
	}
	return r
}

func (m *Model) renderContent() string {
	if !m.ready {
		return loadingText
	}
	md := present.Markdown(m.screen.View)
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (m Model) View() string {
	header := m.styles.Header.Render(appTitle)
	if m.screen.Phase == browser.PhaseFetching {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, m.styles.Status.Render(loadingText))
	}

	body := m.viewport.View()
	if m.screen.SidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), body)
	}

	footer := m.styles.Footer.Render(m.keys.help())
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) sidebar() string {
	var b strings.Builder
	if m.screen.NavError != "" {
		b.WriteString(m.styles.NavError.Render(m.screen.NavError))
	}
	for i, it := range m.screen.Nav {
		if i > 0 {
			b.WriteByte('\n')
		}
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		style := m.styles.Item
		switch {
		case it.Active:
			style = m.styles.ItemActive
		case i == m.cursor:
			style = m.styles.ItemCursor
		}
		b.WriteString(style.Render(marker + it.Title))
	}
	return m.styles.Sidebar.Height(max(m.rows-2, 1)).Render(b.String())
}
