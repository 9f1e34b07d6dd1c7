// Package ui provides the Bubble Tea front end for quickpick: a three-region
// full-screen layout over the menu state, with arrow-key navigation, Enter to
// confirm, and Escape to quit.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quickpick/internal/menu"
	"quickpick/internal/trace"
	"quickpick/internal/ui/textutil"
)

// Model is the Bubble Tea model for the quickpick menu.
type Model struct {
	menu    *menu.Menu
	session *trace.Session
	styles  Styles
	keys    keyMap
	help    help.Model

	// UI dimensions
	width  int
	height int
}

// Compile-time interface compliance check
var _ tea.Model = (*Model)(nil)

// NewModel creates a model over the given menu. session may be nil.
func NewModel(m *menu.Menu, session *trace.Session) *Model {
	return &Model{
		menu:    m,
		session: session,
		styles:  DefaultStyles(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Run starts the program on the alternate screen and blocks until the user
// quits or the terminal fails. Bubble Tea restores the terminal on every
// exit path, including errors and panics.
func Run(ctx context.Context, m *menu.Menu, session *trace.Session) error {
	p := tea.NewProgram(NewModel(m, session), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.menu.Next()
			m.session.Move("next", m.menu.Cursor(), m.menu.Label(m.menu.Cursor()))
		case key.Matches(msg, m.keys.Up):
			m.menu.Prev()
			m.session.Move("prev", m.menu.Cursor(), m.menu.Label(m.menu.Cursor()))
		case key.Matches(msg, m.keys.Confirm):
			m.menu.Confirm()
			m.session.Confirm(m.menu.Cursor(), m.menu.Confirmed())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	width, height := m.width, m.height
	// Default dimensions if no WindowSizeMsg arrived yet (and for tests)
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	helpView := ""
	if height >= 12 {
		helpView = m.help.View(m.keys)
	}
	frameRows := height - lipgloss.Height(helpView)
	if helpView != "" {
		frameRows-- // blank line between frames and help
	}

	hChoices, hSelected, hMessage := regionHeights(frameRows)
	innerW := width - 2

	choices := m.styles.titledBox("Choices", m.choiceLines(innerW), width, hChoices)
	selected := m.styles.titledBox("Selected Item",
		m.styles.Normal.Render(textutil.Truncate(m.menu.Confirmed(), innerW)), width, hSelected)
	message := m.styles.titledBox("Message",
		m.styles.Normal.Render(textutil.Truncate(m.menu.Message(), innerW)), width, hMessage)

	parts := make([]string, 0, 5)
	for _, frame := range []string{choices, selected, message} {
		if frame != "" { // dropped on short terminals
			parts = append(parts, frame)
		}
	}
	if helpView != "" {
		parts = append(parts, "", helpView)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// choiceLines renders one line per choice, highlighting the cursor entry.
// Labels are truncated to the frame's inner width before styling so the
// borders stay aligned.
func (m *Model) choiceLines(innerW int) string {
	labelW := innerW - 2 // room for the cursor glyph
	if labelW < 1 {
		labelW = 1
	}

	lines := make([]string, 0, m.menu.Len())
	for i := 0; i < m.menu.Len(); i++ {
		label := textutil.Truncate(m.menu.Label(i), labelW)
		if i == m.menu.Cursor() {
			lines = append(lines, m.styles.Selected.Render("> "+label))
		} else {
			lines = append(lines, m.styles.Normal.Render("  "+label))
		}
	}
	return strings.Join(lines, "\n")
}
