package display

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/buzzbingo/internal/game"
)

// timeResolution is how precisely elapsed time is shown
const timeResolution = time.Second

// Model is the Bubble Tea model for interactive play
type Model struct {
	session *game.Session
	styles  *Styles

	cursorRow int
	cursorCol int
	width     int
	height    int
	err       error
	quitting  bool
}

// NewModel creates a play model around an existing session
func NewModel(session *game.Session) Model {
	return Model{
		session: session,
		styles:  DefaultStyles(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		size := m.session.Board().Size
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursorRow > 0 {
				m.cursorRow--
			}
		case "down", "j":
			if m.cursorRow < size-1 {
				m.cursorRow++
			}
		case "left", "h":
			if m.cursorCol > 0 {
				m.cursorCol--
			}
		case "right", "l":
			if m.cursorCol < size-1 {
				m.cursorCol++
			}
		case " ", "enter":
			m.session.Toggle(m.cursorRow, m.cursorCol)
		case "n":
			if err := m.session.Regenerate(); err != nil {
				m.err = err
			} else {
				m.err = nil
				m.cursorRow = 0
				m.cursorCol = 0
			}
		case "r":
			m.session.Board().Reset()
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	b := m.session.Board()
	winning := make(map[int]bool)
	for _, line := range b.CompletedLines() {
		for _, sq := range line {
			winning[sq.Row*b.Size+sq.Col] = true
		}
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(" buzzbingo "))
	sb.WriteString("\n\n")
	sb.WriteString(renderGrid(b, m.styles, m.cursorRow, m.cursorCol, winning))
	sb.WriteString("\n")

	if m.session.Completed() {
		sb.WriteString(m.styles.Banner.Render(" B I N G O ! "))
		sb.WriteString(" ")
		sb.WriteString(m.styles.Status.Render(fmt.Sprintf("in %s", m.session.Elapsed().Round(timeResolution))))
		sb.WriteString("\n")
	}
	if m.err != nil {
		sb.WriteString(m.styles.Error.Render(m.err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render("arrows/hjkl move · space toggle · n new board · r reset · q quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
