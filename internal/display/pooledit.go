package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/buzzbingo/internal/pool"
)

// Editor is the Bubble Tea model for editing one pool inside a pool file.
// Edits happen in memory; ctrl+s writes the whole file back.
type Editor struct {
	path     string
	name     string
	file     *pool.File
	pool     *pool.Pool
	input    textinput.Model
	styles   *Styles
	selected int
	status   string
	dirty    bool
	quitting bool
}

// NewEditor creates an editor for the named pool in file
func NewEditor(path, name string, f *pool.File, p *pool.Pool) Editor {
	ti := textinput.New()
	ti.Placeholder = "new label"
	ti.CharLimit = 64
	ti.Focus()

	return Editor{
		path:   path,
		name:   name,
		file:   f,
		pool:   p,
		input:  ti,
		styles: DefaultStyles(),
	}
}

// Init implements tea.Model
func (e Editor) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			e.quitting = true
			return e, tea.Quit

		case "up":
			if e.selected > 0 {
				e.selected--
			}
			return e, nil

		case "down":
			if e.selected < e.pool.Len()-1 {
				e.selected++
			}
			return e, nil

		case "enter":
			text := e.input.Value()
			if err := e.pool.Add(text); err != nil {
				e.status = e.styles.Error.Render(err.Error())
				return e, nil
			}
			e.input.SetValue("")
			e.dirty = true
			e.status = fmt.Sprintf("added %q", strings.TrimSpace(text))
			return e, nil

		case "ctrl+d":
			label, ok := e.pool.Label(e.selected)
			if !ok {
				return e, nil
			}
			if err := e.pool.Remove(e.selected); err != nil {
				e.status = e.styles.Error.Render(err.Error())
				return e, nil
			}
			if e.selected >= e.pool.Len() && e.selected > 0 {
				e.selected--
			}
			e.dirty = true
			e.status = fmt.Sprintf("removed %q", label)
			return e, nil

		case "ctrl+f":
			if err := e.pool.SetFree(e.selected); err != nil {
				e.status = e.styles.Error.Render(err.Error())
				return e, nil
			}
			e.dirty = true
			label, _ := e.pool.Label(e.selected)
			e.status = fmt.Sprintf("%q is now the free label", label)
			return e, nil

		case "ctrl+g":
			e.pool.ClearFree()
			e.dirty = true
			e.status = "free designation cleared"
			return e, nil

		case "ctrl+s":
			if err := pool.SaveFile(e.path, e.file); err != nil {
				e.status = e.styles.Error.Render(err.Error())
				return e, nil
			}
			e.dirty = false
			e.status = fmt.Sprintf("saved %s", e.path)
			return e, nil
		}
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

// View implements tea.Model
func (e Editor) View() string {
	if e.quitting {
		return ""
	}

	var sb strings.Builder
	title := fmt.Sprintf(" pool %q · %s ", e.name, e.path)
	if e.dirty {
		title += "* "
	}
	sb.WriteString(e.styles.Header.Render(title))
	sb.WriteString("\n\n")

	freeIdx := -1
	if i, ok := e.pool.FreeIndex(); ok {
		freeIdx = i
	}
	for i, label := range e.pool.Labels() {
		marker := "  "
		if i == e.selected {
			marker = "> "
		}
		line := marker + label
		if i == freeIdx {
			line += " (free)"
			sb.WriteString(e.styles.Free.UnsetBorderStyle().Render(line))
		} else if i == e.selected {
			sb.WriteString(e.styles.Status.Render(line))
		} else {
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	if e.pool.Len() == 0 {
		sb.WriteString(e.styles.Help.Render("  (no labels yet)"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(e.input.View())
	sb.WriteString("\n\n")
	if e.status != "" {
		sb.WriteString(e.status)
		sb.WriteString("\n")
	}
	sb.WriteString(e.styles.Help.Render("enter add · ↑/↓ select · ctrl+d delete · ctrl+f free · ctrl+g clear free · ctrl+s save · esc quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
