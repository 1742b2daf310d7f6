package display

import "github.com/charmbracelet/lipgloss"

// Styles contains all styling for board rendering and the TUIs
type Styles struct {
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Checked lipgloss.Style
	Free    lipgloss.Style
	Winning lipgloss.Style
	Cursor  lipgloss.Style
	Banner  lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the standard colour scheme
func DefaultStyles() *Styles {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Align(lipgloss.Center)

	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Cell: cell,
		Checked: cell.
			BorderForeground(lipgloss.Color("#04B575")).
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Free: cell.
			BorderForeground(lipgloss.Color("#7D56F4")).
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Winning: cell.
			BorderForeground(lipgloss.Color("#FFD700")).
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Cursor: cell.
			BorderForeground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FFD700")).
			Padding(0, 2).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
