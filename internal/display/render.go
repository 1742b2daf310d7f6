// Package display renders boards, both as static output for the generate
// command and interactively via Bubble Tea.
package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/buzzbingo/internal/board"
)

const (
	minCellWidth = 6
	maxCellWidth = 16
)

// RenderBoard renders the board as a static grid, marking checked and free
// squares. Used by the generate command; the play TUI renders through its
// own model so it can overlay the cursor and winning line.
func RenderBoard(b *board.Board) string {
	return renderGrid(b, DefaultStyles(), -1, -1, nil)
}

// renderGrid draws the full grid. cursorRow/cursorCol of -1 means no cursor;
// winning marks squares to highlight by row-major index.
func renderGrid(b *board.Board, styles *Styles, cursorRow, cursorCol int, winning map[int]bool) string {
	w := cellWidth(b)
	rows := make([]string, 0, b.Size)
	for row := 0; row < b.Size; row++ {
		cells := make([]string, 0, b.Size)
		for col := 0; col < b.Size; col++ {
			sq := b.At(row, col)
			style := styles.Cell
			switch {
			case winning[row*b.Size+col]:
				style = styles.Winning
			case sq.Free:
				style = styles.Free
			case sq.Checked:
				style = styles.Checked
			}
			if row == cursorRow && col == cursorCol {
				style = style.BorderForeground(styles.Cursor.GetBorderTopForeground()).Bold(true)
			}
			cells = append(cells, style.Width(w).Render(cellText(sq, w)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cellText(sq *board.Square, w int) string {
	label := truncate(sq.Label, w)
	if sq.Free {
		return label
	}
	if sq.Checked {
		return "✓ " + truncate(sq.Label, w-2)
	}
	return label
}

// cellWidth picks one width for every cell, bounded so long labels truncate
// instead of blowing out the grid
func cellWidth(b *board.Board) int {
	w := minCellWidth
	for i := range b.Squares {
		if n := len([]rune(b.Squares[i].Label)); n > w {
			w = n
		}
	}
	if w > maxCellWidth {
		w = maxCellWidth
	}
	return w
}

func truncate(s string, w int) string {
	if w < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w-1]) + "…"
}
