package board

// Lines returns the board's 2*size + 2 win lines: each row, each column, the
// main diagonal (row == col) and the anti-diagonal (row == size-col-1).
// Lines are derived fresh from the squares on every call, never cached.
func (b *Board) Lines() [][]*Square {
	n := b.Size
	lines := make([][]*Square, 0, 2*n+2)

	for row := 0; row < n; row++ {
		line := make([]*Square, n)
		for col := 0; col < n; col++ {
			line[col] = b.At(row, col)
		}
		lines = append(lines, line)
	}
	for col := 0; col < n; col++ {
		line := make([]*Square, n)
		for row := 0; row < n; row++ {
			line[row] = b.At(row, col)
		}
		lines = append(lines, line)
	}

	main := make([]*Square, n)
	anti := make([]*Square, n)
	for i := 0; i < n; i++ {
		main[i] = b.At(i, i)
		anti[i] = b.At(i, n-i-1)
	}
	return append(lines, main, anti)
}

// Completed reports whether any line is fully checked. It is a pure function
// of the current checked flags: unchecking a square that broke the only
// completed line takes the board back to unsolved.
func (b *Board) Completed() bool {
	if len(b.Squares) == 0 {
		return false
	}
	for _, line := range b.Lines() {
		if lineChecked(line) {
			return true
		}
	}
	return false
}

// CompletedLines returns every fully checked line, for hosts that highlight
// the winning squares
func (b *Board) CompletedLines() [][]*Square {
	var out [][]*Square
	for _, line := range b.Lines() {
		if lineChecked(line) {
			out = append(out, line)
		}
	}
	return out
}

func lineChecked(line []*Square) bool {
	for _, sq := range line {
		if !sq.Checked {
			return false
		}
	}
	return true
}
