package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/buzzbingo/internal/randutil"
)

func freshBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := Assemble(testPool(t, "a", "b", "c"), size, FreeCellCenter, randutil.New(1))
	require.NoError(t, err)
	b.Reset()
	// uncheck the free square too so each test controls every flag
	for i := range b.Squares {
		if b.Squares[i].Free {
			b.Squares[i].Checked = false
		}
	}
	return b
}

func TestLinesCount(t *testing.T) {
	t.Parallel()
	for _, size := range []int{1, 3, 5} {
		b := freshBoard(t, size)
		assert.Equal(t, 2*size+2, len(b.Lines()), "size %d", size)
		for _, line := range b.Lines() {
			assert.Len(t, line, size)
		}
	}
}

func TestCompletedRow(t *testing.T) {
	t.Parallel()
	b := freshBoard(t, 5)

	for col := 0; col < 5; col++ {
		b.At(0, col).Checked = true
	}
	assert.True(t, b.Completed())

	// unchecking any square in the row breaks the win again, no latch
	b.At(0, 3).Checked = false
	assert.False(t, b.Completed())
}

func TestCompletedColumn(t *testing.T) {
	t.Parallel()
	b := freshBoard(t, 4)

	for row := 0; row < 4; row++ {
		b.At(row, 2).Checked = true
	}
	assert.True(t, b.Completed())
}

func TestCompletedMainDiagonal(t *testing.T) {
	t.Parallel()
	b := freshBoard(t, 5)

	for i := 0; i < 5; i++ {
		b.At(i, i).Checked = true
	}
	assert.True(t, b.Completed(), "diagonal alone should win")

	// sanity: no row or column is complete
	for i := 0; i < 5; i++ {
		rowDone, colDone := true, true
		for j := 0; j < 5; j++ {
			rowDone = rowDone && b.At(i, j).Checked
			colDone = colDone && b.At(j, i).Checked
		}
		assert.False(t, rowDone, "row %d", i)
		assert.False(t, colDone, "col %d", i)
	}
}

func TestCompletedAntiDiagonal(t *testing.T) {
	t.Parallel()
	b := freshBoard(t, 5)

	for i := 0; i < 5; i++ {
		b.At(i, 4-i).Checked = true
	}
	assert.True(t, b.Completed())
}

func TestCompletedEmptyBoard(t *testing.T) {
	t.Parallel()
	b := &Board{}
	assert.False(t, b.Completed())
}

func TestCompletedUsesFreeSquare(t *testing.T) {
	t.Parallel()
	b, err := Assemble(testPool(t, "a", "b", "c"), 5, FreeCellCenter, randutil.New(1))
	require.NoError(t, err)

	// the pre-checked centre counts toward row 2
	for col := 0; col < 5; col++ {
		if col != 2 {
			b.At(2, col).Checked = true
		}
	}
	assert.True(t, b.Completed())
}

func TestCompletedLines(t *testing.T) {
	t.Parallel()
	b := freshBoard(t, 3)

	assert.Empty(t, b.CompletedLines())

	for col := 0; col < 3; col++ {
		b.At(1, col).Checked = true
	}
	for row := 0; row < 3; row++ {
		b.At(row, 1).Checked = true
	}

	lines := b.CompletedLines()
	require.Len(t, lines, 2)
	for _, line := range lines {
		for _, sq := range line {
			assert.True(t, sq.Checked)
		}
	}
}
