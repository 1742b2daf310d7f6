// Package board assembles bingo boards and evaluates them for completed
// lines.
package board

import (
	"errors"
	"fmt"

	rand "math/rand/v2"

	"github.com/lox/buzzbingo/internal/deck"
	"github.com/lox/buzzbingo/internal/pool"
)

// FreeLabel fills the free cell when the pool has no designated free label
const FreeLabel = "FREE"

// ErrEmptyPool is returned when assembly is attempted with no labels
var ErrEmptyPool = errors.New("pool has no labels")

// FreeCellPolicy selects where the free cell goes on a new board
type FreeCellPolicy string

const (
	// FreeCellCenter reserves index size*size/2; the true centre for odd
	// sizes, a deterministic off-centre cell for even ones
	FreeCellCenter FreeCellPolicy = "center"

	// FreeCellRandom reserves a uniformly random cell
	FreeCellRandom FreeCellPolicy = "random"
)

// Square is one cell of a board. Free squares are created checked and stay
// checked; Toggle ignores them.
type Square struct {
	Row     int
	Col     int
	Label   string
	Checked bool
	Free    bool
}

// Board is a size x size grid of squares, laid out row-major. The shape is
// fixed at assembly; only the Checked flags mutate afterwards.
type Board struct {
	Size    int
	Squares []Square
}

// Assemble deals a new board from the pool. One cell is reserved for the
// free label (the pool's designated label, or FreeLabel when none is set)
// and pre-checked; the rest are filled from a freshly built deck.
func Assemble(p *pool.Pool, size int, policy FreeCellPolicy, rng *rand.Rand) (*Board, error) {
	if size <= 0 {
		panic(fmt.Sprintf("board: invalid size %d", size))
	}
	if p.Len() == 0 {
		return nil, ErrEmptyPool
	}

	cells := size * size
	freeIdx := cells / 2
	if policy == FreeCellRandom {
		freeIdx = rng.IntN(cells)
	}

	freeLabel, ok := p.FreeLabel()
	if !ok {
		freeLabel = FreeLabel
	}

	dealt, err := deck.Build(p.BodyLabels(), cells-1, rng)
	if err != nil {
		return nil, fmt.Errorf("dealing %d cells: %w", cells-1, err)
	}

	b := &Board{Size: size, Squares: make([]Square, cells)}
	k := 0
	for i := range b.Squares {
		sq := Square{Row: i / size, Col: i % size}
		if i == freeIdx {
			sq.Label = freeLabel
			sq.Free = true
			sq.Checked = true
		} else {
			sq.Label = dealt[k]
			k++
		}
		b.Squares[i] = sq
	}
	return b, nil
}

// At returns the square at (row, col)
func (b *Board) At(row, col int) *Square {
	return &b.Squares[b.index(row, col)]
}

// Toggle flips the checked flag at (row, col). Toggling the free square is a
// no-op, not an error; it stays solved for the life of the board.
func (b *Board) Toggle(row, col int) {
	sq := b.At(row, col)
	if sq.Free {
		return
	}
	sq.Checked = !sq.Checked
}

// Reset unchecks every non-free square
func (b *Board) Reset() {
	for i := range b.Squares {
		if !b.Squares[i].Free {
			b.Squares[i].Checked = false
		}
	}
}

func (b *Board) index(row, col int) int {
	if row < 0 || row >= b.Size || col < 0 || col >= b.Size {
		panic(fmt.Sprintf("board: cell (%d,%d) outside %dx%d board", row, col, b.Size, b.Size))
	}
	return row*b.Size + col
}
