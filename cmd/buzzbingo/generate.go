package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	rand "math/rand/v2"

	"github.com/lox/buzzbingo/internal/board"
	"github.com/lox/buzzbingo/internal/display"
	"github.com/lox/buzzbingo/internal/pool"
	"github.com/lox/buzzbingo/internal/randutil"
)

// GenerateCmd deals a board and prints it to stdout
type GenerateCmd struct {
	PoolFile string `kong:"arg,type='existingfile',help='HCL pool file to deal from'"`
	Pool     string `kong:"help='Pool name within the file (optional when the file has one pool)'"`
	Size     int    `kong:"default='5',help='Board size N for an NxN board'"`
	FreeCell string `kong:"default='center',enum='center,random',help='Free cell placement: center or random'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	NoColor  bool   `kong:"help='Disable colored output'"`
}

func (c *GenerateCmd) Run() error {
	f, err := pool.LoadFile(c.PoolFile)
	if err != nil {
		return err
	}
	p, err := f.Get(c.Pool)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		rng = randutil.New(seed)
	} else {
		rng, seed = randutil.NewRandom()
	}

	b, err := board.Assemble(p, c.Size, board.FreeCellPolicy(c.FreeCell), rng)
	if err != nil {
		return err
	}

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.ColorProfile())
	}
	fmt.Println(display.RenderBoard(b))
	fmt.Printf("seed %d · %dx%d · %d labels\n", seed, c.Size, c.Size, p.Len())
	return nil
}
