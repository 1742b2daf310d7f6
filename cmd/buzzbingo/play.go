package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"

	rand "math/rand/v2"

	"github.com/lox/buzzbingo/cmd/buzzbingo/shared"
	"github.com/lox/buzzbingo/internal/board"
	"github.com/lox/buzzbingo/internal/display"
	"github.com/lox/buzzbingo/internal/game"
	"github.com/lox/buzzbingo/internal/pool"
	"github.com/lox/buzzbingo/internal/randutil"
)

// PlayCmd runs the interactive TUI game
type PlayCmd struct {
	PoolFile string `kong:"arg,type='existingfile',help='HCL pool file to deal from'"`
	Pool     string `kong:"help='Pool name within the file (optional when the file has one pool)'"`
	Size     int    `kong:"default='5',help='Board size N for an NxN board'"`
	FreeCell string `kong:"default='center',enum='center,random',help='Free cell placement: center or random'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	LogFile  string `kong:"default='buzzbingo.log',help='Debug log destination while the TUI owns the terminal'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	f, err := pool.LoadFile(c.PoolFile)
	if err != nil {
		return err
	}
	p, err := f.Get(c.Pool)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := shared.SetupWriterLogger(logFile, c.Debug)

	var rng *rand.Rand
	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		rng = randutil.New(seed)
	} else {
		rng, seed = randutil.NewRandom()
	}
	logger.Info("starting game", "pool_file", c.PoolFile, "labels", p.Len(), "size", c.Size, "seed", seed)

	session, err := game.NewSession(p, c.Size, board.FreeCellPolicy(c.FreeCell), rng, logger, quartz.NewReal())
	if err != nil {
		return err
	}

	prog := tea.NewProgram(display.NewModel(session), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
