package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/buzzbingo/internal/display"
	"github.com/lox/buzzbingo/internal/pool"
)

// PoolCmd groups the pool file subcommands
type PoolCmd struct {
	Init PoolInitCmd `cmd:"" help:"Write a starter pool file"`
	Show PoolShowCmd `cmd:"" help:"List the pools and labels in a file"`
	Edit PoolEditCmd `cmd:"" help:"Edit a pool file interactively"`
}

// PoolInitCmd scaffolds a pool file with an example pool
type PoolInitCmd struct {
	Path  string `kong:"arg,default='pools.hcl',help='File to create'"`
	Force bool   `kong:"help='Overwrite an existing file'"`
}

func (c *PoolInitCmd) Run() error {
	if _, err := os.Stat(c.Path); err == nil && !c.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", c.Path)
	}
	if err := pool.SaveFile(c.Path, pool.DefaultFile()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", c.Path)
	return nil
}

// PoolShowCmd prints the pools in a file
type PoolShowCmd struct {
	Path string `kong:"arg,type='existingfile',help='Pool file to inspect'"`
}

func (c *PoolShowCmd) Run() error {
	f, err := pool.LoadFile(c.Path)
	if err != nil {
		return err
	}
	for _, name := range f.Names() {
		p := f.Pools[name]
		fmt.Printf("pool %q (%d labels)\n", name, p.Len())
		freeIdx := -1
		if i, ok := p.FreeIndex(); ok {
			freeIdx = i
		}
		for i, label := range p.Labels() {
			if i == freeIdx {
				fmt.Printf("  %2d. %s (free)\n", i, label)
			} else {
				fmt.Printf("  %2d. %s\n", i, label)
			}
		}
	}
	return nil
}

// PoolEditCmd opens the interactive pool editor
type PoolEditCmd struct {
	Path string `kong:"arg,type='existingfile',help='Pool file to edit'"`
	Pool string `kong:"help='Pool name within the file (optional when the file has one pool)'"`
}

func (c *PoolEditCmd) Run() error {
	f, err := pool.LoadFile(c.Path)
	if err != nil {
		return err
	}
	name := c.Pool
	if name == "" {
		names := f.Names()
		if len(names) != 1 {
			return fmt.Errorf("file defines %d pools, pick one with --pool (%v)", len(names), names)
		}
		name = names[0]
	}
	p, ok := f.Pools[name]
	if !ok {
		return fmt.Errorf("no pool named %q (have %v)", name, f.Names())
	}

	prog := tea.NewProgram(display.NewEditor(c.Path, name, f, p))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
