package main

import (
	"fmt"
	"math"
	"runtime"
	"time"

	rand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/lox/buzzbingo/cmd/buzzbingo/shared"
	"github.com/lox/buzzbingo/internal/board"
	"github.com/lox/buzzbingo/internal/pool"
	"github.com/lox/buzzbingo/internal/randutil"
)

// SimulateCmd estimates how many label calls a pool takes to produce a
// winning board: each game deals a fresh board, calls the pool's labels in a
// shuffled order, checks every matching square per call and records the call
// count at the first completed line.
type SimulateCmd struct {
	PoolFile string `kong:"arg,type='existingfile',help='HCL pool file to deal from'"`
	Pool     string `kong:"help='Pool name within the file (optional when the file has one pool)'"`
	Games    int    `kong:"default='10000',help='Number of games to simulate'"`
	Size     int    `kong:"default='5',help='Board size N for an NxN board'"`
	FreeCell string `kong:"default='center',enum='center,random',help='Free cell placement: center or random'"`
	Workers  int    `kong:"default='0',help='Concurrent workers (0 = NumCPU)'"`
	Seed     *int64 `kong:"help='Base RNG seed; game i uses seed+i (optional)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	f, err := pool.LoadFile(c.PoolFile)
	if err != nil {
		return err
	}
	p, err := f.Get(c.Pool)
	if err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Info("simulating", "games", c.Games, "size", c.Size, "labels", p.Len(), "workers", workers, "seed", seed)

	start := time.Now()
	results := make([]int, c.Games)
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := 0; i < c.Games; i++ {
		g.Go(func() error {
			// derived seed keeps each game reproducible from the base seed
			rng := randutil.New(seed + int64(i))
			b, err := board.Assemble(p, c.Size, board.FreeCellPolicy(c.FreeCell), rng)
			if err != nil {
				return err
			}
			results[i] = callsToWin(b, p.Labels(), rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	stats := newStatistics(results)
	fmt.Printf("games        %d\n", stats.Games)
	fmt.Printf("mean calls   %.2f\n", stats.Mean())
	fmt.Printf("std dev      %.2f\n", stats.StdDev())
	fmt.Printf("min/max      %d/%d (pool has %d labels)\n", stats.Min, stats.Max, p.Len())
	fmt.Printf("elapsed      %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// callsToWin plays one board to its first completed line. Every square whose
// label matches the called label gets checked, so duplicate labels on a
// board fill several squares per call. Calling every label checks every
// square, so the loop always terminates with a win.
func callsToWin(b *board.Board, order []string, rng *rand.Rand) int {
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	calls := 0
	for _, label := range order {
		calls++
		for i := range b.Squares {
			if b.Squares[i].Label == label {
				b.Squares[i].Checked = true
			}
		}
		if b.Completed() {
			break
		}
	}
	return calls
}

// Statistics aggregates per-game call counts
type Statistics struct {
	Games int
	Sum   float64
	Sum2  float64
	Min   int
	Max   int
}

func newStatistics(results []int) *Statistics {
	s := &Statistics{}
	for _, calls := range results {
		v := float64(calls)
		s.Games++
		s.Sum += v
		s.Sum2 += v * v
		if s.Min == 0 || calls < s.Min {
			s.Min = calls
		}
		if calls > s.Max {
			s.Max = calls
		}
	}
	return s
}

func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}
