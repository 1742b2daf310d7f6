// Package game ties a pool, a board and win detection together for the
// interactive hosts.
package game

import (
	"time"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/buzzbingo/internal/board"
	"github.com/lox/buzzbingo/internal/pool"
)

// Session owns the active board for one sitting. It is not safe for
// concurrent use; the core is synchronous and hosts drive it from a single
// goroutine.
type Session struct {
	pool   *pool.Pool
	size   int
	policy board.FreeCellPolicy
	rng    *rand.Rand
	logger *log.Logger
	clock  quartz.Clock

	board       *board.Board
	startedAt   time.Time
	completedAt time.Time
	toggles     int
}

// NewSession deals the first board. Pass quartz.NewReal() outside of tests.
func NewSession(p *pool.Pool, size int, policy board.FreeCellPolicy, rng *rand.Rand, logger *log.Logger, clock quartz.Clock) (*Session, error) {
	s := &Session{
		pool:   p,
		size:   size,
		policy: policy,
		rng:    rng,
		logger: logger,
		clock:  clock,
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Board returns the active board
func (s *Session) Board() *board.Board {
	return s.board
}

// Regenerate discards the active board and deals a new one, resetting the
// toggle count and timer
func (s *Session) Regenerate() error {
	b, err := board.Assemble(s.pool, s.size, s.policy, s.rng)
	if err != nil {
		return err
	}
	s.board = b
	s.startedAt = s.clock.Now()
	s.completedAt = time.Time{}
	s.toggles = 0
	s.logger.Debug("dealt new board", "size", s.size, "policy", s.policy, "labels", s.pool.Len())
	return nil
}

// Toggle flips the square at (row, col) and reports whether the board is
// completed afterwards. Completion is re-evaluated every time, never
// latched: unchecking the square that broke the only completed line takes
// the session back to unsolved.
func (s *Session) Toggle(row, col int) bool {
	s.board.Toggle(row, col)
	s.toggles++

	wasCompleted := !s.completedAt.IsZero()
	completed := s.board.Completed()
	switch {
	case completed && !wasCompleted:
		s.completedAt = s.clock.Now()
		s.logger.Info("bingo", "toggles", s.toggles, "elapsed", s.Elapsed())
	case !completed && wasCompleted:
		s.completedAt = time.Time{}
		s.logger.Debug("completed line broken", "toggles", s.toggles)
	}
	return completed
}

// Completed reports whether the active board has a fully checked line
func (s *Session) Completed() bool {
	return s.board.Completed()
}

// Toggles returns the number of toggles since the board was dealt
func (s *Session) Toggles() int {
	return s.toggles
}

// Elapsed returns the time from deal to first completion, or to now while
// the board is unsolved
func (s *Session) Elapsed() time.Duration {
	if !s.completedAt.IsZero() {
		return s.completedAt.Sub(s.startedAt)
	}
	return s.clock.Now().Sub(s.startedAt)
}
