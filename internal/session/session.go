// Package session owns the game engines of concurrent players. Each
// Session serializes access to its engine; the Manager tracks live
// sessions for a host such as the SSH server.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/minesweeper"
)

// ErrNoGame is returned when a session is used before NewGame succeeded.
var ErrNoGame = errors.New("session: no game started")

// Stats is a consistent view of a session's current game.
type Stats struct {
	Board         core.BoardSpec
	Status        minesweeper.GameStatus
	Revealed      int
	SafeRemaining int
	Peeking       bool
	FirstMoveMade bool
	Games         int
}

// Session holds one player's engine. A new game replaces the engine
// wholesale. All methods are safe for concurrent use.
type Session struct {
	id      string
	owner   string
	started time.Time
	logger  *log.Logger

	mu       sync.Mutex
	engine   *minesweeper.Engine
	board    core.BoardSpec
	baseSeed int64
	games    int
}

// New creates a session without a game. A nil logger uses log.Default().
// seed 0 makes every game time-seeded; any other value makes the sequence
// of boards reproducible.
func New(id, owner string, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		id:       id,
		owner:    owner,
		started:  time.Now(),
		logger:   logger.With("session", id),
		baseSeed: seed,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Owner returns the user the session belongs to.
func (s *Session) Owner() string {
	return s.owner
}

// Started returns when the session was created.
func (s *Session) Started() time.Time {
	return s.started
}

// NewGame replaces the engine with a fresh one for the given board.
// On invalid parameters the previous game is kept and the error wraps
// minesweeper.ErrInvalidConfiguration.
func (s *Session) NewGame(board core.BoardSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	engine, err := minesweeper.New(board.Width, board.Height, board.Mines,
		minesweeper.NewSeededRandom(s.nextSeed()))
	if err != nil {
		return fmt.Errorf("session %s: new game: %w", s.id, err)
	}

	s.engine = engine
	s.board = board
	s.games++

	s.logger.Debug("game started",
		"width", board.Width,
		"height", board.Height,
		"mines", board.Mines,
		"game", s.games,
	)
	return nil
}

// nextSeed derives the seed of the next game from the session seed.
func (s *Session) nextSeed() int64 {
	if s.baseSeed == 0 {
		return 0
	}
	return s.baseSeed + int64(s.games)
}

// Activate uncovers a cell in the current game.
func (s *Session) Activate(p minesweeper.Position) (minesweeper.ActivationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return minesweeper.ActivationResult{}, ErrNoGame
	}

	result, err := s.engine.Activate(p)
	if err != nil {
		return result, err
	}

	if result.Status.Terminal() {
		s.logger.Info("game over",
			"owner", s.owner,
			"status", result.Status,
			"width", s.board.Width,
			"height", s.board.Height,
			"mines", s.board.Mines,
			"revealed", s.engine.RevealedCount(),
		)
	}
	return result, nil
}

// TogglePeek flips the show-all state. Returns false if it had no effect.
func (s *Session) TogglePeek() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return false
	}
	return s.engine.TogglePeek()
}

// Status returns the status of the current game.
func (s *Session) Status() minesweeper.GameStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return minesweeper.StatusInProgress
	}
	return s.engine.Status()
}

// Snapshot returns a copy of the current board, or nil before the first game.
func (s *Session) Snapshot() *minesweeper.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return nil
	}
	return s.engine.Snapshot()
}

// Stats returns the counters of the current game.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Board: s.board,
		Games: s.games,
	}
	if s.engine == nil {
		return st
	}
	st.Status = s.engine.Status()
	st.Revealed = s.engine.RevealedCount()
	st.SafeRemaining = s.engine.SafeRemaining()
	st.Peeking = s.engine.Peeking()
	st.FirstMoveMade = s.engine.FirstMoveMade()
	return st
}
