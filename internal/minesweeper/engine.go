package minesweeper

import (
	"fmt"
	"sort"
)

// GameStatus is the state of a single game. Won and Lost are terminal.
type GameStatus int

const (
	StatusInProgress GameStatus = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s GameStatus) String() string {
	switch s {
	case StatusInProgress:
		return "InProgress"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal returns true for Won and Lost.
func (s GameStatus) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// ActivationResult is returned by Engine.Activate.
type ActivationResult struct {
	// Revealed holds the positions the player uncovered with this call,
	// in row-major order. Cells force-shown at the end of the game are not
	// included.
	Revealed []Position

	// Status is the game status after the call.
	Status GameStatus

	// Detonated is true when the activated cell was a mine.
	Detonated bool
}

// Engine owns one board and the rules of a single game.
// It is not safe for concurrent use; hosts serving several players keep
// one Engine per session and serialize calls to it.
type Engine struct {
	board         *Board
	rng           Random
	mineCount     int
	revealedCount int
	firstMoveMade bool
	peeking       bool
	status        GameStatus
}

// ValidateConfig checks board parameters without allocating anything.
func ValidateConfig(width, height, mineCount int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("board size %dx%d must be at least 1x1: %w", width, height, ErrInvalidConfiguration)
	}
	if mineCount < 0 {
		return fmt.Errorf("mine count %d is negative: %w", mineCount, ErrInvalidConfiguration)
	}
	if mineCount >= width*height {
		return fmt.Errorf("mine count %d leaves no safe cell on a %dx%d board: %w",
			mineCount, width, height, ErrInvalidConfiguration)
	}
	return nil
}

// New starts a game on a width x height board with mineCount mines.
// Mines are placed on the first activation, away from the activated cell.
// A nil rng uses a time-seeded source.
func New(width, height, mineCount int, rng Random) (*Engine, error) {
	if err := ValidateConfig(width, height, mineCount); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewSeededRandom(0)
	}

	return &Engine{
		board:     newBoard(width, height),
		rng:       rng,
		mineCount: mineCount,
		status:    StatusInProgress,
	}, nil
}

// Width returns the board width.
func (e *Engine) Width() int {
	return e.board.width
}

// Height returns the board height.
func (e *Engine) Height() int {
	return e.board.height
}

// MineCount returns the configured number of mines.
func (e *Engine) MineCount() int {
	return e.mineCount
}

// RevealedCount returns the number of cells uncovered by the player.
func (e *Engine) RevealedCount() int {
	return e.revealedCount
}

// SafeRemaining returns how many safe cells are still covered.
func (e *Engine) SafeRemaining() int {
	return e.board.Area() - e.mineCount - e.revealedCount
}

// Status returns the current game status.
func (e *Engine) Status() GameStatus {
	return e.status
}

// FirstMoveMade returns true once mines have been placed.
func (e *Engine) FirstMoveMade() bool {
	return e.firstMoveMade
}

// Peeking returns true while a RevealAll is in effect.
func (e *Engine) Peeking() bool {
	return e.peeking
}

// CellAt returns a copy of the cell at p.
func (e *Engine) CellAt(p Position) (Cell, error) {
	return e.board.CellAt(p)
}

// Visible reports whether the cell at p is face up: uncovered by the
// player, peeked, or shown because the game ended. Invalid positions are
// never visible.
func (e *Engine) Visible(p Position) bool {
	if !e.board.IsValidPosition(p) {
		return false
	}
	return e.board.cell(p).Visible()
}

// Snapshot returns a deep copy of the board for rendering or inspection.
func (e *Engine) Snapshot() *Board {
	return e.board.clone()
}

// Activate uncovers the cell at p on behalf of the player.
//
// The first activation places the mines. Activating an already revealed
// cell is a no-op that returns an empty result. Activating after the game
// ended, or while peeking, fails with ErrInvalidOperation.
func (e *Engine) Activate(p Position) (ActivationResult, error) {
	if e.status.Terminal() {
		return ActivationResult{Status: e.status},
			fmt.Errorf("activate %s after game %s: %w", p, e.status, ErrInvalidOperation)
	}
	if e.peeking {
		return ActivationResult{Status: e.status},
			fmt.Errorf("activate %s while peeking: %w", p, ErrInvalidOperation)
	}
	if !e.board.IsValidPosition(p) {
		return ActivationResult{Status: e.status},
			fmt.Errorf("activate %s on %dx%d board: %w", p, e.board.width, e.board.height, ErrOutOfBounds)
	}
	if e.board.cell(p).Revealed {
		return ActivationResult{Status: e.status}, nil
	}

	if !e.firstMoveMade {
		e.placeMines(p)
		e.firstMoveMade = true
	}

	result := ActivationResult{}
	c := e.board.cell(p)

	switch c.Kind {
	case KindMine:
		c.Revealed = true
		result.Revealed = []Position{p}
		result.Detonated = true
		e.finish(StatusLost)
	case KindNumber:
		e.reveal(p)
		result.Revealed = []Position{p}
	case KindEmpty:
		result.Revealed = e.floodFill(p)
	}

	if e.status == StatusInProgress && e.revealedCount >= e.board.Area()-e.mineCount {
		e.finish(StatusWon)
	}

	sortPositions(result.Revealed)
	result.Status = e.status
	return result, nil
}

// RevealAll force-shows every cell without touching status or counts.
// Returns false with no effect before the first move, after the game
// ended, or when already peeking.
func (e *Engine) RevealAll() bool {
	if !e.firstMoveMade || e.status.Terminal() || e.peeking {
		return false
	}
	e.board.showAll()
	e.peeking = true
	return true
}

// HideAll undoes RevealAll, leaving only the cells the player uncovered.
// Returns false if no peek is in effect.
func (e *Engine) HideAll() bool {
	if !e.peeking || e.status.Terminal() {
		return false
	}
	e.board.hideAll()
	e.peeking = false
	return true
}

// TogglePeek flips between RevealAll and HideAll.
func (e *Engine) TogglePeek() bool {
	if e.peeking {
		return e.HideAll()
	}
	return e.RevealAll()
}

// reveal uncovers a single safe cell and counts it.
func (e *Engine) reveal(p Position) {
	e.board.cell(p).Revealed = true
	e.revealedCount++
}

// finish moves the game to a terminal status and shows the whole board.
func (e *Engine) finish(status GameStatus) {
	e.status = status
	e.peeking = false
	e.board.showAll()
}

// sortPositions orders positions row-major.
func sortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}
