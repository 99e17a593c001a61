package minesweeper

import "errors"

// Errors returned by the engine. They are wrapped with context, so match
// them with errors.Is.
var (
	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the requested width, height and mine count.
	ErrInvalidConfiguration = errors.New("minesweeper: invalid configuration")

	// ErrOutOfBounds is returned for positions outside the grid.
	ErrOutOfBounds = errors.New("minesweeper: position out of bounds")

	// ErrInvalidOperation is returned when an operation is not allowed in
	// the current game state (for example activating after the game ended).
	ErrInvalidOperation = errors.New("minesweeper: invalid operation")
)
