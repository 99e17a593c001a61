package core

// BoardSpec is the size and mine count of a minefield.
type BoardSpec struct {
	Width  int
	Height int
	Mines  int
}

// Area returns the number of cells on the board.
func (b BoardSpec) Area() int {
	return b.Width * b.Height
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means use current time
	Board   BoardSpec
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
		Board: BoardSpec{
			Width:  10,
			Height: 13,
			Mines:  15,
		},
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver  bool // Whether the game has ended
	Won       bool // Whether the game ended with every safe cell uncovered
	Peeking   bool // Whether the whole board is temporarily shown
	Remaining int  // Safe cells still covered
	Revealed  int  // Cells uncovered by the player
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState

	// Revealed is the number of cells uncovered by this step.
	Revealed int

	// Detonated is true when this step hit a mine.
	Detonated bool
}
