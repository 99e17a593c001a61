package sweeper

import "github.com/vovakirdan/tui-sweeper/internal/minesweeper"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePeeking     GameStateType = "peeking"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and
// debugging.
type Snapshot struct {
	Layout    string
	Width     int
	Height    int
	Mines     int
	Cursor    minesweeper.Position
	Revealed  int
	Remaining int
	State     GameStateType
	Board     string // minesweeper.Board.String() of the current view
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Layout: g.layout.ID,
		Width:  g.board.Width,
		Height: g.board.Height,
		Mines:  g.board.Mines,
		Cursor: g.cursor,
		State:  StatePlaying,
	}
	if g.sess == nil {
		return snap
	}

	st := g.sess.Stats()
	snap.Revealed = st.Revealed
	snap.Remaining = st.SafeRemaining
	if b := g.sess.Snapshot(); b != nil {
		snap.Board = b.String()
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case st.Status == minesweeper.StatusWon:
		snap.State = StateWon
	case st.Status == minesweeper.StatusLost:
		snap.State = StateLost
	case st.Peeking:
		snap.State = StatePeeking
	}
	return snap
}
