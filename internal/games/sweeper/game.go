package sweeper

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/session"
)

// Game implements registry.Game for one board layout.
type Game struct {
	layout Layout
	board  core.BoardSpec // effective board; differs from layout when overridden

	sess   *session.Session
	logger *log.Logger // for the private session; nil means log.Default()
	cursor minesweeper.Position

	// Last detonated mine, drawn differently from the others.
	detonated    minesweeper.Position
	hasDetonated bool

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool
	notice   string // one-line hint shown under the board
}

// New creates a game for the given layout. Call Reset before use.
func New(l Layout) *Game {
	return &Game{
		layout: l,
		board:  l.Board,
	}
}

// Attach binds the game to an existing session, typically one owned by a
// session.Manager. Without it, Reset creates a private session.
func (g *Game) Attach(s *session.Session) {
	g.sess = s
}

// SetLogger sets the logger of the private session Reset creates.
// It has no effect on an attached session.
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// Session returns the session the game plays in.
func (g *Game) Session() *session.Session {
	return g.sess
}

// ID returns the layout identifier.
func (g *Game) ID() string {
	return g.layout.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.layout.Title
}

// Layout returns the board of this game's layout.
func (g *Game) Layout() core.BoardSpec {
	return g.layout.Board
}

// Board returns the board actually in play.
func (g *Game) Board() core.BoardSpec {
	return g.board
}

// Reset starts a new game. A cfg.Board with a non-zero width overrides
// the layout. On error the previous game stays in place.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	board := g.layout.Board
	if cfg.Board.Width > 0 {
		board = cfg.Board
	}

	if g.sess == nil {
		g.sess = session.New(uuid.NewString(), "local", cfg.Seed, g.logger)
	}
	if err := g.sess.NewGame(board); err != nil {
		return fmt.Errorf("reset %s: %w", g.layout.ID, err)
	}

	g.board = board
	g.cursor = minesweeper.P(board.Width/2, board.Height/2)
	g.hasDetonated = false
	g.notice = ""
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the board and HUD.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.sess == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionPeek) {
		g.togglePeek()
	}

	result := core.StepResult{}
	if in.Has(core.ActionReveal) {
		result.Revealed, result.Detonated = g.reveal()
	}

	result.State = g.State()
	return result
}

// restart replaces the engine with a fresh one on the same board.
func (g *Game) restart() {
	if err := g.sess.NewGame(g.board); err != nil {
		g.notice = err.Error()
		return
	}
	g.cursor = minesweeper.P(g.board.Width/2, g.board.Height/2)
	g.hasDetonated = false
	g.notice = ""
}

func (g *Game) moveCursor(in core.InputFrame) {
	dx, dy := 0, 0
	switch {
	case in.Has(core.ActionUp):
		dy = -1
	case in.Has(core.ActionDown):
		dy = 1
	case in.Has(core.ActionLeft):
		dx = -1
	case in.Has(core.ActionRight):
		dx = 1
	default:
		return
	}
	g.cursor = minesweeper.P(
		core.Clamp(g.cursor.X+dx, 0, g.board.Width-1),
		core.Clamp(g.cursor.Y+dy, 0, g.board.Height-1),
	)
}

func (g *Game) togglePeek() {
	switch {
	case g.sess.TogglePeek():
		g.notice = ""
	case !g.sess.Stats().FirstMoveMade:
		g.notice = "Reveal a cell before peeking"
	}
}

// reveal activates the cell under the cursor.
func (g *Game) reveal() (int, bool) {
	res, err := g.sess.Activate(g.cursor)
	switch {
	case errors.Is(err, minesweeper.ErrInvalidOperation):
		if g.sess.Stats().Peeking {
			g.notice = "Press P to hide the board first"
		}
		return 0, false
	case err != nil:
		g.notice = err.Error()
		return 0, false
	}

	g.notice = ""
	if res.Detonated {
		g.detonated = g.cursor
		g.hasDetonated = true
	}
	return len(res.Revealed), res.Detonated
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{}
	}
	st := g.sess.Stats()
	return core.GameState{
		GameOver:  st.Status.Terminal(),
		Won:       st.Status == minesweeper.StatusWon,
		Peeking:   st.Peeking,
		Remaining: st.SafeRemaining,
		Revealed:  st.Revealed,
	}
}

// Cursor returns the cell under the cursor.
func (g *Game) Cursor() minesweeper.Position {
	return g.cursor
}
