package sweeper

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// newQuietGame creates a game whose private session logs nowhere.
func newQuietGame(l Layout) *Game {
	g := New(l)
	g.SetLogger(log.New(io.Discard))
	return g
}

func newTestGame(t *testing.T, board core.BoardSpec, seed int64) *Game {
	t.Helper()

	g := newQuietGame(Layout{ID: "test", Title: "Test", Board: board})
	cfg := core.RuntimeConfig{ScreenW: 120, ScreenH: 60, Seed: seed}
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	var res core.StepResult
	for _, a := range actions {
		res = g.Step(core.FrameOf(a))
	}
	return res
}

// findMine returns the position of some mine on the current board.
func findMine(t *testing.T, g *Game) minesweeper.Position {
	t.Helper()

	b := g.Session().Snapshot()
	for _, p := range b.Positions() {
		c, _ := b.CellAt(p)
		if c.Kind == minesweeper.KindMine {
			return p
		}
	}
	t.Fatal("board has no mine")
	return minesweeper.Position{}
}

func TestBuiltinLayoutsRegistered(t *testing.T) {
	for _, l := range Layouts {
		if err := l.Validate(); err != nil {
			t.Errorf("layout %s invalid: %v", l.ID, err)
		}
		if !registry.Exists(l.ID) {
			t.Errorf("layout %s not registered", l.ID)
		}
	}

	if _, ok := FindLayout(DefaultLayoutID); !ok {
		t.Errorf("default layout %q missing", DefaultLayoutID)
	}
	if _, ok := FindLayout("nope"); ok {
		t.Error("FindLayout(nope) should fail")
	}
}

func TestRegisterLayout(t *testing.T) {
	bad := Layout{ID: "test-bad", Board: core.BoardSpec{Width: 2, Height: 2, Mines: 4}}
	if err := RegisterLayout(bad); err == nil {
		t.Error("RegisterLayout() should reject a board without safe cells")
	}
	if registry.Exists("test-bad") {
		t.Error("rejected layout should not be registered")
	}

	good := Layout{ID: "test-good", Board: core.BoardSpec{Width: 6, Height: 4, Mines: 3}}
	if err := RegisterLayout(good); err != nil {
		t.Fatalf("RegisterLayout() error = %v", err)
	}

	g, err := registry.Create("test-good")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "test-good" {
		t.Errorf("Title() = %q, expected ID fallback", g.Title())
	}
	if g.Layout() != good.Board {
		t.Errorf("Layout() = %+v, expected %+v", g.Layout(), good.Board)
	}
}

func TestResetCentersCursor(t *testing.T) {
	g := newTestGame(t, core.BoardSpec{Width: 9, Height: 7, Mines: 5}, 1)

	if g.Cursor() != minesweeper.P(4, 3) {
		t.Errorf("Cursor() = %v, expected (4,3)", g.Cursor())
	}
	state := g.State()
	if state.GameOver || state.Revealed != 0 || state.Remaining != 9*7-5 {
		t.Errorf("fresh State() = %+v", state)
	}
}

func TestResetBoardOverride(t *testing.T) {
	g := newQuietGame(Layout{ID: "test", Title: "Test", Board: core.BoardSpec{Width: 5, Height: 5, Mines: 3}})
	cfg := core.RuntimeConfig{
		ScreenW: 120,
		ScreenH: 60,
		Seed:    1,
		Board:   core.BoardSpec{Width: 8, Height: 6, Mines: 7},
	}
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if g.Board() != cfg.Board {
		t.Errorf("Board() = %+v, expected override %+v", g.Board(), cfg.Board)
	}
	if g.Layout().Width != 5 {
		t.Error("Layout() should still report the layout's own board")
	}

	cfg.Board = core.BoardSpec{Width: 1, Height: 1, Mines: 1}
	if err := g.Reset(cfg); err == nil {
		t.Error("Reset() with an invalid board should fail")
	}
	if g.Board().Width != 8 {
		t.Error("failed Reset() should keep the previous board")
	}
}

func TestCursorClamps(t *testing.T) {
	g := newTestGame(t, core.BoardSpec{Width: 3, Height: 3, Mines: 1}, 1)

	press(g, core.ActionUp, core.ActionUp, core.ActionUp)
	press(g, core.ActionLeft, core.ActionLeft, core.ActionLeft)
	if g.Cursor() != minesweeper.P(0, 0) {
		t.Errorf("Cursor() = %v, expected (0,0)", g.Cursor())
	}

	press(g, core.ActionDown, core.ActionDown, core.ActionDown)
	press(g, core.ActionRight, core.ActionRight, core.ActionRight)
	if g.Cursor() != minesweeper.P(2, 2) {
		t.Errorf("Cursor() = %v, expected (2,2)", g.Cursor())
	}
}

func TestSingleCellWins(t *testing.T) {
	g := newTestGame(t, core.BoardSpec{Width: 1, Height: 1, Mines: 0}, 1)

	res := press(g, core.ActionReveal)
	if res.Revealed != 1 || res.Detonated {
		t.Errorf("Step() = %+v, expected one safe reveal", res)
	}
	if !res.State.GameOver || !res.State.Won {
		t.Errorf("State = %+v, expected won", res.State)
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("Snapshot().State = %s, expected %s", g.Snapshot().State, StateWon)
	}

	screen := core.NewScreen(120, 60)
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU WIN!") {
		t.Error("Render() should show the win overlay")
	}
}

func TestRevealMineLoses(t *testing.T) {
	g := newTestGame(t, core.BoardSpec{Width: 6, Height: 6, Mines: 12}, 5)

	press(g, core.ActionReveal)
	if g.State().GameOver {
		t.Skip("first reveal already ended the game")
	}

	g.cursor = findMine(t, g)
	res := press(g, core.ActionReveal)
	if !res.Detonated || !res.State.GameOver || res.State.Won {
		t.Fatalf("Step() on a mine = %+v", res)
	}

	screen := core.NewScreen(120, 60)
	g.Render(screen)
	text := screen.String()
	if !strings.Contains(text, "BOOM!") {
		t.Error("Render() should show the loss overlay")
	}
	if !strings.Contains(text, "X") {
		t.Error("Render() should mark the detonated mine")
	}

	// Further reveals are ignored.
	res = press(g, core.ActionLeft, core.ActionReveal)
	if res.Revealed != 0 || g.Snapshot().State != StateLost {
		t.Errorf("reveal after loss = %+v", res)
	}

	press(g, core.ActionRestart)
	if g.State().GameOver || g.State().Revealed != 0 {
		t.Errorf("State() after restart = %+v", g.State())
	}
	if g.hasDetonated {
		t.Error("restart should forget the detonated mine")
	}
}

func TestPeek(t *testing.T) {
	g := newTestGame(t, core.BoardSpec{Width: 8, Height: 8, Mines: 10}, 9)

	press(g, core.ActionPeek)
	if g.State().Peeking {
		t.Error("peek before the first reveal should have no effect")
	}
	if g.notice == "" {
		t.Error("peek before the first reveal should leave a notice")
	}

	press(g, core.ActionReveal)
	if g.State().GameOver {
		t.Skip("first reveal already ended the game")
	}

	press(g, core.ActionPeek)
	if !g.State().Peeking || g.Snapshot().State != StatePeeking {
		t.Fatal("peek after the first reveal should show the board")
	}
	if strings.Contains(g.Snapshot().Board, "-") {
		t.Error("peeked board should have no hidden cells")
	}

	res := press(g, core.ActionDown, core.ActionReveal)
	if res.Revealed != 0 {
		t.Error("reveal while peeking should be ignored")
	}

	press(g, core.ActionPeek)
	if g.State().Peeking {
		t.Error("second peek should hide the board")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	board := core.BoardSpec{Width: 10, Height: 13, Mines: 15}
	inputs := []core.Action{
		core.ActionReveal,
		core.ActionLeft, core.ActionLeft, core.ActionUp, core.ActionReveal,
		core.ActionRight, core.ActionDown, core.ActionDown, core.ActionReveal,
	}

	g1 := newTestGame(t, board, 12345)
	g2 := newTestGame(t, board, 12345)
	press(g1, inputs...)
	press(g2, inputs...)

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newQuietGame(Layout{ID: "test", Title: "Test", Board: core.BoardSpec{Width: 25, Height: 30, Mines: 10}})
	if err := g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot().State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}
	if res := press(g, core.ActionReveal); res.Revealed != 0 {
		t.Error("input should be ignored while the window is too small")
	}

	screen := core.NewScreen(40, 20)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Render() should explain the window is too small")
	}

	g.Resize(120, 60)
	if g.Snapshot().State != StatePlaying {
		t.Error("Resize() to a large screen should resume play")
	}
}

func TestRenderCursorAndHUD(t *testing.T) {
	tiny, _ := FindLayout("tiny")

	tests := []struct {
		name   string
		layout Layout
	}{
		{"narrow custom board", Layout{ID: "test", Title: "Test", Board: core.BoardSpec{Width: 5, Height: 5, Mines: 3}}},
		{"tiny layout", tiny},
		{"one column", Layout{ID: "test", Title: "Test", Board: core.BoardSpec{Width: 1, Height: 4, Mines: 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newQuietGame(tc.layout)
			if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, Seed: 1}); err != nil {
				t.Fatalf("Reset() error = %v", err)
			}

			screen := core.NewScreen(80, 40)
			g.Render(screen)
			text := screen.String()

			if !strings.Contains(text, "[■]") {
				t.Error("Render() should bracket the cursor cell")
			}
			if !strings.Contains(text, "MINESWEEPER - "+tc.layout.Title) {
				t.Error("Render() should show the title")
			}

			hud := screen.Row(1)
			mines := fmt.Sprintf("Mines: %d", tc.layout.Board.Mines)
			safe := fmt.Sprintf("Safe left: %d", tc.layout.Board.Area()-tc.layout.Board.Mines)
			if !strings.Contains(hud, mines) {
				t.Errorf("HUD row = %q, expected %q", hud, mines)
			}
			if !strings.Contains(hud, safe) {
				t.Errorf("HUD row = %q, expected %q", hud, safe)
			}
			if strings.Index(hud, mines) > strings.Index(hud, safe) {
				t.Errorf("HUD row = %q, mine count should come first", hud)
			}
		})
	}
}
