package sweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/minesweeper"
)

const (
	cellWidth = 3 // " 3 " or "[3]" under the cursor
	hudHeight = 2
	minWidth  = 34 // room for the HUD and overlay text
)

// minScreenSize returns the smallest screen that fits the board, the HUD
// and a two-line overlay below the board.
func (g *Game) minScreenSize() (int, int) {
	w := max(g.board.Width*cellWidth+2, minWidth)
	h := hudHeight + g.board.Height + 2 + 4
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.sess == nil {
		return
	}
	board := g.sess.Snapshot()
	if board == nil {
		return
	}

	boardW := g.board.Width*cellWidth + 2
	boardH := g.board.Height + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))
	g.renderCells(dst, board, boardX+1, boardY+1)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH)
}

// renderTooSmall shows a boxed "window too small" message in the middle
// of the screen.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	lines := []string{"Window too small", fmt.Sprintf("Need %dx%d", minW, minH)}

	box := core.CenteredRect(g.screenW, g.screenH, len(lines[0])+4, len(lines)+2)
	if box.W <= g.screenW && box.H <= g.screenH {
		dst.DrawBox(box)
	}
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line)
	}
}

// renderHUD draws the title and counters. The counter row spans at least
// minWidth columns centered on the board, so narrow boards keep both
// counters readable.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "MINESWEEPER - " + g.layout.Title
	dst.DrawTextCentered(0, title)

	hudW := max(boardW, minWidth)
	hudX := max(boardX+boardW/2-hudW/2, 0)

	st := g.sess.Stats()
	left := fmt.Sprintf("Mines: %d", g.board.Mines)
	dst.DrawText(hudX, 1, left)

	right := fmt.Sprintf("Safe left: %d", st.SafeRemaining)
	if st.Peeking {
		right = "PEEK  " + right
	}
	dst.DrawTextColored(max(hudX+hudW-len(right), hudX+len(left)+1), 1, right, hudColor(st.Peeking))
}

func hudColor(peeking bool) core.Color {
	if peeking {
		return core.ColorYellow
	}
	return core.ColorDefault
}

// renderCells draws every cell, with the cursor cell bracketed.
func (g *Game) renderCells(dst *core.Screen, board *minesweeper.Board, originX, originY int) {
	won := g.sess.Status() == minesweeper.StatusWon

	for _, p := range board.Positions() {
		c, err := board.CellAt(p)
		if err != nil {
			continue
		}
		glyph, color := g.cellGlyph(p, c, won)

		x := originX + p.X*cellWidth
		y := originY + p.Y
		if p == g.cursor {
			dst.SetColored(x, y, '[', core.ColorCursor)
			dst.SetColored(x+2, y, ']', core.ColorCursor)
		}
		dst.SetColored(x+1, y, glyph, color)
	}
}

// cellGlyph picks the rune and color of one cell.
func (g *Game) cellGlyph(p minesweeper.Position, c minesweeper.Cell, won bool) (rune, core.Color) {
	if !c.Visible() {
		return '■', core.ColorGray
	}

	switch c.Kind {
	case minesweeper.KindMine:
		switch {
		case g.hasDetonated && p == g.detonated:
			return 'X', core.ColorBrightRed
		case won:
			return '*', core.ColorGreen
		default:
			return '*', core.ColorRed
		}
	case minesweeper.KindNumber:
		return rune('0' + c.AdjacentMines), core.NumberColor(c.AdjacentMines)
	default:
		return '·', core.ColorGray
	}
}

// renderOverlays draws the end-of-game box or the current notice below
// the board.
func (g *Game) renderOverlays(dst *core.Screen, centerX, top int) {
	switch g.sess.Status() {
	case minesweeper.StatusWon:
		g.drawOverlay(dst, centerX, top, core.ColorGreen, "YOU WIN!", "Press R to play again")
		return
	case minesweeper.StatusLost:
		g.drawOverlay(dst, centerX, top, core.ColorBrightRed, "BOOM!", "Press R to try again")
		return
	}

	if g.notice != "" {
		dst.DrawTextColored(centerX-len([]rune(g.notice))/2, top+1, g.notice, core.ColorYellow)
	}
}

// drawOverlay draws a boxed message whose top edge is at top.
func (g *Game) drawOverlay(dst *core.Screen, centerX, top int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, top, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(centerX-len(line)/2, top+1+i, line, c)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/HJKL/WASD: Move | Space/Enter: Reveal | P: Peek | R: New game | Q: Quit"
}
