package minesweeper

// floodFill uncovers start and every cell reachable from it through Empty
// cells. Number cells are uncovered but not expanded; mines are never
// touched. The revealed bit doubles as the visited set, so each cell is
// counted once and the stack never exceeds the board area.
func (e *Engine) floodFill(start Position) []Position {
	var revealed []Position

	e.reveal(start)
	revealed = append(revealed, start)
	stack := []Position{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		e.board.ForEachNeighbor(p, func(n Position) {
			c := e.board.cell(n)
			if c.Revealed || c.Kind == KindMine {
				return
			}
			e.reveal(n)
			revealed = append(revealed, n)
			if c.Kind == KindEmpty {
				stack = append(stack, n)
			}
		})
	}

	return revealed
}
