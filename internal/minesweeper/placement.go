package minesweeper

// placeMines scatters mineCount mines by rejection sampling, keeping them
// out of the safe zone around anchor.
func (e *Engine) placeMines(anchor Position) {
	radius := safeRadius(e.board, anchor, e.mineCount)

	placed := 0
	for placed < e.mineCount {
		p := Position{
			X: e.rng.Intn(e.board.width),
			Y: e.rng.Intn(e.board.height),
		}
		if p.Chebyshev(anchor) <= radius {
			continue
		}
		if !e.board.setMine(p) {
			continue
		}
		placed++
	}
}

// safeRadius returns how far around anchor mines are kept away.
//
// The default is 1: the anchor and its 8 neighbors. When the cells left
// outside that 3x3 block cannot hold every mine, only the anchor itself is
// kept clear. mineCount < area always leaves room for that, so sampling
// terminates.
func safeRadius(b *Board, anchor Position, mineCount int) int {
	zone := 1
	b.ForEachNeighbor(anchor, func(Position) {
		zone++
	})
	if b.Area()-zone >= mineCount {
		return 1
	}
	return 0
}
