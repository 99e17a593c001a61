package minesweeper

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRandom replays queued values, then falls back to a fixed seed.
type scriptedRandom struct {
	values   []int
	next     int
	fallback *rand.Rand
}

func (r *scriptedRandom) Intn(n int) int {
	if r.next < len(r.values) {
		v := r.values[r.next]
		r.next++
		return v % n
	}
	if r.fallback == nil {
		r.fallback = rand.New(rand.NewSource(1))
	}
	return r.fallback.Intn(n)
}

// newEngineWithMines builds an engine whose mines are already placed,
// as if the first move had happened elsewhere.
func newEngineWithMines(t *testing.T, width, height int, mines ...Position) *Engine {
	t.Helper()

	e, err := New(width, height, len(mines), &scriptedRandom{})
	require.NoError(t, err)

	for _, m := range mines {
		require.True(t, e.board.setMine(m), "duplicate mine at %s", m)
	}
	e.firstMoveMade = true
	return e
}

// mineNeighbors counts mines around p the slow way.
func mineNeighbors(b *Board, p Position) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := p.Add(dx, dy)
			if b.IsValidPosition(q) && b.cell(q).Kind == KindMine {
				n++
			}
		}
	}
	return n
}

// revealedSet collects the player-revealed positions of a board.
func revealedSet(b *Board) map[Position]bool {
	set := make(map[Position]bool)
	for _, p := range b.Positions() {
		if b.cell(p).Revealed {
			set[p] = true
		}
	}
	return set
}
