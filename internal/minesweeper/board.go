// Package minesweeper implements the Minesweeper game engine: the board
// model, lazy mine placement, neighbor counts, flood-fill reveals and
// win/lose detection. It has no rendering or terminal dependencies.
package minesweeper

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is a rectangular grid of cells addressed by Position.
// Cells are stored row-major in a flat slice.
type Board struct {
	width   int
	height  int
	cells   []Cell
	offsets []Position // neighbor visit order
}

// newBoard allocates a board of hidden Empty cells.
// Callers validate the dimensions first.
func newBoard(width, height int) *Board {
	return &Board{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		offsets: neighborOffsets,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Area returns the total number of cells.
func (b *Board) Area() int {
	return b.width * b.height
}

// IsValidPosition returns true if p lies inside the grid.
func (b *Board) IsValidPosition(p Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// CellAt returns a copy of the cell at p.
func (b *Board) CellAt(p Position) (Cell, error) {
	if !b.IsValidPosition(p) {
		return Cell{}, fmt.Errorf("cell at %s on %dx%d board: %w", p, b.width, b.height, ErrOutOfBounds)
	}
	return *b.cell(p), nil
}

// ForEachNeighbor calls fn once for each valid position around p,
// excluding p itself. The order is fixed for the lifetime of the board.
func (b *Board) ForEachNeighbor(p Position, fn func(Position)) {
	for _, d := range b.offsets {
		n := p.Add(d.X, d.Y)
		if b.IsValidPosition(n) {
			fn(n)
		}
	}
}

// Positions returns every position in row-major order.
func (b *Board) Positions() []Position {
	result := make([]Position, 0, b.Area())
	for y := range b.height {
		for x := range b.width {
			result = append(result, Position{X: x, Y: y})
		}
	}
	return result
}

// CountKind returns how many cells have the given kind.
func (b *Board) CountKind(kind CellKind) int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Kind == kind {
			n++
		}
	}
	return n
}

// cell returns a pointer into the grid. p must be valid.
func (b *Board) cell(p Position) *Cell {
	return &b.cells[p.Y*b.width+p.X]
}

// setMine places a mine at p and bumps the counts of its neighbors.
// Returns false with no effect if p is already a mine.
func (b *Board) setMine(p Position) bool {
	if !b.cell(p).setMine() {
		return false
	}
	b.ForEachNeighbor(p, func(n Position) {
		b.cell(n).addAdjacentMine()
	})
	return true
}

// showAll force-shows every cell.
func (b *Board) showAll() {
	for i := range b.cells {
		b.cells[i].Shown = true
	}
}

// hideAll clears every force-shown bit; player reveals stay.
func (b *Board) hideAll() {
	for i := range b.cells {
		b.cells[i].Shown = false
	}
}

// clone returns a deep copy of the board.
func (b *Board) clone() *Board {
	c := &Board{
		width:   b.width,
		height:  b.height,
		cells:   make([]Cell, len(b.cells)),
		offsets: b.offsets,
	}
	copy(c.cells, b.cells)
	return c
}

// String dumps the board as the player sees it:
// '-' hidden, '*' mine, '.' empty, digits for numbers.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.Area()*2 + b.height)

	for y := range b.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := b.cell(Position{X: x, Y: y})
			switch {
			case !c.Visible():
				sb.WriteByte('-')
			case c.Kind == KindMine:
				sb.WriteByte('*')
			case c.Kind == KindEmpty:
				sb.WriteByte('.')
			default:
				sb.WriteString(strconv.Itoa(c.AdjacentMines))
			}
		}
	}
	return sb.String()
}
