// Package sweeper adapts the minesweeper engine to the platform: a cursor,
// input handling and rendering into a core.Screen. Each board layout is
// registered as its own game ID.
package sweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// Layout is a named board size and mine count.
type Layout struct {
	ID    string
	Title string
	Board core.BoardSpec
}

// DefaultLayoutID is the layout used when none is named.
const DefaultLayoutID = "classic"

// Layouts are the built-in boards. Mine density is roughly 15%, except
// the classic board which keeps the traditional 15 mines.
var Layouts = []Layout{
	{ID: "classic", Title: "Classic", Board: core.BoardSpec{Width: 10, Height: 13, Mines: 15}},
	{ID: "tiny", Title: "Tiny", Board: core.BoardSpec{Width: 5, Height: 10, Mines: 8}},
	{ID: "small", Title: "Small", Board: core.BoardSpec{Width: 10, Height: 15, Mines: 22}},
	{ID: "medium", Title: "Medium", Board: core.BoardSpec{Width: 15, Height: 20, Mines: 45}},
	{ID: "large", Title: "Large", Board: core.BoardSpec{Width: 25, Height: 30, Mines: 110}},
}

func init() {
	for _, l := range Layouts {
		registry.Register(l.ID, factory(l))
	}
}

func factory(l Layout) registry.Factory {
	return func() registry.Game {
		return New(l)
	}
}

// Validate checks the layout's board against the engine rules.
func (l Layout) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("layout without id: %w", minesweeper.ErrInvalidConfiguration)
	}
	if err := minesweeper.ValidateConfig(l.Board.Width, l.Board.Height, l.Board.Mines); err != nil {
		return fmt.Errorf("layout %q: %w", l.ID, err)
	}
	return nil
}

// RegisterLayout adds a layout to the registry, replacing any existing one
// with the same ID. A missing title falls back to the ID.
func RegisterLayout(l Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.Title == "" {
		l.Title = l.ID
	}
	registry.Replace(l.ID, factory(l))
	return nil
}

// FindLayout returns the built-in layout with the given ID.
func FindLayout(id string) (Layout, bool) {
	for _, l := range Layouts {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}
