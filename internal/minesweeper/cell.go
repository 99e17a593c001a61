package minesweeper

// CellKind classifies a cell. The three kinds are mutually exclusive.
type CellKind int

const (
	KindEmpty  CellKind = iota // no adjacent mines
	KindNumber                 // at least one adjacent mine
	KindMine
)

// String returns a human-readable name for the kind.
func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNumber:
		return "Number"
	case KindMine:
		return "Mine"
	default:
		return "Unknown"
	}
}

// Cell is one grid slot. Values handed out by Board and Engine are copies;
// mutating them has no effect on the game.
//
// Revealed only records the player's own uncovering and drives the win
// count. When a game ends every cell is force-shown through Shown, so
// renderers and "is this cell face up" checks must use Visible, not
// Revealed.
type Cell struct {
	Kind          CellKind
	AdjacentMines int  // meaningful only for Empty and Number cells
	Revealed      bool // uncovered by the player
	Shown         bool // force-shown by a peek or by the end of the game
}

// Visible returns true if the cell is currently drawn face up. After a
// win or a loss it is true for every cell.
func (c Cell) Visible() bool {
	return c.Revealed || c.Shown
}

// setMine turns the cell into a mine. Mines are permanent: returns false
// without touching the cell if it already is one.
func (c *Cell) setMine() bool {
	if c.Kind == KindMine {
		return false
	}
	c.Kind = KindMine
	return true
}

// addAdjacentMine bumps the mine count, promoting Empty to Number.
// Mines are left untouched.
func (c *Cell) addAdjacentMine() {
	if c.Kind == KindMine {
		return
	}
	c.AdjacentMines++
	c.Kind = KindNumber
}
