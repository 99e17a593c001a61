package core

// Color is a foreground color for a screen cell.
// The platform maps it to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlue
	ColorGreen
	ColorRed
	ColorNavy
	ColorMaroon
	ColorTeal
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorYellow
	ColorCursor
)

// numberColors follows the classic Minesweeper palette: 1 blue, 2 green,
// 3 red, 4 navy, 5 maroon, 6 teal, 7 white, 8 gray.
var numberColors = [...]Color{
	ColorDefault,
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorNavy,
	ColorMaroon,
	ColorTeal,
	ColorWhite,
	ColorGray,
}

// NumberColor returns the color used to draw an adjacent-mine count.
func NumberColor(n int) Color {
	if n < 0 || n >= len(numberColors) {
		return ColorDefault
	}
	return numberColors[n]
}
