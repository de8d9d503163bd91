package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the platform layer.
type Color uint8

// Colors used by the maze renderer and menus.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorPink
	ColorGray
)

// Cell is a single screen position: a rune plus its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}
