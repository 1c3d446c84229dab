package core

// Color is a foreground color for a screen cell. The terminal driver maps
// each value to an ANSI 256-color code.
type Color uint8

// Colors used by the play field, HUD and quiz overlay.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RowColors cycles through brick rows so the grid reads as stripes.
var RowColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan}
