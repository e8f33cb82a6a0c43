package core

// Color is the foreground color of a screen cell.
// The terminal frontend maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorBrightRed          // banner text
	ColorBrightYellow       // stars
	ColorBrightCyan         // player
	ColorGray               // sprites without a glyph
)
