package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colors in terminals and to RGB on the canvas host.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Semantic colors used across sessions.
const (
	ColorTitle   = ColorBrightYellow
	ColorHit     = ColorBrightGreen
	ColorMiss    = ColorBrightRed
	ColorAccent  = ColorBrightCyan
	ColorHint    = ColorGray
	ColorFrame   = ColorBlue
	ColorFocused = ColorBrightMagenta
)
