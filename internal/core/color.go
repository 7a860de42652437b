package core

// Color represents a logical paint color for a drawing intent.
// Terminal frontends map it to ANSI 256-color codes, the canvas frontend to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkBlue
)
