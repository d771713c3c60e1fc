// Package draw renders to ANSI terminals: a colored half-block canvas with
// logical-to-terminal scaling, plus cursor and screen helpers.
package draw

// Point represents a 2D point with float coordinates.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a terminal palette entry. The zero value is "no pixel".
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorDarkRed
	ColorGreen
	ColorDarkGreen
	ColorCyan
	ColorDarkCyan
	ColorYellow
	ColorMagenta
	ColorBlue
)

// sgr holds the ANSI foreground code for each color.
// Background codes are the foreground code + 10.
var sgr = [...]int{
	ColorNone:      39,
	ColorWhite:     97,
	ColorGray:      90,
	ColorRed:       91,
	ColorDarkRed:   31,
	ColorGreen:     92,
	ColorDarkGreen: 32,
	ColorCyan:      96,
	ColorDarkCyan:  36,
	ColorYellow:    93,
	ColorMagenta:   95,
	ColorBlue:      94,
}

func (c Color) fg() int {
	if int(c) >= len(sgr) {
		return sgr[ColorNone]
	}
	return sgr[c]
}

func (c Color) bg() int {
	if c == ColorNone {
		return 49
	}
	return c.fg() + 10
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
