package core

// Color is a foreground color for a screen cell. The TUI maps each one to
// an ANSI 256-color code tuned for the track.
type Color uint8

const (
	ColorDefault Color = iota

	// Track surface.
	ColorGreen       // Grass verges
	ColorGray        // Asphalt, panel labels
	ColorBrightWhite // Lane separators, panel values, message boxes

	// Player car and its resources.
	ColorBrightRed    // Player car, titles
	ColorOrange       // Wreck
	ColorBrightYellow // Flying car, fly counter
	ColorRed          // Fly charger

	// Opponent liveries, one per sprite.
	ColorBlue
	ColorCyan
	ColorMagenta
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightCyan

	colorCount
)

// NumColors is the size of the palette.
const NumColors = int(colorCount)
