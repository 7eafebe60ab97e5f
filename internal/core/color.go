package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Colors used by the scene renderer.
const (
	ColorDefault Color = iota
	ColorGreen         // grass, pipe caps
	ColorBrightGreen   // pipes
	ColorOrange        // ground
	ColorBrightYellow  // hero
	ColorGray          // background hills
	ColorBrightWhite   // HUD
)
