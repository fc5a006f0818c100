package core

// Color represents a foreground color for a screen cell.
// Values are ANSI 256-color codes so the platform layer can map them
// directly to terminal styles.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault       Color = 0
	ColorRed           Color = 1
	ColorGreen         Color = 2
	ColorYellow        Color = 3
	ColorBlue          Color = 4
	ColorMagenta       Color = 5
	ColorCyan          Color = 6
	ColorWhite         Color = 7
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
	ColorOrange        Color = 208
	ColorGray          Color = 245
	ColorDimGray       Color = 238
)

// greenRamp holds xterm cube greens from bright to dark.
var greenRamp = [...]Color{46, 40, 34, 28, 22}

// GreenRamp returns a color from the 256-color green ramp, brightest at
// t=0 and darkest at t=1. Used for the snake body gradient; the mapping
// is a step function of t so renderer tests can assert exact colors.
func GreenRamp(t float64) Color {
	if t <= 0 {
		return greenRamp[0]
	}
	if t >= 1 {
		return greenRamp[len(greenRamp)-1]
	}
	idx := int(t * float64(len(greenRamp)))
	if idx >= len(greenRamp) {
		idx = len(greenRamp) - 1
	}
	return greenRamp[idx]
}
