// Color representation and terminal capability detection
package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeAuto ColorMode = iota // detect from environment
	ColorMode256                   // 256-color palette (SGR 38;5;n)
	ColorModeTrue                  // 24-bit true color (SGR 38;2;r;g;b)
)

// RGB is a 24-bit color. The zero value is black; use DefaultColor
// to request the terminal's default foreground/background.
type RGB struct {
	R, G, B uint8
}

// DefaultColor marks a cell as using the terminal default.
// 0x01000001 sentinel pattern cannot collide with real colors
// because RGB is compared by value, not bit pattern.
var DefaultColor = RGB{0x01, 0x00, 0x01}

// IsDefault reports whether c is the default-color sentinel
func (c RGB) IsDefault() bool {
	return c == DefaultColor
}

// cube6 maps a color channel to the nearest 6x6x6 cube index
func cube6(v uint8) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return int(v-35) / 40
}

// cubeLevels holds the channel values of the xterm 6x6x6 cube
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// To256 converts an RGB color to the nearest xterm-256 palette index.
// Grays map into the 24-step grayscale ramp (232-255) when closer
// than the color cube candidate.
func (c RGB) To256() uint8 {
	ri, gi, bi := cube6(c.R), cube6(c.G), cube6(c.B)
	cr, cg, cb := cubeLevels[ri], cubeLevels[gi], cubeLevels[bi]

	// grayscale ramp candidate
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	var grayIdx int
	if gray > 238 {
		grayIdx = 23
	} else if gray >= 8 {
		grayIdx = (gray - 8) / 10
	}
	gv := uint8(8 + grayIdx*10)

	cubeDist := dist2(c.R, cr) + dist2(c.G, cg) + dist2(c.B, cb)
	grayDist := dist2(c.R, gv) + dist2(c.G, gv) + dist2(c.B, gv)

	if grayDist < cubeDist {
		return uint8(232 + grayIdx)
	}
	return uint8(16 + 36*ri + 6*gi + bi)
}

func dist2(a, b uint8) int {
	d := int(a) - int(b)
	return d * d
}

// DetectColorMode inspects the environment for true color support
func DetectColorMode() ColorMode {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrue
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") || strings.Contains(term, "direct") {
		return ColorModeTrue
	}

	// Known true color terminals that may not set COLORTERM
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "ghostty", "vscode":
		return ColorModeTrue
	}

	return ColorMode256
}
