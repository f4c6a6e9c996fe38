package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color value.
// Supports true color (RGB) and terminal palette colors.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack   = Color{R: 0, G: 0, B: 0}
	ColorWhite   = Color{R: 255, G: 255, B: 255}
	ColorRed     = Color{R: 255, G: 0, B: 0}
	ColorGreen   = Color{R: 0, G: 255, B: 0}
	ColorBlue    = Color{R: 0, G: 0, B: 255}
	ColorYellow  = Color{R: 255, G: 255, B: 0}
	ColorCyan    = Color{R: 0, G: 255, B: 255}
	ColorMagenta = Color{R: 255, G: 0, B: 255}
	ColorGray    = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates an indexed palette color.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex creates a color from a hex string.
// Supports formats: "#RGB", "#RRGGBB", "RGB", "RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return ColorFromRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// IsDefault returns true if this is the terminal default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend blends two colors in Lab space.
// Amount 0.0 = c, 1.0 = other. Palette and default colors cannot be
// interpolated and switch over at the halfway point.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Indexed || other.Indexed || c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return fromColorful(c.colorful().BlendLab(other.colorful(), amount))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return ColorFromRGB(r, g, b)
}

// ColorPair is an immutable foreground and background color.
type ColorPair struct {
	Fg Color
	Bg Color
}

// DefaultColors uses the terminal default for both colors.
var DefaultColors = ColorPair{Fg: ColorDefault, Bg: ColorDefault}

// NewColorPair creates a color pair.
func NewColorPair(fg, bg Color) ColorPair {
	return ColorPair{Fg: fg, Bg: bg}
}

// Equals returns true if both colors match.
func (p ColorPair) Equals(other ColorPair) bool {
	return p.Fg.Equals(other.Fg) && p.Bg.Equals(other.Bg)
}

// Reversed swaps foreground and background.
func (p ColorPair) Reversed() ColorPair {
	return ColorPair{Fg: p.Bg, Bg: p.Fg}
}

// Blend interpolates both colors of the pair.
func (p ColorPair) Blend(other ColorPair, amount float64) ColorPair {
	return ColorPair{
		Fg: p.Fg.Blend(other.Fg, amount),
		Bg: p.Bg.Blend(other.Bg, amount),
	}
}

// String returns a string representation of the pair.
func (p ColorPair) String() string {
	return p.Fg.String() + "/" + p.Bg.String()
}

// Gradient returns n color pairs interpolated from "from" to "to".
// The first entry equals from and the last equals to.
func Gradient(n int, from, to ColorPair) []ColorPair {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []ColorPair{from}
	}
	out := make([]ColorPair, n)
	for i := range out {
		out[i] = from.Blend(to, float64(i)/float64(n-1))
	}
	out[n-1] = to
	return out
}
