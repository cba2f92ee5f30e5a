package boxel

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex creates a Color from a 0xRRGGBB value.
func Hex(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// Named colors.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)

var namedColors = map[string]Color{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
}

// FG returns the escape sequence that sets this color as the foreground.
func (c Color) FG() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// BG returns the escape sequence that sets this color as the background.
func (c Color) BG() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// String returns the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Ptr returns a pointer to a copy of c, for the optional color fields of
// BoxOptions and DivOptions.
func (c Color) Ptr() *Color {
	return &c
}

// ParseColor accepts a color name (red, cyan, ...) or a #rrggbb hex string.
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}
