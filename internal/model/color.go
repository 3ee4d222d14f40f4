package model

import (
	"fmt"
	"math"
	"regexp"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hexPattern matches #RGB and #RRGGBB. colorful.Hex alone accepts trailing
// garbage such as "#12345g".
var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color is a normalized RGB triple with channels in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// ParseHex parses a #RRGGBB or #RGB string, case-insensitively.
func ParseHex(s string) (Color, error) {
	if !hexPattern.MatchString(s) {
		return Color{}, fmt.Errorf("%q is not a hex color", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	// Shorthand #RGB scales by 1/15, which can overshoot 1 by an ulp.
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// MustParseHex is ParseHex for static tables. Panics on bad input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsHex reports whether s is a well-formed hex color.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Valid reports whether every channel is a finite value in [0,1].
func (c Color) Valid() bool {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Hex returns the color as a lower-case #rrggbb string, rounding each
// channel to the nearest byte.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// RGB255 returns the byte value of each channel.
func (c Color) RGB255() (r, g, b uint8) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
}

// Quantize snaps each channel to the nearest multiple of 1/255, which is
// exactly what survives a trip through Hex.
func (c Color) Quantize() Color {
	const factor = 1.0 / 255.0
	r, g, b := c.RGB255()
	return Color{R: float64(r) * factor, G: float64(g) * factor, B: float64(b) * factor}
}

// String renders the color as an RGB tuple.
func (c Color) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
}
