package render

import (
	"image/color"

	"github.com/taigrr/retrocube/pkg/math3d"
)

// Color is an 8-bit per channel, non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Colors for convenience
var (
	ColorBlack = Color{0, 0, 0, 255}
	ColorWhite = Color{255, 255, 255, 255}
	ColorGray  = Color{127, 127, 127, 255}
	ColorRed   = Color{255, 0, 0, 255}
	ColorGreen = Color{0, 255, 0, 255}
	ColorBlue  = Color{0, 0, 255, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{c.R, c.G, c.B, c.A}.RGBA()
}

// NRGBA converts c to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, c.A}
}

// Tint multiplies c channel-wise by t, with 255 acting as 1.
func (c Color) Tint(t Color) Color {
	return Color{
		R: uint8(uint32(c.R) * uint32(t.R) / 255),
		G: uint8(uint32(c.G) * uint32(t.G) / 255),
		B: uint8(uint32(c.B) * uint32(t.B) / 255),
		A: uint8(uint32(c.A) * uint32(t.A) / 255),
	}
}

// PixelData packs c into a 32-bit integer as 0xRRGGBBAA.
func (c Color) PixelData() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// ColorFromPixelData unpacks a 0xRRGGBBAA integer.
func ColorFromPixelData(data uint32) Color {
	return Color{
		R: uint8(data >> 24),
		G: uint8(data >> 16),
		B: uint8(data >> 8),
		A: uint8(data),
	}
}

// LerpColor interpolates between a and b by t per channel, truncating toward
// zero. Results outside 0..255 saturate and NaN becomes 0.
func LerpColor(a, b Color, t float32) Color {
	return Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float32) uint8 {
	v := math3d.Lerp(float32(a), float32(b), t)
	switch {
	case math3d.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
