package quarkgl

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// MulScalar scales the RGB channels by s clamped to [0, 1].
func (c Color) MulScalar(s Scalar) Color {
	t := uint32(Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// RGBA converts to the image/color type used by font rasterizers.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
