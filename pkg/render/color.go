package render

import "image/color"

// ARGB is an 8-bit per channel color with straight (non-premultiplied)
// alpha.
type ARGB struct {
	A, R, G, B uint8
}

var _ color.Color = ARGB{}

// Colors for convenience
var (
	ColorTransparent = ARGB{}
	ColorBlack       = ARGB{255, 0, 0, 0}
	ColorWhite       = ARGB{255, 255, 255, 255}
	ColorRed         = ARGB{255, 255, 0, 0}
	ColorGreen       = ARGB{255, 0, 255, 0}
	ColorBlue        = ARGB{255, 0, 0, 255}
	ColorYellow      = ARGB{255, 255, 255, 0}
	ColorCyan        = ARGB{255, 0, 255, 255}
	ColorMagenta     = ARGB{255, 255, 0, 255}
	ColorGray        = ARGB{255, 128, 128, 128}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) ARGB {
	return ARGB{255, r, g, b}
}

// Uint32 packs the color as 0xAARRGGBB.
func (c ARGB) Uint32() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ARGBFromUint32 unpacks a 0xAARRGGBB value.
func ARGBFromUint32(v uint32) ARGB {
	return ARGB{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// RGBA implements color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ARGBFromColor converts any color.Color to ARGB.
func ARGBFromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB{A: n.A, R: n.R, G: n.G, B: n.B}
}
