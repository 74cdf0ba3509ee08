// Package render implements the cam3d rasterization pipeline: viewport
// clipping, line stepping, scanline triangle fill and projection into a
// depth-tested pixel surface.
package render

import (
	"fmt"
	"math"
)

// FarDepth is the depth a cleared framebuffer holds at every pixel.
// Any finite depth is closer.
const FarDepth = math.MaxFloat64

// Surface is the write side of a pixel surface as the rasterizer uses it.
// Callers guarantee 0 <= x < width and 0 <= y < height.
type Surface interface {
	// SetPixel writes c at (x, y) unconditionally.
	SetPixel(x, y int, c ARGB)
	// SetPixelDepth writes c and z at (x, y) only if z is strictly closer
	// than the stored depth.
	SetPixelDepth(x, y int, z float64, c ARGB)
}

// Framebuffer is a row-major color and depth buffer.
type Framebuffer struct {
	Width  int
	Height int
	pixels []ARGB
	depth  []float64
}

var _ Surface = (*Framebuffer)(nil)

// NewFramebuffer creates a framebuffer cleared to transparent black and
// far depth. Width and height must be positive.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: framebuffer size %dx%d must be positive", width, height))
	}
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]ARGB, width*height),
		depth:  make([]float64, width*height),
	}
	fb.Clear()
	return fb
}

func (fb *Framebuffer) index(x, y int) int {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		panic(fmt.Sprintf("render: pixel (%d, %d) outside %dx%d framebuffer", x, y, fb.Width, fb.Height))
	}
	return y*fb.Width + x
}

// Clear resets every pixel to transparent black and every depth to
// FarDepth.
func (fb *Framebuffer) Clear() {
	fb.ClearColor(ColorTransparent)
}

// ClearColor resets every pixel to c and every depth to FarDepth.
func (fb *Framebuffer) ClearColor(c ARGB) {
	fill(fb.pixels, c)
	fill(fb.depth, FarDepth)
}

// fill sets every element of s to v by copy-doubling.
func fill[T any](s []T, v T) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for i := 1; i < len(s); i *= 2 {
		copy(s[i:], s[:i])
	}
}

// SetPixel sets the pixel at (x, y) without touching depth.
func (fb *Framebuffer) SetPixel(x, y int, c ARGB) {
	fb.pixels[fb.index(x, y)] = c
}

// SetPixelDepth sets the pixel and depth at (x, y) if z is strictly less
// than the stored depth.
func (fb *Framebuffer) SetPixelDepth(x, y int, z float64, c ARGB) {
	i := fb.index(x, y)
	if z < fb.depth[i] {
		fb.pixels[i] = c
		fb.depth[i] = z
	}
}

// GetPixel returns the color at (x, y).
func (fb *Framebuffer) GetPixel(x, y int) ARGB {
	return fb.pixels[fb.index(x, y)]
}

// GetDepth returns the depth at (x, y).
func (fb *Framebuffer) GetDepth(x, y int) float64 {
	return fb.depth[fb.index(x, y)]
}

// Pixels returns the row-major color buffer. The slice aliases the
// framebuffer's storage.
func (fb *Framebuffer) Pixels() []ARGB {
	return fb.pixels
}

// Depth returns the row-major depth buffer. The slice aliases the
// framebuffer's storage.
func (fb *Framebuffer) Depth() []float64 {
	return fb.depth
}

// Packed writes every pixel as 0xAARRGGBB into dst, growing it if needed,
// and returns it. This is the layout most display textures expect.
func (fb *Framebuffer) Packed(dst []uint32) []uint32 {
	if cap(dst) < len(fb.pixels) {
		dst = make([]uint32, len(fb.pixels))
	}
	dst = dst[:len(fb.pixels)]
	for i, p := range fb.pixels {
		dst[i] = p.Uint32()
	}
	return dst
}
