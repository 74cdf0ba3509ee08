package render

import "github.com/bilalkah/cam3d/pkg/math3d"

// Point is a screen or view space position. After perspective projection
// Z holds depth normalized to [0, 1].
type Point = math3d.Vec3[float64]

type outcode uint8

const (
	inside outcode = 0
	left   outcode = 1 << 0
	right  outcode = 1 << 1
	bottom outcode = 1 << 2
	top    outcode = 1 << 3
)

// Clipper clips line segments to the rectangle [0, width-1] x [0, height-1]
// with the Cohen–Sutherland algorithm.
type Clipper struct {
	xmax, ymax float64
}

// NewClipper creates a clipper for a width x height surface.
func NewClipper(width, height int) Clipper {
	return Clipper{
		xmax: float64(width - 1),
		ymax: float64(height - 1),
	}
}

func (c Clipper) outcode(x, y float64) outcode {
	code := inside
	if x < 0 {
		code |= left
	} else if x > c.xmax {
		code |= right
	}
	if y < 0 {
		code |= bottom
	} else if y > c.ymax {
		code |= top
	}
	return code
}

// Clip clips the segment p0-p1 in place. It reports whether any part of the
// segment lies inside the rectangle; when it returns false the endpoints
// are partially updated and must not be used. Z is never modified.
func (c Clipper) Clip(p0, p1 *Point) bool {
	code0 := c.outcode(p0.X, p0.Y)
	code1 := c.outcode(p1.X, p1.Y)

	for {
		switch {
		case code0|code1 == 0:
			return true
		case code0&code1 != 0:
			return false
		}

		// The larger outcode moves first.
		out := code0
		if code1 > code0 {
			out = code1
		}

		// Each branch divides by a delta the outcode guarantees non-zero.
		var x, y float64
		switch {
		case out&top != 0:
			x = p0.X + (p1.X-p0.X)*(c.ymax-p0.Y)/(p1.Y-p0.Y)
			y = c.ymax
		case out&bottom != 0:
			x = p0.X + (p1.X-p0.X)*(0-p0.Y)/(p1.Y-p0.Y)
			y = 0
		case out&right != 0:
			y = p0.Y + (p1.Y-p0.Y)*(c.xmax-p0.X)/(p1.X-p0.X)
			x = c.xmax
		case out&left != 0:
			y = p0.Y + (p1.Y-p0.Y)*(0-p0.X)/(p1.X-p0.X)
			x = 0
		}

		if out == code0 {
			p0.X, p0.Y = x, y
			code0 = c.outcode(x, y)
		} else {
			p1.X, p1.Y = x, y
			code1 = c.outcode(x, y)
		}
	}
}
