package render

import "image"

// LineStepper produces the integer pixels approximating a line segment
// with Bresenham's algorithm. The zero value is ready to use.
type LineStepper struct{}

// Line returns the pixels from (x0, y0) up to but excluding (x1, y1).
// Endpoints are truncated toward zero before stepping.
func (ls LineStepper) Line(x0, y0, x1, y1 float64) []image.Point {
	return ls.AppendLine(nil, x0, y0, x1, y1)
}

// AppendLine appends the pixels of Line to dst and returns the extended
// slice.
func (LineStepper) AppendLine(dst []image.Point, x0, y0, x1, y1 float64) []image.Point {
	ix0, iy0 := int(x0), int(y0)
	ix1, iy1 := int(x1), int(y1)

	dx, sx := absSign(ix1 - ix0)
	dy, sy := absSign(iy1 - iy0)

	switch {
	case dx == 0 && dy == 0:
		return dst
	case dy == 0:
		for x := ix0; x != ix1; x += sx {
			dst = append(dst, image.Pt(x, iy0))
		}
		return dst
	case dx == 0:
		for y := iy0; y != iy1; y += sy {
			dst = append(dst, image.Pt(ix0, y))
		}
		return dst
	}

	x, y := ix0, iy0
	if dx > dy {
		err := dx / 2
		for x != ix1 {
			dst = append(dst, image.Pt(x, y))
			err -= dy
			if err < 0 {
				y += sy
				err += dx
			}
			x += sx
		}
		return dst
	}

	err := dy / 2
	for y != iy1 {
		dst = append(dst, image.Pt(x, y))
		err -= dx
		if err < 0 {
			x += sx
			err += dy
		}
		y += sy
	}
	return dst
}

func absSign(d int) (abs, sign int) {
	if d < 0 {
		return -d, -1
	}
	return d, 1
}
