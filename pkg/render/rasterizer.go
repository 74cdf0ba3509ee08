package render

import (
	"fmt"
	"image"
	"math"

	"github.com/bilalkah/cam3d/pkg/math3d"
)

// Rasterizer draws clipped lines and scanline-filled triangles into a
// Surface. Its size and projection are fixed at construction.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width, height int

	clipper Clipper
	stepper LineStepper
	solver  IntersectionSolver

	fov, focal, aspect float64
	near, far          float64
	proj               math3d.Mat4
	frustum            Frustum
	depthTest          bool

	// scratch holds the pixels of the line being drawn.
	scratch []image.Point
	// projected and visible cache mesh vertices during DrawMesh.
	projected []Point
	visible   []bool
}

// NewRasterizer creates a rasterizer for a width x height surface.
// Width and height must be positive.
func NewRasterizer(width, height int, opts ...Option) *Rasterizer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: rasterizer size %dx%d must be positive", width, height))
	}

	o := options{
		fov:    DefaultFieldOfView,
		aspect: float64(width) / float64(height),
		near:   DefaultNear,
		far:    DefaultFar,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.validate()

	r := &Rasterizer{
		width:     width,
		height:    height,
		clipper:   NewClipper(width, height),
		fov:       o.fov,
		focal:     1 / math.Tan(o.fov/2),
		aspect:    o.aspect,
		near:      o.near,
		far:       o.far,
		proj:      math3d.Perspective(o.fov, o.aspect, o.near, o.far),
		depthTest: o.depthTest,
	}
	r.frustum = NewFrustumFromMatrix(r.proj)

	Logger().Debug("rasterizer created",
		"width", width,
		"height", height,
		"fov", o.fov,
		"near", o.near,
		"far", o.far,
		"depth_test", o.depthTest,
	)
	return r
}

// Width returns the surface width the rasterizer was built for.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the surface height the rasterizer was built for.
func (r *Rasterizer) Height() int { return r.height }

// DepthTest reports whether draws are depth tested.
func (r *Rasterizer) DepthTest() bool { return r.depthTest }

func (r *Rasterizer) plot(s Surface, x, y int, z float64, c ARGB) {
	if r.depthTest {
		s.SetPixelDepth(x, y, z, c)
		return
	}
	s.SetPixel(x, y, c)
}

// DrawLine draws the segment from start up to but excluding end, clipped
// to the surface. With depth testing every pixel uses start.Z.
func (r *Rasterizer) DrawLine(start, end Point, s Surface, c ARGB) {
	p0, p1 := start, end
	if !r.clipper.Clip(&p0, &p1) {
		return
	}

	r.scratch = r.stepper.AppendLine(r.scratch[:0], p0.X, p0.Y, p1.X, p1.Y)
	for _, p := range r.scratch {
		r.plot(s, p.X, p.Y, start.Z, c)
	}
}

// DrawTriangle draws the outline of p1 p2 p3 and fills it row by row.
// Each row spans the leftmost to rightmost edge crossing; with depth
// testing the whole span takes the smallest crossing depth.
func (r *Rasterizer) DrawTriangle(p1, p2, p3 Point, s Surface, c ARGB) {
	r.DrawLine(p1, p2, s, c)
	r.DrawLine(p2, p3, s, c)
	r.DrawLine(p3, p1, s, c)

	edges := [3][2]Point{{p1, p2}, {p2, p3}, {p3, p1}}

	// Clamp before converting: float to int is undefined out of range.
	lastRow := float64(r.height - 1)
	minY := int(min(max(min(p1.Y, p2.Y, p3.Y), 0), lastRow+1))
	maxY := int(max(min(max(p1.Y, p2.Y, p3.Y), lastRow), -1))
	maxX := r.width - 1
	rowEnd := float64(r.width)

	for y := minY; y <= maxY; y++ {
		fy := float64(y)
		a, b := Point{X: 0, Y: fy}, Point{X: rowEnd, Y: fy}

		xmin, xmax := r.width, 0
		z := math.Inf(1)
		for _, e := range edges {
			hit, ok := r.solver.Segments(e[0], e[1], a, b)
			if !ok {
				continue
			}
			x := int(hit.X)
			xmin = min(xmin, x)
			xmax = max(xmax, x)
			z = min(z, hit.Z)
		}

		if xmin >= xmax {
			continue
		}
		for x := xmin; x <= min(xmax, maxX); x++ {
			r.plot(s, x, y, z, c)
		}
	}
}
