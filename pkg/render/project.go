package render

import (
	"fmt"
	"math"

	"github.com/bilalkah/cam3d/pkg/math3d"
)

// Default projection parameters.
const (
	DefaultFieldOfView = math.Pi / 3
	DefaultNear        = 0.1
	DefaultFar         = 100.0
)

type options struct {
	fov       float64
	aspect    float64
	near, far float64
	depthTest bool
}

// Option configures a Rasterizer at construction.
type Option func(*options)

// WithFieldOfView sets the vertical field of view in radians.
func WithFieldOfView(fov float64) Option {
	return func(o *options) { o.fov = fov }
}

// WithClipPlanes sets the near and far view distances accepted by
// ProjectPerspective.
func WithClipPlanes(near, far float64) Option {
	return func(o *options) {
		o.near = near
		o.far = far
	}
}

// WithAspectRatio overrides the width/height aspect ratio derived from the
// surface size.
func WithAspectRatio(aspect float64) Option {
	return func(o *options) { o.aspect = aspect }
}

// WithDepthTest enables depth-tested writes in DrawLine and DrawTriangle.
func WithDepthTest(enabled bool) Option {
	return func(o *options) { o.depthTest = enabled }
}

func (o options) validate() {
	if !(o.fov > 0 && o.fov < math.Pi) {
		panic(fmt.Sprintf("render: field of view %v must be in (0, π)", o.fov))
	}
	if !(o.near > 0 && o.far > o.near) {
		panic(fmt.Sprintf("render: clip planes near=%v far=%v must satisfy 0 < near < far", o.near, o.far))
	}
	if !(o.aspect > 0) {
		panic(fmt.Sprintf("render: aspect ratio %v must be positive", o.aspect))
	}
}

// span is the pixel extent n-1, floored at 1 so one-pixel surfaces do
// not divide by zero.
func span(n int) float64 {
	return float64(max(n-1, 1))
}

// NormalizeToScreen maps pixel coordinates in [0, W-1] x [0, H-1] to
// [-1, 1] x [-1, 1] with +Y up. Z is preserved.
func (r *Rasterizer) NormalizeToScreen(p Point) Point {
	return Point{
		X: p.X/span(r.width)*2 - 1,
		Y: 1 - p.Y/span(r.height)*2,
		Z: p.Z,
	}
}

// ProjectOrthographic maps normalized coordinates in [-1, 1] x [-1, 1] to
// pixel space [0, W-1] x [0, H-1]. It is the inverse of NormalizeToScreen.
// Z is preserved.
func (r *Rasterizer) ProjectOrthographic(p Point) Point {
	return Point{
		X: (p.X + 1) / 2 * float64(r.width-1),
		Y: (1 - p.Y) / 2 * float64(r.height-1),
		Z: p.Z,
	}
}

// ProjectPerspective projects a view-space point (camera at the origin
// looking down +Z) into pixel space. Z of the result is the view depth
// normalized to [0, 1] between the clip planes.
//
// Points whose depth lies outside [near, far] are rejected: the origin is
// returned with ok set to false.
func (r *Rasterizer) ProjectPerspective(p Point) (Point, bool) {
	if p.Z < r.near || p.Z > r.far {
		return Point{}, false
	}

	ndc := r.proj.MulVec4(math3d.V4FromV3(p, 1)).PerspectiveDivide()

	return Point{
		X: (ndc.X + 1) / 2 * float64(r.width-1),
		Y: (1 - ndc.Y) / 2 * float64(r.height-1),
		Z: (p.Z - r.near) / (r.far - r.near),
	}, true
}

// Projection returns the perspective matrix built at construction.
func (r *Rasterizer) Projection() math3d.Mat4 {
	return r.proj
}

// FieldOfView returns the vertical field of view in radians.
func (r *Rasterizer) FieldOfView() float64 { return r.fov }

// FocalLength returns 1/tan(fov/2).
func (r *Rasterizer) FocalLength() float64 { return r.focal }

// AspectRatio returns the width/height ratio used by the projection.
func (r *Rasterizer) AspectRatio() float64 { return r.aspect }

// ClipPlanes returns the near and far view distances.
func (r *Rasterizer) ClipPlanes() (near, far float64) { return r.near, r.far }
