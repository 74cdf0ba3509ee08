package render

import (
	"github.com/bilalkah/cam3d/pkg/math3d"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min Point
	Max Point
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max Point) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns the center of the AABB.
func (b AABB) Center() Point {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() Point {
	return b.Max.Sub(b.Min)
}

// Transform returns an AABB that bounds the original AABB after transformation.
// This computes a new AABB that contains all 8 transformed corners.
func (b AABB) Transform(m math3d.Mat4) AABB {
	corners := [8]Point{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}

	transformed := m.MulVec3(corners[0])
	newMin := transformed
	newMax := transformed

	for i := 1; i < 8; i++ {
		transformed = m.MulVec3(corners[i])
		newMin = newMin.Min(transformed)
		newMax = newMax.Max(transformed)
	}

	return AABB{Min: newMin, Max: newMax}
}

// ContainsPoint returns true if the point is inside the AABB.
func (b AABB) ContainsPoint(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// TransformAABB transforms an AABB by a matrix and returns the new bounds.
func TransformAABB(box AABB, m math3d.Mat4) AABB {
	return box.Transform(m)
}

// Plane is the half-space Normal·p + D >= 0.
type Plane struct {
	Normal Point
	D      float64
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point Point) float64 {
	return p.Normal.Dot(point) + p.D
}

func (p *Plane) normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1 / l)
	p.D /= l
}

// Frustum represents the 6 planes of a view frustum.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
// Each plane's normal points inward.
type Frustum struct {
	Planes [6]Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustumFromMatrix extracts frustum planes from a projection matrix
// that maps view depth to [0, 1], such as math3d.Perspective.
// Uses the Gribb/Hartmann method.
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	row := func(i int) (Point, float64) {
		return Point{X: m[i][0], Y: m[i][1], Z: m[i][2]}, m[i][3]
	}
	r0, d0 := row(0)
	r1, d1 := row(1)
	r2, d2 := row(2)
	r3, d3 := row(3)

	var f Frustum
	f.Planes[FrustumLeft] = Plane{Normal: r3.Add(r0), D: d3 + d0}
	f.Planes[FrustumRight] = Plane{Normal: r3.Sub(r0), D: d3 - d0}
	f.Planes[FrustumBottom] = Plane{Normal: r3.Add(r1), D: d3 + d1}
	f.Planes[FrustumTop] = Plane{Normal: r3.Sub(r1), D: d3 - d1}
	// Depth is clipped to [0, w], not [-w, w].
	f.Planes[FrustumNear] = Plane{Normal: r2, D: d2}
	f.Planes[FrustumFar] = Plane{Normal: r3.Sub(r2), D: d3 - d2}

	for i := range f.Planes {
		f.Planes[i].normalize()
	}
	return f
}

// IntersectAABB tests if the AABB intersects or is inside the frustum.
// Returns true if any part of the AABB may be visible.
func (f Frustum) IntersectAABB(box AABB) bool {
	for i := range f.Planes {
		plane := f.Planes[i]

		// The corner furthest along the normal; if it is outside, the
		// whole box is.
		pVertex := Point{
			X: selectComponent(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			Y: selectComponent(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			Z: selectComponent(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		}

		if plane.DistanceToPoint(pVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f Frustum) ContainsPoint(p Point) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// Frustum returns the view frustum of the rasterizer's projection.
func (r *Rasterizer) Frustum() Frustum {
	return r.frustum
}

// InDepthRange reports whether any part of a view-space box lies between
// the near and far planes.
func (r *Rasterizer) InDepthRange(box AABB) bool {
	return box.Max.Z >= r.near && box.Min.Z <= r.far
}

// IsVisible reports whether a view-space box may be visible: it must be in
// depth range and intersect the frustum.
func (r *Rasterizer) IsVisible(box AABB) bool {
	return r.InDepthRange(box) && r.frustum.IntersectAABB(box)
}
