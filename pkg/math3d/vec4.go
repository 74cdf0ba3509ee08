package math3d

// Vec4 is a homogeneous 3D point.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from a Vec3 with the given W.
func V4FromV3[T Scalar](v Vec3[T], w float64) Vec4 {
	return Vec4{float64(v.X), float64(v.Y), float64(v.Z), w}
}

// Vec3 returns the XYZ part, ignoring W.
func (v Vec4) Vec3() Vec3[float64] {
	return Vec3[float64]{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns the XYZ part divided by W.
// A zero W leaves the components unchanged.
func (v Vec4) PerspectiveDivide() Vec3[float64] {
	if v.W == 0 {
		return Vec3[float64]{v.X, v.Y, v.Z}
	}
	return Vec3[float64]{v.X / v.W, v.Y / v.W, v.Z / v.W}
}
