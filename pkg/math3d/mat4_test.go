package math3d

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3[float64], eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestIdentityMul(t *testing.T) {
	m := Translate(V3(1.0, 2, 3)).Mul(RotateZ(0.3))
	if got := Identity().Mul(m); got != m {
		t.Errorf("I*M = %v, want %v", got, m)
	}
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M*I = %v, want %v", got, m)
	}
}

func TestTranslateAndScale(t *testing.T) {
	p := V3(1.0, 1, 1)

	if got := Translate(V3(2.0, -1, 5)).MulVec3(p); !vecNear(got, V3(3.0, 0, 6), 1e-12) {
		t.Errorf("Translate = %v, want (3, 0, 6)", got)
	}
	if got := Scale(V3(2.0, 3, 4)).MulVec3(p); !vecNear(got, V3(2.0, 3, 4), 1e-12) {
		t.Errorf("Scale = %v, want (2, 3, 4)", got)
	}
	if got := ScaleUniform(0.5).MulVec3(p); !vecNear(got, V3(0.5, 0.5, 0.5), 1e-12) {
		t.Errorf("ScaleUniform = %v, want (0.5, 0.5, 0.5)", got)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3[float64]
		want Vec3[float64]
	}{
		{"x quarter", RotateX(math.Pi / 2), V3(0.0, 1, 0), V3(0.0, 0, 1)},
		{"y quarter", RotateY(math.Pi / 2), V3(0.0, 0, 1), V3(1.0, 0, 0)},
		{"z quarter", RotateZ(math.Pi / 2), V3(1.0, 0, 0), V3(0.0, 1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.MulVec3(tc.in); !vecNear(got, tc.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTransposeOfRotationIsInverse(t *testing.T) {
	r := RotateY(0.7).Mul(RotateX(-0.4))
	p := V3(1.0, -2, 3)
	if got := r.Transpose().MulVec3(r.MulVec3(p)); !vecNear(got, p, 1e-12) {
		t.Errorf("Rᵀ·R·p = %v, want %v", got, p)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := 0.5, 20.0
	m := Perspective(math.Pi/2, 1, near, far)

	tests := []struct {
		name  string
		depth float64
		want  float64
	}{
		{"near plane", near, 0},
		{"far plane", far, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clip := m.MulVec4(V4(0, 0, tc.depth, 1))
			if clip.W != tc.depth {
				t.Errorf("clip w = %v, want view depth %v", clip.W, tc.depth)
			}
			if z := clip.Z / clip.W; math.Abs(z-tc.want) > 1e-12 {
				t.Errorf("ndc z = %v, want %v", z, tc.want)
			}
		})
	}

	// With fov = 90° the focal length is 1, so x at depth d lands at x/d.
	clip := m.MulVec4(V4(2, -1, 4, 1))
	ndc := clip.PerspectiveDivide()
	if math.Abs(ndc.X-0.5) > 1e-12 || math.Abs(ndc.Y+0.25) > 1e-12 {
		t.Errorf("ndc = %v, want (0.5, -0.25, ...)", ndc)
	}
}
