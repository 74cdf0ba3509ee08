package render

import (
	"math"
	"testing"
)

func pointNear(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestOrthographicCorners(t *testing.T) {
	r := NewRasterizer(640, 480)

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"top left", Point{X: -1, Y: 1}, Point{X: 0, Y: 0}},
		{"bottom right", Point{X: 1, Y: -1}, Point{X: 639, Y: 479}},
		{"center keeps z", Point{X: 0, Y: 0, Z: 0.25}, Point{X: 319.5, Y: 239.5, Z: 0.25}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ProjectOrthographic(tc.in); !pointNear(got, tc.want, 1e-9) {
				t.Errorf("ProjectOrthographic(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestOrthographicRoundTrip(t *testing.T) {
	sizes := [][2]int{{640, 480}, {7, 3}, {1, 1}, {2, 9}}

	for _, sz := range sizes {
		r := NewRasterizer(sz[0], sz[1])
		for x := -1.0; x <= 1; x += 0.25 {
			for y := -1.0; y <= 1; y += 0.25 {
				p := Point{X: x, Y: y, Z: x * y}
				got := r.NormalizeToScreen(r.ProjectOrthographic(p))
				// A one-pixel axis collapses to a single coordinate.
				if sz[0] == 1 {
					got.X, p.X = 0, 0
				}
				if sz[1] == 1 {
					got.Y, p.Y = 0, 0
				}
				if !pointNear(got, p, 1e-9) {
					t.Errorf("%dx%d: round trip of %v = %v", sz[0], sz[1], p, got)
				}
			}
		}
	}
}

func TestNormalizeToScreen(t *testing.T) {
	r := NewRasterizer(101, 51)

	got := r.NormalizeToScreen(Point{X: 0, Y: 0, Z: 3})
	if !pointNear(got, Point{X: -1, Y: 1, Z: 3}, 1e-12) {
		t.Errorf("top left = %v, want (-1, 1, 3)", got)
	}
	got = r.NormalizeToScreen(Point{X: 100, Y: 50})
	if !pointNear(got, Point{X: 1, Y: -1}, 1e-12) {
		t.Errorf("bottom right = %v, want (1, -1, 0)", got)
	}
}

func TestPerspectiveRejectsOutsideClipPlanes(t *testing.T) {
	r := NewRasterizer(64, 48, WithClipPlanes(1, 10))

	for _, z := range []float64{-5, 0, 0.999, 10.001, 1e9, math.Inf(1)} {
		got, ok := r.ProjectPerspective(Point{X: 0.3, Y: -0.2, Z: z})
		if ok {
			t.Errorf("z=%v accepted", z)
		}
		if got != (Point{}) {
			t.Errorf("z=%v: got %v, want origin", z, got)
		}
	}
}

func TestPerspective(t *testing.T) {
	// fov 90° gives a focal length of 1; a 101x101 surface spans 100 pixels.
	r := NewRasterizer(101, 101, WithFieldOfView(math.Pi/2), WithClipPlanes(1, 11))

	if f := r.FocalLength(); math.Abs(f-1) > 1e-12 {
		t.Fatalf("FocalLength = %v, want 1", f)
	}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"near plane center", Point{X: 0, Y: 0, Z: 1}, Point{X: 50, Y: 50, Z: 0}},
		{"far plane center", Point{X: 0, Y: 0, Z: 11}, Point{X: 50, Y: 50, Z: 1}},
		{"right of center", Point{X: 1, Y: 0, Z: 2}, Point{X: 75, Y: 50, Z: 0.1}},
		{"up is up", Point{X: 0, Y: 3, Z: 6}, Point{X: 50, Y: 25, Z: 0.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := r.ProjectPerspective(tc.in)
			if !ok {
				t.Fatalf("ProjectPerspective(%v) rejected", tc.in)
			}
			if !pointNear(got, tc.want, 1e-9) {
				t.Errorf("ProjectPerspective(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPerspectiveAspect(t *testing.T) {
	wide := NewRasterizer(201, 101, WithFieldOfView(math.Pi/2))
	if a := wide.AspectRatio(); math.Abs(a-201.0/101.0) > 1e-12 {
		t.Errorf("derived aspect = %v, want %v", a, 201.0/101.0)
	}

	square := NewRasterizer(201, 101, WithFieldOfView(math.Pi/2), WithAspectRatio(1))
	p := Point{X: 1, Y: 0, Z: 2}
	a, _ := wide.ProjectPerspective(p)
	b, _ := square.ProjectPerspective(p)
	if !(a.X < b.X) {
		t.Errorf("wider aspect should pull x toward center: %v vs %v", a.X, b.X)
	}
}

func TestRasterizerOptionsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"zero width", func() { NewRasterizer(0, 10) }},
		{"negative height", func() { NewRasterizer(10, -1) }},
		{"near beyond far", func() { NewRasterizer(10, 10, WithClipPlanes(5, 1)) }},
		{"near at zero", func() { NewRasterizer(10, 10, WithClipPlanes(0, 1)) }},
		{"flat fov", func() { NewRasterizer(10, 10, WithFieldOfView(0)) }},
		{"negative aspect", func() { NewRasterizer(10, 10, WithAspectRatio(-2)) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.fn()
		})
	}
}

func BenchmarkProjectPerspective(b *testing.B) {
	r := NewRasterizer(320, 240)
	p := Point{X: 0.4, Y: -0.7, Z: 5}
	for b.Loop() {
		r.ProjectPerspective(p)
	}
}
