package render

import "testing"

func TestSegments(t *testing.T) {
	var s IntersectionSolver

	tests := []struct {
		name           string
		a0, a1, b0, b1 Point
		wantOK         bool
		want           Point
	}{
		{
			name: "crossing diagonals",
			a0:   Point{X: 0, Y: 0}, a1: Point{X: 2, Y: 2},
			b0: Point{X: 0, Y: 2}, b1: Point{X: 2, Y: 0},
			wantOK: true, want: Point{X: 1, Y: 1},
		},
		{
			name: "parallel",
			a0:   Point{X: 0, Y: 0}, a1: Point{X: 2, Y: 0},
			b0: Point{X: 0, Y: 1}, b1: Point{X: 2, Y: 1},
		},
		{
			name: "collinear overlapping",
			a0:   Point{X: 0, Y: 0}, a1: Point{X: 2, Y: 0},
			b0: Point{X: 1, Y: 0}, b1: Point{X: 3, Y: 0},
		},
		{
			name: "lines cross beyond segment a",
			a0:   Point{X: 0, Y: 0}, a1: Point{X: 1, Y: 1},
			b0: Point{X: 3, Y: 0}, b1: Point{X: 2, Y: 1},
		},
		{
			name: "lines cross beyond segment b",
			a0:   Point{X: 0, Y: 0}, a1: Point{X: 4, Y: 4},
			b0: Point{X: 4, Y: 0}, b1: Point{X: 3, Y: 1},
		},
		{
			name: "touching at endpoint",
			a0:   Point{X: 0, Y: 0}, a1: Point{X: 2, Y: 0},
			b0: Point{X: 2, Y: -1}, b1: Point{X: 2, Y: 1},
			wantOK: true, want: Point{X: 2, Y: 0},
		},
		{
			name: "z from segment a",
			a0:   Point{X: 0, Y: 0, Z: 0}, a1: Point{X: 4, Y: 0, Z: 4},
			b0: Point{X: 1, Y: -1, Z: 100}, b1: Point{X: 1, Y: 1, Z: 100},
			wantOK: true, want: Point{X: 1, Y: 0, Z: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.Segments(tc.a0, tc.a1, tc.b0, tc.b1)
			if ok != tc.wantOK {
				t.Fatalf("Segments ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("Segments = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	var s IntersectionSolver

	tests := []struct {
		name           string
		a0, a1, b0, b1 Point
		wantOK         bool
		want           Point
	}{
		{
			name: "meet at shared point",
			a0:   Point{X: 0, Y: 0}, a1: Point{X: 1, Y: 1},
			b0: Point{X: 0, Y: 2}, b1: Point{X: 1, Y: 1},
			wantOK: true, want: Point{X: 1, Y: 1},
		},
		{
			name: "meet outside both point pairs",
			a0:   Point{X: 0, Y: 0}, a1: Point{X: 1, Y: 1},
			b0: Point{X: 3, Y: 0}, b1: Point{X: 2, Y: 1},
			wantOK: true, want: Point{X: 1.5, Y: 1.5},
		},
		{
			name: "z is dropped",
			a0:   Point{X: 0, Y: 0, Z: 5}, a1: Point{X: 2, Y: 0, Z: 5},
			b0: Point{X: 1, Y: -1, Z: 5}, b1: Point{X: 1, Y: 1, Z: 5},
			wantOK: true, want: Point{X: 1, Y: 0},
		},
		{
			name: "parallel",
			a0:   Point{X: 0, Y: 0}, a1: Point{X: 1, Y: 2},
			b0: Point{X: 3, Y: 0}, b1: Point{X: 4, Y: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.Lines(tc.a0, tc.a1, tc.b0, tc.b1)
			if ok != tc.wantOK {
				t.Fatalf("Lines ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("Lines = %v, want %v", got, tc.want)
			}
		})
	}
}

func BenchmarkSegments(b *testing.B) {
	var s IntersectionSolver
	a0, a1 := Point{X: 3, Y: 200}, Point{X: 290, Y: 11}
	b0, b1 := Point{X: 0, Y: 120}, Point{X: 320, Y: 120}
	for b.Loop() {
		s.Segments(a0, a1, b0, b1)
	}
}
