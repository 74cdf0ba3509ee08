package render

// IntersectionSolver computes 2D intersections of segments and infinite
// lines. Only X and Y take part in the solve. Comparisons are exact: a
// determinant of exactly zero means parallel, and nothing nearly parallel
// is filtered out.
type IntersectionSolver struct{}

// Segments intersects the bounded segments a0-a1 and b0-b1. The returned
// point lies on segment a, with Z interpolated along it. Parallel or
// collinear segments report false.
func (IntersectionSolver) Segments(a0, a1, b0, b1 Point) (Point, bool) {
	r := a1.Sub(a0)
	s := b1.Sub(b0)

	denom := r.Cross2D(s)
	if denom == 0 {
		return Point{}, false
	}

	d := b0.Sub(a0)
	t := d.Cross2D(s) / denom
	u := d.Cross2D(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return a0.Add(r.Scale(t)), true
}

// Lines intersects the infinite lines through a0, a1 and through b0, b1.
// The result has Z = 0.
func (IntersectionSolver) Lines(a0, a1, b0, b1 Point) (Point, bool) {
	// a·x + b·y = c for each line
	pa := a1.Y - a0.Y
	pb := a0.X - a1.X
	pc := pa*a0.X + pb*a0.Y

	qa := b1.Y - b0.Y
	qb := b0.X - b1.X
	qc := qa*b0.X + qb*b0.Y

	det := pa*qb - qa*pb
	if det == 0 {
		return Point{}, false
	}

	return Point{
		X: (qb*pc - pb*qc) / det,
		Y: (pa*qc - qa*pc) / det,
	}, true
}
