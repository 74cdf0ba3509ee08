package models

// Cube face materials, in the order NewCube assigns them.
var cubeMaterials = []Material{
	{Name: "back", BaseColor: [4]float64{1, 0, 0, 1}},
	{Name: "front", BaseColor: [4]float64{0, 1, 0, 1}},
	{Name: "left", BaseColor: [4]float64{0, 0, 1, 1}},
	{Name: "right", BaseColor: [4]float64{1, 1, 0, 1}},
	{Name: "bottom", BaseColor: [4]float64{0, 1, 1, 1}},
	{Name: "top", BaseColor: [4]float64{1, 0, 1, 1}},
}

// NewCube creates an axis-aligned cube of the given edge length centered
// on the origin. Each side has its own material.
func NewCube(size float64) *Mesh {
	h := size / 2

	m := NewMesh("cube")
	m.Vertices = []Vec3{
		{X: -h, Y: -h, Z: -h}, // 0: bottom-left-back
		{X: +h, Y: -h, Z: -h}, // 1: bottom-right-back
		{X: +h, Y: +h, Z: -h}, // 2: top-right-back
		{X: -h, Y: +h, Z: -h}, // 3: top-left-back
		{X: -h, Y: -h, Z: +h}, // 4: bottom-left-front
		{X: +h, Y: -h, Z: +h}, // 5: bottom-right-front
		{X: +h, Y: +h, Z: +h}, // 6: top-right-front
		{X: -h, Y: +h, Z: +h}, // 7: top-left-front
	}

	quads := [6][4]int{
		{0, 1, 2, 3}, // back
		{5, 4, 7, 6}, // front
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{4, 5, 1, 0}, // bottom
		{3, 2, 6, 7}, // top
	}
	for side, q := range quads {
		m.Faces = append(m.Faces,
			Face{V: [3]int{q[0], q[1], q[2]}, Material: side},
			Face{V: [3]int{q[0], q[2], q[3]}, Material: side},
		)
	}

	m.Materials = append([]Material(nil), cubeMaterials...)
	m.CalculateBounds()
	return m
}
