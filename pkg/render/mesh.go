package render

import (
	"github.com/bilalkah/cam3d/pkg/math3d"
)

// MeshRenderer is the interface for meshes that can be rendered.
type MeshRenderer interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) Point
	GetFace(i int) [3]int
}

// BoundedMeshRenderer is a MeshRenderer that provides bounding box info
// for culling.
type BoundedMeshRenderer interface {
	MeshRenderer
	GetBounds() (min, max Point)
}

// MaterialMeshRenderer is a MeshRenderer that assigns a material index to
// each face. DrawMesh uses the index to pick the face's palette color;
// faces with a negative index fall back to their face index.
type MaterialMeshRenderer interface {
	MeshRenderer
	GetFaceMaterial(i int) int
}

// MeshStats summarizes one mesh draw.
type MeshStats struct {
	Triangles int  // Faces in the mesh
	Drawn     int  // Faces (or wireframe edges) handed to the rasterizer
	Rejected  int  // Faces or edges with a vertex outside the clip planes
	Invalid   int  // Faces referencing vertices that do not exist
	Culled    bool // Whole mesh skipped by its bounds
}

// cull reports whether a bounded mesh lies entirely outside the view after
// transform.
func (r *Rasterizer) cull(mesh MeshRenderer, transform math3d.Mat4) bool {
	bounded, ok := mesh.(BoundedMeshRenderer)
	if !ok {
		return false
	}
	minBounds, maxBounds := bounded.GetBounds()
	return !r.IsVisible(TransformAABB(NewAABB(minBounds, maxBounds), transform))
}

// projectMesh transforms every vertex to view space and projects it,
// caching the results on the rasterizer.
func (r *Rasterizer) projectMesh(mesh MeshRenderer, transform math3d.Mat4) {
	n := mesh.VertexCount()
	if cap(r.projected) < n {
		r.projected = make([]Point, n)
		r.visible = make([]bool, n)
	}
	r.projected = r.projected[:n]
	r.visible = r.visible[:n]

	for i := range n {
		r.projected[i], r.visible[i] = r.ProjectPerspective(transform.MulVec3(mesh.GetVertex(i)))
	}
}

// face returns the projected corners of face i. ok is false if the face
// references a missing vertex or a vertex rejected by ProjectPerspective;
// invalid distinguishes the first case.
func (r *Rasterizer) face(mesh MeshRenderer, i int) (pts [3]Point, ok, invalid bool) {
	f := mesh.GetFace(i)
	if !r.validFace(f) {
		return pts, false, true
	}
	for j, v := range f {
		if !r.visible[v] {
			return pts, false, false
		}
		pts[j] = r.projected[v]
	}
	return pts, true, false
}

// DrawMesh transforms the mesh into view space, projects it and fills
// every triangle with a flat palette color. Faces with any vertex outside
// the clip planes are skipped. An empty palette draws white.
func (r *Rasterizer) DrawMesh(mesh MeshRenderer, transform math3d.Mat4, s Surface, palette []ARGB) MeshStats {
	stats := MeshStats{Triangles: mesh.TriangleCount()}
	if r.cull(mesh, transform) {
		stats.Culled = true
		Logger().Debug("mesh culled", "triangles", stats.Triangles)
		return stats
	}
	if len(palette) == 0 {
		palette = []ARGB{ColorWhite}
	}
	materials, _ := mesh.(MaterialMeshRenderer)

	r.projectMesh(mesh, transform)
	for i := range stats.Triangles {
		pts, ok, invalid := r.face(mesh, i)
		switch {
		case invalid:
			stats.Invalid++
			continue
		case !ok:
			stats.Rejected++
			continue
		}

		key := i
		if materials != nil {
			if m := materials.GetFaceMaterial(i); m >= 0 {
				key = m
			}
		}
		r.DrawTriangle(pts[0], pts[1], pts[2], s, palette[key%len(palette)])
		stats.Drawn++
	}

	r.logStats("mesh drawn", stats)
	return stats
}

// DrawMeshWireframe draws the edges of every triangle of the mesh in a
// single color. Edges with an endpoint outside the clip planes are
// skipped.
func (r *Rasterizer) DrawMeshWireframe(mesh MeshRenderer, transform math3d.Mat4, s Surface, c ARGB) MeshStats {
	stats := MeshStats{Triangles: mesh.TriangleCount()}
	if r.cull(mesh, transform) {
		stats.Culled = true
		Logger().Debug("mesh culled", "triangles", stats.Triangles)
		return stats
	}

	r.projectMesh(mesh, transform)
	for i := range stats.Triangles {
		f := mesh.GetFace(i)
		if !r.validFace(f) {
			stats.Invalid++
			continue
		}
		for j := range 3 {
			a, b := f[j], f[(j+1)%3]
			if !r.visible[a] || !r.visible[b] {
				stats.Rejected++
				continue
			}
			r.DrawLine(r.projected[a], r.projected[b], s, c)
			stats.Drawn++
		}
	}

	r.logStats("mesh wireframe drawn", stats)
	return stats
}

func (r *Rasterizer) validFace(f [3]int) bool {
	for _, v := range f {
		if v < 0 || v >= len(r.projected) {
			return false
		}
	}
	return true
}

func (r *Rasterizer) logStats(msg string, stats MeshStats) {
	if stats.Invalid > 0 {
		Logger().Warn("mesh references missing vertices", "faces", stats.Invalid)
	}
	Logger().Debug(msg,
		"triangles", stats.Triangles,
		"drawn", stats.Drawn,
		"rejected", stats.Rejected,
	)
}
