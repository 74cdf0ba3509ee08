package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bilalkah/cam3d/internal/config"
	"github.com/bilalkah/cam3d/pkg/math3d"
	"github.com/bilalkah/cam3d/pkg/models"
	"github.com/bilalkah/cam3d/pkg/render"
)

// modelSize is the largest dimension a model is scaled to.
const modelSize = 2.0

// wireColor is the edge color in wireframe mode.
var wireColor = render.RGB(0, 255, 128)

// fallbackPalette colors faces of meshes without materials.
var fallbackPalette = []render.ARGB{
	render.ColorRed,
	render.ColorGreen,
	render.ColorBlue,
	render.ColorYellow,
	render.ColorCyan,
	render.ColorMagenta,
}

// Scene is a mesh and the settings it is drawn with.
type Scene struct {
	Mesh       *models.Mesh
	Palette    []render.ARGB
	Wireframe  bool
	DepthTest  bool
	FOV        float64
	Near, Far  float64
	Distance   float64 // Camera distance from the origin
	Camera     *render.Camera
	Background render.ARGB
}

// loadScene loads the configured model, or the cube when none is given,
// and fits it to modelSize around the origin.
func loadScene(cfg *config.Config) (*Scene, error) {
	var mesh *models.Mesh
	if cfg.Model == "" {
		mesh = models.NewCube(modelSize)
	} else {
		switch ext := strings.ToLower(filepath.Ext(cfg.Model)); ext {
		case ".glb", ".gltf":
			loader := models.NewGLTFLoader()
			loader.FitSize = modelSize
			var err error
			if mesh, err = loader.Load(cfg.Model); err != nil {
				return nil, fmt.Errorf("load model: %w", err)
			}
		default:
			return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
		}
	}

	return &Scene{
		Mesh:       mesh,
		Palette:    meshPalette(mesh),
		Wireframe:  cfg.Mode == config.ModeWireframe,
		DepthTest:  cfg.Depth(),
		FOV:        cfg.FOV(),
		Near:       cfg.Near,
		Far:        cfg.Far,
		Distance:   cfg.Distance,
		Camera:     render.NewCamera(),
		Background: cfg.BackgroundColor(),
	}, nil
}

// meshPalette converts the mesh materials to colors, one per material.
func meshPalette(mesh *models.Mesh) []render.ARGB {
	if mesh.MaterialCount() == 0 {
		return fallbackPalette
	}
	palette := make([]render.ARGB, mesh.MaterialCount())
	for i := range palette {
		c := mesh.GetMaterial(i).BaseColor
		palette[i] = render.ARGB{
			A: 255,
			R: channel(c[0]),
			G: channel(c[1]),
			B: channel(c[2]),
		}
	}
	return palette
}

func channel(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// NewRasterizer builds a rasterizer for a width x height framebuffer with
// the scene's projection.
func (s *Scene) NewRasterizer(width, height int) *render.Rasterizer {
	return render.NewRasterizer(width, height,
		render.WithFieldOfView(s.FOV),
		render.WithClipPlanes(s.Near, s.Far),
		render.WithDepthTest(s.DepthTest),
	)
}

// Transform rotates the mesh by pitch, yaw and roll about the origin and
// views it from Distance away along -Z.
func (s *Scene) Transform(pitch, yaw, roll float64) math3d.Mat4 {
	s.Camera.Orbit(render.Point{}, s.Distance, 0, 0)
	return s.Camera.ViewMatrix().
		Mul(math3d.RotateX(pitch)).
		Mul(math3d.RotateY(yaw)).
		Mul(math3d.RotateZ(roll))
}

// Draw clears fb to the background and draws the mesh.
func (s *Scene) Draw(r *render.Rasterizer, fb *render.Framebuffer, transform math3d.Mat4) render.MeshStats {
	fb.ClearColor(s.Background)
	if s.Wireframe {
		return r.DrawMeshWireframe(s.Mesh, transform, fb, wireColor)
	}
	return r.DrawMesh(s.Mesh, transform, fb, s.Palette)
}
