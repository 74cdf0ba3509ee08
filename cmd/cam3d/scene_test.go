package main

import (
	"path/filepath"
	"testing"

	"github.com/bilalkah/cam3d/internal/config"
	"github.com/bilalkah/cam3d/pkg/models"
	"github.com/bilalkah/cam3d/pkg/render"
)

func defaultConfig(modify func(*config.Config)) *config.Config {
	var cfg config.Config
	if modify != nil {
		modify(&cfg)
	}
	cfg.Resolve(config.Flags{})
	return &cfg
}

func TestLoadSceneCube(t *testing.T) {
	scene, err := loadScene(defaultConfig(nil))
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	if scene.Mesh.TriangleCount() != 12 {
		t.Errorf("triangles = %d, want 12", scene.Mesh.TriangleCount())
	}
	if len(scene.Palette) != 6 || scene.Palette[0] != render.ColorRed {
		t.Errorf("palette = %v", scene.Palette)
	}
	if scene.Wireframe || !scene.DepthTest {
		t.Errorf("scene = %+v, want filled with depth test", scene)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	tests := []struct {
		name  string
		model string
	}{
		{"unsupported extension", "model.obj"},
		{"missing file", filepath.Join(t.TempDir(), "missing.glb")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig(func(c *config.Config) { c.Model = tc.model })
			if _, err := loadScene(cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMeshPalette(t *testing.T) {
	mesh := models.NewMesh("m")
	if got := meshPalette(mesh); len(got) != len(fallbackPalette) {
		t.Errorf("palette without materials = %v, want fallback", got)
	}

	mesh.Materials = []models.Material{
		{BaseColor: [4]float64{0.5, 0, 2, 1}},
	}
	want := render.ARGB{A: 255, R: 128, G: 0, B: 255}
	if got := meshPalette(mesh); len(got) != 1 || got[0] != want {
		t.Errorf("palette = %v, want [%v]", got, want)
	}
}

func TestSceneDraw(t *testing.T) {
	scene, err := loadScene(defaultConfig(nil))
	if err != nil {
		t.Fatal(err)
	}
	fb := render.NewFramebuffer(48, 48)
	r := scene.NewRasterizer(48, 48)

	stats := scene.Draw(r, fb, scene.Transform(0, 0, 0))
	if stats.Culled || stats.Drawn == 0 {
		t.Fatalf("stats = %+v", stats)
	}
	// Facing the camera head-on, the cube's nearest side is its back (-Z) face.
	if c := fb.GetPixel(20, 24); c != render.ColorRed {
		t.Errorf("interior = %v, want red", c)
	}
	if c := fb.GetPixel(0, 0); c != scene.Background {
		t.Errorf("corner = %v, want background", c)
	}

	scene.Wireframe = true
	stats = scene.Draw(r, fb, scene.Transform(0, 0, 0))
	if c := fb.GetPixel(20, 24); c != scene.Background {
		t.Errorf("wireframe interior = %v, want background", c)
	}
	if stats.Drawn != 36 {
		t.Errorf("wireframe edges = %d, want 36", stats.Drawn)
	}
}

func TestRotation(t *testing.T) {
	rot := NewRotation(60, 0.5, 0)
	if rot.Pitch.Angle != 0.5 {
		t.Fatalf("pitch = %v, want 0.5", rot.Pitch.Angle)
	}

	rot.ApplyImpulse(0, 0.1, 0)
	rot.Update()
	if rot.Yaw.Angle != 0.1 {
		t.Errorf("yaw = %v, want 0.1 after one update", rot.Yaw.Angle)
	}
	for range 600 {
		rot.Update()
	}
	if v := rot.Yaw.Velocity; v > 1e-3 || v < -1e-3 {
		t.Errorf("velocity = %v, want decayed", v)
	}

	rot.Reset()
	if rot.Pitch.Angle != 0 || rot.Yaw.Angle != 0 {
		t.Errorf("reset left %v, %v", rot.Pitch.Angle, rot.Yaw.Angle)
	}
}

func TestSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cube.png")
	cfg := defaultConfig(func(c *config.Config) {
		c.Output = out
		c.Width, c.Height, c.Scale = 32, 24, 2
	})
	if err := snapshot(cfg); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
}
