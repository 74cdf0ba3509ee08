package main

import (
	"fmt"
	"math"

	"github.com/bilalkah/cam3d/internal/config"
	"github.com/bilalkah/cam3d/pkg/render"
)

// snapshot renders one frame offscreen and writes it to cfg.Output.
func snapshot(cfg *config.Config) error {
	scene, err := loadScene(cfg)
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(cfg.Width, cfg.Height)
	r := scene.NewRasterizer(cfg.Width, cfg.Height)
	stats := scene.Draw(r, fb, scene.Transform(radians(cfg.Pitch), radians(cfg.Yaw), 0))

	if err := render.SaveImage(cfg.Output, fb.Scaled(cfg.Scale)); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	fmt.Printf("Wrote %s (%dx%d, %d triangles, %d rejected)\n",
		cfg.Output, cfg.Width*cfg.Scale, cfg.Height*cfg.Scale, stats.Triangles, stats.Rejected)
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
