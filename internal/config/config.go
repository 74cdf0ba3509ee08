// Package config loads cam3d viewer settings from a JSON file and merges
// them with command line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/bilalkah/cam3d/pkg/render"
)

// Render modes.
const (
	ModeFilled    = "filled"
	ModeWireframe = "wireframe"
)

// Defaults applied by Resolve.
const (
	DefaultWidth      = 320
	DefaultHeight     = 240
	DefaultFPS        = 60
	DefaultBackground = "30,30,40"
	DefaultFOVDegrees = 60
	DefaultNear       = render.DefaultNear
	DefaultFar        = render.DefaultFar
	DefaultScale      = 1
	DefaultDistance   = 5
)

// Config holds the viewer and snapshot settings.
type Config struct {
	// Model path (.glb or .gltf). Empty renders the built-in cube.
	Model string `json:"model"`

	// Snapshot output. When Output is set the frame is rendered offscreen
	// at Width x Height and written to Output, enlarged by Scale.
	Output string `json:"output"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Scale  int    `json:"scale"`

	// Render settings
	FPS        int     `json:"fps"`
	Background string  `json:"background"`
	FOVDegrees float64 `json:"fov_degrees"`
	Near       float64 `json:"near"`
	Far        float64 `json:"far"`
	Distance   float64 `json:"distance"`
	DepthTest  *bool   `json:"depth_test"`
	Mode       string  `json:"mode"`

	// Initial rotation in degrees
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values and nil pointers mean "not given".
type Flags struct {
	Model      string
	Output     string
	Width      int
	Height     int
	Scale      int
	FPS        int
	Background string
	FOVDegrees float64
	Mode       string
	DepthTest  *bool
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flags over the file settings, then fills every field
// still unset with its default.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.FOVDegrees > 0 {
		c.FOVDegrees = flags.FOVDegrees
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.DepthTest != nil {
		c.DepthTest = flags.DepthTest
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Scale <= 0 {
		c.Scale = DefaultScale
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.FOVDegrees <= 0 {
		c.FOVDegrees = DefaultFOVDegrees
	}
	if c.Near <= 0 {
		c.Near = DefaultNear
	}
	if c.Far <= 0 {
		c.Far = DefaultFar
	}
	if c.Distance <= 0 {
		c.Distance = DefaultDistance
	}
	if c.DepthTest == nil {
		on := true
		c.DepthTest = &on
	}
	if c.Mode == "" {
		c.Mode = ModeFilled
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if c.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("fov_degrees %v must be below 180", c.FOVDegrees))
	}
	if c.Far <= c.Near {
		errs = append(errs, fmt.Errorf("far %v must be greater than near %v", c.Far, c.Near))
	}
	if c.Mode != ModeFilled && c.Mode != ModeWireframe {
		errs = append(errs, fmt.Errorf("mode %q must be %q or %q", c.Mode, ModeFilled, ModeWireframe))
	}
	if _, err := ParseRGB(c.Background); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// FOV returns the field of view in radians.
func (c *Config) FOV() float64 {
	return c.FOVDegrees * math.Pi / 180
}

// Depth reports whether depth testing is enabled.
func (c *Config) Depth() bool {
	return c.DepthTest != nil && *c.DepthTest
}

// BackgroundColor returns the parsed background, or the default when it
// does not parse.
func (c *Config) BackgroundColor() render.ARGB {
	bg, err := ParseRGB(c.Background)
	if err != nil {
		bg, _ = ParseRGB(DefaultBackground)
	}
	return bg
}

// ParseRGB parses an "R,G,B" triple of 0-255 values into an opaque color.
func ParseRGB(s string) (render.ARGB, error) {
	var r, g, b int
	n, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "%d,%d,%d", &r, &g, &b)
	if err != nil || n != 3 {
		return render.ARGB{}, fmt.Errorf("background %q: want R,G,B", s)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return render.ARGB{}, fmt.Errorf("background %q: channel %d out of range", s, v)
		}
	}
	return render.RGB(uint8(r), uint8(g), uint8(b)), nil
}
