// cam3d - Terminal software rasterizer
// View a glTF/GLB model (or the built-in cube) in your terminal, or render a
// single frame to PNG/WebP.
//
// Controls:
//
//	Mouse drag  - Rotate model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation
//	X           - Toggle wireframe mode
//	Z           - Toggle depth test
//	?           - Toggle HUD overlay
//	+/-         - Adjust zoom
//	Esc         - Quit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/bilalkah/cam3d/internal/config"
	"github.com/bilalkah/cam3d/pkg/render"
)

var (
	configPath = flag.String("config", "", "Path to JSON config file")
	logPath    = flag.String("log", "", "Write debug logs to this file")
	outputPath = flag.String("o", "", "Render one frame to this .png or .webp file and exit")
	width      = flag.Int("width", 0, "Snapshot width in pixels")
	height     = flag.Int("height", 0, "Snapshot height in pixels")
	scale      = flag.Int("scale", 0, "Snapshot upscale factor")
	targetFPS  = flag.Int("fps", 0, "Target FPS")
	bgColor    = flag.String("bg", "", "Background color (R,G,B)")
	fovDegrees = flag.Float64("fov", 0, "Vertical field of view in degrees")
	mode       = flag.String("mode", "", "Render mode (filled or wireframe)")
	depthTest  = flag.Bool("depth", true, "Enable depth testing")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cam3d - Terminal software rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cam3d [options] [model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Rotate model\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  Z           - Toggle depth test\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		render.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if cfg.Output != "" {
		err = snapshot(cfg)
	} else {
		err = run(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and applies the command line
// over it.
func loadConfig() (*config.Config, error) {
	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	flags := config.Flags{
		Model:      flag.Arg(0),
		Output:     *outputPath,
		Width:      *width,
		Height:     *height,
		Scale:      *scale,
		FPS:        *targetFPS,
		Background: *bgColor,
		FOVDegrees: *fovDegrees,
		Mode:       *mode,
	}
	// -depth only overrides the file when given explicitly.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "depth" {
			flags.DepthTest = depthTest
		}
	})

	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
