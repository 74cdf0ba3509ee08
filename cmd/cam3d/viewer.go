package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bilalkah/cam3d/internal/config"
	"github.com/bilalkah/cam3d/pkg/render"
	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
)

// Zoom limits and step for the camera distance.
const (
	minDistance = 1.0
	maxDistance = 20.0
	zoomStep    = 0.5
)

const torqueStrength = 3.0

// RotationAxis tracks the angle and angular velocity of one axis. The
// velocity decays toward zero through a critically damped spring.
type RotationAxis struct {
	Angle     float64
	Velocity  float64
	spring    harmonica.Spring
	springVel float64
}

// NewRotationAxis creates a resting axis updated fps times per second.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the angle by the velocity and decays the velocity.
func (a *RotationAxis) Update() {
	a.Angle += a.Velocity
	a.Velocity, a.springVel = a.spring.Update(a.Velocity, a.springVel, 0)
}

// Rotation is the spring-damped orientation of the model.
type Rotation struct {
	Pitch, Yaw, Roll RotationAxis
	fps              int
}

// NewRotation creates a rotation at rest with the given initial angles.
func NewRotation(fps int, pitch, yaw float64) *Rotation {
	r := &Rotation{fps: fps}
	r.Reset()
	r.Pitch.Angle, r.Yaw.Angle = pitch, yaw
	return r
}

func (r *Rotation) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
	r.Roll.Update()
}

func (r *Rotation) ApplyImpulse(pitch, yaw, roll float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
	r.Roll.Velocity += roll
}

// Reset stops all motion and zeroes every angle.
func (r *Rotation) Reset() {
	r.Pitch = NewRotationAxis(r.fps)
	r.Yaw = NewRotationAxis(r.fps)
	r.Roll = NewRotationAxis(r.fps)
}

// HUD renders an overlay with model info and draw statistics.
type HUD struct {
	name      string
	show      bool
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func NewHUD(name string) *HUD {
	return &HUD{name: name, show: true, fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD directly to the terminal with ANSI escapes.
func (h *HUD) Render(width, height int, scene *Scene, stats render.MeshStats) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows so toggling off works
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)
	if !h.show {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	titleCol := max((width-len(h.name)-2)/2, 1)
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, titleCol), bold, bgBlack, fgWhite, h.name, reset)

	polys := fmt.Sprintf(" %d/%d tris ", stats.Drawn, stats.Triangles)
	if scene.Wireframe {
		polys = fmt.Sprintf(" %d edges ", stats.Drawn)
	}
	fmt.Printf("%s%s%s%s%s%s", moveTo(1, max(width-len(polys)+1, 1)), bgBlack, fgCyan, bold, polys, reset)

	fmt.Printf("%s%s%s %s Wireframe  %s Depth test  distance %.1f %s",
		moveTo(height, 1), bgBlack, fgWhite,
		checkbox(scene.Wireframe), checkbox(scene.DepthTest), scene.Distance, reset)
}

func checkbox(on bool) string {
	if on {
		return "[✓]"
	}
	return "[ ]"
}

// viewer owns the terminal presentation state.
type viewer struct {
	term     *uv.Terminal
	scene    *Scene
	width    int
	height   int
	tr       *render.TerminalRenderer
	fb       *render.Framebuffer
	r        *render.Rasterizer
	rotation *Rotation
	hud      *HUD

	torque    struct{ pitch, yaw, roll float64 }
	mouseDown bool
	lastMouse struct{ x, y int }
}

// resize rebuilds the framebuffer and rasterizer for a width x height
// cell area.
func (v *viewer) resize(width, height int) {
	v.width, v.height = width, height
	v.tr = render.NewTerminalRenderer(v.term, width, height)
	fbWidth, fbHeight := v.tr.FramebufferSize()
	v.fb = render.NewFramebuffer(fbWidth, fbHeight)
	v.r = v.scene.NewRasterizer(fbWidth, fbHeight)
}

func (v *viewer) zoom(delta float64) {
	v.scene.Distance = min(max(v.scene.Distance+delta, minDistance), maxDistance)
}

// handle applies one terminal event. It returns false when the viewer
// should quit.
func (v *viewer) handle(ev uv.Event, cfg *config.Config) bool {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.term.Erase()
		v.term.Resize(ev.Width, ev.Height)
		v.resize(ev.Width, ev.Height)

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "ctrl+c"):
			return false
		case ev.MatchString("r"):
			v.rotation.Reset()
			v.scene.Distance = cfg.Distance
		case ev.MatchString("w", "up"):
			v.torque.pitch = -torqueStrength
		case ev.MatchString("s", "down"):
			v.torque.pitch = torqueStrength
		case ev.MatchString("a", "left"):
			v.torque.yaw = -torqueStrength
		case ev.MatchString("d", "right"):
			v.torque.yaw = torqueStrength
		case ev.MatchString("q"):
			v.torque.roll = -torqueStrength
		case ev.MatchString("e"):
			v.torque.roll = torqueStrength
		case ev.MatchString("space"):
			v.rotation.ApplyImpulse(
				(rand.Float64()-0.5)*1.5,
				(rand.Float64()-0.5)*1.5,
				(rand.Float64()-0.5)*1.5,
			)
		case ev.MatchString("+", "="):
			v.zoom(-zoomStep)
		case ev.MatchString("-", "_"):
			v.zoom(zoomStep)
		case ev.MatchString("x"):
			v.scene.Wireframe = !v.scene.Wireframe
		case ev.MatchString("z"):
			// Depth testing is fixed per rasterizer.
			v.scene.DepthTest = !v.scene.DepthTest
			v.resize(v.width, v.height)
		case ev.MatchString("?", "shift+/"):
			v.hud.show = !v.hud.show
		}

	case uv.KeyReleaseEvent:
		switch {
		case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
			v.torque.pitch = 0
		case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
			v.torque.yaw = 0
		case ev.MatchString("q"), ev.MatchString("e"):
			v.torque.roll = 0
		}

	case uv.MouseClickEvent:
		v.mouseDown = true
		v.lastMouse.x, v.lastMouse.y = ev.X, ev.Y

	case uv.MouseReleaseEvent:
		v.mouseDown = false

	case uv.MouseMotionEvent:
		if v.mouseDown {
			dx := ev.X - v.lastMouse.x
			dy := ev.Y - v.lastMouse.y
			v.rotation.ApplyImpulse(float64(dy)*0.03, float64(dx)*0.03, 0)
			v.lastMouse.x, v.lastMouse.y = ev.X, ev.Y
		}

	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			v.zoom(-zoomStep)
		case uv.MouseWheelDown:
			v.zoom(zoomStep)
		}
	}
	return true
}

// frame advances the rotation by dt seconds and presents one frame.
func (v *viewer) frame(dt float64) error {
	// Key release events are unreliable, so held torque decays on its own.
	v.rotation.ApplyImpulse(v.torque.pitch*dt, v.torque.yaw*dt, v.torque.roll*dt)
	v.torque.pitch *= 0.9
	v.torque.yaw *= 0.9
	v.torque.roll *= 0.9
	v.rotation.Update()

	transform := v.scene.Transform(v.rotation.Pitch.Angle, v.rotation.Yaw.Angle, v.rotation.Roll.Angle)
	stats := v.scene.Draw(v.r, v.fb, transform)

	v.tr.Render(v.fb)
	if err := v.tr.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	v.hud.UpdateFPS()
	v.hud.Render(v.width, v.height, v.scene, stats)
	return nil
}

// run shows the scene in the terminal until the user quits.
func run(cfg *config.Config) error {
	scene, err := loadScene(cfg)
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	defer func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	v := &viewer{
		term:     term,
		scene:    scene,
		rotation: NewRotation(cfg.FPS, radians(cfg.Pitch), radians(cfg.Yaw)),
		hud:      NewHUD(scene.Mesh.Name),
	}
	v.resize(width, height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()
	events := term.Events()
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !v.handle(ev, cfg) {
				return nil
			}
		case now := <-ticker.C:
			dt := math.Min(now.Sub(lastFrame).Seconds(), 0.1)
			lastFrame = now
			if err := v.frame(dt); err != nil {
				return err
			}
		}
	}
}
