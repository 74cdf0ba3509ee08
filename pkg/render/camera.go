package render

import (
	"math"

	"github.com/bilalkah/cam3d/pkg/math3d"
)

// maxPitch keeps the camera short of looking straight up or down.
const maxPitch = math.Pi/2 - 0.01

// Camera places the rasterizer's view space in a world. Its view matrix
// maps world points into the space ProjectPerspective expects, with the
// camera at the origin looking down +Z and +Y up.
type Camera struct {
	// Position in world space
	Position Point

	// Orientation (Euler angles in radians)
	Pitch float64 // Positive looks up (+Y)
	Yaw   float64 // Positive turns toward +X
	Roll  float64 // Rotation around the view axis

	view      math3d.Mat4
	viewDirty bool
}

// NewCamera creates a camera at the origin looking down +Z.
func NewCamera() *Camera {
	return &Camera{viewDirty: true}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos Point) {
	c.Position = pos
	c.viewDirty = true
}

// SetRotation sets the camera rotation (pitch, yaw, roll in radians).
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
	c.viewDirty = true
}

// Forward returns the unit view direction, ignoring roll.
func (c *Camera) Forward() Point {
	return Point{
		X: math.Sin(c.Yaw) * math.Cos(c.Pitch),
		Y: math.Sin(c.Pitch),
		Z: math.Cos(c.Yaw) * math.Cos(c.Pitch),
	}
}

// Right returns the unit right direction, ignoring roll.
func (c *Camera) Right() Point {
	return Point{X: math.Cos(c.Yaw), Z: -math.Sin(c.Yaw)}
}

// Up returns the unit up direction, ignoring roll.
func (c *Camera) Up() Point {
	return c.Forward().Cross(c.Right())
}

// ViewMatrix returns the world to view transform.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		// View = inverse rotation * translation(-position)
		rot := math3d.RotateZ(-c.Roll).
			Mul(math3d.RotateX(c.Pitch)).
			Mul(math3d.RotateY(-c.Yaw))
		c.view = rot.Mul(math3d.Translate(c.Position.Negate()))
		c.viewDirty = false
	}
	return c.view
}

// MoveForward moves the camera along its view direction.
func (c *Camera) MoveForward(distance float64) {
	c.SetPosition(c.Position.Add(c.Forward().Scale(distance)))
}

// MoveRight moves the camera sideways.
func (c *Camera) MoveRight(distance float64) {
	c.SetPosition(c.Position.Add(c.Right().Scale(distance)))
}

// Rotate adds to the camera angles. Pitch is clamped short of the poles.
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float64) {
	c.SetRotation(
		min(max(c.Pitch+deltaPitch, -maxPitch), maxPitch),
		c.Yaw+deltaYaw,
		c.Roll+deltaRoll,
	)
}

// LookAt turns the camera toward target and clears roll. It does nothing
// when target is the camera position.
func (c *Camera) LookAt(target Point) {
	d := target.Sub(c.Position)
	if d.Len() == 0 {
		return
	}
	dir := d.Normalize()
	c.SetRotation(math.Asin(dir.Y), math.Atan2(dir.X, dir.Z), 0)
}

// Orbit places the camera distance away from target at the given pitch
// and yaw, looking at target.
func (c *Camera) Orbit(target Point, distance, pitch, yaw float64) {
	pitch = min(max(pitch, -maxPitch), maxPitch)
	c.Pitch, c.Yaw, c.Roll = pitch, yaw, 0
	c.SetPosition(target.Sub(c.Forward().Scale(distance)))
}

// Project transforms a world point into view space and projects it with
// r. See Rasterizer.ProjectPerspective.
func (c *Camera) Project(r *Rasterizer, p Point) (Point, bool) {
	return r.ProjectPerspective(c.ViewMatrix().MulVec3(p))
}
