// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/mkoren/driftnet/pkg/math"
)

// Camera is a fixed perspective camera looking at a target point.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	// Perspective projection parameters
	FOV    float32 // Vertical field of view (radians)
	Aspect float32 // Width / height
	Near   float32
	Far    float32
}

// New creates a camera at pos looking at target, with +Y as up.
func New(pos, target math.Vec3, fov, aspect, near, far float32) *Camera {
	return &Camera{
		Position: pos,
		Target:   target,
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view, ready to combine with a
// model matrix.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// SetAspect updates the aspect ratio from a window size in pixels.
// A zero height is ignored to avoid a division by zero on minimize.
func (c *Camera) SetAspect(width, height int) {
	if height == 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}
