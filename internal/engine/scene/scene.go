// Package scene assembles the camera and the net renderer into a
// drawable 3D scene.
package scene

import (
	"fmt"
	gomath "math"

	"github.com/mkoren/driftnet/internal/engine/camera"
	"github.com/mkoren/driftnet/internal/fishnet"
	"github.com/mkoren/driftnet/pkg/math"
)

// Fixed camera parameters. The camera hangs above the net looking at
// the origin; all apparent motion comes from the net's own rotation.
const (
	cameraFOVDegrees = 75.0
	cameraNear       = 0.1
	cameraFar        = 1000.0
)

var (
	cameraPosition = math.Vec3{X: 0, Y: 12, Z: 5}
	cameraTarget   = math.Vec3{}
)

// Config contains scene configuration options.
type Config struct {
	Width  int
	Height int
}

// Scene manages the camera and the net renderer.
type Scene struct {
	config Config

	camera *camera.Camera
	net    *NetRenderer
}

// New creates a new scene with the given configuration.
func New(cfg Config) (*Scene, error) {
	s := &Scene{
		config: cfg,
	}

	fov := float32(cameraFOVDegrees * gomath.Pi / 180.0)
	aspect := float32(cfg.Width) / float32(cfg.Height)
	s.camera = camera.New(cameraPosition, cameraTarget, fov, aspect, cameraNear, cameraFar)

	var err error
	s.net, err = NewNetRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating net renderer: %w", err)
	}

	return s, nil
}

// Upload sends the net geometry to the GPU.
func (s *Scene) Upload(net *fishnet.Net) {
	s.net.Upload(net)
}

// Render draws the net with its current deformation and rotation.
func (s *Scene) Render(net *fishnet.Net) {
	s.net.Sync(net)

	// Rotation applies X, then Y, then Z
	model := math.RotateX(float32(net.RotX)).
		Mul(math.RotateY(float32(net.RotY))).
		Mul(math.RotateZ(float32(net.RotZ)))
	mvp := s.camera.ViewProjection().Mul(model)

	s.net.Render(mvp)
}

// Resize updates the scene dimensions.
func (s *Scene) Resize(width, height int) {
	if width == s.config.Width && height == s.config.Height {
		return
	}
	s.config.Width = width
	s.config.Height = height
	s.camera.SetAspect(width, height)
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.net != nil {
		s.net.Destroy()
	}
}
