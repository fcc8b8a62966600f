package fishnet

import (
	"math"
	"math/rand"
	"time"
)

// Rotation and time-step constants for the idle sway animation.
const (
	baseTiltX   = math.Pi / 4 // resting tilt toward the camera
	swayAmpX    = 0.1
	swayAmpY    = 0.2
	stepScale   = 0.001
	stepBuckets = 20
)

// Sim drives the net animation. It owns the elapsed time and derives
// the net's rotation and strand depths from it on every tick.
type Sim struct {
	net  *Net
	time float64
	step func() float64
}

// NewSim creates a simulation for net. step supplies the time increment
// per tick; pass nil for the default pseudo-random source, which yields
// quantized steps in [0, 0.019] so the animation speed drifts from run
// to run. Tests inject a fixed step to get exact output.
func NewSim(net *Net, step func() float64) *Sim {
	if step == nil {
		step = randomStep(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return &Sim{net: net, step: step}
}

// randomStep quantizes rng output into stepBuckets increments of
// stepScale seconds.
func randomStep(rng *rand.Rand) func() float64 {
	return func() float64 {
		return math.Floor(rng.Float64()*stepBuckets) * stepScale
	}
}

// Tick advances the animation one frame: time moves forward by one
// step, the whole net sways around X and Y, and every strand depth is
// recomputed for the new time.
func (s *Sim) Tick() {
	s.time += s.step()
	s.net.RotX = baseTiltX + math.Sin(s.time)*swayAmpX
	s.net.RotY = math.Cos(s.time) * swayAmpY
	s.net.Update(s.time)
}

// Time returns the accumulated animation time in seconds.
func (s *Sim) Time() float64 {
	return s.time
}
