package control

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/retrocube/pkg/math3d"
)

// Spin animates an object's rotation: a constant angular velocity plus
// impulses that decay back to rest through a critically damped spring.
type Spin struct {
	Position        math3d.Vec3
	Rotation        math3d.Vec3 // Euler angles in radians
	AngularVelocity math3d.Vec3 // Radians per second
	Static          bool        // Freeze Rotation entirely

	axes [3]spinAxis
	fps  int
}

// spinAxis tracks the impulse velocity of one axis.
type spinAxis struct {
	velocity float64 // Radians per second
	accel    float64 // Internal spring velocity
	spring   harmonica.Spring
}

func newSpinAxis(fps int) spinAxis {
	// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
	return spinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// NewSpin creates a spin that is updated fps times per second.
func NewSpin(fps int, angularVelocity math3d.Vec3) *Spin {
	s := &Spin{AngularVelocity: angularVelocity, fps: max(fps, 1)}
	s.ResetImpulses()
	return s
}

// Impulse adds angular velocity (radians per second) that fades out.
func (s *Spin) Impulse(v math3d.Vec3) {
	s.axes[0].velocity += float64(v.X)
	s.axes[1].velocity += float64(v.Y)
	s.axes[2].velocity += float64(v.Z)
}

// ImpulseVelocity returns the current, still decaying impulse velocity.
func (s *Spin) ImpulseVelocity() math3d.Vec3 {
	return math3d.V3(float32(s.axes[0].velocity), float32(s.axes[1].velocity), float32(s.axes[2].velocity))
}

// ResetImpulses drops any pending impulse.
func (s *Spin) ResetImpulses() {
	for i := range s.axes {
		s.axes[i] = newSpinAxis(s.fps)
	}
}

// Update advances the rotation by dt seconds. Impulses decay by one spring
// step per call, so Update should run once per frame.
func (s *Spin) Update(dt float32) {
	if s.Static {
		return
	}
	v := s.AngularVelocity.Add(s.ImpulseVelocity())
	s.Rotation = s.Rotation.Add(v.Scale(dt))

	for i := range s.axes {
		a := &s.axes[i]
		a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
	}
}

// Apply writes the position and rotation to t.
func (s *Spin) Apply(t *math3d.Transform) {
	t.SetPosition(s.Position)
	t.SetRotation(s.Rotation)
}
