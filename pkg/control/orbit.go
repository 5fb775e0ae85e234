// Package control holds the editing state that drives a scene between
// frames: the orbiting camera rig, the spinning object and the render
// quality.
package control

import (
	"github.com/taigrr/retrocube/pkg/math3d"
	"github.com/taigrr/retrocube/pkg/render"
)

// Orbit places a camera on a sphere around Center, looking at it.
type Orbit struct {
	Center   math3d.Vec3
	Rotation math3d.Vec3 // Euler angles in radians
	Distance float32
}

// NewOrbit creates an orbit Distance units behind the origin.
func NewOrbit(distance float32) *Orbit {
	return &Orbit{Distance: distance}
}

// Rotate adds pitch and yaw (radians). Pitch is kept short of the poles.
func (o *Orbit) Rotate(pitch, yaw float32) {
	const limit = 1.55
	o.Rotation.X = math3d.Clamp(o.Rotation.X+pitch, -limit, limit)
	o.Rotation.Y += yaw
}

// Zoom changes the distance by delta, clamped to [lo, hi].
func (o *Orbit) Zoom(delta, lo, hi float32) {
	o.Distance = math3d.Clamp(o.Distance+delta, lo, hi)
}

// Apply orients cam and moves it so Center lies Distance ahead of it.
func (o *Orbit) Apply(cam *render.Camera) {
	cam.SetRotation(o.Rotation)
	forward := cam.Transform().TransformDirection(math3d.Forward())
	cam.SetPosition(o.Center.Sub(forward.Scale(o.Distance)))
}
