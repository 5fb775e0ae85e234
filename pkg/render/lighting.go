package render

import (
	"github.com/taigrr/retrocube/pkg/math3d"
)

// Lighting shades a base surface color at a world-space hit.
type Lighting interface {
	ApplyLight(base Color, pos, normal math3d.Vec3) Color
}

// UnlitLighting tints every surface by a constant ambient color.
type UnlitLighting struct {
	Ambient Color
}

// ApplyLight implements Lighting.
func (l *UnlitLighting) ApplyLight(base Color, _, _ math3d.Vec3) Color {
	return base.Tint(l.Ambient)
}

// DiffuseDirectLighting is a single directional light with Lambert falloff
// blended over an ambient floor.
type DiffuseDirectLighting struct {
	Color   Color
	Ambient Color

	direction math3d.Vec3
	toLight   math3d.Vec3
}

// NewDiffuseDirectLighting creates a directional light. direction is the way
// the light travels, away from its source.
func NewDiffuseDirectLighting(direction math3d.Vec3, color, ambient Color) *DiffuseDirectLighting {
	l := &DiffuseDirectLighting{Color: color, Ambient: ambient}
	l.SetDirection(direction)
	return l
}

// Direction returns the direction the light travels.
func (l *DiffuseDirectLighting) Direction() math3d.Vec3 {
	return l.direction
}

// SetDirection sets the direction the light travels.
func (l *DiffuseDirectLighting) SetDirection(d math3d.Vec3) {
	l.direction = d
	l.toLight = d.Normalize().Negate()
}

// ApplyLight implements Lighting.
func (l *DiffuseDirectLighting) ApplyLight(base Color, _, normal math3d.Vec3) Color {
	k := math3d.Clamp(l.toLight.Dot(normal), 0, 1)
	return base.Tint(LerpColor(l.Ambient, l.Color, k))
}
