package render

import (
	"github.com/taigrr/retrocube/pkg/math3d"
)

// Material computes the unlit surface color at an object-space hit.
type Material interface {
	SurfaceColor(localPos, localNormal math3d.Vec3) Color
}

// FlatMaterial paints the whole surface one color.
type FlatMaterial struct {
	Color Color
}

// SurfaceColor implements Material.
func (m *FlatMaterial) SurfaceColor(_, _ math3d.Vec3) Color {
	return m.Color
}

// CheckerMaterial is a triplanar checkerboard. Each axis-aligned projection
// is sampled separately and the three results are blended by the normal.
type CheckerMaterial struct {
	Scale       float32 // Edge length of one full two-cell period
	FirstColor  Color
	SecondColor Color
}

// SurfaceColor implements Material.
func (m *CheckerMaterial) SurfaceColor(p, n math3d.Vec3) Color {
	x := m.sample(p.Y, p.Z)
	y := m.sample(p.X, p.Z)
	z := m.sample(p.X, p.Y)

	w := triplanarWeights(n)
	return LerpColor(m.FirstColor, m.SecondColor, x*w.X+y*w.Y+z*w.Z)
}

// sample returns the 0/1 checker parity at (u, v).
func (m *CheckerMaterial) sample(u, v float32) float32 {
	cu := uint32(math3d.EuclidMod(u/m.Scale, 1) / 0.5)
	cv := uint32(math3d.EuclidMod(v/m.Scale, 1) / 0.5)
	return float32((cu + cv) % 2)
}

// triplanarWeights returns |n| normalized so the components sum to one.
func triplanarWeights(n math3d.Vec3) math3d.Vec3 {
	w := n.Abs()
	return w.Scale(1 / (w.X + w.Y + w.Z))
}
