package render

import (
	"github.com/taigrr/retrocube/pkg/math3d"
)

// SphereRaycaster intersects rays with a sphere centered on its transform's
// origin. The rotation only affects the local hit coordinates handed to
// materials.
type SphereRaycaster struct {
	Radius float32

	transform math3d.Transform
}

// NewSphereRaycaster creates a sphere with the given radius.
func NewSphereRaycaster(radius float32) *SphereRaycaster {
	return &SphereRaycaster{Radius: radius}
}

// Transform returns the sphere placement.
func (s *SphereRaycaster) Transform() *math3d.Transform {
	return &s.transform
}

// Raycast implements Raycaster. Only the near root of the ray/sphere
// quadratic is considered, so origins inside the sphere miss.
func (s *SphereRaycaster) Raycast(origin, dir math3d.Vec3) (RaycastHit, bool) {
	if !(s.Radius > 0) {
		return RaycastHit{}, false
	}

	lo := s.transform.InverseTransformPosition(origin)
	ld := s.transform.InverseTransformDirection(dir).Normalize()

	a := lo.Negate().Dot(ld)
	// A negative discriminant turns t into NaN.
	t := a - math3d.Sqrt(s.Radius*s.Radius-lo.LenSq()+a*a)
	if !math3d.IsFinite(t) || t < 0 {
		return RaycastHit{}, false
	}

	p := lo.Add(ld.Scale(t))
	n := p.Normalize()
	if !n.IsFinite() {
		return RaycastHit{}, false
	}
	return worldHit(&s.transform, p, n), true
}
