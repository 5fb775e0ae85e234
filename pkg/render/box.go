package render

import (
	"github.com/taigrr/retrocube/pkg/math3d"
)

// boxEdgeEpsilon widens face bounds slightly so rays grazing an edge do not
// fall between two faces.
const boxEdgeEpsilon = 1e-4

// BoxRaycaster intersects rays with an oriented box centered on its
// transform's origin.
type BoxRaycaster struct {
	HalfSize math3d.Vec3 // Half extents along local X, Y and Z

	transform math3d.Transform
}

// NewBoxRaycaster creates a box with the given half extents.
func NewBoxRaycaster(halfSize math3d.Vec3) *BoxRaycaster {
	return &BoxRaycaster{HalfSize: halfSize}
}

// Transform returns the box placement.
func (b *BoxRaycaster) Transform() *math3d.Transform {
	return &b.transform
}

// Raycast implements Raycaster.
//
// The ray is mirrored into the octant holding its local origin, so only the
// three faces pointing into that octant are candidates. Faces are tested in
// +Z, +Y, +X order and the candidate nearest to origin wins; on exact ties the
// first one tested is kept.
func (b *BoxRaycaster) Raycast(origin, dir math3d.Vec3) (RaycastHit, bool) {
	half := b.HalfSize
	if !(half.X > 0 && half.Y > 0 && half.Z > 0) || !half.IsFinite() {
		return RaycastHit{}, false
	}

	lo := b.transform.InverseTransformPosition(origin)
	ld := b.transform.InverseTransformDirection(dir)

	sign := math3d.One3()
	for i := range 3 {
		if lo.Component(i) < 0 {
			lo = lo.WithComponent(i, -lo.Component(i))
			ld = ld.WithComponent(i, -ld.Component(i))
			sign = sign.WithComponent(i, -1)
		}
	}

	var (
		best   RaycastHit
		bestSq float32
		found  bool
	)
	for axis := 2; axis >= 0; axis-- {
		n := math3d.Zero3().WithComponent(axis, 1)
		p, ok := math3d.PlaneCast(n, half.Component(axis), lo, ld)
		if !ok || !insideFace(p, half, axis) {
			continue
		}

		hit := worldHit(&b.transform, p.Mul(sign), n.Mul(sign))
		distSq := hit.Position.DistanceSq(origin)
		if !found || distSq < bestSq {
			best, bestSq, found = hit, distSq, true
		}
	}
	return best, found
}

// insideFace reports whether p lies within the box bounds on the two axes
// other than axis.
func insideFace(p, half math3d.Vec3, axis int) bool {
	for i := range 3 {
		if i == axis {
			continue
		}
		if !(math3d.Abs(p.Component(i)) <= half.Component(i)+boxEdgeEpsilon) {
			return false
		}
	}
	return true
}
