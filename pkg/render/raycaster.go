package render

import (
	"github.com/taigrr/retrocube/pkg/math3d"
)

// RaycastHit is the nearest intersection of a ray with a primitive.
type RaycastHit struct {
	Position math3d.Vec3 // World space
	Normal   math3d.Vec3 // World space, unit length

	LocalPosition math3d.Vec3 // Object space
	LocalNormal   math3d.Vec3 // Object space, unit length
}

// Raycaster intersects world-space rays with a single primitive placed by its
// own transform.
type Raycaster interface {
	// Transform returns the primitive's placement in the world.
	Transform() *math3d.Transform

	// Raycast returns the nearest hit in front of origin along dir.
	// Misses, including every numerically degenerate case, report false.
	Raycast(origin, dir math3d.Vec3) (RaycastHit, bool)
}

// worldHit converts an object-space hit into a full RaycastHit.
func worldHit(t *math3d.Transform, localPos, localNormal math3d.Vec3) RaycastHit {
	return RaycastHit{
		Position:      t.TransformPosition(localPos),
		Normal:        t.TransformDirection(localNormal),
		LocalPosition: localPos,
		LocalNormal:   localNormal,
	}
}
