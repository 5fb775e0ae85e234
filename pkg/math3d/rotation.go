package math3d

import "math"

// EulerRotation builds the rotation matrix for Euler angles r (radians).
// The angles are applied X first, then Y, then Z: R = Rz * Ry * Rx.
func EulerRotation(r Vec3) Mat3 {
	sx, cx := Sin(r.X), Cos(r.X)
	sy, cy := Sin(r.Y), Cos(r.Y)
	sz, cz := Sin(r.Z), Cos(r.Z)

	return Mat3{
		cz * cy, cz*sy*sx - sz*cx, cz*sy*cx + sz*sx,
		sz * cy, sz*sy*sx + cz*cx, sz*sy*cx - cz*sx,
		-sy, cy * sx, cy * cx,
	}
}

// InverseEulerRotation builds the inverse of EulerRotation(r):
// R^-1 = Rx^-1 * Ry^-1 * Rz^-1.
func InverseEulerRotation(r Vec3) Mat3 {
	sx, cx := Sin(r.X), Cos(r.X)
	sy, cy := Sin(r.Y), Cos(r.Y)
	sz, cz := Sin(r.Z), Cos(r.Z)

	return Mat3{
		cz * cy, sz * cy, -sy,
		cz*sy*sx - sz*cx, sz*sy*sx + cz*cx, cy * sx,
		cz*sy*cx + sz*sx, sz*sy*cx - cz*sx, cy * cx,
	}
}

// LookAtRotation builds a basis whose forward axis points along dir.
// Columns are right, up and forward. dir must not be parallel to Right().
func LookAtRotation(dir Vec3) Mat3 {
	right, up, forward := lookAtBasis(dir)
	return Mat3{
		right.X, up.X, forward.X,
		right.Y, up.Y, forward.Y,
		right.Z, up.Z, forward.Z,
	}
}

// InverseLookAtRotation builds the inverse of LookAtRotation(dir).
func InverseLookAtRotation(dir Vec3) Mat3 {
	right, up, forward := lookAtBasis(dir)
	return Mat3{
		right.X, right.Y, right.Z,
		up.X, up.Y, up.Z,
		forward.X, forward.Y, forward.Z,
	}
}

func lookAtBasis(dir Vec3) (right, up, forward Vec3) {
	forward = dir.Normalize()
	up = Right().Cross(forward).Normalize()
	right = forward.Cross(up)
	return right, up, forward
}

// EulerFromQuaternion converts a unit quaternion to Euler angles (radians)
// matching EulerRotation's Z-Y-X order. The pitch is taken with atan2 so it
// stays accurate near +-90 degrees.
func EulerFromQuaternion(x, y, z, w float64) Vec3 {
	m00 := 1 - 2*(y*y+z*z)
	m10 := 2 * (x*y + w*z)
	m20 := 2 * (x*z - w*y)
	m21 := 2 * (y*z + w*x)
	m22 := 1 - 2*(x*x+y*y)

	return Vec3{
		X: float32(math.Atan2(m21, m22)),
		Y: float32(math.Atan2(-m20, math.Hypot(m00, m10))),
		Z: float32(math.Atan2(m10, m00)),
	}
}
