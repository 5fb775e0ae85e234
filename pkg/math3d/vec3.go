// Package math3d provides the float32 vector, matrix and transform math used by
// the retrocube raycaster.
//
// The coordinate system is left-handed: +X right, +Y up, +Z forward.
package math3d

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// One3 returns the vector (1, 1, 1).
func One3() Vec3 {
	return Vec3{1, 1, 1}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Forward returns the world forward vector (0, 0, 1).
func Forward() Vec3 {
	return Vec3{0, 0, 1}
}

// Right returns the world right vector (1, 0, 0).
func Right() Vec3 {
	return Vec3{1, 0, 0}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float32 {
	return Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector in the same direction.
// The zero vector has no direction and yields NaN components.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Abs returns the component-wise absolute value.
func (a Vec3) Abs() Vec3 {
	return Vec3{Abs(a.X), Abs(a.Y), Abs(a.Z)}
}

// Angle returns the angle in radians between a and b.
// NaN for zero-length inputs.
func (a Vec3) Angle(b Vec3) float32 {
	c := a.Dot(b) / (a.Len() * b.Len())
	return Acos(Clamp(c, -1, 1))
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float32 {
	return a.Sub(b).Len()
}

// DistanceSq returns the squared distance between two points.
func (a Vec3) DistanceSq(b Vec3) float32 {
	return a.Sub(b).LenSq()
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return Vec3{
		Lerp(a.X, b.X, t),
		Lerp(a.Y, b.Y, t),
		Lerp(a.Z, b.Z, t),
	}
}

// Approx reports whether every component of a is within eps of b.
func (a Vec3) Approx(b Vec3, eps float32) bool {
	return Abs(a.X-b.X) <= eps && Abs(a.Y-b.Y) <= eps && Abs(a.Z-b.Z) <= eps
}

// IsFinite reports whether no component is NaN or infinite.
func (a Vec3) IsFinite() bool {
	return IsFinite(a.X) && IsFinite(a.Y) && IsFinite(a.Z)
}

// Component returns the component at index i (0=X, 1=Y, 2=Z).
func (a Vec3) Component(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// WithComponent returns a copy of a with component i set to v.
func (a Vec3) WithComponent(i int, v float32) Vec3 {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	default:
		a.Z = v
	}
	return a
}

// EulerRotate rotates v by the Euler angles (radians) in r.
func EulerRotate(v, r Vec3) Vec3 {
	return EulerRotation(r).MulVec3(v)
}

// InverseEulerRotate undoes EulerRotate for the same angles.
func InverseEulerRotate(v, r Vec3) Vec3 {
	return InverseEulerRotation(r).MulVec3(v)
}

// LookAtRotate maps v from the basis whose forward axis is dir into world space.
func LookAtRotate(v, dir Vec3) Vec3 {
	return LookAtRotation(dir).MulVec3(v)
}

// InverseLookAtRotate maps v from world space into the basis whose forward axis is dir.
func InverseLookAtRotate(v, dir Vec3) Vec3 {
	return InverseLookAtRotation(dir).MulVec3(v)
}
