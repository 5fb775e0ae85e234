package math3d

// Transform places an object in the world by a position and Euler rotation
// (radians). The object-to-world matrix is EulerRotation(rotation) *
// Translate(position); its inverse is Translate(-position) *
// InverseEulerRotation(rotation).
//
// The four derived matrices are cached and rebuilt together on the first
// access after a mutation. The zero value is an identity transform.
type Transform struct {
	position Vec3
	rotation Vec3

	// Cached matrices (lazily computed)
	toWorld    Mat4
	toLocal    Mat4
	dirToWorld Mat3
	dirToLocal Mat3
	valid      bool
}

// NewTransform creates a transform at position with the given rotation.
func NewTransform(position, rotation Vec3) Transform {
	return Transform{position: position, rotation: rotation}
}

// Position returns the position.
func (t *Transform) Position() Vec3 {
	return t.position
}

// SetPosition sets the position.
func (t *Transform) SetPosition(p Vec3) {
	t.position = p
	t.valid = false
}

// Rotation returns the Euler rotation in radians.
func (t *Transform) Rotation() Vec3 {
	return t.rotation
}

// SetRotation sets the Euler rotation in radians.
func (t *Transform) SetRotation(r Vec3) {
	t.rotation = r
	t.valid = false
}

// Update rebuilds the cached matrices if a setter ran since the last access.
// After Update, the Transform* methods only read and are safe to call from
// several goroutines until the next mutation.
func (t *Transform) Update() {
	if t.valid {
		return
	}
	rot := EulerRotation(t.rotation)
	inv := InverseEulerRotation(t.rotation)

	t.toWorld = rot.Mat4().Mul(Translate(t.position))
	t.toLocal = Translate(t.position.Negate()).Mul(inv.Mat4())
	t.dirToWorld = t.toWorld.Mat3()
	t.dirToLocal = t.toLocal.Mat3()
	t.valid = true
}

// Matrix returns the object-to-world matrix.
func (t *Transform) Matrix() Mat4 {
	t.Update()
	return t.toWorld
}

// InverseMatrix returns the world-to-object matrix.
func (t *Transform) InverseMatrix() Mat4 {
	t.Update()
	return t.toLocal
}

// TransformPosition maps a point from object to world space.
func (t *Transform) TransformPosition(p Vec3) Vec3 {
	t.Update()
	return t.toWorld.MulVec3(p)
}

// InverseTransformPosition maps a point from world to object space.
func (t *Transform) InverseTransformPosition(p Vec3) Vec3 {
	t.Update()
	return t.toLocal.MulVec3(p)
}

// TransformDirection maps a direction from object to world space.
func (t *Transform) TransformDirection(d Vec3) Vec3 {
	t.Update()
	return t.dirToWorld.MulVec3(d)
}

// InverseTransformDirection maps a direction from world to object space.
func (t *Transform) InverseTransformDirection(d Vec3) Vec3 {
	t.Update()
	return t.dirToLocal.MulVec3(d)
}
