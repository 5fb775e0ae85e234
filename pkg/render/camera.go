package render

import (
	"github.com/taigrr/retrocube/pkg/math3d"
)

// Camera is a pinhole camera that turns normalized device coordinates into
// world-space rays. It looks down its local +Z axis.
type Camera struct {
	transform math3d.Transform

	// Projection parameters
	fov         float32 // Vertical field of view in degrees
	aspectRatio float32 // Width / Height

	// Cached ray matrix (computed on demand)
	rayMatrix math3d.Mat3
	rayDirty  bool
}

// NewCamera creates a camera at the origin looking down +Z with a 60 degree
// field of view.
func NewCamera() *Camera {
	return &Camera{
		fov:         60,
		aspectRatio: 1,
		rayDirty:    true,
	}
}

// Transform returns the camera transform. Mutations through the returned
// pointer take effect on the next ray.
func (c *Camera) Transform() *math3d.Transform {
	return &c.transform
}

// Position returns the camera position.
func (c *Camera) Position() math3d.Vec3 {
	return c.transform.Position()
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.transform.SetPosition(pos)
}

// Rotation returns the camera rotation (Euler angles in radians).
func (c *Camera) Rotation() math3d.Vec3 {
	return c.transform.Rotation()
}

// SetRotation sets the camera rotation (Euler angles in radians).
func (c *Camera) SetRotation(rot math3d.Vec3) {
	c.transform.SetRotation(rot)
}

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float32 {
	return c.fov
}

// SetFOV sets the vertical field of view in degrees.
func (c *Camera) SetFOV(fov float32) {
	c.fov = fov
	c.rayDirty = true
}

// AspectRatio returns width / height.
func (c *Camera) AspectRatio() float32 {
	return c.aspectRatio
}

// SetAspectRatio sets width / height.
func (c *Camera) SetAspectRatio(aspect float32) {
	c.aspectRatio = aspect
	c.rayDirty = true
}

// Update rebuilds any stale cached matrices. After Update the camera is
// read-only for RayOriginDirection until the next setter call.
func (c *Camera) Update() {
	c.transform.Update()
	if !c.rayDirty {
		return
	}
	k := math3d.Tan(math3d.DegToRad(c.fov * 0.5))
	c.rayMatrix = math3d.ScaleMat3(math3d.V3(k*c.aspectRatio, k, 1))
	c.rayDirty = false
}

// RayOriginDirection returns the world-space ray through the NDC point
// (x, y), where (-1, -1) is the bottom-left and (1, 1) the top-right of the
// view. The direction is not normalized.
func (c *Camera) RayOriginDirection(x, y float32) (origin, dir math3d.Vec3) {
	c.Update()
	local := c.rayMatrix.MulVec3(math3d.V3(x, y, 1))
	return c.transform.Position(), c.transform.TransformDirection(local)
}
