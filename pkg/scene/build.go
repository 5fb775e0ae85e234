package scene

import (
	"runtime"

	"github.com/taigrr/retrocube/pkg/control"
	"github.com/taigrr/retrocube/pkg/math3d"
	"github.com/taigrr/retrocube/pkg/render"
)

// defaultOrbitDistance is used when the camera sits on the world origin.
const defaultOrbitDistance = 2

// Build validates the configuration and assembles a renderer for it.
func (c *Config) Build() (*render.Renderer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rc, err := c.BuildRaycaster()
	if err != nil {
		return nil, err
	}
	mat, err := c.BuildMaterial()
	if err != nil {
		return nil, err
	}
	light, err := c.BuildLighting()
	if err != nil {
		return nil, err
	}

	fb := render.NewFramebuffer(c.Render.Width, c.Render.Height)
	r := render.NewRenderer(c.BuildCamera(), rc, mat, light, fb)
	r.Background = render.Color(c.Render.Background)
	r.Workers = c.Render.Workers
	if r.Workers == 0 {
		r.Workers = runtime.NumCPU()
	}
	return r, nil
}

// BuildCamera creates the configured camera.
func (c *Config) BuildCamera() *render.Camera {
	cam := render.NewCamera()
	cam.SetFOV(c.Camera.FOV)
	cam.SetPosition(c.Camera.Position.Vec())
	cam.SetRotation(c.Camera.Rotation.Radians())
	return cam
}

// BuildRaycaster creates the configured primitive at its initial pose.
func (c *Config) BuildRaycaster() (render.Raycaster, error) {
	return c.BuildShape(c.Object.Shape)
}

// BuildShape creates the named primitive with the configured size and pose.
func (c *Config) BuildShape(shape string) (render.Raycaster, error) {
	var rc render.Raycaster
	switch shape {
	case ShapeBox:
		rc = render.NewBoxRaycaster(c.Object.HalfSize.Vec())
	case ShapeSphere:
		rc = render.NewSphereRaycaster(c.Object.Radius)
	default:
		return nil, unknown(ErrUnknownShape, shape)
	}
	rc.Transform().SetPosition(c.Object.Position.Vec())
	rc.Transform().SetRotation(c.Object.Rotation.Radians())
	return rc, nil
}

// BuildMaterial creates the configured material.
func (c *Config) BuildMaterial() (render.Material, error) {
	return c.BuildMaterialType(c.Material.Type)
}

// BuildMaterialType creates the named material with the configured colors.
func (c *Config) BuildMaterialType(typ string) (render.Material, error) {
	m := c.Material
	switch typ {
	case MaterialFlat:
		return &render.FlatMaterial{Color: render.Color(m.First)}, nil
	case MaterialChecker:
		return &render.CheckerMaterial{
			Scale:       m.Scale,
			FirstColor:  render.Color(m.First),
			SecondColor: render.Color(m.Second),
		}, nil
	}
	return nil, unknown(ErrUnknownMaterial, typ)
}

// BuildLighting creates the configured light model.
func (c *Config) BuildLighting() (render.Lighting, error) {
	return c.BuildLightingType(c.Light.Type)
}

// BuildLightingType creates the named light model with the configured
// direction and colors.
func (c *Config) BuildLightingType(typ string) (render.Lighting, error) {
	l := c.Light
	switch typ {
	case LightingUnlit:
		return &render.UnlitLighting{Ambient: render.Color(l.Ambient)}, nil
	case LightingDiffuse:
		return render.NewDiffuseDirectLighting(l.Direction.Vec(), render.Color(l.Color), render.Color(l.Ambient)), nil
	}
	return nil, unknown(ErrUnknownLighting, typ)
}

// BuildSpin creates the object animation, updated fps times per second.
func (c *Config) BuildSpin(fps int) *control.Spin {
	s := control.NewSpin(fps, c.Object.AngularVelocity.Radians())
	s.Position = c.Object.Position.Vec()
	s.Rotation = c.Object.Rotation.Radians()
	s.Static = c.Object.Static
	return s
}

// BuildOrbit creates a camera rig that reproduces the configured camera pose.
// The orbit center is the point the camera looks at, as far ahead of it as the
// camera is from the world origin.
func (c *Config) BuildOrbit() *control.Orbit {
	pos := c.Camera.Position.Vec()
	rot := c.Camera.Rotation.Radians()
	dist := pos.Len()
	if dist == 0 {
		dist = defaultOrbitDistance
	}
	forward := math3d.EulerRotate(math3d.Forward(), rot)
	return &control.Orbit{
		Center:   pos.Add(forward.Scale(dist)),
		Rotation: rot,
		Distance: dist,
	}
}
