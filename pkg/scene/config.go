// Package scene describes a retrocube scene as configuration and builds the
// renderer for it. Scenes come from built-in defaults, YAML files and glTF
// documents, in that order of precedence.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/retrocube/pkg/control"
	"github.com/taigrr/retrocube/pkg/math3d"
	"github.com/taigrr/retrocube/pkg/render"
)

// Shape, material and lighting names accepted in configuration.
const (
	ShapeBox    = "box"
	ShapeSphere = "sphere"

	MaterialFlat    = "flat"
	MaterialChecker = "checker"

	LightingUnlit   = "unlit"
	LightingDiffuse = "diffuse"
)

var (
	ErrUnknownShape    = errors.New("unknown shape")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownLighting = errors.New("unknown lighting")
)

func unknown(err error, name string) error {
	return fmt.Errorf("%w %q", err, name)
}

// Config is a complete scene description. Angles are in degrees.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Camera   CameraConfig   `yaml:"camera"`
	Object   ObjectConfig   `yaml:"object"`
	Material MaterialConfig `yaml:"material"`
	Light    LightConfig    `yaml:"light"`
}

// RenderConfig controls the output image.
type RenderConfig struct {
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Workers    int             `yaml:"workers"` // 0 = one per CPU
	Quality    control.Quality `yaml:"quality"` // Interactive viewer resolution
	Background Color           `yaml:"background"`
}

// CameraConfig places the camera.
type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Rotation Vec3    `yaml:"rotation"`
	FOV      float32 `yaml:"fov"`
}

// ObjectConfig describes the primitive and its motion.
type ObjectConfig struct {
	Shape           string  `yaml:"shape"`
	HalfSize        Vec3    `yaml:"half_size"`
	Radius          float32 `yaml:"radius"`
	Position        Vec3    `yaml:"position"`
	Rotation        Vec3    `yaml:"rotation"`
	AngularVelocity Vec3    `yaml:"angular_velocity"` // Degrees per second
	Static          bool    `yaml:"static"`
}

// MaterialConfig selects the surface material. Flat uses First.
type MaterialConfig struct {
	Type   string  `yaml:"type"`
	Scale  float32 `yaml:"scale"`
	First  Color   `yaml:"first"`
	Second Color   `yaml:"second"`
}

// LightConfig selects the light model. Unlit uses only Ambient.
type LightConfig struct {
	Type      string `yaml:"type"`
	Direction Vec3   `yaml:"direction"`
	Color     Color  `yaml:"color"`
	Ambient   Color  `yaml:"ambient"`
}

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float32

// Vec converts v to a math3d vector.
func (v Vec3) Vec() math3d.Vec3 {
	return math3d.V3(v[0], v[1], v[2])
}

// Radians converts v from degrees to a radian math3d vector.
func (v Vec3) Radians() math3d.Vec3 {
	return math3d.V3(math3d.DegToRad(v[0]), math3d.DegToRad(v[1]), math3d.DegToRad(v[2]))
}

// FromVec converts a math3d vector.
func FromVec(v math3d.Vec3) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Color is written in YAML as [r, g, b] or [r, g, b, a] with channels in
// 0..255. Alpha defaults to 255.
type Color render.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var ch []int
	if err := value.Decode(&ch); err != nil {
		return fmt.Errorf("line %d: color: %w", value.Line, err)
	}
	if len(ch) != 3 && len(ch) != 4 {
		return fmt.Errorf("line %d: color needs 3 or 4 channels, got %d", value.Line, len(ch))
	}
	for _, v := range ch {
		if v < 0 || v > 255 {
			return fmt.Errorf("line %d: color channel %d outside 0..255", value.Line, v)
		}
	}
	*c = Color{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: 255}
	if len(ch) == 4 {
		c.A = uint8(ch[3])
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}, nil
}

// Default returns the stock scene: a checkered box tilted 45 degrees on two
// axes, lit from the upper left and viewed from two units away.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:      160,
			Height:     120,
			Quality:    control.QualityHalf,
			Background: Color(render.ColorBlack),
		},
		Camera: CameraConfig{
			Position: Vec3{0, 0, -2},
			FOV:      60,
		},
		Object: ObjectConfig{
			Shape:           ShapeBox,
			HalfSize:        Vec3{0.5, 0.5, 0.5},
			Radius:          0.5,
			Rotation:        Vec3{45, 45, 0},
			AngularVelocity: Vec3{10, 10, 0},
		},
		Material: MaterialConfig{
			Type:   MaterialChecker,
			Scale:  1,
			First:  Color(render.ColorWhite),
			Second: Color(render.ColorGray),
		},
		Light: LightConfig{
			Type:      LightingDiffuse,
			Direction: Vec3{1, -1, 1},
			Color:     Color(render.ColorWhite),
			Ambient:   Color(render.RGB(40, 40, 40)),
		},
	}
}

// Load reads a YAML scene file over the defaults.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML scene over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) normalize() {
	c.Object.Shape = strings.ToLower(strings.TrimSpace(c.Object.Shape))
	c.Material.Type = strings.ToLower(strings.TrimSpace(c.Material.Type))
	c.Light.Type = strings.ToLower(strings.TrimSpace(c.Light.Type))
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	c.normalize()

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be >0, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render workers must be >=0, got %d", c.Render.Workers)
	}
	if !(c.Camera.FOV > 0 && c.Camera.FOV < 180) {
		return fmt.Errorf("camera fov must be in (0, 180), got %.6g", c.Camera.FOV)
	}

	switch c.Object.Shape {
	case ShapeBox:
		h := c.Object.HalfSize
		if !(h[0] > 0 && h[1] > 0 && h[2] > 0) {
			return fmt.Errorf("box half_size must be >0 on all axes, got %v", h)
		}
	case ShapeSphere:
		if !(c.Object.Radius > 0) {
			return fmt.Errorf("sphere radius must be >0, got %.6g", c.Object.Radius)
		}
	default:
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownShape, c.Object.Shape, ShapeBox, ShapeSphere)
	}

	switch c.Material.Type {
	case MaterialFlat:
	case MaterialChecker:
		if !(c.Material.Scale > 0) {
			return fmt.Errorf("checker scale must be >0, got %.6g", c.Material.Scale)
		}
	default:
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownMaterial, c.Material.Type, MaterialFlat, MaterialChecker)
	}

	switch c.Light.Type {
	case LightingUnlit:
	case LightingDiffuse:
		if c.Light.Direction.Vec().LenSq() == 0 {
			return errors.New("light direction must be non-zero")
		}
	default:
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownLighting, c.Light.Type, LightingUnlit, LightingDiffuse)
	}
	return nil
}
