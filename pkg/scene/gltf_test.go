package scene

import (
	"encoding/binary"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/retrocube/pkg/math3d"
)

var identityRotation = [4]float64{0, 0, 0, 1}

func saveDoc(t *testing.T, name string, doc *gltf.Document) string {
	t.Helper()
	doc.Asset = gltf.Asset{Version: "2.0", Generator: "retrocube test"}
	path := filepath.Join(t.TempDir(), name)
	save := gltf.Save
	if filepath.Ext(name) == ".glb" {
		save = gltf.SaveBinary
	}
	if err := save(doc, path); err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
	return path
}

func boundsAccessor(lo, hi [3]float64) *gltf.Accessor {
	return &gltf.Accessor{
		Type:          gltf.AccessorVec3,
		ComponentType: gltf.ComponentFloat,
		Count:         8,
		Min:           lo[:],
		Max:           hi[:],
	}
}

func TestImportGLTFCameraAndBox(t *testing.T) {
	s := math.Sin(math.Pi / 4)
	path := saveDoc(t, "scene.gltf", &gltf.Document{
		Cameras: []*gltf.Camera{{Perspective: &gltf.Perspective{Yfov: math.Pi / 2}}},
		Meshes: []*gltf.Mesh{{
			Name:       "Crate",
			Primitives: []*gltf.Primitive{{Attributes: map[string]int{gltf.POSITION: 0}}},
		}},
		Accessors: []*gltf.Accessor{boundsAccessor([3]float64{-1, -2, -3}, [3]float64{1, 2, 3})},
		Nodes: []*gltf.Node{
			{Name: "cam", Camera: gltf.Index(0), Translation: [3]float64{3, 0, 0}, Rotation: [4]float64{0, s, 0, s}, Scale: [3]float64{1, 1, 1}},
			{Name: "crate", Mesh: gltf.Index(0), Translation: [3]float64{0, 1, 2}, Rotation: identityRotation, Scale: [3]float64{2, 1, 1}},
		},
		Scenes: []*gltf.Scene{{Nodes: []int{0, 1}}},
		Scene:  gltf.Index(0),
	})

	cfg := Default()
	if err := ImportGLTF(path, &cfg); err != nil {
		t.Fatalf("ImportGLTF: %v", err)
	}

	if got := cfg.Camera.Position.Vec(); !got.Approx(math3d.V3(3, 0, 0), tol) {
		t.Errorf("camera position = %v", got)
	}
	if math3d.Abs(cfg.Camera.FOV-90) > tol {
		t.Errorf("fov = %v, want 90", cfg.Camera.FOV)
	}
	// A glTF camera turned 90 degrees about +Y looks down -X.
	cam := cfg.BuildCamera()
	_, dir := cam.RayOriginDirection(0, 0)
	if got := dir.Normalize(); !got.Approx(math3d.V3(-1, 0, 0), tol) {
		t.Errorf("camera forward = %v, want -X", got)
	}

	if cfg.Object.Shape != ShapeBox {
		t.Errorf("shape = %q, want box", cfg.Object.Shape)
	}
	if got := cfg.Object.HalfSize.Vec(); !got.Approx(math3d.V3(2, 2, 3), tol) {
		t.Errorf("half size = %v, want scaled bounds", got)
	}
	if got := cfg.Object.Position.Vec(); !got.Approx(math3d.V3(0, 1, -2), tol) {
		t.Errorf("object position = %v, want mirrored translation", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("imported config invalid: %v", err)
	}
}

func TestImportGLTFRotatedMeshCenter(t *testing.T) {
	s := math.Sin(math.Pi / 4)
	path := saveDoc(t, "rotated.gltf", &gltf.Document{
		Meshes:    []*gltf.Mesh{{Primitives: []*gltf.Primitive{{Attributes: map[string]int{gltf.POSITION: 0}}}}},
		Accessors: []*gltf.Accessor{boundsAccessor([3]float64{-1, -1, -1}, [3]float64{1, 1, 1})},
		Nodes: []*gltf.Node{
			{Mesh: gltf.Index(0), Translation: [3]float64{1, 0, 0}, Rotation: [4]float64{0, 0, s, s}, Scale: [3]float64{1, 1, 1}},
		},
	})

	cfg := Default()
	if err := ImportGLTF(path, &cfg); err != nil {
		t.Fatalf("ImportGLTF: %v", err)
	}
	rc, err := cfg.BuildRaycaster()
	if err != nil {
		t.Fatal(err)
	}
	if got := rc.Transform().TransformPosition(math3d.Zero3()); !got.Approx(math3d.V3(1, 0, 0), tol) {
		t.Errorf("object center = %v, want (1, 0, 0)", got)
	}
}

func TestImportGLTFSphere(t *testing.T) {
	path := saveDoc(t, "ball.gltf", &gltf.Document{
		Meshes: []*gltf.Mesh{{
			Name:       "UVSphere",
			Primitives: []*gltf.Primitive{{Attributes: map[string]int{gltf.POSITION: 0}}},
		}},
		Accessors: []*gltf.Accessor{boundsAccessor([3]float64{-0.5, -0.7, -0.5}, [3]float64{0.5, 0.7, 0.5})},
		Nodes:     []*gltf.Node{{Mesh: gltf.Index(0), Rotation: identityRotation, Scale: [3]float64{1, 1, 1}}},
	})

	cfg := Default()
	cfg.Camera.FOV = 50
	if err := ImportGLTF(path, &cfg); err != nil {
		t.Fatalf("ImportGLTF: %v", err)
	}
	if cfg.Object.Shape != ShapeSphere {
		t.Errorf("shape = %q, want sphere", cfg.Object.Shape)
	}
	if math3d.Abs(cfg.Object.Radius-0.7) > tol {
		t.Errorf("radius = %v, want 0.7", cfg.Object.Radius)
	}
	if cfg.Camera.FOV != 50 {
		t.Errorf("camera changed without a camera node: fov = %v", cfg.Camera.FOV)
	}
}

func TestImportGLBBoundsFromVertices(t *testing.T) {
	points := [][3]float32{{-1, 0, 0}, {2, 3, 0}, {0, -1, 4}}
	data := make([]byte, 0, len(points)*12)
	for _, p := range points {
		for _, v := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v))
		}
	}

	path := saveDoc(t, "tri.glb", &gltf.Document{
		Buffers:     []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{{Buffer: 0, ByteLength: len(data)}},
		Accessors: []*gltf.Accessor{{
			BufferView:    gltf.Index(0),
			Type:          gltf.AccessorVec3,
			ComponentType: gltf.ComponentFloat,
			Count:         len(points),
		}},
		Meshes: []*gltf.Mesh{{Primitives: []*gltf.Primitive{{Attributes: map[string]int{gltf.POSITION: 0}}}}},
		Nodes:  []*gltf.Node{{Mesh: gltf.Index(0), Rotation: identityRotation, Scale: [3]float64{1, 1, 1}}},
	})

	cfg := Default()
	if err := ImportGLTF(path, &cfg); err != nil {
		t.Fatalf("ImportGLTF: %v", err)
	}
	if got := cfg.Object.HalfSize.Vec(); !got.Approx(math3d.V3(1.5, 2, 2), tol) {
		t.Errorf("half size = %v, want (1.5, 2, 2)", got)
	}
}

func TestImportGLTFErrors(t *testing.T) {
	empty := saveDoc(t, "empty.gltf", &gltf.Document{})
	cfg := Default()
	if err := ImportGLTF(empty, &cfg); !errors.Is(err, ErrNothingToImport) {
		t.Errorf("empty document error = %v, want ErrNothingToImport", err)
	}
	if cfg != Default() {
		t.Error("failed import modified the config")
	}

	if err := ImportGLTF(filepath.Join(t.TempDir(), "missing.glb"), &cfg); err == nil {
		t.Error("expected error for missing file")
	}
}
