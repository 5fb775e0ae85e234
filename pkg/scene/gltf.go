package scene

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/retrocube/pkg/math3d"
)

// ErrNothingToImport is returned when a glTF document has neither a camera
// node nor a mesh node.
var ErrNothingToImport = errors.New("no camera or mesh nodes")

// ImportGLTF overrides the camera and object of cfg from a .gltf or .glb file.
//
// The first node with a camera sets the camera pose and vertical field of
// view. The first node with a mesh sets the object pose and the box half size
// from the mesh bounds. Meshes named like "sphere" become spheres. glTF is
// right-handed, so Z is mirrored on the way in.
func ImportGLTF(path string, cfg *Config) error {
	doc, err := gltf.Open(path)
	if err != nil {
		return fmt.Errorf("open gltf: %w", err)
	}

	camNode, meshNode := findNodes(doc)
	if camNode == nil && meshNode == nil {
		return fmt.Errorf("gltf %s: %w", path, ErrNothingToImport)
	}

	if camNode != nil {
		pos, rot := nodePose(camNode)
		cfg.Camera.Position = FromVec(pos)
		cfg.Camera.Rotation = FromVec(degrees(rot))
		if cam := doc.Cameras[*camNode.Camera]; cam.Perspective != nil && cam.Perspective.Yfov > 0 {
			cfg.Camera.FOV = math3d.RadToDeg(float32(cam.Perspective.Yfov))
		}
	}

	if meshNode != nil {
		mesh := doc.Meshes[*meshNode.Mesh]
		half, err := meshHalfExtents(doc, mesh)
		if err != nil {
			return fmt.Errorf("mesh %q: %w", mesh.Name, err)
		}
		half = half.Mul(nodeScale(meshNode)).Abs()

		pos, rot := nodePose(meshNode)
		// Object transforms translate before rotating, so the stored position
		// is the world center expressed in the rotated frame.
		cfg.Object.Position = FromVec(math3d.InverseEulerRotate(pos, rot))
		cfg.Object.Rotation = FromVec(degrees(rot))
		cfg.Object.HalfSize = FromVec(half)
		if strings.Contains(strings.ToLower(mesh.Name), ShapeSphere) {
			cfg.Object.Shape = ShapeSphere
			cfg.Object.Radius = max(half.X, half.Y, half.Z)
		} else {
			cfg.Object.Shape = ShapeBox
		}
	}
	return nil
}

// findNodes returns the first camera node and the first mesh node, searching
// the default scene's root nodes before all other nodes.
func findNodes(doc *gltf.Document) (camNode, meshNode *gltf.Node) {
	var order []int
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		order = append(order, doc.Scenes[*doc.Scene].Nodes...)
	}
	for i := range doc.Nodes {
		order = append(order, i)
	}

	for _, i := range order {
		if i < 0 || i >= len(doc.Nodes) {
			continue
		}
		n := doc.Nodes[i]
		if camNode == nil && n.Camera != nil && *n.Camera < len(doc.Cameras) {
			camNode = n
		}
		if meshNode == nil && n.Mesh != nil && *n.Mesh < len(doc.Meshes) {
			meshNode = n
		}
	}
	return camNode, meshNode
}

// nodePose returns a node's translation and Euler rotation (radians) in
// left-handed coordinates.
func nodePose(n *gltf.Node) (pos, rot math3d.Vec3) {
	t := n.Translation
	pos = math3d.V3(float32(t[0]), float32(t[1]), float32(-t[2]))

	q := n.Rotation
	if q == [4]float64{} {
		return pos, math3d.Zero3()
	}
	rot = math3d.EulerFromQuaternion(-q[0], -q[1], q[2], q[3])
	return pos, rot
}

func nodeScale(n *gltf.Node) math3d.Vec3 {
	s := n.Scale
	if s == [3]float64{} {
		return math3d.One3()
	}
	return math3d.V3(float32(s[0]), float32(s[1]), float32(s[2]))
}

func degrees(r math3d.Vec3) math3d.Vec3 {
	return math3d.V3(math3d.RadToDeg(r.X), math3d.RadToDeg(r.Y), math3d.RadToDeg(r.Z))
}

// meshHalfExtents returns half the size of the bounding box of every
// primitive's POSITION attribute.
func meshHalfExtents(doc *gltf.Document, mesh *gltf.Mesh) (math3d.Vec3, error) {
	lo := math3d.V3(math.MaxFloat32, math.MaxFloat32, math.MaxFloat32)
	hi := lo.Negate()
	found := false

	for _, prim := range mesh.Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok || posIdx >= len(doc.Accessors) {
			continue
		}
		pmin, pmax, err := accessorBounds(doc, doc.Accessors[posIdx])
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("read positions: %w", err)
		}
		for i := range 3 {
			lo = lo.WithComponent(i, min(lo.Component(i), pmin.Component(i)))
			hi = hi.WithComponent(i, max(hi.Component(i), pmax.Component(i)))
		}
		found = true
	}
	if !found {
		return math3d.Vec3{}, errors.New("no POSITION attribute")
	}
	return hi.Sub(lo).Scale(0.5), nil
}

// accessorBounds returns the per-axis bounds of a VEC3 accessor, from its
// min/max properties when present and from the vertex data otherwise.
func accessorBounds(doc *gltf.Document, accessor *gltf.Accessor) (lo, hi math3d.Vec3, err error) {
	if accessor.Type != gltf.AccessorVec3 {
		return lo, hi, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if len(accessor.Min) == 3 && len(accessor.Max) == 3 {
		lo = math3d.V3(float32(accessor.Min[0]), float32(accessor.Min[1]), float32(accessor.Min[2]))
		hi = math3d.V3(float32(accessor.Max[0]), float32(accessor.Max[1]), float32(accessor.Max[2]))
		return lo, hi, nil
	}

	points, err := readVec3Accessor(doc, accessor)
	if err != nil {
		return lo, hi, err
	}
	if len(points) == 0 {
		return lo, hi, errors.New("empty accessor")
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo = math3d.V3(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
		hi = math3d.V3(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
	}
	return lo, hi, nil
}

// readVec3Accessor reads float VEC3 data from an embedded buffer.
func readVec3Accessor(doc *gltf.Document, accessor *gltf.Accessor) ([]math3d.Vec3, error) {
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}
	if accessor.BufferView == nil || *accessor.BufferView >= len(doc.BufferViews) {
		return nil, errors.New("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	data := doc.Buffers[bufferView.Buffer].Data
	if data == nil {
		return nil, errors.New("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}
	if accessor.Count > 0 && start+(accessor.Count-1)*stride+12 > len(data) {
		return nil, errors.New("accessor exceeds buffer")
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range accessor.Count {
		off := start + i*stride
		result[i] = math3d.V3(
			math.Float32frombits(binary.LittleEndian.Uint32(data[off:])),
			math.Float32frombits(binary.LittleEndian.Uint32(data[off+4:])),
			math.Float32frombits(binary.LittleEndian.Uint32(data[off+8:])),
		)
	}
	return result, nil
}
