package quarkgl

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup. It only affects triangle meshes.
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // direction *towards* the scene
	DirAmount Scalar // 0..1
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position Vec3
	Target   Vec3
	Up       Vec3

	// Perspective.
	FOVYRad Scalar

	// Orthographic (half-height).
	OrthoSize Scalar

	Near Scalar
	Far  Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		right := size * aspect
		return Ortho(-right, right, -size, size, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = 1
		}
		return Perspective(fov, aspect, c.Near, c.Far)
	}
}

// Primitive selects how a mesh's indices are assembled.
type Primitive uint8

const (
	PrimitiveTriangles Primitive = iota // index triples
	PrimitiveLines                      // index pairs
)

// Vertex is a mesh vertex. A non-zero Color overrides the material color
// for line segments and vertex-colored triangles.
type Vertex struct {
	Pos   Vec3
	Color Color
}

// Mesh is an indexed triangle or line list with an object transform.
type Mesh struct {
	Enabled bool

	Primitive Primitive
	Vertices  []Vertex
	Indices   []uint16

	Transform Mat4
	Material  Material
}

// Scene is a collection of objects to render, drawn in id order.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Position:  V3(0, 0, 3),
			Target:    V3(0, 0, 0),
			Up:        V3(0, 1, 0),
			FOVYRad:   1,
			Near:      0.05,
			Far:       100,
			OrthoSize: 1,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.25,
			Dir:       V3(1, 1, 1).Normalize(),
			DirAmount: 0.75,
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Identity()
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if !s.has(id) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if !s.has(id) {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if !s.has(id) {
		return
	}
	s.meshes[id].Transform = m
}

// UpdateMeshVertices replaces vertex data in place. The index list is kept,
// so the new slice must have the same length as the old one.
func (s *Scene) UpdateMeshVertices(id int, verts []Vertex) bool {
	if !s.has(id) || len(verts) != len(s.meshes[id].Vertices) {
		return false
	}
	copy(s.meshes[id].Vertices, verts)
	return true
}

// Mesh returns a copy of the mesh header for id.
func (s *Scene) Mesh(id int) (Mesh, bool) {
	if !s.has(id) {
		return Mesh{}, false
	}
	return s.meshes[id], true
}

// Project maps a world-space point to pixel coordinates on a w×h target.
// ok is false when the point is behind the camera.
func (s *Scene) Project(p Vec3, w, h int) (x, y int, ok bool) {
	if s == nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	vp := s.Camera.Projection(aspectOf(w, h)).Mul(s.Camera.View())
	ndc, ok := clipToNDC(vp.MulV4(p.Point()))
	if !ok {
		return 0, 0, false
	}
	x, y = ndcToScreen(ndc, w, h)
	return x, y, true
}

func (s *Scene) has(id int) bool {
	return s != nil && id >= 0 && id < len(s.meshes) && s.alive[id]
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}

func aspectOf(w, h int) Scalar {
	if h == 0 {
		return 1
	}
	return Scalar(w) / Scalar(h)
}
