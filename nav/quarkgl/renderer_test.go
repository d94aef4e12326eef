package quarkgl

import "testing"

func newTestTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func lineMesh(a, b Vec3, c Color) Mesh {
	return Mesh{
		Primitive: PrimitiveLines,
		Vertices:  []Vertex{{Pos: a, Color: c}, {Pos: b, Color: c}},
		Indices:   []uint16{0, 1},
	}
}

func countColor(t *RGB565Target, c Color) int {
	want := RGB565(c)
	n := 0
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if t.At(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestProjectCenter(t *testing.T) {
	s := CreateScene(1)
	s.Camera.Position = V3(0, 0, 8)
	x, y, ok := s.Project(V3(0, 0, 0), 101, 51)
	if !ok || x != 50 || y != 25 {
		t.Fatalf("Project(origin) = (%d, %d, %v), want (50, 25, true)", x, y, ok)
	}

	// +X is right, +Y is up on screen.
	xr, _, _ := s.Project(V3(1, 0, 0), 101, 51)
	_, yu, _ := s.Project(V3(0, 1, 0), 101, 51)
	if xr <= 50 || yu >= 25 {
		t.Fatalf("Project axes = x %d, y %d; want right of and above center", xr, yu)
	}

	if _, _, ok := s.Project(V3(0, 0, 9), 101, 51); ok {
		t.Fatal("Project(behind camera) ok = true, want false")
	}
}

func TestRenderLine(t *testing.T) {
	tgt := newTestTarget(64, 64)
	s := CreateScene(1)
	s.Camera.Position = V3(0, 0, 8)
	red := RGB(0xF8, 0, 0)
	s.AddMesh(lineMesh(V3(-1, 0, 0), V3(1, 0, 0), red))

	r := NewRenderer(64, 64, true)
	r.Render(tgt, s)

	x0, y0, _ := s.Project(V3(-1, 0, 0), 64, 64)
	x1, _, _ := s.Project(V3(1, 0, 0), 64, 64)
	if got := countColor(tgt, red); got != x1-x0+1 {
		t.Fatalf("line pixels = %d, want %d", got, x1-x0+1)
	}
	if tgt.At(x0, y0) != RGB565(red) {
		t.Fatalf("pixel at line start (%d, %d) not drawn", x0, y0)
	}
}

func TestRenderDropsLinesBehindCamera(t *testing.T) {
	tgt := newTestTarget(32, 32)
	s := CreateScene(1)
	s.Camera.Position = V3(0, 0, 8)
	green := RGB(0, 0xFC, 0)
	s.AddMesh(lineMesh(V3(0, 0, 0), V3(0, 0, 20), green))

	NewRenderer(32, 32, false).Render(tgt, s)
	if got := countColor(tgt, green); got != 0 {
		t.Fatalf("pixels drawn for line crossing the camera = %d, want 0", got)
	}
}

func TestRenderDepthOcclusion(t *testing.T) {
	tgt := newTestTarget(64, 64)
	s := CreateScene(2)
	s.Camera.Position = V3(0, 0, 8)
	s.Light.Mode = LightOff

	blue := RGB(0, 0, 0xF8)
	quad := Mesh{
		Vertices: []Vertex{
			{Pos: V3(-1, -1, 1)}, {Pos: V3(1, -1, 1)}, {Pos: V3(1, 1, 1)}, {Pos: V3(-1, 1, 1)},
		},
		Indices:  []uint16{0, 1, 2, 0, 2, 3},
		Material: Material{BaseColor: blue},
	}
	s.AddMesh(quad)
	red := RGB(0xF8, 0, 0)
	// Drawn after the quad but behind it.
	s.AddMesh(lineMesh(V3(-0.5, 0, -1), V3(0.5, 0, -1), red))

	r := NewRenderer(64, 64, true)
	r.Render(tgt, s)

	if countColor(tgt, blue) == 0 {
		t.Fatal("quad not rasterized")
	}
	if got := countColor(tgt, red); got != 0 {
		t.Fatalf("occluded line pixels = %d, want 0", got)
	}

	r.EnableDepth(false, 0, 0)
	r.Render(tgt, s)
	if countColor(tgt, red) == 0 {
		t.Fatal("line missing with depth disabled")
	}
}

func TestRenderWireframeMode(t *testing.T) {
	tgt := newTestTarget(64, 64)
	s := CreateScene(1)
	s.Camera.Position = V3(0, 0, 8)
	s.Light.Mode = LightOff
	white := RGB(0xFF, 0xFF, 0xFF)
	s.AddMesh(Mesh{
		Vertices: []Vertex{{Pos: V3(-1, -1, 0)}, {Pos: V3(1, -1, 0)}, {Pos: V3(0, 1, 0)}},
		Indices:  []uint16{0, 1, 2},
		Material: Material{BaseColor: white},
	})

	r := NewRenderer(64, 64, true)
	r.Render(tgt, s)
	solid := countColor(tgt, white)

	r.Mode = RenderWireframe
	r.Render(tgt, s)
	wire := countColor(tgt, white)
	if wire == 0 || wire >= solid {
		t.Fatalf("wireframe pixels = %d, solid = %d; want 0 < wire < solid", wire, solid)
	}

	cx, cy, _ := s.Project(V3(0, -0.2, 0), 64, 64)
	if tgt.At(cx, cy) == RGB565(white) {
		t.Fatal("wireframe filled the triangle interior")
	}
}

func TestSceneMeshLifecycle(t *testing.T) {
	s := CreateScene(1)
	id := s.AddMesh(lineMesh(V3(0, 0, 0), V3(1, 0, 0), RGB(1, 2, 3)))
	if id != 0 {
		t.Fatalf("AddMesh() = %d, want 0", id)
	}
	if got := s.AddMesh(Mesh{}); got != -1 {
		t.Fatalf("AddMesh() on full scene = %d, want -1", got)
	}

	if s.UpdateMeshVertices(id, []Vertex{{}}) {
		t.Fatal("UpdateMeshVertices() accepted a length change")
	}
	if !s.UpdateMeshVertices(id, []Vertex{{Pos: V3(0, 1, 0)}, {Pos: V3(0, 2, 0)}}) {
		t.Fatal("UpdateMeshVertices() rejected same-length update")
	}
	m, ok := s.Mesh(id)
	if !ok || m.Vertices[1].Pos != V3(0, 2, 0) {
		t.Fatalf("Mesh(%d) = %+v, %v", id, m, ok)
	}
	if m.Transform != Identity() {
		t.Fatalf("default Transform = %v, want identity", m.Transform)
	}

	s.SetMeshEnabled(id, false)
	if m, _ := s.Mesh(id); m.Enabled {
		t.Fatal("SetMeshEnabled(false) had no effect")
	}
	s.RemoveMesh(id)
	if _, ok := s.Mesh(id); ok {
		t.Fatal("Mesh() found a removed mesh")
	}
}
