package app

import (
	"math"

	"spherenav/internal/config"
	"spherenav/nav/orient"
	"spherenav/nav/quarkgl"
)

const (
	markerStacks = 6
	markerSlices = 8
)

// sceneIDs are the mesh ids in draw order.
type sceneIDs struct {
	wire   int
	axes   int
	radius int
	marker int
}

func rgb(c config.RGB) quarkgl.Color { return quarkgl.RGB(c.R, c.G, c.B) }

// buildScene creates the navigator scene: wire sphere, axes, the radius
// line and the marker, in that order.
func buildScene(cfg config.Config) (*quarkgl.Scene, sceneIDs) {
	s := quarkgl.CreateScene(4)
	s.Camera.FOVYRad = quarkgl.FOVYFromFocal(quarkgl.Scalar(cfg.Camera.Focal), quarkgl.Scalar(cfg.Window.Height))
	s.Camera.Near = 0.05
	s.Camera.Far = 100
	if cfg.Camera.Orthographic {
		s.Camera.Type = quarkgl.CameraOrtho
	}

	s.Light.Mode = quarkgl.LightAmbientDirectional
	s.Light.Ambient = 0.35
	s.Light.Dir = quarkgl.V3(-0.4, -0.6, -0.7).Normalize()
	s.Light.DirAmount = 0.65

	var ids sceneIDs
	sp := cfg.Sphere
	ids.wire = s.AddMesh(wireSphereMesh(sp.Radius, sp.LatLines, sp.LonLines, sp.CircleRes, rgb(cfg.Colors.Wire)))
	ids.axes = s.AddMesh(axesMesh(sp.AxisLen, rgb(cfg.Colors.AxisX), rgb(cfg.Colors.AxisY), rgb(cfg.Colors.AxisZ)))

	point := rgb(cfg.Colors.Point)
	ids.radius = s.AddMesh(quarkgl.Mesh{
		Primitive: quarkgl.PrimitiveLines,
		Vertices:  []quarkgl.Vertex{{Color: point}, {Color: point}},
		Indices:   []uint16{0, 1},
	})

	marker := markerMesh(markerStacks, markerSlices)
	marker.Material.BaseColor = point
	ids.marker = s.AddMesh(marker)
	return s, ids
}

// updatePoint moves the radius line and the marker to the state's
// direction scaled to the sphere radius.
func updatePoint(s *quarkgl.Scene, ids sceneIDs, st orient.State, radius, markerSize float64) quarkgl.Vec3 {
	u := st.UnitVector()
	tip := quarkgl.V3f64(u.X*radius, u.Y*radius, u.Z*radius)

	m, ok := s.Mesh(ids.radius)
	if ok {
		verts := [2]quarkgl.Vertex{m.Vertices[0], m.Vertices[1]}
		verts[0].Pos = quarkgl.Vec3{}
		verts[1].Pos = tip
		s.UpdateMeshVertices(ids.radius, verts[:])
	}
	s.UpdateMeshTransform(ids.marker, quarkgl.Translate(tip).Mul(quarkgl.Scale(quarkgl.Scalar(markerSize))))
	return tip
}

func spherePoint(theta, phi, r float64) quarkgl.Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return quarkgl.V3f64(r*st*cp, r*st*sp, r*ct)
}

// wireSphereMesh builds lat-1 closed latitude circles and lon meridians
// running pole to pole, res segments each.
func wireSphereMesh(radius float64, lat, lon, res int, c quarkgl.Color) quarkgl.Mesh {
	m := quarkgl.Mesh{
		Primitive: quarkgl.PrimitiveLines,
		Vertices:  make([]quarkgl.Vertex, 0, (lat-1)*res+lon*(res+1)),
		Material:  quarkgl.Material{BaseColor: c},
	}

	for i := 1; i < lat; i++ {
		theta := math.Pi * float64(i) / float64(lat)
		base := uint16(len(m.Vertices))
		for j := 0; j < res; j++ {
			phi := 2 * math.Pi * float64(j) / float64(res)
			m.Vertices = append(m.Vertices, quarkgl.Vertex{Pos: spherePoint(theta, phi, radius)})
			m.Indices = append(m.Indices, base+uint16(j), base+uint16((j+1)%res))
		}
	}

	for i := 0; i < lon; i++ {
		phi := 2 * math.Pi * float64(i) / float64(lon)
		base := uint16(len(m.Vertices))
		for j := 0; j <= res; j++ {
			theta := math.Pi * float64(j) / float64(res)
			m.Vertices = append(m.Vertices, quarkgl.Vertex{Pos: spherePoint(theta, phi, radius)})
			if j < res {
				m.Indices = append(m.Indices, base+uint16(j), base+uint16(j+1))
			}
		}
	}
	return m
}

func axesMesh(length float64, cx, cy, cz quarkgl.Color) quarkgl.Mesh {
	l := quarkgl.Scalar(length)
	return quarkgl.Mesh{
		Primitive: quarkgl.PrimitiveLines,
		Vertices: []quarkgl.Vertex{
			{Pos: quarkgl.V3(-l, 0, 0), Color: cx}, {Pos: quarkgl.V3(l, 0, 0), Color: cx},
			{Pos: quarkgl.V3(0, -l, 0), Color: cy}, {Pos: quarkgl.V3(0, l, 0), Color: cy},
			{Pos: quarkgl.V3(0, 0, -l), Color: cz}, {Pos: quarkgl.V3(0, 0, l), Color: cz},
		},
		Indices: []uint16{0, 1, 2, 3, 4, 5},
	}
}

// markerMesh is a unit UV sphere with outward-facing triangles.
func markerMesh(stacks, slices int) quarkgl.Mesh {
	var m quarkgl.Mesh
	for i := 0; i <= stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			phi := 2 * math.Pi * float64(j) / float64(slices)
			m.Vertices = append(m.Vertices, quarkgl.Vertex{Pos: spherePoint(theta, phi, 1)})
		}
	}

	row := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i*row + j)
			b := a + uint16(row)
			c := a + 1
			d := b + 1
			m.Indices = append(m.Indices, a, b, c, c, b, d)
		}
	}
	return m
}
