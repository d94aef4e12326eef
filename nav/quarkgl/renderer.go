package quarkgl

// nearW is the smallest clip-space w accepted. Primitives with a vertex at or
// behind it are dropped instead of clipped.
const nearW = 1e-6

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		ClearColor: RGB(0, 0, 0),
	}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render clears the target and renders a scene into it.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	vp := s.Camera.Projection(aspectOf(w, h)).Mul(s.Camera.View())

	s.eachMesh(func(m *Mesh) {
		if m == nil || !m.Enabled || len(m.Vertices) == 0 {
			return
		}
		mvp := vp.Mul(m.Transform)
		switch m.Primitive {
		case PrimitiveLines:
			r.renderLines(t, w, h, mvp, m)
		default:
			r.renderTriangles(t, w, h, mvp, m, s.Light)
		}
	})
}

// screenPoint is a projected vertex: pixel position plus NDC depth.
type screenPoint struct {
	X, Y int
	Z    float32
}

func project(mvp Mat4, p Vec3, w, h int) (screenPoint, bool) {
	ndc, ok := clipToNDC(mvp.MulV4(p.Point()))
	if !ok {
		return screenPoint{}, false
	}
	x, y := ndcToScreen(ndc, w, h)
	return screenPoint{X: x, Y: y, Z: ndc.Z}, true
}

func (r *Renderer) renderLines(t Target, w, h int, mvp Mat4, m *Mesh) {
	for i := 0; i+1 < len(m.Indices); i += 2 {
		i0, i1 := int(m.Indices[i]), int(m.Indices[i+1])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) {
			continue
		}
		v0, v1 := m.Vertices[i0], m.Vertices[i1]

		p0, ok0 := project(mvp, v0.Pos, w, h)
		p1, ok1 := project(mvp, v1.Pos, w, h)
		if !ok0 || !ok1 {
			continue
		}

		c := m.Material.BaseColor
		if v0.Color != (Color{}) {
			c = v0.Color
		}
		r.drawLine(t, w, p0, p1, c)
	}
}

func (r *Renderer) renderTriangles(t Target, w, h int, mvp Mat4, m *Mesh, light Light) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		p0, ok0 := project(mvp, v0.Pos, w, h)
		p1, ok1 := project(mvp, v1.Pos, w, h)
		p2, ok2 := project(mvp, v2.Pos, w, h)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		base := m.Material.BaseColor
		if light.Mode == LightAmbientDirectional {
			// Object-space normal; transforms here are rotation-free.
			n := triangleNormal(v0.Pos, v1.Pos, v2.Pos)
			base = base.MulScalar(lightIntensity(light, n))
		}

		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, w, p0, p1, base)
			r.drawLine(t, w, p1, p2, base)
			r.drawLine(t, w, p2, p0, base)
		case RenderSolidVertexColor:
			r.fillTriangle(t, w, h, [3]screenPoint{p0, p1, p2}, [3]Color{v0.Color, v1.Color, v2.Color})
		default:
			r.fillTriangle(t, w, h, [3]screenPoint{p0, p1, p2}, [3]Color{base, base, base})
		}
	}
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W <= nearW {
		return ndcPoint{}, false
	}
	invW := 1 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return roundF32(sx), roundF32(sy)
}

func roundF32(v float32) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := l.Dir.Normalize()
	if ld == (Vec3{}) {
		return amb
	}
	d := n.Dot(ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := clampF32(z*0.5+0.5, 0, 1)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

// drawLine is Bresenham; each step advances the major axis once, so depth
// moves by a constant dz per plotted pixel.
func (r *Renderer) drawLine(t Target, w int, a, b screenPoint, c Color) {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	steps := dx
	if -dy > steps {
		steps = -dy
	}
	dz := float32(0)
	if steps > 0 {
		dz = (b.Z - a.Z) / float32(steps)
	}
	z := a.Z

	err := dx + dy
	for {
		if r.depthTest(w, x0, y0, z) {
			t.SetPixel(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
		z += dz
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, p [3]screenPoint, c [3]Color) {
	minX, maxX := min(p[0].X, p[1].X, p[2].X), max(p[0].X, p[1].X, p[2].X)
	minY, maxY := min(p[0].Y, p[1].Y, p[2].Y), max(p[0].Y, p[1].Y, p[2].Y)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
	if area == 0 {
		return
	}
	// Accept either winding.
	sign := 1
	if area < 0 {
		sign = -1
	}
	invArea := 1 / float32(area)
	flat := c[0] == c[1] && c[1] == c[2]

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(p[1].X, p[1].Y, p[2].X, p[2].Y, x, y)
			w1 := edgeFn(p[2].X, p[2].Y, p[0].X, p[0].Y, x, y)
			w2 := edgeFn(p[0].X, p[0].Y, p[1].X, p[1].Y, x, y)
			if w0*sign < 0 || w1*sign < 0 || w2*sign < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			if !r.depthTest(w, x, y, a0*p[0].Z+a1*p[1].Z+a2*p[2].Z) {
				continue
			}
			if flat {
				t.SetPixel(x, y, c[0])
				continue
			}
			t.SetPixel(x, y, Color{
				R: uint8(clampF32(a0*float32(c[0].R)+a1*float32(c[1].R)+a2*float32(c[2].R), 0, 255)),
				G: uint8(clampF32(a0*float32(c[0].G)+a1*float32(c[1].G)+a2*float32(c[2].G), 0, 255)),
				B: uint8(clampF32(a0*float32(c[0].B)+a1*float32(c[1].B)+a2*float32(c[2].B), 0, 255)),
				A: 0xFF,
			})
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
