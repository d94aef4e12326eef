package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects how triangle meshes are rasterized. Line meshes are
// always drawn as lines.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
	RenderSolidVertexColor
)

func (m RenderMode) String() string {
	switch m {
	case RenderWireframe:
		return "wireframe"
	case RenderSolidFlat:
		return "solid"
	case RenderSolidVertexColor:
		return "vertex-color"
	default:
		return "unknown"
	}
}
