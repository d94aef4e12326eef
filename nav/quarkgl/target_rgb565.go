package quarkgl

// RGB565Target renders into a little-endian RGB565 buffer.
//
// Callers provide the backing buffer and layout (stride); the target owns nothing.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c Color) {
	if !t.valid() {
		return
	}
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			t.put(x, y, RGB565(c))
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	t.put(x, y, RGB565(c))
}

// At returns the stored pixel as RGB565; out-of-range reads return 0.
func (t *RGB565Target) At(x, y int) uint16 {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return 0
	}
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
}

func (t *RGB565Target) put(x, y int, p uint16) {
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// RGB565 packs c into rrrrrggggggbbbbb.
func RGB565(c Color) uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}
