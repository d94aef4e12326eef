package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"spherenav/hal"
	"spherenav/nav/orient"
)

const (
	hudX          = 8
	hudY          = 8
	hudLineHeight = 11
)

var hudFont tinyfont.Fonter = &proggy.TinySZ8pt7b

var hudHelp = [...]string{
	"Arrows: move   Shift: fine step   R: reset   Esc/Q: quit",
	"0: free   1..6: hemisphere (+X,-X,+Y,-Y,+Z,-Z)",
	"WASD: orbit   +/-: zoom   M: marker   O: ortho   P: snapshot",
}

// hudLines renders the state readout shown under the title and help.
func hudLines(st orient.State) []string {
	u := st.UnitVector()
	theta, phi := st.Degrees()
	return []string{
		"Hemisphere: " + st.Hemisphere().String(),
		fmt.Sprintf("Unit direction: (%+.3f, %+.3f, %+.3f)", u.X, u.Y, u.Z),
		fmt.Sprintf("Theta (deg): %.2f   Phi (deg): %.2f", theta, phi),
	}
}

func drawHUD(fb hal.Framebuffer, st orient.State, fg color.RGBA) {
	d := &fbDisplayer{fb: fb}
	y := int16(hudY)
	line := func(s string, c color.RGBA) {
		y += hudLineHeight
		tinyfont.WriteLine(d, hudFont, hudX, y, s, c)
	}

	line("Sphere Navigator", fg)
	dim := color.RGBA{R: fg.R / 3 * 2, G: fg.G / 3 * 2, B: fg.B / 3 * 2, A: 0xFF}
	for _, s := range hudHelp {
		line(s, dim)
	}
	y += hudLineHeight / 2
	for _, s := range hudLines(st) {
		line(s, fg)
	}
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

// fbDisplayer lets tinyfont draw straight into an RGB565 framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
