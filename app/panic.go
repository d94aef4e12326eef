package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"spherenav/hal"
)

// guard turns a panic inside step into an error. The stack goes to the log
// and a white crash screen is presented so a windowed run shows what broke.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			reportPanic(h, v, stack)
			err = fmt.Errorf("nav: panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{"Navigator panic:", fmt.Sprintf("panic: %v", v), "stack:"}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("nav: panic: %v", v))
		for _, line := range lines[3:] {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	_, outboxWidth := tinyfont.LineWidth(hudFont, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}

	d := &fbDisplayer{fb: fb}
	fg := color.RGBA{A: 255}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(hudLineHeight)
	maxH := int16(fb.Height())
	for _, line := range lines {
		for len(line) > 0 && y <= maxH {
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, hudFont, 0, y, chunk, fg)
			y += hudLineHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
