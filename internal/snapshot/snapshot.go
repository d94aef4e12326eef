// Package snapshot writes the navigator framebuffer to an image file.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"spherenav/hal"
)

// ErrFormat is returned for framebuffers that are not RGB565.
var ErrFormat = errors.New("snapshot: unsupported pixel format")

// Format selects the output encoding.
type Format uint8

const (
	WebP Format = iota
	PNG
)

// FormatFor picks the encoding from the file extension. Anything other than
// .png is written as lossless WebP.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return PNG
	}
	return WebP
}

// Image converts fb into an RGBA image scaled by an integer factor with
// nearest-neighbour sampling, so pixel edges stay crisp.
func Image(fb hal.Framebuffer, scale int) (*image.RGBA, error) {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrFormat
	}
	w, h := fb.Width(), fb.Height()
	src := &image.RGBA{
		Pix:    hal.RGBAFromRGB565(packRows(fb)),
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
	if scale <= 1 {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	default:
		return nativewebp.Encode(w, img, nil)
	}
}

// Write renders fb into path. The parent directory is created if needed.
func Write(path string, fb hal.Framebuffer, scale int) error {
	img, err := Image(fb, scale)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := Encode(f, img, FormatFor(path)); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// packRows drops any stride padding so rows are exactly width*2 bytes.
func packRows(fb hal.Framebuffer) []byte {
	w, h, stride := fb.Width(), fb.Height(), fb.StrideBytes()
	buf := fb.Buffer()
	if stride == w*2 {
		return buf[:min(len(buf), w*h*2)]
	}
	out := make([]byte, w*h*2)
	for y := 0; y < h; y++ {
		off := y * stride
		if off+w*2 > len(buf) {
			break
		}
		copy(out[y*w*2:], buf[off:off+w*2])
	}
	return out
}
