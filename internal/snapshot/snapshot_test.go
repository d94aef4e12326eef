package snapshot

import (
	"errors"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"

	"spherenav/hal"
)

func testFramebuffer(t *testing.T) hal.Framebuffer {
	t.Helper()
	h := hal.New(hal.HostConfig{Width: 4, Height: 3, Log: io.Discard})
	fb := h.Display().Framebuffer()
	fb.ClearRGB(255, 0, 0)
	// Mark the top-left pixel white.
	buf := fb.Buffer()
	buf[0], buf[1] = 0xFF, 0xFF
	return fb
}

func TestImageScales(t *testing.T) {
	img, err := Image(testFramebuffer(t), 3)
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	if got := img.Bounds().Size(); got.X != 12 || got.Y != 9 {
		t.Fatalf("Image() size = %v, want 12x9", got)
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	if got := img.RGBAAt(2, 2); got != white {
		t.Fatalf("RGBAAt(2, 2) = %v, want white", got)
	}
	if got := img.RGBAAt(3, 0); got != red {
		t.Fatalf("RGBAAt(3, 0) = %v, want red", got)
	}
}

func TestWriteWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nav.webp")
	if err := Write(path, testFramebuffer(t), 2); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := nativewebp.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got.X != 8 || got.Y != 6 {
		t.Fatalf("decoded size = %v, want 8x6", got)
	}
	r, g, b, _ := img.At(7, 5).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Fatalf("decoded pixel = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.PNG")
	if FormatFor(path) != PNG {
		t.Fatalf("FormatFor(%q) = WebP, want PNG", path)
	}
	if err := Write(path, testFramebuffer(t), 1); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig() error = %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Fatalf("png size = %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
}

func TestImageRejectsNil(t *testing.T) {
	if _, err := Image(nil, 1); !errors.Is(err, ErrFormat) {
		t.Fatalf("Image(nil) error = %v, want ErrFormat", err)
	}
}
