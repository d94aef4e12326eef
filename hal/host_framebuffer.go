//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is double-buffered: the navigator draws into back and
// Present publishes it to front, which the window reads.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	back   []byte
	front  []byte
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		back:   make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.back }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.frames++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.back); i += 2 {
		f.back[i] = lo
		f.back[i+1] = hi
	}
}

// snapshotRGBA expands the last presented frame into dst (4 bytes per pixel).
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	expandRGB565(dst, f.front)
}

func (f *hostFramebuffer) presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}
