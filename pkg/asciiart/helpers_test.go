package asciiart

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"time"
)

// --- helpers ---------------------------------------------------------------

// solidBuffer creates a PixelBuffer filled with one color.
func solidBuffer(w, h int, c CellColor) PixelBuffer {
	buf := NewPixelBuffer(w, h)
	for y := range h {
		for x := range w {
			buf.Set(x, y, c)
		}
	}
	return buf
}

// solidImage creates a solid-colored NRGBA test image.
func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// gradientImage creates a horizontal grayscale gradient, black on the left.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			v := uint8(x * 255 / max(w-1, 1))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

var (
	black = CellColor{R: 0, G: 0, B: 0, A: 255}
	white = CellColor{R: 255, G: 255, B: 255, A: 255}
)

// fakeClock advances by step on every call to Now.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// fakeFrame is a FrameSource returning a fixed frame or error.
type fakeFrame struct {
	img image.Image
	err error
}

func (f fakeFrame) CurrentFrame() (image.Image, error) { return f.img, f.err }

// fakeDrawable is a Drawable returning a fixed snapshot or error.
type fakeDrawable struct {
	img image.Image
	err error
}

func (d fakeDrawable) Snapshot() (image.Image, error) { return d.img, d.err }

// recordingProvider wraps a ScalingProvider and remembers the surface sizes it was asked for.
type recordingProvider struct {
	inner   SurfaceProvider
	sizes   []image.Point
	readErr error
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{inner: NewScalingProvider(InterpolationNearest)}
}

func (p *recordingProvider) NewSurface(w, h int) (Surface, error) {
	p.sizes = append(p.sizes, image.Pt(w, h))
	s, err := p.inner.NewSurface(w, h)
	if err != nil {
		return nil, err
	}
	return &failingSurface{Surface: s, readErr: p.readErr}, nil
}

type failingSurface struct {
	Surface
	readErr error
}

func (s *failingSurface) ReadPixels() (PixelBuffer, error) {
	if s.readErr != nil {
		return PixelBuffer{}, s.readErr
	}
	return s.Surface.ReadPixels()
}

// stubRenderer is a TextRenderer returning a fixed buffer.
type stubRenderer struct {
	buf   PixelBuffer
	err   error
	calls int
}

func (r *stubRenderer) Render(string, TextOptions) (PixelBuffer, error) {
	r.calls++
	return r.buf, r.err
}

var errTainted = errors.New("tainted canvas")
