package asciiart

import (
	"fmt"
	"image"
	"image/draw"
)

const (
	// MaxDimension is the largest width or height, in pixels or characters, accepted anywhere in the pipeline.
	MaxDimension = 10_000
	// MaxPixels is the largest total pixel (or character) count accepted for a surface or grid.
	MaxPixels = 25_000_000
	// MaxColoredCells is the largest grid accepted when colored output is requested. Colored HTML is far heavier per cell.
	MaxColoredCells = 1_000_000

	bytesPerPixel = 4
)

/*
PixelBuffer is a raw, non-premultiplied RGBA pixel buffer. Data holds Width*Height*4 bytes in row-major RGBA order.

A PixelBuffer passed to ConvertImage is treated as already sized: it is never re-sampled, and every pixel becomes one character.
Use Image() to wrap the buffer as an image.Image if you want the Generator to re-sample it instead.
*/
type PixelBuffer struct {
	Width  int
	Height int
	Data   []byte
}

// NewPixelBuffer allocates a zeroed (fully transparent) buffer.
func NewPixelBuffer(width, height int) PixelBuffer {
	return PixelBuffer{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height*bytesPerPixel),
	}
}

// PixelBufferFromImage copies any image into a new PixelBuffer, converting to non-premultiplied RGBA.
func PixelBufferFromImage(img image.Image) PixelBuffer {
	bounds := img.Bounds()

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == bounds.Dx()*bytesPerPixel {
		data := make([]byte, bounds.Dx()*bounds.Dy()*bytesPerPixel)
		copy(data, nrgba.Pix)
		return PixelBuffer{Width: bounds.Dx(), Height: bounds.Dy(), Data: data}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)

	return PixelBuffer{Width: bounds.Dx(), Height: bounds.Dy(), Data: dst.Pix}
}

// Validate checks that the buffer is non-empty and that its length matches its declared dimensions.
func (p PixelBuffer) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: pixel buffer has zero dimension (%dx%d)", ErrInvalidSource, p.Width, p.Height)
	}

	if want := p.Width * p.Height * bytesPerPixel; len(p.Data) != want {
		return fmt.Errorf("%w: pixel buffer is %d bytes, expected %d for %dx%d", ErrInvalidSource, len(p.Data), want, p.Width, p.Height)
	}

	return nil
}

// At returns the RGBA channels at (x, y). Out-of-bounds coordinates report ok == false.
func (p PixelBuffer) At(x, y int) (r, g, b, a uint8, ok bool) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0, 0, 0, 0, false
	}

	idx := (y*p.Width + x) * bytesPerPixel
	if idx+3 >= len(p.Data) {
		return 0, 0, 0, 0, false
	}

	return p.Data[idx], p.Data[idx+1], p.Data[idx+2], p.Data[idx+3], true
}

// Set writes the RGBA channels at (x, y). Out-of-bounds writes are ignored.
func (p PixelBuffer) Set(x, y int, c CellColor) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}

	idx := (y*p.Width + x) * bytesPerPixel
	if idx+3 >= len(p.Data) {
		return
	}

	p.Data[idx] = c.R
	p.Data[idx+1] = c.G
	p.Data[idx+2] = c.B
	p.Data[idx+3] = c.A
}

/*
Image returns an *image.NRGBA view that shares memory with the buffer. Passing the view to ConvertImage (instead of the
buffer itself) makes the Generator re-sample it to the configured width/height.
*/
func (p PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.Data,
		Stride: p.Width * bytesPerPixel,
		Rect:   image.Rect(0, 0, p.Width, p.Height),
	}
}

// checkLimits enforces MaxDimension and MaxPixels for a surface of the given size.
func checkLimits(width, height int) error {
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: dimensions %dx%d exceed maximum of %d per side", ErrResourceLimit, width, height, MaxDimension)
	}

	if width*height > MaxPixels {
		return fmt.Errorf("%w: %d pixels exceeds maximum of %d", ErrResourceLimit, width*height, MaxPixels)
	}

	return nil
}
