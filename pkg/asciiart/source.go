package asciiart

import (
	"errors"
	"fmt"
	"image"
)

/*
ImageSource is anything the Generator can convert. It must hold one of:

	- PixelBuffer or *PixelBuffer: raw pixels, used as-is (never re-sampled)
	- image.Image: an already-decoded bitmap
	- FrameSource: a live video feed, sampled once per call
	- Drawable: an existing drawing surface

Anything else fails with ErrInvalidSource.
*/
type ImageSource any

// FrameSource is a live video handle. CurrentFrame returns the frame to convert.
type FrameSource interface {
	CurrentFrame() (image.Image, error)
}

// Drawable is an existing drawing surface. Snapshot returns its current contents.
type Drawable interface {
	Snapshot() (image.Image, error)
}

// corsRemediation is appended to every ErrCrossOrigin returned by the adapter.
const corsRemediation = "the image was loaded from another origin without CORS approval, so its pixels cannot be read. " +
	"Serve it with an Access-Control-Allow-Origin header and load it with crossOrigin=\"anonymous\", or proxy it through the same origin"

/*
naturalImage resolves a non-raw source to the image that should be drawn. Readback refusals (errors wrapping
ErrCrossOrigin) are reported with the CORS remediation text.
*/
func naturalImage(src ImageSource) (image.Image, error) {
	var (
		img  image.Image
		err  error
		kind string
	)

	switch s := src.(type) {
	case image.Image:
		return s, nil
	case FrameSource:
		kind = "video frame"
		img, err = s.CurrentFrame()
	case Drawable:
		kind = "drawing surface"
		img, err = s.Snapshot()
	case nil:
		return nil, fmt.Errorf("%w: source is nil", ErrInvalidSource)
	default:
		return nil, fmt.Errorf("%w: unsupported source type %T", ErrInvalidSource, src)
	}

	if err != nil {
		if errors.Is(err, ErrCrossOrigin) {
			return nil, fmt.Errorf("%w: %s: %s", ErrCrossOrigin, kind, corsRemediation)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidSource, kind, err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: %s returned no image", ErrInvalidSource, kind)
	}

	return img, nil
}

// sourceSize reports the natural pixel size of a source, reading frames/snapshots as needed.
func sourceSize(src ImageSource) (width, height int, img image.Image, err error) {
	switch s := src.(type) {
	case PixelBuffer:
		return s.Width, s.Height, nil, nil
	case *PixelBuffer:
		if s == nil {
			return 0, 0, nil, fmt.Errorf("%w: source is nil", ErrInvalidSource)
		}
		return s.Width, s.Height, nil, nil
	}

	img, err = naturalImage(src)
	if err != nil {
		return 0, 0, nil, err
	}

	b := img.Bounds()
	return b.Dx(), b.Dy(), img, nil
}

/*
pixelsFor is the pixel source adapter. Raw buffers are validated and passed through unchanged, ignoring the target size.
Anything else is drawn onto a surface of targetWidth x targetHeight (or the natural size when either is 0) and read back.

Resource limits are checked before any surface is allocated.
*/
func pixelsFor(src ImageSource, img image.Image, targetWidth, targetHeight int, provider SurfaceProvider) (PixelBuffer, error) {
	switch s := src.(type) {
	case PixelBuffer:
		return rawPixels(s)
	case *PixelBuffer:
		if s == nil {
			return PixelBuffer{}, fmt.Errorf("%w: source is nil", ErrInvalidSource)
		}
		return rawPixels(*s)
	}

	if img == nil {
		var err error
		if img, err = naturalImage(src); err != nil {
			return PixelBuffer{}, err
		}
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return PixelBuffer{}, fmt.Errorf("%w: source has zero dimension (%dx%d)", ErrInvalidSource, b.Dx(), b.Dy())
	}

	width, height := targetWidth, targetHeight
	if width <= 0 || height <= 0 {
		width, height = b.Dx(), b.Dy()
	}

	if err := checkLimits(width, height); err != nil {
		return PixelBuffer{}, err
	}

	surface, err := provider.NewSurface(width, height)
	if err != nil {
		return PixelBuffer{}, err
	}

	if err := surface.Draw(img); err != nil {
		return PixelBuffer{}, err
	}

	buf, err := surface.ReadPixels()
	if err != nil {
		if errors.Is(err, ErrCrossOrigin) {
			return PixelBuffer{}, fmt.Errorf("%w: %s", ErrCrossOrigin, corsRemediation)
		}
		return PixelBuffer{}, err
	}

	return buf, buf.Validate()
}

func rawPixels(buf PixelBuffer) (PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return PixelBuffer{}, err
	}
	if err := checkLimits(buf.Width, buf.Height); err != nil {
		return PixelBuffer{}, err
	}
	return buf, nil
}
