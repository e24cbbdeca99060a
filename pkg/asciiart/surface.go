package asciiart

import (
	"fmt"
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"
)

/*
Surface is an offscreen drawing surface. The pixel source adapter draws a source onto it, scaled to fill the whole
surface, and reads the result back as a PixelBuffer.
*/
type Surface interface {
	Draw(src image.Image) error
	ReadPixels() (PixelBuffer, error)
}

// SurfaceProvider allocates surfaces. Implementations must not be asked for more than MaxDimension per side or MaxPixels in total.
type SurfaceProvider interface {
	NewSurface(width, height int) (Surface, error)
}

// Interpolation selects the resampling kernel of a ScalingProvider.
type Interpolation int

const (
	InterpolationNearest Interpolation = iota
	InterpolationApproxBiLinear
	InterpolationBiLinear
	InterpolationCatmullRom
)

var interpolationNames = map[Interpolation]string{
	InterpolationNearest:        "nearest",
	InterpolationApproxBiLinear: "approx-bilinear",
	InterpolationBiLinear:       "bilinear",
	InterpolationCatmullRom:     "catmull-rom",
}

func (i Interpolation) String() string {
	if name, ok := interpolationNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// ParseInterpolation parses the names printed by Interpolation.String(), case-insensitively.
func ParseInterpolation(s string) (Interpolation, error) {
	for i, name := range interpolationNames {
		if strings.EqualFold(s, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidParameter, s)
}

func (i Interpolation) scaler() xdraw.Scaler {
	switch i {
	case InterpolationNearest:
		return xdraw.NearestNeighbor
	case InterpolationApproxBiLinear:
		return xdraw.ApproxBiLinear
	case InterpolationCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}

// ScalingProvider is the default SurfaceProvider. Its surfaces are *image.NRGBA, scaled into with golang.org/x/image/draw.
type ScalingProvider struct {
	scaler xdraw.Scaler
}

// NewScalingProvider returns a provider that resamples with the given interpolation.
func NewScalingProvider(interp Interpolation) *ScalingProvider {
	return &ScalingProvider{scaler: interp.scaler()}
}

// NewSurface implements SurfaceProvider.
func (p *ScalingProvider) NewSurface(width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: cannot allocate a %dx%d surface", ErrInvalidSource, width, height)
	}
	if err := checkLimits(width, height); err != nil {
		return nil, err
	}

	scaler := p.scaler
	if scaler == nil {
		scaler = xdraw.BiLinear
	}

	return &nrgbaSurface{
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		scaler: scaler,
	}, nil
}

type nrgbaSurface struct {
	img    *image.NRGBA
	scaler xdraw.Scaler
}

func (s *nrgbaSurface) Draw(src image.Image) error {
	if src == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidSource)
	}

	srcBounds := src.Bounds()
	dstBounds := s.img.Bounds()

	if srcBounds.Dx() == dstBounds.Dx() && srcBounds.Dy() == dstBounds.Dy() {
		xdraw.Copy(s.img, dstBounds.Min, src, srcBounds, xdraw.Src, nil)
		return nil
	}

	s.scaler.Scale(s.img, dstBounds, src, srcBounds, xdraw.Src, nil)
	return nil
}

func (s *nrgbaSurface) ReadPixels() (PixelBuffer, error) {
	b := s.img.Bounds()
	return PixelBuffer{Width: b.Dx(), Height: b.Dy(), Data: s.img.Pix}, nil
}
