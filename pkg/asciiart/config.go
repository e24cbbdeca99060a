package asciiart

import (
	"fmt"
	"math"
)

// Default configuration values. See DefaultConfig().
const (
	DefaultCharset     = string(PresetStandard)
	DefaultAspectRatio = 0.55
)

/*
Config is the Generator configuration. It is a plain value: the Generator never mutates a Config in place, it builds a new
one, validates it, and swaps it in.
*/
type Config struct {
	// Charset is a preset name (see Presets()) or a literal glyph ramp ordered from darkest to lightest.
	Charset string `json:"charset" yaml:"charset" toml:"charset"`
	// Inverted reverses the darkest->lightest mapping.
	Inverted bool `json:"inverted" yaml:"inverted" toml:"inverted"`
	// Colored keeps the sampled color of every cell and emits one colored <span> per glyph.
	Colored bool `json:"colored" yaml:"colored" toml:"colored"`
	// AspectRatio corrects for glyph cells being taller than they are wide. Must be > 0.
	AspectRatio float64 `json:"aspectRatio" yaml:"aspectRatio" toml:"aspect_ratio"`
	// Width is the grid width in characters. 0 derives it from the source.
	Width int `json:"width" yaml:"width" toml:"width"`
	// Height is the grid height in characters. 0 derives it from the source. Ignored when Width is set.
	Height int `json:"height" yaml:"height" toml:"height"`
	// Optimized pre-sizes builders and grids instead of growing them. It never changes the output.
	Optimized bool `json:"optimized" yaml:"optimized" toml:"optimized"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Charset:     DefaultCharset,
		Inverted:    false,
		Colored:     false,
		AspectRatio: DefaultAspectRatio,
		Width:       0,
		Height:      0,
		Optimized:   true,
	}
}

/*
resolve validates c and returns its glyph ramp. The checks are:

	- the charset resolves to at least one glyph
	- 0 < AspectRatio < +Inf
	- 0 <= Width, Height <= MaxDimension
	- if both Width and Height are set: Width*Height <= MaxColoredCells when Colored, else <= MaxPixels

When either dimension is 0 the grid size is only known at conversion time, so the product check is deferred to the
pixel source adapter.
*/
func (c Config) resolve() ([]rune, error) {
	glyphs, err := ResolveCharset(c.Charset)
	if err != nil {
		return nil, err
	}

	// Written as a negated comparison so NaN is rejected too.
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 1) {
		return nil, fmt.Errorf("%w: aspect ratio must be positive and finite, got %v", ErrInvalidParameter, c.AspectRatio)
	}

	if c.Width < 0 || c.Height < 0 {
		return nil, fmt.Errorf("%w: width and height must be non-negative, got %dx%d", ErrInvalidParameter, c.Width, c.Height)
	}

	if c.Width > MaxDimension || c.Height > MaxDimension {
		return nil, fmt.Errorf("%w: dimensions %dx%d exceed maximum of %d per side", ErrResourceLimit, c.Width, c.Height, MaxDimension)
	}

	if c.Width > 0 && c.Height > 0 {
		if err := checkGridSize(c.Width, c.Height, c.Colored); err != nil {
			return nil, err
		}
	}

	return glyphs, nil
}

// checkGridSize enforces the character count ceilings for a grid.
func checkGridSize(width, height int, colored bool) error {
	cells := width * height

	if colored && cells > MaxColoredCells {
		return fmt.Errorf("%w: %dx%d (%d characters) exceeds maximum allowed for colored output (%d)", ErrResourceLimit, width, height, cells, MaxColoredCells)
	}

	if cells > MaxPixels {
		return fmt.Errorf("%w: %dx%d (%d characters) exceeds maximum allowed (%d)", ErrResourceLimit, width, height, cells, MaxPixels)
	}

	return nil
}
