package asciiart

import "log/slog"

// settings is everything an Option can change. The Generator holds one and replaces it wholesale on UpdateConfig().
type settings struct {
	config   Config
	surfaces SurfaceProvider
	clock    Clock
	text     TextRenderer
	logger   *slog.Logger
}

// Option configures a Generator. Options are used both by New() and UpdateConfig().
type Option func(*settings)

// WithConfig replaces the whole configuration. Options after it still apply on top.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}

/*
WithCharset sets the glyph ramp. charset is either a preset name ("block", "standard", "minimal", "extended") or a
literal ramp ordered from darkest to lightest. Literal ramps have < > ' " & ` stripped.
*/
func WithCharset(charset string) Option {
	return func(s *settings) {
		s.config.Charset = charset
	}
}

// WithPreset is WithCharset for a built-in preset.
func WithPreset(p Preset) Option {
	return WithCharset(string(p))
}

// WithInverted reverses the brightness mapping, for light text on a dark background.
func WithInverted(inverted bool) Option {
	return func(s *settings) {
		s.config.Inverted = inverted
	}
}

/*
WithColor enables/disables colored output. When enabled every cell keeps its sampled RGBA, the result carries a color grid,
and the HTML wraps each glyph in a colored <span>.

NOTE: colored grids are limited to MaxColoredCells characters.
*/
func WithColor(colored bool) Option {
	return func(s *settings) {
		s.config.Colored = colored
	}
}

// WithAspectRatio sets the glyph aspect correction factor. Glyph cells are usually about twice as tall as wide, hence the 0.55 default.
func WithAspectRatio(ratio float64) Option {
	return func(s *settings) {
		s.config.AspectRatio = ratio
	}
}

// WithWidth sets the target grid width in characters. 0 derives it from the source.
func WithWidth(width int) Option {
	return func(s *settings) {
		s.config.Width = width
	}
}

// WithHeight sets the target grid height in characters. 0 derives it from the source. Only used when no width is set.
func WithHeight(height int) Option {
	return func(s *settings) {
		s.config.Height = height
	}
}

// WithSize sets both the target width and height.
func WithSize(width, height int) Option {
	return func(s *settings) {
		s.config.Width = width
		s.config.Height = height
	}
}

// WithOptimized enables/disables pre-sizing of output buffers. It is a performance hint only.
func WithOptimized(optimized bool) Option {
	return func(s *settings) {
		s.config.Optimized = optimized
	}
}

/*
WithSurfaceProvider sets the provider of intermediate drawing surfaces used to re-sample image sources. The default is a
ScalingProvider using bilinear interpolation. A nil provider restores the default.
*/
func WithSurfaceProvider(p SurfaceProvider) Option {
	return func(s *settings) {
		if p == nil {
			p = NewScalingProvider(InterpolationBiLinear)
		}
		s.surfaces = p
	}
}

// WithClock sets the clock used to measure processing time. A nil clock restores the system clock.
func WithClock(c Clock) Option {
	return func(s *settings) {
		if c == nil {
			c = systemClock{}
		}
		s.clock = c
	}
}

// WithTextRenderer sets the rasterizer used by ConvertText(). A nil renderer restores the default FontRenderer.
func WithTextRenderer(r TextRenderer) Option {
	return func(s *settings) {
		if r == nil {
			r = NewFontRenderer()
		}
		s.text = r
	}
}

// WithLogger sets the logger. By default the Generator logs nothing. A nil logger restores that.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l == nil {
			l = newNopLogger()
		}
		s.logger = l
	}
}

func defaultSettings() settings {
	return settings{
		config:   DefaultConfig(),
		surfaces: NewScalingProvider(InterpolationBiLinear),
		clock:    systemClock{},
		text:     NewFontRenderer(),
		logger:   newNopLogger(),
	}
}
