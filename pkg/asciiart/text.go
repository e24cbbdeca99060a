package asciiart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// MaxTextLength is the longest text, in characters, that ConvertText() will render.
	MaxTextLength = 10_000

	minFontSize = 1
	maxFontSize = 1000

	// lineHeightFactor sizes the surface height relative to the font size.
	lineHeightFactor = 1.5
)

/*
TextOptions controls how ConvertText() renders text before converting it. Start from DefaultTextOptions(): empty strings
fall back to the defaults, but FontSize and Padding are always used as given, so a zero FontSize is rejected.
*/
type TextOptions struct {
	// Font is a CSS-style family list, e.g. "Menlo, monospace". Monospaced families render with Go Mono, anything else with Go.
	Font string `json:"font" yaml:"font" toml:"font"`
	// FontSize in pixels, between 1 and 1000.
	FontSize float64 `json:"fontSize" yaml:"fontSize" toml:"font_size"`
	// FontWeight is "normal", "bold" or a multiple of 100 between "100" and "900".
	FontWeight string `json:"fontWeight" yaml:"fontWeight" toml:"font_weight"`
	// FontStyle is "normal", "italic" or "oblique".
	FontStyle string `json:"fontStyle" yaml:"fontStyle" toml:"font_style"`
	// Color is the text color: "#rgb", "#rrggbb", a basic color name or "transparent".
	Color string `json:"color" yaml:"color" toml:"color"`
	// BackgroundColor uses the same syntax as Color.
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor" toml:"background_color"`
	// Padding in pixels around the text.
	Padding int `json:"padding" yaml:"padding" toml:"padding"`
}

// DefaultTextOptions returns black 48px monospace text on white with 10px of padding.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Font:            "monospace",
		FontSize:        48,
		FontWeight:      "normal",
		FontStyle:       "normal",
		Color:           "#000000",
		BackgroundColor: "#ffffff",
		Padding:         10,
	}
}

func (o TextOptions) withDefaults() TextOptions {
	d := DefaultTextOptions()

	if o.Font == "" {
		o.Font = d.Font
	}
	if o.FontWeight == "" {
		o.FontWeight = d.FontWeight
	}
	if o.FontStyle == "" {
		o.FontStyle = d.FontStyle
	}
	if o.Color == "" {
		o.Color = d.Color
	}
	if o.BackgroundColor == "" {
		o.BackgroundColor = d.BackgroundColor
	}

	return o
}

// FontDescription returns the CSS font shorthand for the options, e.g. "italic bold 48px monospace", with the family sanitized.
func (o TextOptions) FontDescription() string {
	o = o.withDefaults()
	return fmt.Sprintf("%s %s %spx %s", o.FontStyle, o.FontWeight, strconv.FormatFloat(o.FontSize, 'f', -1, 64), sanitizeFontFamily(o.Font))
}

// TextRenderer rasterizes text into pixels for ConvertText().
type TextRenderer interface {
	Render(text string, opts TextOptions) (PixelBuffer, error)
}

// FontRenderer is the default TextRenderer. It draws with the embedded Go fonts via golang.org/x/image/font/opentype.
type FontRenderer struct{}

// NewFontRenderer returns a FontRenderer.
func NewFontRenderer() *FontRenderer {
	return &FontRenderer{}
}

/*
Render draws text on a surface of

	ceil(textWidth + 2*padding) x ceil(fontSize*1.5 + 2*padding)

filled with the background color. The text is left-aligned with the top of its em box at (padding, padding). ASCII
whitespace is drawn as plain spaces, so the result is always a single line.
*/
func (r *FontRenderer) Render(text string, opts TextOptions) (PixelBuffer, error) {
	opts = opts.withDefaults()

	if text == "" {
		return PixelBuffer{}, fmt.Errorf("%w: text must not be empty", ErrInvalidParameter)
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return PixelBuffer{}, fmt.Errorf("%w: text is %d characters, maximum is %d", ErrInputTooLarge, n, MaxTextLength)
	}

	weight, italic, err := validateTextOptions(opts)
	if err != nil {
		return PixelBuffer{}, err
	}

	fg, err := parseCSSColor(opts.Color)
	if err != nil {
		return PixelBuffer{}, err
	}
	bg, err := parseCSSColor(opts.BackgroundColor)
	if err != nil {
		return PixelBuffer{}, err
	}

	variant := variantFor(resolveFamily(sanitizeFontFamily(opts.Font)), weight, italic)
	face, err := newFace(variant, opts.FontSize)
	if err != nil {
		return PixelBuffer{}, err
	}
	defer face.Close()

	text = strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\f', '\r':
			return ' '
		}
		return r
	}, text)

	textWidth := fixedToFloat(font.MeasureString(face, text))
	padding := float64(opts.Padding)

	width := int(math.Ceil(textWidth + 2*padding))
	height := int(math.Ceil(opts.FontSize*lineHeightFactor + 2*padding))

	if width <= 0 || height <= 0 {
		return PixelBuffer{}, fmt.Errorf("%w: rendered text has zero dimension (%dx%d)", ErrInvalidSource, width, height)
	}
	if err := checkLimits(width, height); err != nil {
		return PixelBuffer{}, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(opts.Padding),
			Y: fixed.I(opts.Padding) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)

	return PixelBuffer{Width: width, Height: height, Data: img.Pix}, nil
}

// validateTextOptions checks size, style, weight and padding, returning the numeric weight and whether the style is slanted.
func validateTextOptions(opts TextOptions) (weight int, italic bool, err error) {
	if !(opts.FontSize >= minFontSize && opts.FontSize <= maxFontSize) {
		return 0, false, fmt.Errorf("%w: font size must be between %d and %d, got %v", ErrInvalidParameter, minFontSize, maxFontSize, opts.FontSize)
	}

	switch opts.FontStyle {
	case "normal":
	case "italic", "oblique":
		italic = true
	default:
		return 0, false, fmt.Errorf("%w: font style must be normal, italic or oblique, got %q", ErrInvalidParameter, opts.FontStyle)
	}

	weight, err = parseFontWeight(opts.FontWeight)
	if err != nil {
		return 0, false, err
	}

	if opts.Padding < 0 {
		return 0, false, fmt.Errorf("%w: padding must be non-negative, got %d", ErrInvalidParameter, opts.Padding)
	}

	return weight, italic, nil
}

func parseFontWeight(s string) (int, error) {
	switch s {
	case "normal":
		return 400, nil
	case "bold":
		return 700, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 100 || n > 900 || n%100 != 0 || strconv.Itoa(n) != s {
		return 0, fmt.Errorf("%w: font weight must be normal, bold or 100-900 in steps of 100, got %q", ErrInvalidParameter, s)
	}

	return n, nil
}

// sanitizeFontFamily strips quotes, backticks and angle brackets so a family name cannot break out of a font description.
func sanitizeFontFamily(family string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '`', '<', '>':
			return -1
		}
		return r
	}, family)
}

var namedColors = map[string]color.NRGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"lime":        {0, 255, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"transparent": {0, 0, 0, 0},
}

// parseCSSColor accepts "#rgb", "#rrggbb" and the names in namedColors.
func parseCSSColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: unsupported color %q", ErrInvalidParameter, s)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
