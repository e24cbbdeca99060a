package asciiart

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"strings"
)

const (
	// bytesPerGlyphReserve assumes the worst case of a 4 byte UTF-8 glyph.
	bytesPerGlyphReserve = 4
	// htmlBytesPerGlyphReserve leaves room for an escaped glyph.
	htmlBytesPerGlyphReserve = 6
	// coloredHTMLBytesPerGlyphReserve leaves room for the <span style="color: rgba(...)"> wrapper.
	coloredHTMLBytesPerGlyphReserve = 64
)

/*
Generator converts images and text into ascii art. Create one with New() and reuse it: every conversion reads the
configuration once at entry and keeps no state afterwards.

A Generator is not safe for concurrent use while UpdateConfig() may be called; serialise access externally.
*/
type Generator struct {
	s      settings
	glyphs []rune
}

/*
New creates a Generator with the defaults of DefaultConfig(), then applies opts. It fails if the resulting configuration
is invalid (see UpdateConfig for the rules).
*/
func New(opts ...Option) (*Generator, error) {
	g := &Generator{}
	s := defaultSettings()

	if err := g.apply(s, opts); err != nil {
		return nil, err
	}

	return g, nil
}

/*
UpdateConfig applies opts on top of the current configuration. The candidate configuration is resolved and validated
as a whole and only swapped in when valid, so a failed update leaves the Generator exactly as it was.

The rules are:

	- the charset resolves to at least one glyph (see ResolveCharset)
	- AspectRatio is positive and finite
	- 0 <= Width, Height <= MaxDimension
	- when both Width and Height are set: Width*Height <= MaxColoredCells if colored, else <= MaxPixels
*/
func (g *Generator) UpdateConfig(opts ...Option) error {
	return g.apply(g.s, opts)
}

func (g *Generator) apply(s settings, opts []Option) error {
	for _, o := range opts {
		o(&s)
	}

	glyphs, err := s.config.resolve()
	if err != nil {
		return err
	}

	g.s = s
	g.glyphs = glyphs

	s.logger.Debug("asciiart: configuration applied",
		slog.String("charset", string(glyphs)),
		slog.Bool("inverted", s.config.Inverted),
		slog.Bool("colored", s.config.Colored),
		slog.Float64("aspect_ratio", s.config.AspectRatio),
		slog.Int("width", s.config.Width),
		slog.Int("height", s.config.Height),
	)

	return nil
}

// Config returns a copy of the current configuration.
func (g *Generator) Config() Config {
	return g.s.config
}

// Charset returns the resolved glyph ramp, darkest first.
func (g *Generator) Charset() string {
	return string(g.glyphs)
}

/*
ConvertReader decodes an image from r and converts it. Image formats supported are jpeg, png, gif. If you want to support
more formats, register the decoder package at the top of any of your go files:

	import (
		_ "golang.org/x/image/webp"
	)

ConvertReader uses image.Decode() under the hood, so it is important to register file formats so the image module knows how to decode the bytes.
*/
func (g *Generator) ConvertReader(r io.Reader) (*Result, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrInvalidSource, err)
	}

	return g.ConvertImage(img)
}

// ConvertBytes is ConvertReader for an in-memory image file.
func (g *Generator) ConvertBytes(b []byte) (*Result, error) {
	return g.ConvertReader(bytes.NewReader(b))
}

/*
ConvertImage converts src (see ImageSource) into ascii art.

The grid size comes from CalculateDimensions() applied to the source's natural size, and the source is re-sampled to
exactly that many pixels, so every pixel becomes one cell. A raw PixelBuffer is taken as already sized: its width and
height are the grid size.

Metadata.ProcessingTime covers re-sampling and the grid loop.
*/
func (g *Generator) ConvertImage(src ImageSource) (*Result, error) {
	s, glyphs := g.s, g.glyphs
	cfg := s.config
	start := s.clock.Now()

	buf, err := resample(s, src)
	if err != nil {
		return nil, err
	}

	gridW, gridH := buf.Width, buf.Height

	if cfg.Colored {
		if err := checkGridSize(gridW, gridH, true); err != nil {
			return nil, err
		}
	}

	glyphStrs, escapedGlyphs := glyphTables(glyphs)

	var textBuilder, htmlBuilder strings.Builder

	characters := make([][]string, gridH)
	var colors [][]CellColor
	if cfg.Colored {
		colors = make([][]CellColor, gridH)
	}

	if cfg.Optimized {
		htmlPerGlyph := htmlBytesPerGlyphReserve
		if cfg.Colored {
			htmlPerGlyph = coloredHTMLBytesPerGlyphReserve
		}

		textBuilder.Grow((gridW + 1) * gridH * bytesPerGlyphReserve) // width + 1 leaves a byte for the new line
		htmlBuilder.Grow((gridW+1)*gridH*htmlPerGlyph + len(htmlPreOpen(true)) + len(htmlPreClose))
	}

	htmlBuilder.WriteString(htmlPreOpen(cfg.Colored))

	for y := range gridH {
		if y > 0 {
			textBuilder.WriteByte('\n')
			htmlBuilder.WriteByte('\n')
		}

		var rowChars []string
		var rowColors []CellColor
		if cfg.Optimized {
			rowChars = make([]string, 0, gridW)
			if cfg.Colored {
				rowColors = make([]CellColor, 0, gridW)
			}
		}

		for x := range gridW {
			c := SampleCell(buf, x, y, gridW, gridH)
			idx := charIndex(c.Luminance(), len(glyphs), cfg.Inverted)

			textBuilder.WriteString(glyphStrs[idx])
			writeHTMLCell(&htmlBuilder, escapedGlyphs[idx], c, cfg.Colored)

			rowChars = append(rowChars, glyphStrs[idx])
			if cfg.Colored {
				rowColors = append(rowColors, c)
			}
		}

		characters[y] = rowChars
		if cfg.Colored {
			colors[y] = rowColors
		}
	}

	htmlBuilder.WriteString(htmlPreClose)

	elapsed := s.clock.Now().Sub(start)

	s.logger.Debug("asciiart: conversion complete",
		slog.Int("width", gridW),
		slog.Int("height", gridH),
		slog.Bool("colored", cfg.Colored),
		slog.Duration("elapsed", elapsed),
	)

	return &Result{
		Text:       textBuilder.String(),
		HTML:       htmlBuilder.String(),
		Characters: characters,
		Colors:     colors,
		Metadata: Metadata{
			Width:          gridW,
			Height:         gridH,
			CharacterCount: gridW * gridH,
			ProcessingTime: elapsed,
			Charset:        string(glyphs),
			HasColor:       cfg.Colored,
		},
	}, nil
}

/*
ConvertText renders text with the configured TextRenderer and converts the rendered bitmap like any other image, so the
grid size follows the Generator's width/height/aspect ratio settings.
*/
func (g *Generator) ConvertText(text string, opts TextOptions) (*Result, error) {
	s := g.s

	s.logger.Debug("asciiart: rendering text",
		slog.Int("length", len(text)),
		slog.String("font", opts.FontDescription()),
	)

	buf, err := s.text.Render(text, opts)
	if err != nil {
		return nil, err
	}
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	return g.ConvertImage(buf.Image())
}

/*
GenerateColorMap re-samples src exactly like ConvertImage() but only returns the color grid, without computing glyphs.
It is not subject to the colored output limit since no HTML is produced.
*/
func (g *Generator) GenerateColorMap(src ImageSource) ([][]CellColor, error) {
	s := g.s

	buf, err := resample(s, src)
	if err != nil {
		return nil, err
	}

	gridW, gridH := buf.Width, buf.Height

	colors := make([][]CellColor, gridH)
	for y := range gridH {
		row := make([]CellColor, gridW)
		for x := range gridW {
			row[x] = SampleCell(buf, x, y, gridW, gridH)
		}
		colors[y] = row
	}

	return colors, nil
}

// resample runs the dimension calculator and the pixel source adapter for one conversion.
func resample(s settings, src ImageSource) (PixelBuffer, error) {
	srcW, srcH, img, err := sourceSize(src)
	if err != nil {
		return PixelBuffer{}, err
	}
	if srcW <= 0 || srcH <= 0 {
		return PixelBuffer{}, fmt.Errorf("%w: source has zero dimension (%dx%d)", ErrInvalidSource, srcW, srcH)
	}

	width, height := CalculateDimensions(srcW, srcH, s.config.Width, s.config.Height, s.config.AspectRatio)

	return pixelsFor(src, img, width, height, s.surfaces)
}

// glyphTables precomputes the plain and HTML-escaped string of every glyph in the ramp.
func glyphTables(glyphs []rune) (plain, escaped []string) {
	plain = make([]string, len(glyphs))
	escaped = make([]string, len(glyphs))

	for i, r := range glyphs {
		plain[i] = string(r)
		escaped[i] = EscapeHTML(plain[i])
	}

	return plain, escaped
}
